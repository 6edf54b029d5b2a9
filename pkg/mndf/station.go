package mndf

type Station struct {
	PrimaryIdentifier string `groups:"basic"`

	Name string `groups:"basic"`

	Location *Location `groups:"basic"`

	Zone        int    `groups:"detailed"`
	Interchange bool   `groups:"basic"`
	LineRef     string `groups:"basic"`

	Status string `groups:"detailed"`
}
