package mndf

type FareBreakdown struct {
	Items []FareBreakdownItem `groups:"basic"`

	RideSubtotal float64 `groups:"basic"`

	PassengerTypeRef        string  `groups:"basic"`
	PassengerDiscountPct    float64 `groups:"basic"`
	PassengerDiscountAmount float64 `groups:"basic"`

	TransferFees float64 `groups:"basic"`

	GroupSize           int     `groups:"basic"`
	GroupDiscountPct    float64 `groups:"basic"`
	GroupDiscountAmount float64 `groups:"basic"`

	Total float64 `groups:"basic"`

	Currency string `groups:"basic"`
}

type FareBreakdownItem struct {
	SegmentIndex int      `groups:"basic"`
	Kind         EdgeKind `groups:"basic"`
	LineRef      string   `groups:"basic"`

	Fare        float64 `groups:"basic"`
	TransferFee float64 `groups:"basic"`
}

const CurrencyBaht = "THB"
