package dataimporter

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/metroplan/metroplan/pkg/mndf"
	"gopkg.in/yaml.v3"
)

// NetworkDataset is the on-disk YAML form of a complete network definition.
// It must be internally consistent as a whole or the import is rejected.
type NetworkDataset struct {
	Operators      []OperatorRecord      `yaml:"operators" validate:"dive"`
	Lines          []LineRecord          `yaml:"lines" validate:"required,min=1,dive"`
	Stations       []StationRecord       `yaml:"stations" validate:"required,min=2,dive"`
	TransferLinks  []TransferLinkRecord  `yaml:"transfer_links" validate:"dive"`
	FareRules      []FareRuleRecord      `yaml:"fare_rules" validate:"required,min=1,dive"`
	PassengerTypes []PassengerTypeRecord `yaml:"passenger_types" validate:"required,min=1,dive"`
	GroupDiscounts []GroupDiscountRecord `yaml:"group_discounts" validate:"dive"`
}

type OperatorRecord struct {
	PrimaryIdentifier string `yaml:"id" validate:"required"`
	Name              string `yaml:"name" validate:"required"`
	RegionRef         string `yaml:"region"`
}

type LineRecord struct {
	PrimaryIdentifier string   `yaml:"id" validate:"required"`
	Name              string   `yaml:"name" validate:"required"`
	OperatorRef       string   `yaml:"operator" validate:"required"`
	Colour            string   `yaml:"colour"`
	Status            string   `yaml:"status" validate:"required,oneof=active maintenance"`
	StationRefs       []string `yaml:"stations" validate:"required,min=2"`
	SegmentTravelTime int      `yaml:"segment_travel_time" validate:"gte=0"`
	SegmentCost       float64  `yaml:"segment_cost" validate:"gte=0"`
}

type StationRecord struct {
	PrimaryIdentifier string  `yaml:"id" validate:"required"`
	Name              string  `yaml:"name" validate:"required"`
	Latitude          float64 `yaml:"lat"`
	Longitude         float64 `yaml:"lon"`
	Zone              int     `yaml:"zone" validate:"gte=0"`
	Interchange       bool    `yaml:"interchange"`
	LineRef           string  `yaml:"line" validate:"required"`
}

type TransferLinkRecord struct {
	StationA        string  `yaml:"station_a" validate:"required"`
	StationB        string  `yaml:"station_b" validate:"required,nefield=StationA"`
	WalkingTime     int     `yaml:"walking_time" validate:"gt=0"`
	WalkingDistance float64 `yaml:"walking_distance" validate:"gte=0"`
	Fee             float64 `yaml:"fee" validate:"gte=0"`
}

type FareRuleRecord struct {
	LineRef        string  `yaml:"line" validate:"required"`
	ZoneSpan       int     `yaml:"zone_span" validate:"gte=0"`
	BaseFare       float64 `yaml:"base_fare" validate:"gte=0"`
	PerStationFare float64 `yaml:"per_station_fare" validate:"gte=0"`
}

type PassengerTypeRecord struct {
	PrimaryIdentifier string  `yaml:"id" validate:"required"`
	Name              string  `yaml:"name" validate:"required"`
	DiscountPercent   float64 `yaml:"discount_percent" validate:"gte=0,lte=100"`
	AgeMin            int     `yaml:"age_min" validate:"gte=0"`
	AgeMax            int     `yaml:"age_max" validate:"gte=0"`
}

type GroupDiscountRecord struct {
	MinSize         int     `yaml:"min_size" validate:"gt=1"`
	DiscountPercent float64 `yaml:"discount_percent" validate:"gte=0,lte=100"`
}

func LoadDataset(path string) (*NetworkDataset, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseDataset(contents)
}

func ParseDataset(contents []byte) (*NetworkDataset, error) {
	var dataset NetworkDataset
	if err := yaml.Unmarshal(contents, &dataset); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&dataset); err != nil {
		return nil, err
	}

	return &dataset, nil
}

// Convert maps the raw records onto the mndf domain structures.
func (d *NetworkDataset) Convert() ([]mndf.Station, []mndf.Line, []mndf.TransferLink, []mndf.FareRule, []mndf.PassengerType, []mndf.GroupDiscountBand, error) {
	var stations []mndf.Station
	for _, record := range d.Stations {
		var station mndf.Station
		if err := copier.Copy(&station, &record); err != nil {
			return nil, nil, nil, nil, nil, nil, err
		}

		station.Location = &mndf.Location{
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		}

		stations = append(stations, station)
	}

	var lines []mndf.Line
	for _, record := range d.Lines {
		var line mndf.Line
		if err := copier.Copy(&line, &record); err != nil {
			return nil, nil, nil, nil, nil, nil, err
		}

		line.Status = mndf.LineStatus(record.Status)

		lines = append(lines, line)
	}

	var transferLinks []mndf.TransferLink
	if err := copier.Copy(&transferLinks, &d.TransferLinks); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}

	var fareRules []mndf.FareRule
	if err := copier.Copy(&fareRules, &d.FareRules); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}

	var passengerTypes []mndf.PassengerType
	if err := copier.Copy(&passengerTypes, &d.PassengerTypes); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}

	var groupBands []mndf.GroupDiscountBand
	if err := copier.Copy(&groupBands, &d.GroupDiscounts); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}

	return stations, lines, transferLinks, fareRules, passengerTypes, groupBands, nil
}
