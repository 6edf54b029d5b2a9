package databaselookup

import (
	"context"
	"errors"
	"reflect"

	"github.com/metroplan/metroplan/pkg/dataaggregator/query"
	"github.com/metroplan/metroplan/pkg/dataaggregator/source"
	"github.com/metroplan/metroplan/pkg/database"
	"github.com/metroplan/metroplan/pkg/mndf"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Database Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(mndf.Station{}),
		reflect.TypeOf([]mndf.Station{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Station:
		return s.StationQuery(q.(query.Station))
	case query.StationList:
		return s.StationListQuery(q.(query.StationList))
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) StationQuery(q query.Station) (*mndf.Station, error) {
	stationsCollection := database.GetCollection("stations")

	var station *mndf.Station
	stationsCollection.FindOne(context.Background(), q.ToBson()).Decode(&station)

	if station == nil {
		return nil, errors.New("Could not find Station matching identifier")
	}

	return station, nil
}

func (s Source) StationListQuery(q query.StationList) ([]mndf.Station, error) {
	stationsCollection := database.GetCollection("stations")

	cursor, err := stationsCollection.Find(context.Background(), q.ToBson())
	if err != nil {
		return nil, err
	}

	var stations []mndf.Station
	if err := cursor.All(context.Background(), &stations); err != nil {
		return nil, err
	}

	return stations, nil
}
