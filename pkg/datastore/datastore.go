package datastore

import (
	"context"

	"github.com/metroplan/metroplan/pkg/database"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/planner"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// RebuildEngine reads the full topology and fare dataset out of MongoDB and
// swaps a freshly built snapshot into the global engine. Called at startup
// and by the admin rebuild trigger after any topology or fare-rule change.
func RebuildEngine(ctx context.Context) error {
	var stations []mndf.Station
	if err := loadCollection(ctx, "stations", &stations); err != nil {
		return err
	}

	var lines []mndf.Line
	if err := loadCollection(ctx, "lines", &lines); err != nil {
		return err
	}

	var transferLinks []mndf.TransferLink
	if err := loadCollection(ctx, "transfer_links", &transferLinks); err != nil {
		return err
	}

	var fareRules []mndf.FareRule
	if err := loadCollection(ctx, "fare_rules", &fareRules); err != nil {
		return err
	}

	var passengerTypes []mndf.PassengerType
	if err := loadCollection(ctx, "passenger_types", &passengerTypes); err != nil {
		return err
	}

	var groupBands []mndf.GroupDiscountBand
	if err := loadCollection(ctx, "group_discounts", &groupBands); err != nil {
		return err
	}

	log.Info().
		Int("stations", len(stations)).
		Int("lines", len(lines)).
		Int("transfer_links", len(transferLinks)).
		Int("fare_rules", len(fareRules)).
		Msg("Loaded network dataset from database")

	return planner.GlobalEngine.Rebuild(stations, lines, transferLinks, fareRules, passengerTypes, groupBands)
}

func loadCollection[T any](ctx context.Context, collectionName string, records *[]T) error {
	collection := database.GetCollection(collectionName)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return err
	}

	return cursor.All(ctx, records)
}
