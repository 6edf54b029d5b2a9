package dataimporter

import (
	"context"

	"github.com/metroplan/metroplan/pkg/database"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportDataset validates, converts and upserts a network dataset into the
// topology collections. It does not itself trigger an engine rebuild; the
// admin rebuild endpoint (or service startup) does that.
func ImportDataset(ctx context.Context, dataset *NetworkDataset) error {
	stations, lines, transferLinks, fareRules, passengerTypes, groupBands, err := dataset.Convert()
	if err != nil {
		return err
	}

	for _, station := range stations {
		if err := upsert(ctx, "stations", bson.M{"primaryidentifier": station.PrimaryIdentifier}, station); err != nil {
			return err
		}
	}

	for _, line := range lines {
		if err := upsert(ctx, "lines", bson.M{"primaryidentifier": line.PrimaryIdentifier}, line); err != nil {
			return err
		}
	}

	for _, link := range transferLinks {
		if err := upsert(ctx, "transfer_links", bson.M{"stationa": link.StationA, "stationb": link.StationB}, link); err != nil {
			return err
		}
	}

	for _, rule := range fareRules {
		if err := upsert(ctx, "fare_rules", bson.M{"lineref": rule.LineRef, "zonespan": rule.ZoneSpan}, rule); err != nil {
			return err
		}
	}

	for _, passengerType := range passengerTypes {
		if err := upsert(ctx, "passenger_types", bson.M{"primaryidentifier": passengerType.PrimaryIdentifier}, passengerType); err != nil {
			return err
		}
	}

	for _, band := range groupBands {
		if err := upsert(ctx, "group_discounts", bson.M{"minsize": band.MinSize}, band); err != nil {
			return err
		}
	}

	for _, operator := range dataset.Operators {
		if err := upsert(ctx, "operators", bson.M{"primaryidentifier": operator.PrimaryIdentifier}, operator); err != nil {
			return err
		}
	}

	log.Info().
		Int("stations", len(stations)).
		Int("lines", len(lines)).
		Int("fare_rules", len(fareRules)).
		Msg("Imported network dataset")

	return nil
}

func upsert(ctx context.Context, collectionName string, match bson.M, record any) error {
	collection := database.GetCollection(collectionName)

	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, match, record, opts)

	return err
}
