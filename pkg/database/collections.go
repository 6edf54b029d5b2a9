package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createIndex("stations", []mongo.IndexModel{
		{Keys: bson.D{{Key: "primaryidentifier", Value: 1}}},
		{Keys: bson.D{{Key: "lineref", Value: 1}}},
		{Keys: bson.D{{Key: "interchange", Value: 1}}},
	})

	createIndex("lines", []mongo.IndexModel{
		{Keys: bson.D{{Key: "primaryidentifier", Value: 1}}},
		{Keys: bson.D{{Key: "operatorref", Value: 1}}},
	})

	createIndex("transfer_links", []mongo.IndexModel{
		{Keys: bson.D{{Key: "stationa", Value: 1}}},
		{Keys: bson.D{{Key: "stationb", Value: 1}}},
	})

	createIndex("fare_rules", []mongo.IndexModel{
		{Keys: bson.D{{Key: "lineref", Value: 1}, {Key: "zonespan", Value: 1}}},
	})

	createIndex("passenger_types", []mongo.IndexModel{
		{Keys: bson.D{{Key: "primaryidentifier", Value: 1}}},
	})
}

func createIndex(collectionName string, indexes []mongo.IndexModel) {
	collection := GetCollection(collectionName)

	opts := options.CreateIndexes()
	_, err := collection.Indexes().CreateMany(context.Background(), indexes, opts)
	if err != nil {
		log.Error().Err(err).Str("collection", collectionName).Msg("Creating Index")
	}
}
