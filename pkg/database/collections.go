package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createHistoryIndexes()
}

func createHistoryIndexes() {
	historyCollection := GetCollection("board_history")
	historyIndex := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "entryid", Value: 1},
				{Key: "fetchedat", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "fetchedat", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(7 * 24 * 3600), // Expire after a week
		},
	}

	opts := options.CreateIndexes()
	_, err := historyCollection.Indexes().CreateMany(context.Background(), historyIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
