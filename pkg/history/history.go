package history

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "board_history"

// BoardRecord is one archived poll cycle for one entry.
type BoardRecord struct {
	EntryID string `json:"entry_id" bson:"entryid"`
	SiteID  string `json:"site_id" bson:"siteid"`

	FetchedAt time.Time `json:"fetched_at" bson:"fetchedat"`

	Departures     []board.Departure `json:"departures" bson:"departures"`
	StopDeviations []string          `json:"stop_deviations,omitempty" bson:"stopdeviations,omitempty"`
}

func Record(ctx context.Context, entryID string, siteID string, polledBoard *board.Board) error {
	record := BoardRecord{
		EntryID: entryID,
		SiteID:  siteID,
	}

	if err := copier.Copy(&record, polledBoard); err != nil {
		return err
	}

	historyCollection := database.GetCollection(collectionName)
	_, err := historyCollection.InsertOne(ctx, record)

	return err
}

// ForEntry returns the archived boards for an entry, newest first. A zero
// from/to leaves that bound open.
func ForEntry(ctx context.Context, entryID string, from time.Time, to time.Time, limit int64) ([]BoardRecord, error) {
	query := bson.M{"entryid": entryID}

	timeQuery := bson.M{}
	if !from.IsZero() {
		timeQuery["$gte"] = from
	}
	if !to.IsZero() {
		timeQuery["$lte"] = to
	}
	if len(timeQuery) > 0 {
		query["fetchedat"] = timeQuery
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "fetchedat", Value: -1}})
	if limit > 0 {
		findOptions = findOptions.SetLimit(limit)
	}

	historyCollection := database.GetCollection(collectionName)
	cursor, err := historyCollection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}

	records := []BoardRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
