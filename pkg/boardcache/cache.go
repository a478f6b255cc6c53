package boardcache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eko/gocache/lib/v4/cache"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/redis_client"
)

// StoredBoard is the last-good board for one entry plus its availability
// state. On fetch failures the previous board is kept and the failure count
// bumped; the board only turns unavailable after repeated consecutive
// failures, so a single bad poll never shows as an empty board.
type StoredBoard struct {
	EntryID string `json:"entry_id"`

	Available           bool `json:"available"`
	ConsecutiveFailures int  `json:"consecutive_failures"`

	Board *board.Board `json:"board,omitempty"`
}

type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client)

	c.Cache = cache.New[string](redisStore)
}

func (c *Cache) Set(ctx context.Context, storedBoard *StoredBoard) error {
	jsonBytes, err := json.Marshal(storedBoard)
	if err != nil {
		return err
	}

	return c.Cache.Set(ctx, cacheKey(storedBoard.EntryID), string(jsonBytes))
}

func (c *Cache) Get(ctx context.Context, entryID string) (*StoredBoard, error) {
	jsonString, err := c.Cache.Get(ctx, cacheKey(entryID))
	if err != nil {
		return nil, err
	}

	var storedBoard StoredBoard
	if err := json.Unmarshal([]byte(jsonString), &storedBoard); err != nil {
		return nil, err
	}

	return &storedBoard, nil
}

func cacheKey(entryID string) string {
	return fmt.Sprintf("board/%s", entryID)
}
