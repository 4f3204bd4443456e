// Package redis stores concerts in Redis so several API processes can share
// one collection.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"concertflow/pkg/concert"
)

const (
	seqKey  = "concerts:seq"
	idsKey  = "concerts:ids"
	dataKey = "concerts:data"
)

// Repository persists concerts in Redis. IDs come from INCR on seqKey, which
// DeleteAll leaves untouched.
type Repository struct {
	client *goredis.Client
}

// New creates a Redis repository.
func New(client *goredis.Client) *Repository {
	return &Repository{client: client}
}

// Create assigns the next ID and stores the concert.
func (r *Repository) Create(ctx context.Context, c concert.Concert) (concert.Concert, error) {
	id, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return concert.Concert{}, fmt.Errorf("next id: %w", err)
	}
	stored := concert.Concert{ID: id, Title: c.Title, Date: c.Date}
	val, err := json.Marshal(stored)
	if err != nil {
		return concert.Concert{}, err
	}

	field := strconv.FormatInt(id, 10)
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, dataKey, field, val)
		pipe.ZAdd(ctx, idsKey, goredis.Z{Score: float64(id), Member: field})
		return nil
	})
	if err != nil {
		return concert.Concert{}, fmt.Errorf("store concert %d: %w", id, err)
	}
	return stored, nil
}

// Get retrieves a concert by ID.
func (r *Repository) Get(ctx context.Context, id int64) (concert.Concert, error) {
	val, err := r.client.HGet(ctx, dataKey, strconv.FormatInt(id, 10)).Result()
	if errors.Is(err, goredis.Nil) {
		return concert.Concert{}, concert.ErrNotFound
	}
	if err != nil {
		return concert.Concert{}, err
	}
	var c concert.Concert
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return concert.Concert{}, err
	}
	return c, nil
}

// Range returns up to size concerts with ID >= start, ordered by ID.
func (r *Repository) Range(ctx context.Context, start int64, size int) (concert.Concerts, error) {
	out := concert.Concerts{}
	if size <= 0 {
		return out, nil
	}
	fields, err := r.client.ZRangeByScore(ctx, idsKey, &goredis.ZRangeBy{
		Min:   strconv.FormatInt(start, 10),
		Max:   "+inf",
		Count: int64(size),
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return out, nil
	}
	vals, err := r.client.HMGet(ctx, dataKey, fields...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		// A concurrent DeleteAll can remove data between the two reads.
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c concert.Concert
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// DeleteAll removes every concert in a single command.
func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.client.Del(ctx, dataKey, idsKey).Err()
}
