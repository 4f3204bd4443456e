package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"concertflow/pkg/concert"
)

func newTestRepository(t *testing.T) (*Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client), mr
}

func TestRepository(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, concert.Concert{ID: 7, Title: "Jazz Night", Date: date})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected id 1, got %d", first.ID)
	}
	if _, err := repo.Create(ctx, concert.Concert{Title: "Rock Fest", Date: date}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Jazz Night" || !got.Date.Equal(date) {
		t.Fatalf("unexpected concert: %+v", got)
	}
	if _, err := repo.Get(ctx, 7); !errors.Is(err, concert.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := repo.Range(ctx, 2, 10)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Rock Fest" {
		t.Fatalf("unexpected range: %+v", list)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if mr.Exists(dataKey) || mr.Exists(idsKey) {
		t.Fatal("concert keys survived DeleteAll")
	}
	if seq, _ := mr.Get(seqKey); seq != "2" {
		t.Fatalf("expected sequence 2, got %q", seq)
	}
	list, err = repo.Range(ctx, 0, 10)
	if err != nil || len(list) != 0 {
		t.Fatalf("range after delete: %v len=%d", err, len(list))
	}
	next, err := repo.Create(ctx, concert.Concert{Title: "Encore"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.ID != 3 {
		t.Fatalf("expected id 3, got %d", next.ID)
	}
}

func TestRangeOrderAndLimit(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		if _, err := repo.Create(ctx, concert.Concert{Title: "c"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.Range(ctx, 3, 5)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 items, got %d", len(list))
	}
	for i, c := range list {
		if want := int64(3 + i); c.ID != want {
			t.Fatalf("item %d: expected id %d, got %d", i, want, c.ID)
		}
	}

	empty, err := repo.Range(ctx, 1, 0)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("zero size: %v %v", err, empty)
	}
}

func TestConcurrentCreate(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	const n = 50

	var (
		mu   sync.Mutex
		seen = make(map[int64]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.Create(ctx, concert.Concert{Title: "load"})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[c.ID] {
				t.Errorf("duplicate id %d", c.ID)
			}
			seen[c.ID] = true
		}()
	}
	wg.Wait()
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
}

func TestUnavailable(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Close()
	if _, err := repo.Create(context.Background(), concert.Concert{Title: "x"}); err == nil {
		t.Fatal("expected error with redis down")
	}
}
