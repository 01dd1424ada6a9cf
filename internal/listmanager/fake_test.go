package listmanager

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memCollection is an in-memory types.Collection that assigns ids the way
// the server does.
type memCollection struct {
	mu      sync.Mutex
	records []types.Record
	nextID  int64
	err     error // returned by every call when set

	lists   int
	creates []types.Record
	updates map[int64]types.Record
	deletes []int64
}

func newMemCollection(recs ...types.Record) *memCollection {
	c := &memCollection{nextID: 1, updates: map[int64]types.Record{}}
	for _, r := range recs {
		c.records = append(c.records, r)
		if id, ok := r.ID(); ok && id >= c.nextID {
			c.nextID = id + 1
		}
	}
	return c
}

func (c *memCollection) List(context.Context) ([]types.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists++
	if c.err != nil {
		return nil, c.err
	}
	out := make([]types.Record, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out, nil
}

func (c *memCollection) Create(_ context.Context, rec types.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creates = append(c.creates, rec)
	if c.err != nil {
		return c.err
	}
	stored := rec.Clone()
	stored[types.FieldID] = float64(c.nextID)
	c.nextID++
	c.records = append(c.records, stored)
	return nil
}

func (c *memCollection) Update(_ context.Context, id int64, rec types.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates[id] = rec
	if c.err != nil {
		return c.err
	}
	for i, r := range c.records {
		if rid, _ := r.ID(); rid == id {
			stored := rec.Clone()
			stored[types.FieldID] = float64(id)
			c.records[i] = stored
			return nil
		}
	}
	return types.ErrRecordNotFound
}

func (c *memCollection) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, id)
	if c.err != nil {
		return c.err
	}
	for i, r := range c.records {
		if rid, _ := r.ID(); rid == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return nil
		}
	}
	return types.ErrRecordNotFound
}

func (c *memCollection) listCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists
}

// recorder collects reported errors.
type recorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *recorder) Report(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder) reported() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

// coords builds coordinate records with ids from..to and x = id*1.5.
func coords(from, to int) []types.Record {
	var out []types.Record
	for i := from; i <= to; i++ {
		out = append(out, types.Record{
			"id":        float64(i),
			"creatorId": float64(1),
			"x":         float64(i) * 1.5,
			"y":         float64(100 - i),
		})
	}
	return out
}

func ids(recs []types.Record) []int64 {
	out := make([]int64, 0, len(recs))
	for _, r := range recs {
		id, _ := r.ID()
		out = append(out, id)
	}
	return out
}
