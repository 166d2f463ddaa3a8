package cache

import (
	"context"
	"time"

	"sql-workbench-be/pkg/rowset"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryGateway is an in-process Gateway over go-cache. Used when no
// Redis is configured (single-instance deployments) and by tests.
type MemoryGateway struct {
	store *gocache.Cache
	ttl   time.Duration
}

func NewMemoryGateway(ttl time.Duration) Gateway {
	return &MemoryGateway{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (g *MemoryGateway) Lookup(ctx context.Context, userId uuid.UUID, sqlText string) (*rowset.RowSet, bool) {
	value, found := g.store.Get(Key(userId, sqlText))
	if !found {
		return nil, false
	}

	rs, ok := value.(*rowset.RowSet)
	if !ok {
		return nil, false
	}
	return rs, true
}

func (g *MemoryGateway) Store(ctx context.Context, userId uuid.UUID, sqlText string, rs *rowset.RowSet) {
	g.store.Set(Key(userId, sqlText), rs, g.ttl)
}
