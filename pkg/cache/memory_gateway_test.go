package cache

import (
	"context"
	"testing"
	"time"

	"sql-workbench-be/pkg/rowset"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyIsExactText(t *testing.T) {
	userId := uuid.New()

	// whitespace variants are distinct entries on purpose
	assert.NotEqual(t, Key(userId, "SELECT 1"), Key(userId, "SELECT  1"))
	assert.Equal(t, Key(userId, "SELECT 1"), Key(userId, "SELECT 1"))
	assert.NotEqual(t, Key(uuid.New(), "SELECT 1"), Key(userId, "SELECT 1"))
}

func TestMemoryGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	gateway := NewMemoryGateway(5 * time.Minute)
	userId := uuid.New()
	sql := "SELECT * FROM customers LIMIT 10;"

	// repeated misses stay misses
	_, hit := gateway.Lookup(ctx, userId, sql)
	assert.False(t, hit)
	_, hit = gateway.Lookup(ctx, userId, sql)
	assert.False(t, hit)

	rs := &rowset.RowSet{
		Columns: []string{"id", "name"},
		Rows: []rowset.Row{
			{"id": 1, "name": "alice"},
			{"id": 2, "name": "bob"},
		},
	}
	gateway.Store(ctx, userId, sql, rs)

	got, hit := gateway.Lookup(ctx, userId, sql)
	assert.True(t, hit)
	assert.Equal(t, rs.Columns, got.Columns)
	assert.Equal(t, rs.Rows, got.Rows)
}

func TestMemoryGatewayUserIsolation(t *testing.T) {
	ctx := context.Background()
	gateway := NewMemoryGateway(5 * time.Minute)
	sql := "SELECT 1"

	gateway.Store(ctx, uuid.New(), sql, rowset.New([]string{"a"}))

	_, hit := gateway.Lookup(ctx, uuid.New(), sql)
	assert.False(t, hit)
}

func TestMemoryGatewayExpiry(t *testing.T) {
	ctx := context.Background()
	gateway := NewMemoryGateway(10 * time.Millisecond)
	userId := uuid.New()

	gateway.Store(ctx, userId, "SELECT 1", rowset.New([]string{"a"}))
	time.Sleep(30 * time.Millisecond)

	_, hit := gateway.Lookup(ctx, userId, "SELECT 1")
	assert.False(t, hit)
}
