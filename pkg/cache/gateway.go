package cache

import (
	"context"
	"fmt"

	"sql-workbench-be/pkg/rowset"

	"github.com/google/uuid"
)

// Gateway memoizes query result sets keyed by (user, exact query text).
// A lookup miss and a backend failure are indistinguishable to callers:
// both return (nil, false). Store failures are logged and swallowed, so
// a cache outage degrades to always-miss and never fails a request.
type Gateway interface {
	Lookup(ctx context.Context, userId uuid.UUID, sqlText string) (*rowset.RowSet, bool)
	Store(ctx context.Context, userId uuid.UUID, sqlText string, rs *rowset.RowSet)
}

// Key derives the cache key from the exact, original-case query text.
// Textually different but semantically identical queries get distinct
// entries; the key says nothing about table contents, so an entry can go
// stale within the TTL window.
func Key(userId uuid.UUID, sqlText string) string {
	return fmt.Sprintf("query:%s:%s", userId, sqlText)
}
