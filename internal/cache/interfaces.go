package cache

import (
	"context"
	"fmt"
	"hash/fnv"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/metrics"
)

// SnapshotCache memoizes serialized snapshots for a fixed duration
type SnapshotCache interface {
	// Get returns the cached value and whether it was found
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key until the cache TTL elapses
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the cache resources
	Close() error
}

// SnapshotKey derives the cache key of a snapshot query. Snapshots computed
// with different metric options or in a different location never share a key.
func SnapshotKey(r domain.DateRange, opts metrics.Options) string {
	return fmt.Sprintf("snapshot:%s:%s:%016x",
		r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339), optionsHash(r.Start.Location(), opts))
}

// optionsHash is independent of the order of the target titles
func optionsHash(loc *time.Location, opts metrics.Options) uint64 {
	titles := slices.Clone(opts.TargetTitles)
	slices.Sort(titles)

	h := fnv.New64a()
	_, _ = h.Write([]byte(loc.String()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.Join(titles, "\x1f")))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(opts.TopCompanies)))
	return h.Sum64()
}
