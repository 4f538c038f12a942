package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
	"github.com/BarkinBalci/email-analytics-dashboard/internal/metrics"
)

func TestSnapshotKey(t *testing.T) {
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	r := domain.DateRange{Start: start, End: start.Add(48*time.Hour - time.Nanosecond)}
	opts := metrics.DefaultOptions()

	key := SnapshotKey(r, opts)
	assert.Regexp(t, `^snapshot:2025-03-03T00:00:00Z:2025-03-04T23:59:59Z:[0-9a-f]{16}$`, key)
	assert.Equal(t, key, SnapshotKey(r, opts))
	assert.NotEqual(t, key, SnapshotKey(domain.DateRange{Start: start, End: start}, opts))
}

func TestSnapshotKey_Options(t *testing.T) {
	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	r := domain.DateRange{Start: start, End: start.Add(24*time.Hour - time.Nanosecond)}
	base := metrics.Options{TargetTitles: []string{"CEO", "CTO"}, TopCompanies: 10}

	assert.NotEqual(t, SnapshotKey(r, base), SnapshotKey(r, metrics.Options{TargetTitles: []string{"CEO", "CTO"}, TopCompanies: 5}))
	assert.NotEqual(t, SnapshotKey(r, base), SnapshotKey(r, metrics.Options{TargetTitles: []string{"CEO"}, TopCompanies: 10}))
	assert.NotEqual(t, SnapshotKey(r, base), SnapshotKey(r, metrics.Options{TargetTitles: []string{"CEOCTO"}, TopCompanies: 10}))
	assert.Equal(t, SnapshotKey(r, base), SnapshotKey(r, metrics.Options{TargetTitles: []string{"CTO", "CEO"}, TopCompanies: 10}))
	assert.Equal(t, []string{"CEO", "CTO"}, base.TargetTitles)
}

func TestSnapshotKey_Location(t *testing.T) {
	opts := metrics.DefaultOptions()
	utc := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	fixed := utc.In(time.FixedZone("GMT", 0))

	assert.NotEqual(t,
		SnapshotKey(domain.DateRange{Start: utc, End: utc.Add(time.Hour)}, opts),
		SnapshotKey(domain.DateRange{Start: fixed, End: fixed.Add(time.Hour)}, opts))
}
