package dashboard

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/CodingTracker/internal/platform"
)

func TestDailyStore_KeyedByDay(t *testing.T) {
	store := NewDailyStore(filepath.Join(t.TempDir(), "state", "daily.json"))
	day := time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local)
	store.now = func() time.Time { return day }

	status, err := store.Today()
	require.NoError(t, err)
	assert.Empty(t, status)

	for _, p := range platform.Platforms()[:3] {
		_, err := store.Mark(p, true)
		require.NoError(t, err)
	}
	status, err = store.Today()
	require.NoError(t, err)
	assert.False(t, status.AllDone())

	status, err = store.Mark(platform.Hackerrank, true)
	require.NoError(t, err)
	assert.True(t, status.AllDone())

	store.now = func() time.Time { return day.Add(24 * time.Hour) }
	status, err = store.Today()
	require.NoError(t, err)
	assert.False(t, status.AllDone())
	assert.Empty(t, status)
}

func TestDailyKey(t *testing.T) {
	assert.Equal(t, "dailyStatus-Mon Jun 02 2025", dailyKey(time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)))
}
