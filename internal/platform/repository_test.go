package platform

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) (*GormStatsRepository, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&PlatformStat{}))
	return NewStatsRepository(gdb), gdb
}

func stamp(minute int) *time.Time {
	ts := time.Date(2025, 5, 4, 10, minute, 0, 0, time.UTC)
	return &ts
}

func TestGormStatsRepository_UpsertKeepsOneRow(t *testing.T) {
	repo, gdb := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.UpsertStats(ctx, &PlatformStat{
		UserID: "u1", Platform: Leetcode, Username: "alice_lc",
		EasySolved: 5, MediumSolved: 3, HardSolved: 1, TotalSolved: 9, UpdatedAt: stamp(0),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := repo.UpsertStats(ctx, &PlatformStat{
		UserID: "u1", Platform: Leetcode, Username: "alice_new",
		EasySolved: 1, TotalSolved: 1, UpdatedAt: stamp(5),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "alice_new", second.Username)
	assert.Equal(t, 0, second.MediumSolved)
	assert.Equal(t, 1, second.TotalSolved)

	var count int64
	require.NoError(t, gdb.Model(&PlatformStat{}).Where("user_id = ? AND platform = ?", "u1", Leetcode).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormStatsRepository_PlatformsAreIndependent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for i, p := range Platforms() {
		_, err := repo.UpsertStats(ctx, &PlatformStat{UserID: "u1", Platform: p, Username: "alice", EasySolved: i, TotalSolved: i, UpdatedAt: stamp(i)})
		require.NoError(t, err)
	}
	_, err := repo.UpsertStats(ctx, &PlatformStat{UserID: "u2", Platform: Leetcode, Username: "bob", HardSolved: 7, TotalSolved: 7, UpdatedAt: stamp(9)})
	require.NoError(t, err)

	all, err := repo.FindAllStats(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	cf, err := repo.FindStats(ctx, "u1", Codeforces)
	require.NoError(t, err)
	assert.Equal(t, 1, cf.TotalSolved)

	bob, err := repo.FindStats(ctx, "u2", Leetcode)
	require.NoError(t, err)
	assert.Equal(t, 7, bob.TotalSolved)
}

func TestGormStatsRepository_FindMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	stat, err := repo.FindStats(context.Background(), "nobody", Hackerrank)
	assert.NoError(t, err)
	assert.Nil(t, stat)
}
