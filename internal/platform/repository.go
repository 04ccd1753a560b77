package platform

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository interface {
	FindStats(ctx context.Context, userID string, p Platform) (*PlatformStat, error)
	FindAllStats(ctx context.Context, userID string) ([]PlatformStat, error)
	UpsertStats(ctx context.Context, stat *PlatformStat) (*PlatformStat, error)
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) FindStats(ctx context.Context, userID string, p Platform) (*PlatformStat, error) {
	var stat PlatformStat
	err := r.db.WithContext(ctx).Where("user_id = ? AND platform = ?", userID, p).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find stats: %w", err)
	}
	return &stat, nil
}

func (r *GormStatsRepository) FindAllStats(ctx context.Context, userID string) ([]PlatformStat, error) {
	var stats []PlatformStat
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("find all stats: %w", err)
	}
	return stats, nil
}

// UpsertStats writes the row in a single statement keyed by (user_id, platform).
// Concurrent writers for the same key race; the last one wins.
func (r *GormStatsRepository) UpsertStats(ctx context.Context, stat *PlatformStat) (*PlatformStat, error) {
	row := *stat
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username",
			"easy_solved",
			"medium_solved",
			"hard_solved",
			"total_solved",
			"updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert stats: %w", err)
	}

	stored, err := r.FindStats(ctx, stat.UserID, stat.Platform)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("upsert stats: row for %s/%s missing after write", stat.UserID, stat.Platform)
	}
	return stored, nil
}
