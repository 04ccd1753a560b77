package platform

import (
	"context"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thesrcielos/CodingTracker/internal/apperrors"
	"github.com/thesrcielos/CodingTracker/internal/user"
)

type StatsService struct {
	repo StatsRepository
	now  func() time.Time
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

// GetStats never reports a missing row: callers without a submission get zeros.
func (s *StatsService) GetStats(ctx context.Context, caller *user.Identity, p Platform) (*PlatformStat, error) {
	stat, err := s.repo.FindStats(ctx, caller.ID, p)
	if err != nil {
		return nil, apperrors.Internal("Fetch error", err)
	}
	if stat == nil {
		return defaultStat(caller, p), nil
	}
	return stat, nil
}

// UpsertStats replaces all counters; absent counters are stored as 0.
func (s *StatsService) UpsertStats(ctx context.Context, caller *user.Identity, p Platform, req StatsRequest) (*PlatformStat, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.BadRequest("username is required")
	}

	easy, medium, hard := valueOrZero(req.EasySolved), valueOrZero(req.MediumSolved), valueOrZero(req.HardSolved)
	if easy < 0 || medium < 0 || hard < 0 {
		return nil, apperrors.BadRequest("solved counts must not be negative")
	}
	if easy > math.MaxInt-medium || easy+medium > math.MaxInt-hard {
		return nil, apperrors.BadRequest("solved counts are too large")
	}

	now := s.now().UTC()
	stat := &PlatformStat{
		UserID:       caller.ID,
		Platform:     p,
		Username:     username,
		EasySolved:   easy,
		MediumSolved: medium,
		HardSolved:   hard,
		TotalSolved:  easy + medium + hard,
		UpdatedAt:    &now,
	}

	saved, err := s.repo.UpsertStats(ctx, stat)
	if err != nil {
		return nil, apperrors.Internal("Save error", err).Exposed()
	}
	log.WithFields(log.Fields{
		"platform": p,
		"user":     caller.Username,
		"total":    saved.TotalSolved,
	}).Info("stats saved")
	return saved, nil
}

func (s *StatsService) Summary(ctx context.Context, caller *user.Identity) (*Summary, error) {
	rows, err := s.repo.FindAllStats(ctx, caller.ID)
	if err != nil {
		return nil, apperrors.Internal("Fetch error", err)
	}

	byPlatform := make(map[Platform]PlatformStat, len(rows))
	for _, row := range rows {
		byPlatform[row.Platform] = row
	}

	summary := &Summary{Username: caller.Username, Platforms: make([]PlatformStat, 0, len(Platforms()))}
	for _, p := range Platforms() {
		stat, ok := byPlatform[p]
		if !ok {
			stat = *defaultStat(caller, p)
		}
		summary.Platforms = append(summary.Platforms, stat)
		summary.TotalSolved += stat.TotalSolved
	}
	return summary, nil
}

func defaultStat(caller *user.Identity, p Platform) *PlatformStat {
	return &PlatformStat{
		UserID:   caller.ID,
		Platform: p,
		Username: caller.Username,
	}
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
