package platform

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) FindStats(ctx context.Context, userID string, p Platform) (*PlatformStat, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlatformStat), args.Error(1)
}

func (m *MockStatsRepository) FindAllStats(ctx context.Context, userID string) ([]PlatformStat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlatformStat), args.Error(1)
}

func (m *MockStatsRepository) UpsertStats(ctx context.Context, stat *PlatformStat) (*PlatformStat, error) {
	args := m.Called(ctx, stat)
	if fn, ok := args.Get(0).(func(context.Context, *PlatformStat) *PlatformStat); ok {
		return fn(ctx, stat), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlatformStat), args.Error(1)
}
