package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/CodingTracker/internal/config"
)

func TestOpen_SQLite(t *testing.T) {
	gdb, err := Open(&config.Config{DBDriver: "sqlite", SQLitePath: "file::memory:"})
	require.NoError(t, err)
	assert.NoError(t, Ping(context.Background(), gdb))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "mongo"})
	assert.Error(t, err)
}
