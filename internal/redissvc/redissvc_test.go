package redissvc_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/supplysight/internal/config"
	"github.com/rogerio-castellano/supplysight/internal/redissvc"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	svc, err := redissvc.Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer svc.Close()

	require.NoError(t, svc.Rdb().Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redissvc.Connect(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
