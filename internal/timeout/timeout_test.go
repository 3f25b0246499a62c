package timeout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

func TestRunReturnsResult(t *testing.T) {
	got, err := Run(context.Background(), time.Second, "op", func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestRunPropagatesError(t *testing.T) {
	want := model.InvalidArgumentf("boom")
	_, err := Run(context.Background(), time.Second, "op", func(context.Context) (int, error) {
		return 0, want
	})
	require.Same(t, want, err)
}

func TestRunTimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	start := time.Now()
	_, err := Run(context.Background(), 20*time.Millisecond, "slow op", func(context.Context) (int, error) {
		<-block
		return 0, nil
	})
	require.True(t, model.IsKind(err, model.FaultNetworkTimeout))
	require.Contains(t, err.Error(), "slow op")
	require.Less(t, time.Since(start), time.Second)
}
