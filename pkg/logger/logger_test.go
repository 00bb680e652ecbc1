package logger_test

import (
	"context"
	"testing"

	"campaigner/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestSetup_LevelOverride(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "warn")
	require.False(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment, "debug")
	require.True(t, logger.IsDebug(context.Background()))

	// unknown level keeps the environment default
	logger.Setup(logger.DevelopmentEnvironment, "chatty")
	require.True(t, logger.IsDebug(context.Background()))
}

func TestGetAndWithLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	custom := zap.NewNop()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
	require.NotEqual(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("userID", "u-1"))
	logger.Info(ctx, "estimated", zap.Int("opens", 220))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "estimated", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "u-1", fields["userID"])
	require.EqualValues(t, 220, fields["opens"])
}

func TestLevelsFilter(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 2, logs.Len())
	require.False(t, logger.IsDebug(ctx))
}
