package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gamestore/pkg/logger"
)

func observed(level zapcore.Level) (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.NewWithZap(zap.New(core)), logs
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "production default level", env: logger.Production},
		{name: "development debug", env: logger.Development, level: "debug"},
		{name: "production warn", env: logger.Production, level: "warn"},
		{name: "unknown level", env: logger.Production, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)
	ctx := context.Background()

	log.Debug(ctx, "cart loaded")
	log.Info(ctx, "token refreshed")
	log.Warn(ctx, "refresh slow")
	log.Error(ctx, "refresh rejected", zap.Int("status", 401))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, int64(401), entries[3].ContextMap()["status"])
}

func TestLogger_RequestID(t *testing.T) {
	t.Run("added from context", func(t *testing.T) {
		log, logs := observed(zapcore.InfoLevel)
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")

		log.Info(ctx, "session restored")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-42", logs.All()[0].ContextMap()[logger.RequestID])
	})

	t.Run("absent without id", func(t *testing.T) {
		log, logs := observed(zapcore.InfoLevel)

		log.Info(context.Background(), "session restored")

		require.Equal(t, 1, logs.Len())
		assert.NotContains(t, logs.All()[0].ContextMap(), logger.RequestID)
	})

	t.Run("nil context", func(t *testing.T) {
		log, logs := observed(zapcore.InfoLevel)

		//nolint:staticcheck // проверяем поведение с nil контекстом
		log.Info(nil, "no context")

		assert.Equal(t, 1, logs.Len())
	})
}

func TestLogger_With(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)

	child := log.With(zap.String("component", "refresher"))
	child.Info(context.Background(), "queued")
	log.Info(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "refresher", entries[0].ContextMap()["component"])
	assert.NotContains(t, entries[1].ContextMap(), "component")
}

func TestContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		log, _ := observed(zapcore.InfoLevel)
		ctx := logger.NewContext(context.Background(), log)

		got, err := logger.FromContext(ctx)

		require.NoError(t, err)
		assert.Same(t, log, got)
		assert.Same(t, log, logger.Log(ctx))
	})

	t.Run("missing logger", func(t *testing.T) {
		_, err := logger.FromContext(context.Background())
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // проверяем поведение с nil контекстом
		_, err := logger.FromContext(nil)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLog_Global(t *testing.T) {
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	t.Run("fallback when nothing is set", func(t *testing.T) {
		logger.SetGlobalLogger(nil)
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("global logger", func(t *testing.T) {
		log, logs := observed(zapcore.InfoLevel)
		logger.SetGlobalLogger(log)

		logger.Log(context.Background()).Info(context.Background(), "from global")

		assert.Same(t, log, logger.Log(context.Background()))
		assert.Equal(t, 1, logs.FilterMessage("from global").Len())
	})

	t.Run("context wins over global", func(t *testing.T) {
		global, _ := observed(zapcore.InfoLevel)
		scoped, _ := observed(zapcore.InfoLevel)
		logger.SetGlobalLogger(global)

		assert.Same(t, scoped, logger.Log(logger.NewContext(context.Background(), scoped)))
	})

	t.Run("init keeps an existing logger", func(t *testing.T) {
		existing, _ := observed(zapcore.InfoLevel)
		logger.SetGlobalLogger(existing)

		require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Development, "debug"))

		assert.Same(t, existing, logger.Log(context.Background()))
	})

	t.Run("init rejects unknown level", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		err := logger.InitGlobalLoggerWithLevel(logger.Production, "loud")

		assert.ErrorIs(t, err, logger.ErrInitGlobalLogger)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("keeps given id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-1")

		id, ok := logger.GetRequestID(ctx)

		assert.True(t, ok)
		assert.Equal(t, "req-1", id)
	})

	t.Run("generates empty id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)

		require.True(t, ok)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})

	t.Run("generated ids differ", func(t *testing.T) {
		assert.NotEqual(t, logger.GenerateRequestID(), logger.GenerateRequestID())
	})
}
