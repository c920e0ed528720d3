package session

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogMonitorStarted = "session monitor started"
	LogMonitorStopped = "session monitor stopped"
)

// Monitor периодически проверяет срок действия access-токена.
type Monitor struct {
	cron     *cron.Cron
	session  *Session
	interval time.Duration
}

// NewMonitor создает монитор, проверяющий сессию каждые interval.
func NewMonitor(session *Session, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Monitor{
		cron:     cron.New(),
		session:  session,
		interval: interval,
	}
}

// Start запускает проверки. Логгер и значения ctx переходят в каждую проверку.
func (m *Monitor) Start(ctx context.Context) {
	jobCtx := context.WithoutCancel(ctx)
	m.cron.Schedule(cron.Every(m.interval), cron.FuncJob(func() {
		m.session.Check(jobCtx)
	}))
	m.cron.Start()
	logger.Log(ctx).Info(ctx, LogMonitorStarted, zap.Duration("interval", m.interval))
}

// Stop останавливает планировщик и дожидается текущей проверки.
func (m *Monitor) Stop(ctx context.Context) error {
	done := m.cron.Stop()
	select {
	case <-done.Done():
		logger.Log(ctx).Info(ctx, LogMonitorStopped)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
