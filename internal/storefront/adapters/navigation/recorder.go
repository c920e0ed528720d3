// Package navigation доставляет переходы интерфейсу через ответы шлюза.
package navigation

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"gamestore/internal/storefront/ports/navigation"
	"gamestore/pkg/logger"
)

// LogNavigate - сообщение о переходе.
const LogNavigate = "navigate"

type sinkKey struct{}

// Sink собирает переход, запрошенный во время обработки одного запроса шлюза.
type Sink struct {
	mu     sync.Mutex
	target string
}

// Target возвращает последний запрошенный путь.
func (s *Sink) Target() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *Sink) set(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = path
}

// WithSink привязывает к контексту приемник переходов запроса.
func WithSink(ctx context.Context) (context.Context, *Sink) {
	sink := &Sink{}
	return context.WithValue(ctx, sinkKey{}, sink), sink
}

// Recorder реализует Navigator. Переходы вне запроса (например, по таймеру
// сессии) откладываются до следующего ответа.
type Recorder struct {
	mu      sync.Mutex
	pending string
	history []string
}

var _ navigation.Navigator = (*Recorder)(nil)

// NewRecorder создает навигатор.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Navigate запрашивает переход на path.
func (r *Recorder) Navigate(ctx context.Context, path string) {
	logger.Log(ctx).Info(ctx, LogNavigate, zap.String("path", path))

	r.mu.Lock()
	r.history = append(r.history, path)
	r.mu.Unlock()

	if sink, ok := ctx.Value(sinkKey{}).(*Sink); ok {
		sink.set(path)
		return
	}

	r.mu.Lock()
	r.pending = path
	r.mu.Unlock()
}

// TakePending возвращает и сбрасывает отложенный переход.
func (r *Recorder) TakePending() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	path := r.pending
	r.pending = ""
	return path
}

// History возвращает все запрошенные переходы.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}
