package api

import "time"

// Результаты обновления токена для метрик.
const (
	RefreshSuccess       = "success"
	RefreshFailure       = "failure"
	RefreshNoCredentials = "no_credentials"
	RefreshReplayed      = "replayed"
)

// Observer получает метрики клиента API.
type Observer interface {
	ObserveRequest(method string, status int, duration time.Duration)

	ObserveRefresh(result string)

	ObserveWaiter()
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(string, int, time.Duration) {}

func (nopObserver) ObserveRefresh(string) {}

func (nopObserver) ObserveWaiter() {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
