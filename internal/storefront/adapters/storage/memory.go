// Package storage содержит реализации хранилища ключ-значение витрины.
package storage

import (
	"context"
	"sync"

	"gamestore/internal/storefront/ports/storage"
)

// Memory хранит значения в памяти процесса.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory создает пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get возвращает значение по ключу.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

// Set сохраняет значение.
func (m *Memory) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete удаляет значение.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
