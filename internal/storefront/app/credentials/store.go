// Package credentials хранит пару токенов сессии.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/storage"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogMalformedPair   = "stored token pair is malformed, treating as absent"
	LogStorageReadFail = "token storage read failed, treating as absent"

	ErrorFailedEncode = "failed to encode token pair"
	ErrorFailedSave   = "failed to save token pair"
	ErrorFailedClear  = "failed to clear token pair"
)

// ErrEmptyPair возвращается при попытке сохранить пару без access-токена.
var ErrEmptyPair = errors.New("token pair has no access token")

// Store хранит пару токенов под единственным ключом authTokens.
type Store struct {
	kv storage.KV
}

// NewStore создает хранилище поверх kv.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Save перезаписывает сохраненную пару.
func (s *Store) Save(ctx context.Context, pair *entities.TokenPair) error {
	if pair == nil || pair.Access == "" {
		return ErrEmptyPair
	}

	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedEncode, err)
	}
	if err := s.kv.Set(ctx, storage.KeyAuthTokens, string(data)); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedSave, err)
	}
	return nil
}

// Load возвращает сохраненную пару. Отсутствующее, поврежденное или
// нечитаемое значение означает отсутствие пары.
func (s *Store) Load(ctx context.Context) (*entities.TokenPair, bool) {
	raw, err := s.kv.Get(ctx, storage.KeyAuthTokens)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Log(ctx).Warn(ctx, LogStorageReadFail, zap.Error(err))
		}
		return nil, false
	}

	var pair entities.TokenPair
	if err := json.Unmarshal([]byte(raw), &pair); err != nil || pair.Access == "" {
		logger.Log(ctx).Warn(ctx, LogMalformedPair)
		return nil, false
	}
	return &pair, true
}

// Clear удаляет сохраненную пару.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyAuthTokens); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", ErrorFailedClear, err)
	}
	return nil
}
