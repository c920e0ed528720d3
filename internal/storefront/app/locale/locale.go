// Package locale хранит выбранный язык интерфейса и переводит строки.
package locale

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"go.uber.org/zap"

	"gamestore/internal/storefront/ports/storage"
	"gamestore/pkg/logger"
)

// Поддерживаемые языки.
const (
	LanguageIndonesian = "id"
	LanguageEnglish    = "en"
)

// Константы для логирования.
const (
	LogLanguageChanged     = "language changed"
	ErrorFailedPersistLang = "failed to persist language"
)

// ErrUnsupportedLanguage возвращается для языка вне id и en.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Locale - текущий язык витрины.
type Locale struct {
	kv storage.KV

	mu   sync.RWMutex
	lang string
}

// New выбирает язык: сохраненный, если он поддерживается, иначе по системному
// языку (id* - индонезийский), иначе английский. Выбор сразу сохраняется.
func New(ctx context.Context, kv storage.KV, systemLanguage string) *Locale {
	l := &Locale{kv: kv, lang: initialLanguage(ctx, kv, systemLanguage)}
	l.persist(ctx, l.lang)
	return l
}

func initialLanguage(ctx context.Context, kv storage.KV, systemLanguage string) string {
	if saved, err := kv.Get(ctx, storage.KeyLanguage); err == nil && Supported(saved) {
		return saved
	}
	if strings.HasPrefix(strings.ToLower(systemLanguage), LanguageIndonesian) {
		return LanguageIndonesian
	}
	return LanguageEnglish
}

// Supported сообщает, поддерживается ли язык.
func Supported(lang string) bool {
	return lang == LanguageIndonesian || lang == LanguageEnglish
}

// Language возвращает текущий язык.
func (l *Locale) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// Change переключает язык и сохраняет выбор.
func (l *Locale) Change(ctx context.Context, lang string) error {
	if !Supported(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()

	l.persist(ctx, lang)
	logger.Log(ctx).Info(ctx, LogLanguageChanged, zap.String("language", lang))
	return nil
}

// T переводит ключ на текущий язык; неизвестный ключ возвращается как есть.
func (l *Locale) T(key string) string {
	return Translate(l.Language(), key)
}

// Dictionary возвращает копию словаря текущего языка.
func (l *Locale) Dictionary() map[string]string {
	return maps.Clone(translations[l.Language()])
}

// Translate переводит ключ на язык lang.
func Translate(lang, key string) string {
	if value, ok := translations[lang][key]; ok && value != "" {
		return value
	}
	return key
}

func (l *Locale) persist(ctx context.Context, lang string) {
	if err := l.kv.Set(ctx, storage.KeyLanguage, lang); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedPersistLang, zap.Error(err))
	}
}
