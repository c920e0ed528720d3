package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gamestore/internal/storefront/ports/storage"
)

// Константы ошибок файлового хранилища.
const (
	ErrorFailedReadFile   = "failed to read storage file"
	ErrorFailedParseFile  = "failed to parse storage file"
	ErrorFailedWriteFile  = "failed to write storage file"
	ErrorFailedCreateDirs = "failed to create storage directory"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// File хранит все ключи одним JSON-объектом в файле. Запись идет через
// временный файл и переименование.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile создает хранилище в файле path. Файл создается при первой записи.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedCreateDirs, err)
	}
	return &File{path: path}, nil
}

// Get возвращает значение по ключу.
func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

// Set сохраняет значение.
func (f *File) Set(_ context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		values = make(map[string]string)
	}
	values[key] = value
	return f.write(values)
}

// Delete удаляет значение.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		values = make(map[string]string)
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.write(values)
}

func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("%s: %w", ErrorFailedReadFile, err)
	}
	if len(data) == 0 {
		return make(map[string]string), nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedParseFile, err)
	}
	return values, nil
}

func (f *File) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedWriteFile, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedWriteFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrorFailedWriteFile, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrorFailedWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrorFailedWriteFile, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrorFailedWriteFile, err)
	}
	return nil
}
