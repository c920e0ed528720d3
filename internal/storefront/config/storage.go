package config

// Поддерживаемые хранилища ключ-значение.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// StorageConfig выбирает хранилище токенов и языковых настроек.
type StorageConfig struct {
	Backend   string `yaml:"backend" env:"STOREFRONT_STORAGE_BACKEND" env-default:"file"`
	FilePath  string `yaml:"file_path" env:"STOREFRONT_STORAGE_FILE_PATH" env-default:".gamestore/storage.json"`
	KeyPrefix string `yaml:"key_prefix" env:"STOREFRONT_STORAGE_KEY_PREFIX" env-default:"storefront:"`
}
