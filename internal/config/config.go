package config

import "os"

// Storage backends accepted by Config.Storage.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
	StorageMemory   = "memory"
)

// DefaultHistoryKey is the slot that holds the serialized history.
const DefaultHistoryKey = "qrHistory"

// Config holds runtime settings for the qrkeeper CLI.
type Config struct {
	Storage     string
	SQLitePath  string
	PostgresDSN string

	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	HistoryKey string

	LogLevel  string
	LogFormat string

	// QRDir receives PNG exports; QRSize is their edge length in pixels.
	QRDir  string
	QRSize int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = StorageSQLite
	c.SQLitePath = "qrkeeper.db"
	c.S3Region = "us-east-1"
	c.HistoryKey = DefaultHistoryKey
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.QRDir = "qr"
	c.QRSize = 256
}

// LoadConfig constructs a Config from defaults, then the JSON file (if
// any), then command-line flags. Malformed input panics, as the process
// cannot start without a usable configuration.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
