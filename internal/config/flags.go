package config

import (
	"flag"

	"github.com/dmitrijs2005/qrkeeper/internal/flagx"
)

var knownFlags = []string{"s", "db", "pg", "bucket", "k", "log-level", "qr-dir"}

// parseFlags populates cfg from the flags it knows about in args. Other
// arguments are filtered out with flagx.FilterArgs first. It panics when a
// known flag is malformed.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("qrkeeper", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite, postgres, s3, memory")
	fs.StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "SQLite database file")
	fs.StringVar(&cfg.PostgresDSN, "pg", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.S3Bucket, "bucket", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.HistoryKey, "k", cfg.HistoryKey, "history slot key")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.QRDir, "qr-dir", cfg.QRDir, "directory for PNG exports")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}
}
