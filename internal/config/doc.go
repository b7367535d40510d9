// Package config loads runtime configuration for the qrkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON (or .yaml/.yml) file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string          storage backend: sqlite, postgres, s3, memory
//	-db string         SQLite database file
//	-pg string         PostgreSQL DSN
//	-bucket string     S3 bucket
//	-k string          history slot key
//	-log-level string  debug, info, warn, error
//	-qr-dir string     directory for exported PNG codes
//
// # JSON schema
//
//	{
//	  "storage": "s3",
//	  "s3_bucket": "qr",
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minio",
//	  "s3_secret_key": "minio123",
//	  "log_level": "debug"
//	}
//
// YAML files use the same keys. Only keys present in the file override
// defaults.
package config
