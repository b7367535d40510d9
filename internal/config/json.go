package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/flagx"
	"gopkg.in/yaml.v3"
)

// JsonConfig is a DTO used only for unmarshalling, from JSON or YAML. Pointer
// fields tell an absent key apart from an explicit empty value.
type JsonConfig struct {
	Storage     *string `json:"storage" yaml:"storage"`
	SQLitePath  *string `json:"sqlite_path" yaml:"sqlite_path"`
	PostgresDSN *string `json:"postgres_dsn" yaml:"postgres_dsn"`
	S3Bucket    *string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Prefix    *string `json:"s3_prefix" yaml:"s3_prefix"`
	S3Region    *string `json:"s3_region" yaml:"s3_region"`
	S3Endpoint  *string `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3AccessKey *string `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey *string `json:"s3_secret_key" yaml:"s3_secret_key"`
	HistoryKey  *string `json:"history_key" yaml:"history_key"`
	LogLevel    *string `json:"log_level" yaml:"log_level"`
	LogFormat   *string `json:"log_format" yaml:"log_format"`
	QRDir       *string `json:"qr_dir" yaml:"qr_dir"`
	QRSize      *int    `json:"qr_size" yaml:"qr_size"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Files
// ending in .yaml or .yml are read as YAML. It panics on read or unmarshal
// errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &jc)
	default:
		err = json.Unmarshal(data, &jc)
	}
	if err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&cfg.Storage, jc.Storage)
	set(&cfg.SQLitePath, jc.SQLitePath)
	set(&cfg.PostgresDSN, jc.PostgresDSN)
	set(&cfg.S3Bucket, jc.S3Bucket)
	set(&cfg.S3Prefix, jc.S3Prefix)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3Endpoint, jc.S3Endpoint)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)
	set(&cfg.HistoryKey, jc.HistoryKey)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.QRDir, jc.QRDir)
	if jc.QRSize != nil {
		cfg.QRSize = *jc.QRSize
	}
}
