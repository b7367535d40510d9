// Package qrcode renders payload strings as QR symbols for the terminal or
// as PNG files.
package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	goqr "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length used when a non-positive size is given.
const DefaultSize = 256

// Terminal returns data as a compact block-character QR code.
func Terminal(data string) (string, error) {
	q, err := goqr.New(data, goqr.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}

// WritePNG writes data as <dir>/<uuid>.png and returns the file path. dir is
// created if missing.
func WritePNG(data, dir string, size int) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create qr dir: %w", err)
	}

	q, err := goqr.New(data, goqr.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+".png")
	if err := q.WriteFile(size, path); err != nil {
		return "", fmt.Errorf("write qr png: %w", err)
	}
	return path, nil
}
