package cli

import (
	"context"

	"github.com/dmitrijs2005/qrkeeper/internal/qrcode"
)

// Test seams for QR output.
var (
	renderTerminal = qrcode.Terminal
	writePNG       = qrcode.WritePNG
)

// render prints data as a QR code and, when a QR directory is configured,
// exports it as PNG. Failures are logged; the entry is already saved.
func (a *App) render(ctx context.Context, data string) {
	art, err := renderTerminal(data)
	if err != nil {
		a.log.Warn(ctx, "qr render failed", "error", err)
	} else {
		a.println(art)
	}
	a.println(data)

	if a.config == nil || a.config.QRDir == "" {
		return
	}
	path, err := writePNG(data, a.config.QRDir, a.config.QRSize)
	if err != nil {
		a.log.Warn(ctx, "qr export failed", "dir", a.config.QRDir, "error", err)
		return
	}
	a.println("Saved", path)
}
