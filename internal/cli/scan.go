package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/scan"
	"github.com/pkg/browser"
)

var errEmptyScan = errors.New("empty scan")

// openURL is a test seam for browser.OpenURL.
var openURL = browser.OpenURL

// Scan reads one scanned string, files it under the detected format, copies
// it and offers to open links.
func (a *App) Scan(ctx context.Context) error {
	raw, err := GetRawText(a.reader, "Paste or scan the code", a.out)
	if err != nil {
		return a.inputFailed(ctx, err)
	}
	if strings.TrimSpace(raw) == "" {
		a.println("Nothing scanned.")
		return errEmptyScan
	}

	res := scan.Classify(raw)
	a.log.Debug(ctx, "scan classified", "source", res.Source, "link", res.LikelyLink)

	if err := a.save(ctx, a.history.NewEntry(res.Source, res.Label(), raw)); err != nil {
		return err
	}
	a.println("Detected:", res.Label())
	_ = a.copyData(ctx, raw)

	if !res.LikelyLink {
		return nil
	}
	ok, err := Confirm(a.reader, "This looks like a link. Open it?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := openURL(raw); err != nil {
		a.log.Warn(ctx, "open link failed", "error", err)
		a.println("Could not open link:", err.Error())
		return err
	}
	return nil
}
