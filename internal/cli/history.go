package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/payload"
	"github.com/dmitrijs2005/qrkeeper/internal/services"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// copyToClipboard is a test seam for clipboard.WriteAll.
var copyToClipboard = clipboard.WriteAll

const previewLen = 50

func (a *App) List(ctx context.Context) error {
	entries := a.history.Entries()
	if len(entries) == 0 {
		a.println("History is empty.")
		return nil
	}
	for i, e := range entries {
		a.printEntry(i+1, e)
	}
	return nil
}

// Search lists Smart entries whose part number contains query. Numbers
// refer to positions in the full list so they work with edit/copy/delete.
func (a *App) Search(ctx context.Context, query string) error {
	entries := a.history.Entries()
	found := services.Search(entries, query)
	if len(found) == 0 {
		a.println("No matching entries.")
		return nil
	}
	for _, f := range found {
		idx := slices.IndexFunc(entries, f.SameAs)
		a.printEntry(idx+1, f)
	}
	return nil
}

func (a *App) printEntry(n int, e models.HistoryEntry) {
	a.printf("%3d. [%s] %s  %s\n     %s\n", n, e.Source, e.Label, e.Timestamp, e.Data)
}

// Edit decodes entry n and runs its generator with the decoded fields as
// defaults. The result is a new entry; the edited entry stays unless merged.
func (a *App) Edit(ctx context.Context, arg string) error {
	e, err := a.entryAt(arg)
	if err != nil {
		return err
	}

	p, err := payload.Decode(e.Source, e.Data)
	if err != nil {
		a.log.Warn(ctx, "entry cannot be edited", "source", e.Source, "error", err)
		a.println("This entry cannot be edited:", err.Error())
		return err
	}

	switch v := p.(type) {
	case payload.Smart:
		err = a.generateSmart(ctx, v)
	case payload.IcBin:
		err = a.generateIcBin(ctx, v)
	case payload.Text:
		err = a.generateText(ctx, v)
	default:
		err = fmt.Errorf("%w: %q", common.ErrUnknownSource, e.Source)
	}
	if err != nil {
		return err
	}

	if latest := a.history.Entries(); len(latest) > 0 {
		a.println("Changes:", changes(e.Data, latest[0].Data))
	}
	return nil
}

// changes renders the edit from before to after as a colored inline diff.
func changes(before, after string) string {
	if before == after {
		return "none"
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))
	return dmp.DiffPrettyText(diffs)
}

func (a *App) Copy(ctx context.Context, arg string) error {
	e, err := a.entryAt(arg)
	if err != nil {
		return err
	}
	return a.copyData(ctx, e.Data)
}

func (a *App) copyData(ctx context.Context, data string) error {
	if err := copyToClipboard(data); err != nil {
		a.log.Warn(ctx, "clipboard write failed", "error", err)
		a.println("Could not copy to clipboard:", err.Error())
		return err
	}
	a.println("Copied to clipboard:", preview(data))
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	e, err := a.entryAt(arg)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", preview(e.Data)), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.history.Delete(ctx, e); err != nil {
		return a.reportWrite(ctx, "delete", err)
	}
	a.println("Deleted.")
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Clear all history?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.history.Clear(ctx); err != nil {
		return a.reportWrite(ctx, "clear", err)
	}
	a.println("History cleared.")
	return nil
}

// Purge drops the stored history key. It asks the same question as Clear.
func (a *App) Purge(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Remove stored history?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.history.Purge(ctx); err != nil {
		return a.reportWrite(ctx, "purge", err)
	}
	a.println("Stored history removed.")
	return nil
}

// reportWrite shows err and returns nil for persistence warnings, since the
// in-memory change stands.
func (a *App) reportWrite(ctx context.Context, op string, err error) error {
	if errors.Is(err, common.ErrPersistence) {
		a.println("Warning: change could not be saved; it is kept for this session.")
		return nil
	}
	a.log.Error(ctx, "history update failed", "op", op, "error", err)
	a.println("Error:", err.Error())
	return err
}

// entryAt resolves a 1-based list position.
func (a *App) entryAt(arg string) (models.HistoryEntry, error) {
	entries := a.history.Entries()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(entries) {
		a.printf("No entry %q; use a number from 'list' (1-%d).\n", arg, len(entries))
		return models.HistoryEntry{}, fmt.Errorf("history entry %q: %w", arg, common.ErrorNotFound)
	}
	return entries[n-1], nil
}

func preview(data string) string {
	r := []rune(data)
	if len(r) <= previewLen {
		return data
	}
	return string(r[:previewLen]) + "..."
}
