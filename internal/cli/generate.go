package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/payload"
)

var errEmptyText = errors.New("empty text")

func (a *App) Text(ctx context.Context) error {
	return a.generateText(ctx, payload.Text{})
}

func (a *App) Smart(ctx context.Context) error {
	return a.generateSmart(ctx, payload.Smart{})
}

func (a *App) IcBin(ctx context.Context) error {
	return a.generateIcBin(ctx, payload.IcBin{})
}

func (a *App) generateText(ctx context.Context, def payload.Text) error {
	prompt := "Enter text or URL"
	if def.Value != "" {
		prompt += " (empty line keeps the current text)"
	}
	text, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return a.inputFailed(ctx, err)
	}
	if text == "" {
		text = def.Value
	}
	if text == "" {
		a.println("Please enter some text to encode.")
		return errEmptyText
	}
	return a.emit(ctx, payload.Text{Value: text}, models.LabelText)
}

func (a *App) generateSmart(ctx context.Context, def payload.Smart) error {
	if def.LotDate == "" {
		def.LotDate = payload.LotDate(a.now())
	}

	var s payload.Smart
	fields := []struct {
		prompt string
		def    string
		dst    *string
		clean  func(string) string
	}{
		{"ID code", def.IDCode, &s.IDCode, strings.ToUpper},
		{"Part number", def.PartNumber, &s.PartNumber, strings.ToUpper},
		{"Lot prefix (4 digits)", def.LotPrefix, &s.LotPrefix, func(v string) string { return payload.ClampDigits(v, 4) }},
		{"Lot date (YYMMDD)", def.LotDate, &s.LotDate, func(v string) string { return payload.ClampDigits(v, 6) }},
		{"Quantity", def.Quantity, &s.Quantity, strings.TrimSpace},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return a.inputFailed(ctx, err)
		}
		*f.dst = f.clean(v)
	}

	if err := s.Validate(); err != nil {
		a.reportInvalid(err)
		return err
	}
	return a.emit(ctx, s, models.LabelSmart)
}

func (a *App) generateIcBin(ctx context.Context, def payload.IcBin) error {
	if def.Date == "" {
		def.Date = payload.ShipDate(a.now())
	}

	code := func(v string) string { return strings.ToUpper(payload.AlnumDashUnderscore(v)) }

	var b payload.IcBin
	fields := []struct {
		prompt string
		def    string
		dst    *string
		clean  func(string) string
	}{
		{"Device (left)", def.DeviceLeft, &b.DeviceLeft, code},
		{"Device (right)", def.DeviceRight, &b.DeviceRight, code},
		{"ERP code", def.ERP, &b.ERP, code},
		{"Marking", def.Marking, &b.Marking, code},
		{"Quantity", def.Quantity, &b.Quantity, payload.DigitsOnly},
		{"Test program (left)", def.TestProgramLeft, &b.TestProgramLeft, code},
		{"Test program (right)", def.TestProgramRight, &b.TestProgramRight, code},
		{"Bin", def.Bin, &b.Bin, func(v string) string { return payload.ClampDigits(v, 3) }},
		{"Ship date (YYYY-MM-DD)", def.Date, &b.Date, payload.DateChars},
		{"Serial number (optional)", def.Serial, &b.Serial, code},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return a.inputFailed(ctx, err)
		}
		*f.dst = f.clean(v)
	}

	return a.emit(ctx, b, models.LabelIcBin)
}

// emit encodes p, saves it to history and renders the code. A failed history
// write is reported but does not stop rendering.
func (a *App) emit(ctx context.Context, p payload.Payload, label string) error {
	data, err := p.Encode()
	if err != nil {
		a.reportInvalid(err)
		return err
	}

	entry := a.history.NewEntry(p.Source(), label, data)
	if err := a.save(ctx, entry); err != nil {
		return err
	}

	a.render(ctx, data)
	return nil
}

// save appends entry. Persistence warnings are shown and swallowed.
func (a *App) save(ctx context.Context, entry models.HistoryEntry) error {
	err := a.history.Append(ctx, entry)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrPersistence):
		a.println("Warning: history could not be saved; it is kept for this session.")
		return nil
	default:
		a.log.Error(ctx, "saving entry failed", "source", entry.Source, "error", err)
		a.println("Error:", err.Error())
		return err
	}
}

// reportInvalid prints a validation message prefixed with the offending field.
func (a *App) reportInvalid(err error) {
	if field := payload.FieldOf(err); field != "" {
		a.printf("[%s] %s\n", field, err.Error())
		return
	}
	a.println(err.Error())
}

func (a *App) inputFailed(ctx context.Context, err error) error {
	a.log.Debug(ctx, "input aborted", "error", err)
	a.println()
	return err
}
