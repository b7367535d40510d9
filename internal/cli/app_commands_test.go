package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrkeeper/internal/blobs"
	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/config"
	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

var testNow = time.Date(2025, 5, 15, 9, 30, 0, 0, time.UTC)

type seams struct {
	copied  []string
	opened  []string
	pngs    []string
	copyErr error
}

func stubSeams(t *testing.T) *seams {
	t.Helper()
	s := &seams{}

	origCopy, origOpen, origRender, origPNG := copyToClipboard, openURL, renderTerminal, writePNG
	copyToClipboard = func(text string) error {
		if s.copyErr != nil {
			return s.copyErr
		}
		s.copied = append(s.copied, text)
		return nil
	}
	openURL = func(url string) error { s.opened = append(s.opened, url); return nil }
	renderTerminal = func(data string) (string, error) { return "[qr]", nil }
	writePNG = func(data, dir string, size int) (string, error) {
		s.pngs = append(s.pngs, data)
		return dir + "/x.png", nil
	}
	t.Cleanup(func() {
		copyToClipboard, openURL, renderTerminal, writePNG = origCopy, origOpen, origRender, origPNG
	})
	return s
}

func newTestApp(t *testing.T, repo blobs.Repository, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	if repo == nil {
		repo = blobs.NewMemoryRepository()
	}
	svc := services.NewHistoryService(repo, config.DefaultHistoryKey, logging.Discard())
	require.NoError(t, svc.Load(context.Background()))

	var out bytes.Buffer
	return &App{
		config:  &config.Config{},
		history: svc,
		log:     logging.Discard(),
		reader:  bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n")),
		out:     &out,
		now:     func() time.Time { return testNow },
	}, &out
}

func seed(t *testing.T, a *App, source models.Source, label, data string) {
	t.Helper()
	require.NoError(t, a.history.Append(context.Background(), a.history.NewEntry(source, label, data)))
}

type brokenRepo struct{ blobs.Repository }

func (brokenRepo) Set(context.Context, string, []byte) error { return errors.New("read-only") }

// ------------ generators ------------

func TestText_SavesAndRenders(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, nil, "https://example.com")

	require.NoError(t, a.Text(context.Background()))

	got := a.history.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, models.SourceText, got[0].Source)
	assert.Equal(t, models.LabelText, got[0].Label)
	assert.Equal(t, "https://example.com", got[0].Data)
	assert.Contains(t, out.String(), "[qr]")
}

func TestText_KeepsEveryLine(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "line one", "line two", "", "list")

	require.NoError(t, a.Text(context.Background()))

	got := a.history.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, "line one\nline two", got[0].Data)

	rest, err := a.reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "list\n", rest, "input after the blank line is left for the REPL")
}

func TestText_EmptyIsRejected(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "")

	require.Error(t, a.Text(context.Background()))
	assert.Empty(t, a.history.Entries())
}

func TestSmart_SanitizesAndEncodes(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "cn1", "c1023", "18a11x", "", "3000")

	require.NoError(t, a.Smart(context.Background()))

	got := a.history.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, "CN1,C1023,1811-250515,3000", got[0].Data)
	assert.Equal(t, models.SourceSmart, got[0].Source)
}

func TestSmart_ValidationStopsBeforeSaving(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, nil, "CN1", "C1023", "18", "250515", "3000")

	err := a.Smart(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, a.history.Entries())
	assert.Contains(t, out.String(), "[lotPrefix] Please enter a 4-digit lot prefix.")
}

func TestIcBin_EncodesWithDefaults(t *testing.T) {
	s := stubSeams(t)
	a, _ := newTestApp(t, nil,
		"btd24d3", "fv1206", "c0b24d32a", "c0b24d32afg1", "3,000",
		"btd24d3", "fv1206", "4851", "", "")
	a.config.QRDir = "out"

	require.NoError(t, a.IcBin(context.Background()))

	got := a.history.Entries()
	require.Len(t, got, 1)
	want := "BTD24D3-FV1206/C0B24D32A/C0B24D32AFG1/3000/BTD24D3_FV1206/485/2025-05-15"
	assert.Equal(t, want, got[0].Data)
	assert.Equal(t, []string{want}, s.pngs)
}

func TestIcBin_MissingFieldIsValidationError(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, nil, "BTD24D3", "", "", "", "", "", "", "", "", "")

	require.ErrorIs(t, a.IcBin(context.Background()), common.ErrValidation)
	assert.Contains(t, out.String(), "Please fill both halves of the Device field.")
}

func TestGenerate_PersistenceWarningIsNotFatal(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, brokenRepo{blobs.NewMemoryRepository()}, "hello")

	require.NoError(t, a.Text(context.Background()))
	assert.Len(t, a.history.Entries(), 1)
	assert.Contains(t, out.String(), "Warning: history could not be saved")
}

// ------------ edit ------------

func TestEdit_SmartPrefillsFields(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, nil, "", "C2000", "", "", "")
	seed(t, a, models.SourceSmart, models.LabelSmart, "CN1,C1023,1811-240101,3000")

	require.NoError(t, a.Edit(context.Background(), "1"))

	got := a.history.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "CN1,C2000,1811-240101,3000", got[0].Data)
	assert.Contains(t, out.String(), "Part number [C1023]")
	assert.Contains(t, out.String(), "Changes:")
}

func TestEdit_IcBinMergesIntoSameLot(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "", "", "", "", "1500", "", "", "", "", "")
	seed(t, a, models.SourceIcBin, models.LabelIcBin,
		"BTD24D3-FV1206/C0B24D32A/C0B24D32AFG1/3000/BTD24D3_FV1206/485/2025-05-15/FML1")
	seed(t, a, models.SourceText, models.LabelText, "newer")

	require.NoError(t, a.Edit(context.Background(), "2"))

	got := a.history.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "BTD24D3-FV1206/C0B24D32A/C0B24D32AFG1/1500/BTD24D3_FV1206/485/2025-05-15/FML1", got[0].Data)
	assert.Equal(t, "newer", got[1].Data)
}

func TestEdit_TextUsesWholeString(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "")
	seed(t, a, models.SourceText, models.LabelText, "a,b,c")

	require.NoError(t, a.Edit(context.Background(), "1"))
	assert.Equal(t, "a,b,c", a.history.Entries()[0].Data)
}

func TestEdit_BadIndex(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, nil)

	require.ErrorIs(t, a.Edit(context.Background(), "7"), common.ErrorNotFound)
	assert.Contains(t, out.String(), "No entry \"7\"")
}

// ------------ scan ------------

func TestScan_ClassifiesSavesAndCopies(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		source models.Source
		label  string
	}{
		{"ic bin", "BTD24D3-FV1206/C0B24D32A/M/3000/P_Q/485/2025-05-15", models.SourceIcBin, models.LabelScannedIcBin},
		{"smart", "CN1,C1023,1811-250515,3000", models.SourceSmart, models.LabelScannedSmart},
		{"text", "just words", models.SourceText, models.LabelScannedText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stubSeams(t)
			a, _ := newTestApp(t, nil, tt.raw)

			require.NoError(t, a.Scan(context.Background()))

			got := a.history.Entries()
			require.Len(t, got, 1)
			assert.Equal(t, tt.source, got[0].Source)
			assert.Equal(t, tt.label, got[0].Label)
			assert.Equal(t, []string{tt.raw}, s.copied)
			assert.Empty(t, s.opened)
		})
	}
}

func TestScan_OffersToOpenLinks(t *testing.T) {
	s := stubSeams(t)
	a, _ := newTestApp(t, nil, "www.example.com", "y")

	require.NoError(t, a.Scan(context.Background()))
	assert.Equal(t, []string{"www.example.com"}, s.opened)

	s2 := stubSeams(t)
	b, _ := newTestApp(t, nil, "https://example.com", "n")
	require.NoError(t, b.Scan(context.Background()))
	assert.Empty(t, s2.opened)
}

func TestScan_KeepsSurroundingSpaces(t *testing.T) {
	s := stubSeams(t)
	a, _ := newTestApp(t, nil, "  padded text \t")

	require.NoError(t, a.Scan(context.Background()))

	got := a.history.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, "  padded text \t", got[0].Data)
	assert.Equal(t, []string{"  padded text \t"}, s.copied)
}

func TestScan_Empty(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "   ")

	require.ErrorIs(t, a.Scan(context.Background()), errEmptyScan)
	assert.Empty(t, a.history.Entries())
}

// ------------ history commands ------------

func TestListAndSearch(t *testing.T) {
	stubSeams(t)
	a, out := newTestApp(t, nil)
	seed(t, a, models.SourceSmart, models.LabelSmart, "CN1,C1023,1811-250515,3000")
	seed(t, a, models.SourceText, models.LabelText, "C1023 note")

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "1. [gtext]")
	assert.Contains(t, out.String(), "2. [gsmart]")

	out.Reset()
	require.NoError(t, a.Search(context.Background(), "c1023"))
	assert.Contains(t, out.String(), "2. [gsmart]")
	assert.NotContains(t, out.String(), "gtext")
}

func TestList_Empty(t *testing.T) {
	a, out := newTestApp(t, nil)
	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "History is empty.")
}

func TestCopy_PreviewTruncates(t *testing.T) {
	s := stubSeams(t)
	a, out := newTestApp(t, nil)
	long := strings.Repeat("x", 60)
	seed(t, a, models.SourceText, models.LabelText, long)

	require.NoError(t, a.Copy(context.Background(), "1"))
	assert.Equal(t, []string{long}, s.copied)
	assert.Contains(t, out.String(), strings.Repeat("x", 50)+"...")

	s.copyErr = errors.New("no clipboard")
	require.Error(t, a.Copy(context.Background(), "1"))
}

func TestDelete_ConfirmsFirst(t *testing.T) {
	stubSeams(t)
	a, _ := newTestApp(t, nil, "n", "y")
	seed(t, a, models.SourceText, models.LabelText, "a")
	seed(t, a, models.SourceText, models.LabelText, "b")

	require.NoError(t, a.Delete(context.Background(), "1"))
	assert.Len(t, a.history.Entries(), 2)

	require.NoError(t, a.Delete(context.Background(), "1"))
	got := a.history.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Data)
}

func TestClearAndPurge(t *testing.T) {
	stubSeams(t)
	repo := blobs.NewMemoryRepository()
	a, _ := newTestApp(t, repo, "y", "y")
	seed(t, a, models.SourceText, models.LabelText, "a")

	require.NoError(t, a.Clear(context.Background()))
	assert.Empty(t, a.history.Entries())
	raw, err := repo.Get(context.Background(), config.DefaultHistoryKey)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))

	require.NoError(t, a.Purge(context.Background()))
	raw, err = repo.Get(context.Background(), config.DefaultHistoryKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestChanges(t *testing.T) {
	assert.Equal(t, "none", changes("a,b", "a,b"))

	got := changes("CN1,C1023,3000", "CN1,C9999,3000")
	assert.Contains(t, got, "CN1,C")
	assert.Contains(t, got, "1023")
	assert.Contains(t, got, "9999")
	assert.Contains(t, got, "\x1b[")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))
	assert.Equal(t, strings.Repeat("é", 50)+"...", preview(strings.Repeat("é", 51)))
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, nil)
	assert.Equal(t, "(0)", a.getStatus())
	seed(t, a, models.SourceText, models.LabelText, "a")
	assert.Equal(t, "(1)", a.getStatus())
}
