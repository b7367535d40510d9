// Package scan classifies raw scanned text into one of the payload formats.
//
// Rules are tried in a fixed order and the first match wins:
//
//  1. IC-Bin, when payload.DecodeIcBin accepts the text;
//  2. Smart, when the text splits into exactly four comma-separated fields;
//  3. Text otherwise, flagged as a likely link for http(s):// and www. prefixes.
//
// Free text with exactly three commas is classified as Smart. That ambiguity
// is accepted; IC-Bin goes first so a well-formed IC-Bin string that also
// carries commas is never read as Smart.
package scan

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/payload"
)

var linkRe = regexp.MustCompile(`(?i)^https?://|^www\.`)

// Result is the outcome of Classify.
type Result struct {
	Source  models.Source
	Payload payload.Payload
	// LikelyLink is set for text that looks like a URL.
	LikelyLink bool
}

// Label returns the history label used for a scanned entry of r's source.
func (r Result) Label() string {
	switch r.Source {
	case models.SourceIcBin:
		return models.LabelScannedIcBin
	case models.SourceSmart:
		return models.LabelScannedSmart
	default:
		return models.LabelScannedText
	}
}

// Classify decides which payload shape raw matches. It never fails: anything
// unrecognized is text.
func Classify(raw string) Result {
	if b, err := payload.DecodeIcBin(raw); err == nil {
		return Result{Source: models.SourceIcBin, Payload: b}
	}

	if len(strings.Split(raw, ",")) == 4 {
		return Result{Source: models.SourceSmart, Payload: payload.DecodeSmart(raw)}
	}

	return Result{
		Source:     models.SourceText,
		Payload:    payload.Text{Value: raw},
		LikelyLink: linkRe.MatchString(raw),
	}
}
