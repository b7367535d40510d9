package payload

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/models"
)

var (
	lotPrefixRe = regexp.MustCompile(`^\d{4}$`)
	lotDateRe   = regexp.MustCompile(`^\d{6}$`)
)

// Smart is the structured lot/part payload.
type Smart struct {
	IDCode     string
	PartNumber string
	LotPrefix  string // exactly 4 digits
	LotDate    string // YYMMDD
	Quantity   string
}

func (Smart) Source() models.Source { return models.SourceSmart }

// Encode never fails; see EncodeSmart.
func (s Smart) Encode() (string, error) { return EncodeSmart(s), nil }

// LotCode joins prefix and date as PREFIX-DATE. It is empty unless both halves
// are present.
func (s Smart) LotCode() string {
	if s.LotPrefix == "" || s.LotDate == "" {
		return ""
	}
	return s.LotPrefix + "-" + s.LotDate
}

// Validate checks the lot code halves. Callers run it before EncodeSmart.
func (s Smart) Validate() error {
	if !lotPrefixRe.MatchString(s.LotPrefix) {
		return invalid("lotPrefix", "Please enter a 4-digit lot prefix.")
	}
	if !lotDateRe.MatchString(s.LotDate) {
		return invalid("lotDate", "Please enter a date in YYMMDD format.")
	}
	return nil
}

// EncodeSmart joins the four Smart fields with commas. Empty fields are kept
// as empty strings so the result always has four fields.
func EncodeSmart(s Smart) string {
	return strings.Join([]string{s.IDCode, s.PartNumber, s.LotCode(), s.Quantity}, ",")
}

// DecodeSmart splits raw into the four Smart positions. Missing positions are
// empty and positions past the fourth are ignored.
func DecodeSmart(raw string) Smart {
	var parts [4]string
	copy(parts[:], strings.Split(raw, ","))

	s := Smart{IDCode: parts[0], PartNumber: parts[1], Quantity: parts[3]}
	s.LotPrefix, s.LotDate = splitLot(parts[2])
	return s
}

func splitLot(lot string) (string, string) {
	if strings.Contains(lot, "-") {
		return SplitComposite(lot, "-")
	}
	digits := DigitsOnly(lot)
	if len(digits) != 10 {
		return "", ""
	}
	return digits[:4], digits[4:]
}
