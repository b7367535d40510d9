package payload

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/qrkeeper/internal/models"
)

var (
	numericRe  = regexp.MustCompile(`^\d+$`)
	shipDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const (
	icBinSegments       = 7
	icBinSerialSegments = 8
)

// IcBin is the semiconductor test/bin/shipment payload.
type IcBin struct {
	DeviceLeft       string
	DeviceRight      string
	ERP              string
	Marking          string
	Quantity         string
	TestProgramLeft  string
	TestProgramRight string
	Bin              string
	Date             string // YYYY-MM-DD
	Serial           string // optional
}

func (IcBin) Source() models.Source { return models.SourceIcBin }

func (b IcBin) Encode() (string, error) { return EncodeIcBin(b) }

// Device returns LEFT-RIGHT.
func (b IcBin) Device() string {
	return b.DeviceLeft + "-" + b.DeviceRight
}

// TestProgram returns LEFT_RIGHT.
func (b IcBin) TestProgram() string {
	return b.TestProgramLeft + "_" + b.TestProgramRight
}

func (b IcBin) trimmed() IcBin {
	return IcBin{
		DeviceLeft:       strings.TrimSpace(b.DeviceLeft),
		DeviceRight:      strings.TrimSpace(b.DeviceRight),
		ERP:              strings.TrimSpace(b.ERP),
		Marking:          strings.TrimSpace(b.Marking),
		Quantity:         strings.TrimSpace(b.Quantity),
		TestProgramLeft:  strings.TrimSpace(b.TestProgramLeft),
		TestProgramRight: strings.TrimSpace(b.TestProgramRight),
		Bin:              strings.TrimSpace(b.Bin),
		Date:             strings.TrimSpace(b.Date),
		Serial:           strings.TrimSpace(b.Serial),
	}
}

// Validate checks the fields EncodeIcBin requires, in the order the
// generator form reports them.
func (b IcBin) Validate() error {
	b = b.trimmed()

	if b.DeviceLeft == "" || b.DeviceRight == "" {
		return invalid("device", "Please fill both halves of the Device field.")
	}
	if b.ERP == "" || b.Marking == "" || b.Quantity == "" || b.Bin == "" || b.Date == "" {
		return invalid("required", "Please fill out all required fields before generating the QR code.")
	}
	if b.TestProgramLeft == "" || b.TestProgramRight == "" {
		return invalid("testProgram", "Please fill both halves of the Test Program field.")
	}
	if !numericRe.MatchString(b.Quantity) {
		return invalid("quantity", "Quantity must be numeric")
	}
	if !numericRe.MatchString(b.Bin) {
		return invalid("bin", "Bin must be numeric")
	}
	if !shipDateRe.MatchString(b.Date) {
		return invalid("date", "Date must be YYYY-MM-DD")
	}
	return nil
}

// EncodeIcBin validates b and joins its segments with '/'. The serial segment
// is only emitted when it is non-empty after trimming.
func EncodeIcBin(b IcBin) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	b = b.trimmed()

	segments := []string{b.Device(), b.ERP, b.Marking, b.Quantity, b.TestProgram(), b.Bin, b.Date}
	if b.Serial != "" {
		segments = append(segments, b.Serial)
	}
	return strings.Join(segments, "/"), nil
}

// DecodeIcBin parses a 7- or 8-segment IC-Bin string.
func DecodeIcBin(raw string) (IcBin, error) {
	segments := strings.Split(raw, "/")
	if n := len(segments); n != icBinSegments && n != icBinSerialSegments {
		return IcBin{}, unrecognized("ic bin needs 7 or 8 segments")
	}
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	device, erp, marking, quantity := segments[0], segments[1], segments[2], segments[3]
	testProgram, bin, date := segments[4], segments[5], segments[6]
	var serial string
	if len(segments) == icBinSerialSegments {
		serial = segments[7]
	}

	switch {
	case device == "" || erp == "":
		return IcBin{}, unrecognized("device and erp are required")
	case marking == "" || testProgram == "" || bin == "" || date == "" || quantity == "":
		return IcBin{}, unrecognized("missing ic bin field")
	case !numericRe.MatchString(quantity):
		return IcBin{}, unrecognized("quantity is not numeric")
	case !numericRe.MatchString(bin):
		return IcBin{}, unrecognized("bin is not numeric")
	case !shipDateRe.MatchString(date):
		return IcBin{}, unrecognized("date is not YYYY-MM-DD")
	}

	b := IcBin{ERP: erp, Marking: marking, Quantity: quantity, Bin: bin, Date: date, Serial: serial}
	b.DeviceLeft, b.DeviceRight = SplitComposite(device, "-")
	b.TestProgramLeft, b.TestProgramRight = SplitComposite(testProgram, "_")
	return b, nil
}

// IcBinKey returns the trimmed leading device and erp segments of raw, which
// together identify an IC-Bin history entry. ok is false when raw has fewer
// than two segments.
func IcBinKey(raw string) (device, erp string, ok bool) {
	segments := strings.SplitN(raw, "/", 3)
	if len(segments) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(segments[0]), strings.TrimSpace(segments[1]), true
}
