package payload

import (
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
)

// Payload is one of Text, Smart or IcBin.
type Payload interface {
	Source() models.Source
	Encode() (string, error)
}

// Text is an unstructured payload.
type Text struct {
	Value string
}

func (Text) Source() models.Source { return models.SourceText }

func (t Text) Encode() (string, error) { return t.Value, nil }

// Decode parses data with the codec selected by source.
func Decode(source models.Source, data string) (Payload, error) {
	switch source {
	case models.SourceText:
		return Text{Value: data}, nil
	case models.SourceSmart:
		return DecodeSmart(data), nil
	case models.SourceIcBin:
		b, err := DecodeIcBin(data)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownSource, source)
	}
}

var (
	_ Payload = Text{}
	_ Payload = Smart{}
	_ Payload = IcBin{}
)
