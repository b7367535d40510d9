package payload

import (
	"testing"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDecode_DispatchesOnSource(t *testing.T) {
	p, err := Decode(models.SourceText, "hello, world")
	require.NoError(t, err)
	require.Equal(t, Text{Value: "hello, world"}, p)

	p, err = Decode(models.SourceSmart, "CN1,C1023,1811-250515,3000")
	require.NoError(t, err)
	s, ok := p.(Smart)
	require.True(t, ok)
	require.Equal(t, "C1023", s.PartNumber)

	raw := "BTD24D3-FV1206/C0B24D32A/C0B24D32AFG1/3000/BTD24D3_FV1206/485/2025-05-15"
	p, err = Decode(models.SourceIcBin, raw)
	require.NoError(t, err)
	require.Equal(t, models.SourceIcBin, p.Source())

	enc, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, raw, enc)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(models.SourceIcBin, "a/b")
	require.ErrorIs(t, err, common.ErrUnrecognizedFormat)

	_, err = Decode(models.Source("nope"), "x")
	require.ErrorIs(t, err, common.ErrUnknownSource)
}

func TestPayload_SourcesAndEncode(t *testing.T) {
	var p Payload = Text{Value: "x"}
	require.Equal(t, models.SourceText, p.Source())
	out, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, "x", out)

	p = sampleSmart()
	require.Equal(t, models.SourceSmart, p.Source())

	p = IcBin{}
	_, err = p.Encode()
	require.ErrorIs(t, err, common.ErrValidation)
}
