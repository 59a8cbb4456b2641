package nfl

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeWeightsRoundTrip(t *testing.T) {
	want := Weights{Layers: []Layer{
		{Rows: 2, Cols: 1, W: []float32{0.5, -0.25}, B: []float32{0.1, -0.1}},
		{Rows: 1, Cols: 2, W: []float32{1, 1}, B: []float32{0}},
	}}

	var buf bytes.Buffer
	require.NoError(t, EncodeWeights(&buf, want))

	got, err := DecodeWeights(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round-tripped weights mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeWeightsTruncatedIsError(t *testing.T) {
	_, err := DecodeWeights(bytes.NewReader([]byte{1, 0, 0}))
	require.Error(t, err)
}

func TestLoadWeightsMissingFile(t *testing.T) {
	_, err := LoadWeights("/no/such/weights.bin")
	require.ErrorIs(t, err, ErrWeightsLoad)
}
