package afli

import (
	"strings"
	"testing"

	"github.com/afli-go/afli/pkg/kvconfig"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfigDefaults(t *testing.T) {
	values, err := kvconfig.Parse(strings.NewReader(""))
	require.NoError(t, err)

	cfg, err := DecodeConfig(values)
	require.NoError(t, err)
	require.Equal(t, -1, cfg.BucketSize)
	require.Equal(t, 0, cfg.AggregateSize)
}

func TestDecodeConfigExplicitValues(t *testing.T) {
	values, err := kvconfig.Parse(strings.NewReader("bucket_size=16 aggregate_size=256"))
	require.NoError(t, err)

	cfg, err := DecodeConfig(values)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.BucketSize)
	require.Equal(t, 256, cfg.AggregateSize)
}

func TestDecodeConfigMalformedValue(t *testing.T) {
	values, err := kvconfig.Parse(strings.NewReader("bucket_size=nope"))
	require.NoError(t, err)

	_, err = DecodeConfig(values)
	require.ErrorIs(t, err, kvconfig.ErrMalformed)
}
