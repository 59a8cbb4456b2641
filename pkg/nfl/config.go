package nfl

import (
	"fmt"

	"github.com/afli-go/afli/pkg/kvconfig"
)

// Config holds NFL's tunables: AFLI's config plus the weights blob path.
type Config struct {
	BucketSize    int
	AggregateSize int
	WeightsPath   string
}

// LoadConfig reads path as a flat key=value config file and decodes the
// recognized NFL keys (bucket_size, aggregate_size, weights_path).
func LoadConfig(path string) (Config, error) {
	values, err := kvconfig.Load(path)
	if err != nil {
		return Config{}, err
	}

	return DecodeConfig(values)
}

// DecodeConfig extracts NFL's recognized keys from already-parsed
// values. weights_path has no default: a Config built from values
// lacking it fails at NFL construction with ErrWeightsLoad, not here -
// the grammar only specifies malformed values as fatal at parse time.
func DecodeConfig(values kvconfig.Values) (Config, error) {
	var cfg Config

	if n, ok, err := values.Int("bucket_size"); err != nil {
		return Config{}, fmt.Errorf("nfl: %w", err)
	} else if ok {
		cfg.BucketSize = n
	} else {
		cfg.BucketSize = -1
	}

	if n, ok, err := values.Int("aggregate_size"); err != nil {
		return Config{}, fmt.Errorf("nfl: %w", err)
	} else if ok {
		cfg.AggregateSize = n
	}

	if path, ok := values.Path("weights_path"); ok {
		cfg.WeightsPath = path
	}

	return cfg, nil
}
