package afli

import (
	"fmt"

	"github.com/afli-go/afli/pkg/kvconfig"
)

// LoadConfig reads path as a flat key=value config file and decodes the
// recognized AFLI keys into a Config. Unknown keys are ignored; a
// malformed value aborts the load with a wrapped error.
func LoadConfig(path string) (Config, error) {
	values, err := kvconfig.Load(path)
	if err != nil {
		return Config{}, err
	}

	return DecodeConfig(values)
}

// DecodeConfig extracts AFLI's recognized keys (bucket_size,
// aggregate_size) from already-parsed values.
func DecodeConfig(values kvconfig.Values) (Config, error) {
	var cfg Config

	if n, ok, err := values.Int("bucket_size"); err != nil {
		return Config{}, fmt.Errorf("afli: %w", err)
	} else if ok {
		cfg.BucketSize = n
	} else {
		cfg.BucketSize = -1
	}

	if n, ok, err := values.Int("aggregate_size"); err != nil {
		return Config{}, fmt.Errorf("afli: %w", err)
	} else if ok {
		cfg.AggregateSize = n
	} else {
		cfg.AggregateSize = 0
	}

	return cfg, nil
}
