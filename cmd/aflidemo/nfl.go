package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/afli-go/afli/pkg/afli"
	"github.com/afli-go/afli/pkg/nfl"
)

const demoBatchSize = 4

func runNFLDemo(configPath string, out io.Writer) error {
	cfg := nfl.Config{}

	if configPath != "" {
		var err error

		cfg, err = nfl.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	if cfg.WeightsPath == "" {
		path, err := writeIdentityWeights()
		if err != nil {
			return err
		}

		defer os.Remove(path)

		cfg.WeightsPath = path

		fmt.Fprintln(out, "no weights_path configured; using an identity transform")
	}

	n, err := nfl.New[int64](cfg, demoBatchSize)
	if err != nil {
		return err
	}

	initial := []afli.Entry[int64]{
		{Key: 1.0, Value: 100},
		{Key: 2.0, Value: 200},
		{Key: 3.0, Value: 300},
	}

	if err := n.BulkLoad(initial); err != nil {
		return err
	}

	fmt.Fprintln(out, "bulk loaded", len(initial), "entries; transform enabled =", n.Enabled())

	batch := []afli.Entry[int64]{
		{Key: 2.0, Value: 0}, // query
		{Key: 4.0, Value: 400},
	}
	n.Transform(batch)

	it := n.Find(0)
	if it.IsEnd() {
		return fmt.Errorf("key 2.0 not found")
	}

	fmt.Fprintln(out, "find(2.0) =", it.Value())

	if outcome := n.Insert(1); outcome != afli.Inserted {
		return fmt.Errorf("unexpected insert outcome: %v", outcome)
	}

	fmt.Fprintln(out, "model size:", n.ModelSize(), "index size:", n.IndexSize())

	return nil
}

// writeIdentityWeights writes an empty weights blob (zero layers), which
// Transform treats as the identity mapping.
func writeIdentityWeights() (string, error) {
	path := filepath.Join(os.TempDir(), "aflidemo-identity-weights.bin")

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := nfl.EncodeWeights(f, nfl.Weights{}); err != nil {
		return "", err
	}

	return path, nil
}
