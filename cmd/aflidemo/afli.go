package main

import (
	"fmt"
	"io"

	"github.com/afli-go/afli/pkg/afli"
)

func runAFLIDemo(configPath string, out io.Writer) error {
	cfg := afli.Config{}

	if configPath != "" {
		var err error

		cfg, err = afli.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	tree := afli.New[int64](cfg)

	initial := []afli.Entry[int64]{
		{Key: 1.0, Value: 100},
		{Key: 2.0, Value: 200},
		{Key: 3.0, Value: 300},
	}

	if err := tree.BulkLoad(initial); err != nil {
		return err
	}

	fmt.Fprintln(out, "bulk loaded", len(initial), "entries")

	if outcome := tree.Insert(afli.Entry[int64]{Key: 1.5, Value: 150}); outcome != afli.Inserted {
		return fmt.Errorf("unexpected insert outcome: %v", outcome)
	}

	it := tree.Find(1.5)
	if it.IsEnd() {
		return fmt.Errorf("key 1.5 not found after insert")
	}

	fmt.Fprintln(out, "find(1.5) =", it.Value())

	if !tree.Update(afli.Entry[int64]{Key: 2.0, Value: 250}) {
		return fmt.Errorf("update on existing key 2.0 unexpectedly reported absent")
	}

	fmt.Fprintln(out, "find(2.0) after update =", tree.Find(2.0).Value())

	removed := tree.Remove(3.0)
	fmt.Fprintln(out, "removed", removed, "entries for key 3.0")

	fmt.Fprintln(out, "stats:", tree.Stats())

	return nil
}
