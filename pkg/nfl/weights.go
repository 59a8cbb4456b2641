package nfl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Layer is one dense affine layer of a Transform: y = W*x + b, where W is
// stored row-major with shape (Rows, Cols) and b has length Rows.
type Layer struct {
	Rows, Cols int
	W          []float32
	B          []float32
}

// Weights is a loaded transform: an ordered sequence of Layers. The
// nonlinearity applied between consecutive layers is implicit by
// position - the blob carries no activation tag.
type Weights struct {
	Layers []Layer
}

// LoadWeights reads path as a weights blob: a sequence
// [layer_count: u32] ( [rows: u32][cols: u32][W: f32 x rows*cols][b: f32
// x rows] )x, in host-native byte order. A missing or truncated file is
// a WeightsLoadError (ErrWeightsLoad), fatal at NFL construction.
func LoadWeights(path string) (Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return Weights{}, fmt.Errorf("%w: %v", ErrWeightsLoad, err)
	}
	defer f.Close()

	w, err := DecodeWeights(f)
	if err != nil {
		return Weights{}, fmt.Errorf("%w: %v", ErrWeightsLoad, err)
	}

	return w, nil
}

// DecodeWeights parses the binary layout described by LoadWeights from
// r. Split out from LoadWeights so it can be exercised against in-memory
// buffers in tests without touching the filesystem.
func DecodeWeights(r io.Reader) (Weights, error) {
	var layerCount uint32
	if err := binary.Read(r, binary.NativeEndian, &layerCount); err != nil {
		return Weights{}, err
	}

	layers := make([]Layer, layerCount)

	for i := range layers {
		var rows, cols uint32
		if err := binary.Read(r, binary.NativeEndian, &rows); err != nil {
			return Weights{}, err
		}

		if err := binary.Read(r, binary.NativeEndian, &cols); err != nil {
			return Weights{}, err
		}

		w := make([]float32, int(rows)*int(cols))
		if err := binary.Read(r, binary.NativeEndian, &w); err != nil {
			return Weights{}, err
		}

		b := make([]float32, rows)
		if err := binary.Read(r, binary.NativeEndian, &b); err != nil {
			return Weights{}, err
		}

		layers[i] = Layer{Rows: int(rows), Cols: int(cols), W: w, B: b}
	}

	return Weights{Layers: layers}, nil
}

// EncodeWeights writes w in the format DecodeWeights reads. Used by
// tests to construct fixture weight blobs in-process.
func EncodeWeights(wtr io.Writer, w Weights) error {
	if err := binary.Write(wtr, binary.NativeEndian, uint32(len(w.Layers))); err != nil {
		return err
	}

	for _, layer := range w.Layers {
		if err := binary.Write(wtr, binary.NativeEndian, uint32(layer.Rows)); err != nil {
			return err
		}

		if err := binary.Write(wtr, binary.NativeEndian, uint32(layer.Cols)); err != nil {
			return err
		}

		if err := binary.Write(wtr, binary.NativeEndian, layer.W); err != nil {
			return err
		}

		if err := binary.Write(wtr, binary.NativeEndian, layer.B); err != nil {
			return err
		}
	}

	return nil
}
