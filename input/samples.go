package input

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Sample file parameters.
const (
	samplePointsMin = 100
	samplePointsMax = 200
	sampleGrid      = 1000
	sampleDigitsMin = 50
	sampleDigitsMax = 100
)

// WriteSamples writes count point files and count operand files into dir
// (created if missing) and returns their paths in writing order.
//
// Files:
//   - closest_pair_points_<i>.txt: 100..200 integer points on [0,1000]²
//   - integer_multiplication_<i>.txt: {"x": n, "y": n}, 50..100 digits
//
// Content is JSON, readable by ParsePoints and ParseMultiplicationFile.
// The same seed always produces byte-identical files.
func WriteSamples(dir string, count int, seed int64) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("input: create sample dir: %w", err)
	}

	r := newRand(seed)
	paths := make([]string, 0, 2*count)
	for i := 1; i <= count; i++ {
		n := samplePointsMin + r.Intn(samplePointsMax-samplePointsMin+1)
		pts := randomIntPoints(r, n, sampleGrid)
		pairs := make([][2]float64, len(pts))
		for k, p := range pts {
			pairs[k] = [2]float64{p.X, p.Y}
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.txt", PointsFilePrefix, i))
		if err := writeJSON(path, pairs); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		digits := sampleDigitsMin + r.Intn(sampleDigitsMax-sampleDigitsMin+1)
		ops, err := randomOperands(r, digits)
		if err != nil {
			return paths, err
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.txt", MultiplicationFilePrefix, i))
		doc := map[string]json.Number{"x": json.Number(ops.X), "y": json.Number(ops.Y)}
		if err := writeJSON(path, doc); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("input: encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("input: write %s: %w", filepath.Base(path), err)
	}

	return nil
}
