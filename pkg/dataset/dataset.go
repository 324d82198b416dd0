package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/dweil/induct/pkg/api"
)

// Load reads a CSV file of numeric rows into contexts with the given
// target column. An empty cell or "?" parses as the absence marker, so a
// row with a blank target slot comes back as a prediction request. A
// leading header record is detected and skipped.
func Load(path string, target int) ([]api.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %v", path, err)
	}
	defer f.Close()
	return Read(f, target)
}

// Read parses CSV rows from r; see Load.
func Read(r io.Reader, target int) ([]api.Context, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var contexts []api.Context
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset record: %v", err)
		}
		line++
		row, err := parseRow(record)
		if err != nil {
			if line == 1 {
				log.Debugf("skipping header record: %v", record)
				continue
			}
			return nil, fmt.Errorf("record %d: %v", line, err)
		}
		if target < 0 || target >= len(row) {
			return nil, fmt.Errorf("record %d has %d columns, target column %d does not exist", line, len(row), target)
		}
		contexts = append(contexts, api.Context{Row: row, TargetIndex: target})
	}
	return contexts, nil
}

// Split separates training examples (target present) from prediction
// requests (target absent), preserving order.
func Split(contexts []api.Context) (training, queries []api.Context) {
	for _, ctx := range contexts {
		if ctx.HasTarget() {
			training = append(training, ctx)
		} else {
			queries = append(queries, ctx)
		}
	}
	return training, queries
}

func parseRow(record []string) ([]float64, error) {
	row := make([]float64, 0, len(record))
	for i, cell := range record {
		if cell == "" || cell == "?" {
			row = append(row, api.NoValue)
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %q is not numeric", i, cell)
		}
		row = append(row, v)
	}
	return row, nil
}
