package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type csvLoader struct{}

func (csvLoader) CanLoad(path string) bool {
	return hasExt(path, ".csv", ".tsv")
}

func (csvLoader) Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = sniffDelimiter(path)

	name := filepath.Base(path)
	var header []string
	var body [][]cell
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if blankRow(rec) {
			continue
		}
		if header == nil {
			header = append([]string(nil), rec...)
			continue
		}
		cells := make([]cell, len(rec))
		for j, v := range rec {
			cells[j] = classify(v, true)
		}
		body = append(body, cells)
	}
	if header == nil {
		return New(name)
	}
	return build(name, header, body)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
