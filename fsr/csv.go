package fsr

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names required in the input file. Header cells are compared after
// trimming surrounding whitespace and stripping a UTF-8 byte-order mark.
const (
	timeColumn  = "time"
	forceColumn = "force"
)

// LoadCSV reads a trial from the CSV file at path. The file must have a
// header row containing "time" and "force" columns; any other columns are
// ignored. The path is taken as-is, relative paths resolve against the
// caller's working directory.
func LoadCSV(path string) (*Trial, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file)
}

// LoadCSVFromReader reads a trial from CSV data on r. See LoadCSV.
func LoadCSVFromReader(r io.Reader) (*Trial, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrDataFormat)
	}

	timeIdx, forceIdx := -1, -1
	for i, name := range header {
		switch normalizeHeader(name) {
		case timeColumn:
			if timeIdx == -1 {
				timeIdx = i
			}
		case forceColumn:
			if forceIdx == -1 {
				forceIdx = i
			}
		}
	}
	if timeIdx == -1 || forceIdx == -1 {
		return nil, fmt.Errorf("%w: header must contain %q and %q columns", ErrDataFormat, timeColumn, forceColumn)
	}

	trial := &Trial{}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataFormat, row, err)
		}
		row++

		tVal, err := parseCell(record[timeIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad time value %q", ErrDataFormat, row, record[timeIdx])
		}
		fVal, err := parseCell(record[forceIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: bad force value %q", ErrDataFormat, row, record[forceIdx])
		}

		trial.Time = append(trial.Time, tVal)
		trial.Force = append(trial.Force, fVal)
	}

	return trial, nil
}

// normalizeHeader strips a UTF-8 BOM and surrounding whitespace, and
// lowercases the cell for comparison.
func normalizeHeader(cell string) string {
	cell = strings.TrimPrefix(cell, "\uFEFF")
	return strings.ToLower(strings.TrimSpace(cell))
}

func parseCell(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}
