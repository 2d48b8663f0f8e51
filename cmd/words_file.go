package cmd

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/kelimo/internal/entity"
)

const (
	colText = iota
	colMeaning
	colExample
	colLevel
)

var headerAliases = map[string]int{
	"text":        colText,
	"word":        colText,
	"english":     colText,
	"meaning":     colMeaning,
	"translation": colMeaning,
	"turkish":     colMeaning,
	"example":     colExample,
	"sentence":    colExample,
	"level":       colLevel,
}

// readWordFile loads words from a .csv, .csv.gz or .xlsx file. "-" reads CSV from stdin.
func readWordFile(path, sheet string, stdin io.Reader) ([]entity.Word, error) {
	lower := strings.ToLower(path)
	switch {
	case path == "-":
		return readWordCSV(stdin)
	case strings.HasSuffix(lower, ".xlsx"):
		return readWordSheet(path, sheet)
	case strings.HasSuffix(lower, ".csv"), strings.HasSuffix(lower, ".csv.gz"):
	default:
		return nil, fmt.Errorf("unsupported word file %q (want .csv, .csv.gz or .xlsx)", filepath.Base(path))
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(lower, ".gz") {
		gzr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer gzr.Close()
		r = gzr
	}
	return readWordCSV(r)
}

func readWordCSV(r io.Reader) ([]entity.Word, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseWordRows(rows)
}

func readWordSheet(path, sheet string) ([]entity.Word, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return parseWordRows(rows)
}

// parseWordRows maps rows to words. A first row naming a text column is treated as a
// header; otherwise columns are text, meaning, example, level. Incomplete rows are
// kept so the import can count them as skipped.
func parseWordRows(rows [][]string) ([]entity.Word, error) {
	columns := []int{colText, colMeaning, colExample, colLevel}
	words := make([]entity.Word, 0, len(rows))
	headerSeen := false

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if !headerSeen {
			headerSeen = true
			if header, ok, err := parseHeader(row); err != nil {
				return nil, err
			} else if ok {
				columns = header
				continue
			}
		}

		var w entity.Word
		for i, cell := range row {
			if i >= len(columns) || columns[i] < 0 {
				continue
			}
			cell = strings.TrimSpace(cell)
			switch columns[i] {
			case colText:
				w.Text = cell
			case colMeaning:
				w.Meaning = cell
			case colExample:
				w.Example = cell
			case colLevel:
				w.Level = cell
			}
		}
		words = append(words, w)
	}
	return words, nil
}

func parseHeader(row []string) ([]int, bool, error) {
	columns := make([]int, len(row))
	found := map[int]bool{}
	for i, cell := range row {
		col, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			columns[i] = -1
			continue
		}
		columns[i] = col
		found[col] = true
	}
	if !found[colText] {
		return nil, false, nil
	}
	if !found[colMeaning] {
		return nil, false, errors.New("header has no meaning column")
	}
	return columns, true, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
