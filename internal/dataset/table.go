package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"tobacco-dashboard-service/internal/domain"
)

// readTable reads a spreadsheet into a header row plus data rows. The
// format is chosen by extension: .xlsx via excelize, anything else is
// treated as CSV.
func readTable(path string) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, path)
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s has no header row", domain.ErrEmptyDataset, path)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s has no header row", domain.ErrEmptyDataset, path)
	}
	return rows[0], rows[1:], nil
}

// columnIndex maps normalized header names to their position. Source
// headers use WHO naming (setting, date, subgroup, estimate); already
// normalized exports are accepted too.
type columnIndex struct {
	country   int
	year      int
	sex       int
	value     int
	indicator int
	iso3      int // -1 when absent
	income    int // -1 when absent
}

var columnAliases = map[string]string{
	"setting":  "country",
	"date":     "year",
	"subgroup": "sex",
	"estimate": "value",
}

// normalizeHeader folds "Indicator Name" into "indicator_name".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	if canonical, ok := columnAliases[h]; ok {
		return canonical
	}
	return h
}

func indexColumns(path string, header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	income := -1
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := pos[key]; !seen {
			pos[key] = i
		}
		// World Bank income tiers arrive as wbincome2023/wbincome2024
		// depending on the dataset vintage.
		if income < 0 && strings.HasPrefix(key, "wbincome") {
			income = i
		}
	}

	idx := columnIndex{iso3: -1, income: income}
	required := []struct {
		name string
		dst  *int
	}{
		{"country", &idx.country},
		{"year", &idx.year},
		{"sex", &idx.sex},
		{"value", &idx.value},
		{"indicator_name", &idx.indicator},
	}
	for _, col := range required {
		i, ok := pos[col.name]
		if !ok {
			return idx, fmt.Errorf("%w: %s in %s", domain.ErrMissingColumn, col.name, path)
		}
		*col.dst = i
	}
	if i, ok := pos["iso3"]; ok {
		idx.iso3 = i
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
