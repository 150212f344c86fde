package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

const (
	// RegionColumn 地域名の列
	RegionColumn = "Province_State"
	// ActiveColumn アクティブ症例数の列
	ActiveColumn = "Active"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrRowNotFound    = errors.New("row not found")
	ErrEmptyValue     = errors.New("empty value")
)

// foldKey 大文字小文字を区別しない比較用のキー。
// Caserは状態を持つのでゴルーチン間で共有しない
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Table 1日分のCSV
type Table struct {
	header  []string
	columns map[string]int
	rows    [][]string
}

// ParseTable CSVを読み込んでTableを作る。スキーマの検証はしない
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv has no header")
		}
		return nil, err
	}
	if len(header) > 0 {
		// UTF-8 BOM付きのファイル対策
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &Table{
		header:  header,
		columns: make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := t.columns[name]; !dup {
			t.columns[name] = i
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

// Len 行数
func (t *Table) Len() int {
	return len(t.rows)
}

// Header 列名一覧
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

func (t *Table) column(name string) (int, error) {
	idx, ok := t.columns[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return idx, nil
}

// Values 列の値を行順に返す
func (t *Table) Values(column string) ([]string, error) {
	idx, err := t.column(column)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		values = append(values, cell(row, idx))
	}
	return values, nil
}

// Lookup keyColumnがkeyに一致する最初の行のvalueColumnを返す（大文字小文字は無視）
func (t *Table) Lookup(keyColumn, key, valueColumn string) (string, error) {
	keyIdx, err := t.column(keyColumn)
	if err != nil {
		return "", err
	}
	valueIdx, err := t.column(valueColumn)
	if err != nil {
		return "", err
	}
	want := foldKey(key)
	for _, row := range t.rows {
		if foldKey(cell(row, keyIdx)) == want {
			return cell(row, valueIdx), nil
		}
	}
	return "", fmt.Errorf("%w: %s=%q", ErrRowNotFound, keyColumn, key)
}

// LookupFloat Lookupの結果を数値として返す
func (t *Table) LookupFloat(keyColumn, key, valueColumn string) (float64, error) {
	raw, err := t.Lookup(keyColumn, key, valueColumn)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s for %s=%q", ErrEmptyValue, valueColumn, keyColumn, key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s for %s=%q: %w", valueColumn, keyColumn, key, err)
	}
	return v, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
