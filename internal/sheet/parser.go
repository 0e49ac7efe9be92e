// Package sheet extracts normalized product records from the irregular
// comma-delimited price sheets exported by the wholesale desk. The format is
// not RFC-4180: column titles wrap across physical lines, blank rows carry
// stray delimiters, and numeric cells are decorated with currency symbols and
// percent signs.
package sheet

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/horeca-one/catalogd/internal/common"
)

// Column positions in a data row. Meaning is positional; header names are
// only used to locate the start of the data block.
const (
	colSKU = iota
	colName
	colHSN
	colUnit
	colBrand
	colCategory
	colTaxableRate
	colTaxPercent
	colGrossRate
)

// skuSentinelPrefix is the letter every warehouse SKU starts with. A line
// beginning with it is a data row, not a continuation of the header.
const skuSentinelPrefix = "Z"

// dataRowStart matches the alternate data-row shape: a bare 3-4 digit item
// code followed by the field delimiter.
var dataRowStart = regexp.MustCompile(`^\d{3,4},`)

// Parser turns raw sheet text into SourceRecords.
type Parser struct{}

// NewParser creates a new sheet parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts every well-formed product row from the sheet text. Rows
// missing a SKU or name, and rows the normalizer rejects, are dropped
// silently; the sheet routinely carries blank-row artifacts that are not
// worth reporting. Text with no recognizable header row fails with
// ErrNoHeader: it is the wrong file, not an empty sheet.
func (p *Parser) Parse(text string) ([]RawRow, error) {
	lines := splitLines(text)

	start, ok := locateHeaderEnd(lines)
	if !ok {
		return nil, common.ErrNoHeader
	}

	var rows []RawRow
	for _, line := range lines[start+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ",,,") {
			continue
		}

		cols := strings.Split(trimmed, ",")
		if len(cols) < 2 || strings.TrimSpace(cols[colSKU]) == "" || strings.TrimSpace(cols[colName]) == "" {
			continue
		}

		rows = append(rows, RawRow(cols))
	}

	slog.Debug("extracted sheet rows", "count", len(rows))
	return rows, nil
}

// RawRow is one comma-split data row, columns positional.
type RawRow []string

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// locateHeaderEnd finds the index of the last physical line of the header
// block. The header starts at the first line mentioning both the SKU column
// and "Product Name", and may continue across following lines because of
// wrapped column titles. A line is considered the start of data, ending the
// header, when it begins with the SKU sentinel or a short numeric item code.
// This is a best-effort heuristic pinned to the known sheet format, not a
// general tokenizer.
func locateHeaderEnd(lines []string) (int, bool) {
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], "SKU") || !strings.Contains(lines[i], "Product Name") {
			continue
		}
		for i+1 < len(lines) && !startsDataRow(lines[i+1]) {
			i++
		}
		return i, true
	}
	return 0, false
}

func startsDataRow(line string) bool {
	return strings.HasPrefix(line, skuSentinelPrefix) || dataRowStart.MatchString(line)
}
