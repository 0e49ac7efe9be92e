package sheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/horeca-one/catalogd/internal/model"
)

var (
	nonRateChars    = regexp.MustCompile(`[^\d.]`)
	percentChars    = regexp.MustCompile(`[%]`)
	nonAlphanumRuns = regexp.MustCompile(`[^a-z0-9]+`)
	nonAlphanum     = regexp.MustCompile(`[^a-z0-9]`)
	edgeHyphens     = regexp.MustCompile(`(^-|-$)`)
)

// Normalize converts a raw row into a SourceRecord. The second return value
// is false when the row must be excluded: no product name, or a zero gross
// rate (free or unparsable pricing).
func Normalize(row RawRow) (model.SourceRecord, bool) {
	rec := model.SourceRecord{
		SKU:           strings.TrimSpace(row[colSKU]),
		Name:          strings.TrimSpace(row[colName]),
		HSN:           field(row, colHSN),
		Unit:          field(row, colUnit),
		Brand:         field(row, colBrand),
		CategoryLabel: field(row, colCategory),
		TaxableRate:   parseRate(field(row, colTaxableRate)),
		TaxPercent:    parsePercent(field(row, colTaxPercent)),
		GrossRate:     parseRate(field(row, colGrossRate)),
		ImageHint:     strings.TrimSpace(row[len(row)-1]),
	}
	if rec.Unit == "" {
		rec.Unit = "Pc"
	}

	if rec.Name == "" || rec.GrossRate == 0 {
		return model.SourceRecord{}, false
	}
	return rec, true
}

func field(row RawRow, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRate strips currency decoration before parsing. Anything unparsable
// is a zero rate, which downstream treats as a rejection.
func parseRate(s string) float64 {
	v, err := strconv.ParseFloat(nonRateChars.ReplaceAllString(s, ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(percentChars.ReplaceAllString(s, "")), 64)
	if err != nil {
		return 0
	}
	return v
}

// Slugify derives the URL slug for a product name: lower-case, runs of
// non-alphanumerics collapsed to a single hyphen, edge hyphens trimmed.
// Names differing only in punctuation collapse to the same slug; no
// collision resolution is attempted.
func Slugify(name string) string {
	s := nonAlphanumRuns.ReplaceAllString(strings.ToLower(name), "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// NormalizeKey derives the comparison key used for duplicate-name detection:
// lower-case with every non-alphanumeric stripped. Distinct names that differ
// only in punctuation or spacing share a key; that conflation is the intended
// dedup policy, not a defect.
func NormalizeKey(name string) string {
	return nonAlphanum.ReplaceAllString(strings.ToLower(name), "")
}
