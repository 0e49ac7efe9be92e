package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-one/catalogd/internal/common"
)

// Sample sheet in the wholesale desk's export format: a title block, a
// header wrapped across two physical lines, blank-row artifacts, and data
// rows keyed by either a Z-prefixed SKU or a bare numeric item code.
const sampleSheet = `Copy of 6to9 Items & Categories - Products,,,,,,,,,
,,,,,,,,,
SKU,Product Name,HSN,Unit,Brand,Category,Taxable
Rate,Tax %,Gross Rate,Image
Z101,Amul Butter 500g,0405,Pc,Amul,Dairy,250.00,12%,280.00,amul-butter.jpg
Z102,Veeba Tomato Ketchup Sachet (8g x 100 pcs),2103,Box,Veeba,Sachet,110.00,12%,123.20,
,,,,,,,,,
1042,Qualita Processed Cheese Block 1KG,0406,Pc,Qualita,Dairy,380.00,12%,425.60,cheese.jpg
Z103,,0406,Pc,Qualita,Dairy,380.00,12%,425.60,
,Missing Sku Product,0406,Pc,Qualita,Dairy,380.00,12%,425.60,
`

func TestParse(t *testing.T) {
	parser := NewParser()
	rows, err := parser.Parse(sampleSheet)
	require.NoError(t, err)

	require.Len(t, rows, 3, "should keep only rows with both SKU and name")

	assert.Equal(t, "Z101", rows[0][colSKU])
	assert.Equal(t, "Amul Butter 500g", rows[0][colName])
	assert.Equal(t, "Z102", rows[1][colSKU])
	assert.Equal(t, "1042", rows[2][colSKU])
	assert.Equal(t, "Qualita Processed Cheese Block 1KG", rows[2][colName])
}

func TestParseNoHeader(t *testing.T) {
	parser := NewParser()

	for _, text := range []string{
		"just,some,random,text\nwith,no,header,row",
		"",
	} {
		rows, err := parser.Parse(text)
		assert.Nil(t, rows)
		assert.ErrorIs(t, err, common.ErrNoHeader)
	}
}

func TestParseCRLFLineEndings(t *testing.T) {
	parser := NewParser()

	crlf := "SKU,Product Name,HSN,Unit,Brand,Category,Taxable Rate,Tax %,Gross Rate,Image\r\n" +
		"Z201,Davinci Vanilla Syrup 750ml,2106,Pc,Davinci,DaVinci,320.00,18%,377.60,syrup.jpg\r\n"

	rows, err := parser.Parse(crlf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Z201", rows[0][colSKU])
}

func TestLocateHeaderEnd(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantIndex int
		wantFound bool
	}{
		{
			name: "single line header",
			lines: []string{
				"SKU,Product Name,HSN,Unit",
				"Z101,Butter,0405,Pc",
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "header wrapped over two lines",
			lines: []string{
				"SKU,Product Name,HSN,Unit,Brand,Category,Taxable",
				"Rate,Tax %,Gross Rate,Image",
				"Z101,Butter,0405,Pc",
			},
			wantIndex: 1,
			wantFound: true,
		},
		{
			name: "numeric item code ends header block",
			lines: []string{
				"SKU,Product Name,HSN",
				"wrapped header tail",
				"1042,Cheese,0406",
			},
			wantIndex: 1,
			wantFound: true,
		},
		{
			name:      "no header",
			lines:     []string{"a,b,c", "d,e,f"},
			wantIndex: 0,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := locateHeaderEnd(tt.lines)
			assert.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, tt.wantIndex, got)
			}
		})
	}
}

func TestStartsDataRow(t *testing.T) {
	assert.True(t, startsDataRow("Z101,Butter"))
	assert.True(t, startsDataRow("1042,Cheese"))
	assert.True(t, startsDataRow("104,Cheese"))
	assert.False(t, startsDataRow("10,Too short a code"))
	assert.False(t, startsDataRow("Rate,Tax %,Gross Rate"))
	assert.False(t, startsDataRow(""))
}
