package countries

import (
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CountriesSheet is the worksheet read on upload. The first sheet is used
// when a workbook has no sheet by that name.
const CountriesSheet = "Countries"

// readCountryNames returns the non-blank values of the first column,
// skipping the header row.
func readCountryNames(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	sheet := sheets[0]
	if slices.Contains(sheets, CountriesSheet) {
		sheet = CountriesSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var names []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
