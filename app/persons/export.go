package persons

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/joefazee/directory/internal/formatter"
)

// ExcelSheet is the worksheet persons are exported to
const ExcelSheet = "PersonsSheet"

var (
	csvHeader   = []string{"PersonName", "Email", "DateOfBirth", "Age", "Gender", "CountryName", "Address", "ReceiveNewsLetters"}
	excelHeader = []string{"Person Name", "Email", "Date of Birth", "Age", "Gender", "Country", "Address", "Receive News Letters"}
)

// exportRow renders a person as the cells shared by both export formats
func exportRow(p PersonResponse) []string {
	var dob, age string
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(formatter.DateLayout)
	}
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	return []string{
		p.Name,
		p.Email,
		dob,
		age,
		p.Gender,
		p.CountryName,
		p.Address,
		strconv.FormatBool(p.ReceiveNewsLetters),
	}
}

// ExportCSV writes every person as CSV, header first
func (s *service) ExportCSV(ctx context.Context) (*bytes.Buffer, error) {
	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, p := range persons {
		if err := w.Write(exportRow(p)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

// ExportExcel writes every person to the PersonsSheet worksheet of a new workbook
func (s *service) ExportExcel(ctx context.Context) (*bytes.Buffer, error) {
	persons, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ExcelSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return nil, err
	}

	if err := writeExcelRow(f, 1, excelHeader); err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(excelHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ExcelSheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, p := range persons {
		if err := writeExcelRow(f, i+2, exportRow(p)); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeExcelRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(ExcelSheet, cell, &values)
}
