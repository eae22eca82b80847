package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/prithvinet/backend/internal/domain"
)

// SheetName is the worksheet holding the pollutant table
const SheetName = "Air Quality"

// PollutantXLSX renders the compliance table as a styled workbook
func PollutantXLSX(city string, assessments []domain.PollutantAssessment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("export: failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("export: failed to create header style: %w", err)
	}

	if err := f.SetCellValue(SheetName, "A1", city); err != nil {
		return nil, fmt.Errorf("export: failed to set title: %w", err)
	}

	header := make([]interface{}, len(PollutantHeader))
	for i, h := range PollutantHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A2", &header); err != nil {
		return nil, fmt.Errorf("export: failed to write header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A2", "E2", headerStyle); err != nil {
		return nil, fmt.Errorf("export: failed to style header: %w", err)
	}

	for i, a := range assessments {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, fmt.Errorf("export: failed to convert coordinates: %w", err)
		}
		row := []interface{}{string(a.Name), a.Value, a.Unit, a.WHOLimit, string(a.Status)}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("export: failed to write row %s: %w", a.Name, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "E", 16); err != nil {
		return nil, fmt.Errorf("export: failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
