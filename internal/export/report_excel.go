package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/akeray/akeray-api/internal/models"
)

const reportSheet = "Properties"

var reportColumns = []struct {
	header string
	width  float64
}{
	{"Property Name", 20},
	{"Address", 30},
	{"City", 15},
	{"Type", 15},
	{"Total Units", 12},
	{"Price per Unit", 15},
	{"Owner", 20},
	{"Status", 12},
}

// PropertyReportExcel renders the property list into a single-sheet
// workbook: a bold, shaded header row followed by one data row per property
// in input order.
func PropertyReportExcel(properties []models.Property) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}
	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, col.header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, name, name, col.width); err != nil {
			return nil, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}

	for i, p := range properties {
		row := []any{
			p.Name,
			p.Address,
			p.City,
			p.Type,
			p.TotalUnits,
			p.PricePerUnit,
			ownerCell(p.Owner),
			string(p.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ownerCell matches the dashboard's "firstName lastName" formatting, which
// keeps the separating space even when the owner is missing.
func ownerCell(o *models.Owner) string {
	first, last := "", ""
	if o != nil {
		first, last = o.FirstName, o.LastName
	}
	return first + " " + last
}
