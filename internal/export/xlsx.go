// Package export renders load plans as crew load sheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/load-planner/internal/domain/model"
)

const (
	// ContentTypeXLSX is the media type of the generated workbook.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// SummarySheet is the name of the first sheet.
	SummarySheet = "Summary"

	maxSheetName = 31
)

// LoadSheetColumns is the header row of every vehicle sheet.
var LoadSheetColumns = []interface{}{
	"Step", "Item", "Care", "Stackability", "Slot", "X (m)", "Y (m)", "Z (m)", "Layer",
	"Width (m)", "Depth (m)", "Height (m)", "Mass (kg)", "Volume (m³)",
}

var sheetNameReplacer = strings.NewReplacer(
	":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// VehicleSheetName returns the sheet name of the i-th vehicle (0-based).
func VehicleSheetName(i int, v model.VehiclePlan) string {
	name := fmt.Sprintf("%d %s", i+1, sheetNameReplacer.Replace(v.VehicleClass.Name))
	if r := []rune(name); len(r) > maxSheetName {
		name = strings.TrimSpace(string(r[:maxSheetName]))
	}
	return name
}

// Workbook builds a workbook with a Summary sheet and one load sheet per vehicle.
// The caller must close the returned file.
func Workbook(result model.PlanResult) (*excelize.File, error) {
	f := excelize.NewFile()

	// the default sheet becomes the summary
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeSummary(f, result, header); err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, v := range result.Vehicles {
		if err := writeVehicle(f, VehicleSheetName(i, v), v, header); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Write renders result as XLSX into w.
func Write(w io.Writer, result model.PlanResult) error {
	f, err := Workbook(result)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	_, err = f.WriteTo(w)
	return err
}

func writeSummary(f *excelize.File, result model.PlanResult, header int) error {
	s := result.Summary
	rows := [][]interface{}{
		{"Vehicles", s.VehicleCount},
		{"Items", s.TotalItems},
		{"Total volume (m³)", s.TotalVolumeM3},
		{"Total mass (kg)", s.TotalMassKg},
		{"Mean volume utilisation", s.MeanVolumeUtilization},
		{"Mean weight utilisation", s.MeanWeightUtilization},
		{},
		{"#", "Vehicle", "Units", "Volume (m³)", "Mass (kg)", "Over capacity"},
	}
	for i, v := range result.Vehicles {
		rows = append(rows, []interface{}{
			i + 1, v.VehicleClass.Name, v.UnitCount, v.TotalVolumeM3, v.TotalMassKg, v.OverCapacity,
		})
	}

	for r, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := setRow(f, SummarySheet, r+1, row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(SummarySheet, "A8", "F8", header); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 24)
}

func writeVehicle(f *excelize.File, sheet string, v model.VehiclePlan, header int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, LoadSheetColumns); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(LoadSheetColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", header); err != nil {
		return err
	}

	for i, p := range v.LoadOrder {
		row := []interface{}{
			p.Sequence, p.Name, string(p.Care), string(p.Stackability), p.Slot,
			p.X, p.Y, p.Z, p.Layer,
			p.WidthM, p.DepthM, p.HeightM, p.MassKg, p.VolumeM3,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 28); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
