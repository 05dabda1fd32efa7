package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/planner"
)

func samplePlan() model.PlanResult {
	return planner.PlanWithSummary([]model.InventoryItem{
		{Name: "Sofa", Quantity: 1, VolumePerUnitCubicFeet: 35},
		{Name: "Lamp", Quantity: 2, VolumePerUnitCubicFeet: 2},
		{Name: "Fridge", Quantity: 1, VolumePerUnitCubicFeet: 28},
	}, nil)
}

func TestWrite_RoundTrip(t *testing.T) {
	result := samplePlan()
	require.Len(t, result.Vehicles, 1)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	sheet := VehicleSheetName(0, result.Vehicles[0])
	assert.Equal(t, []string{SummarySheet, sheet}, f.GetSheetList())

	count, err := f.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "1", count)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(result.Vehicles[0].LoadOrder))
	assert.Equal(t, "Step", rows[0][0])
	assert.Equal(t, "Item", rows[0][1])

	for i, p := range result.Vehicles[0].LoadOrder {
		assert.Equal(t, p.Name, rows[i+1][1])
		assert.Equal(t, string(p.Care), rows[i+1][2])
	}
	assert.Equal(t, "Fridge", rows[1][1])

	summaryRows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, "Medium Van", summaryRows[8][1])
}

func TestWorkbook_EmptyPlan(t *testing.T) {
	f, err := Workbook(model.Empty())
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	assert.Equal(t, []string{SummarySheet}, f.GetSheetList())
}

func TestVehicleSheetName(t *testing.T) {
	v := model.VehiclePlan{VehicleClass: model.VehicleClass{Name: "Box/Truck [XL]"}}
	assert.Equal(t, "3 Box Truck (XL)", VehicleSheetName(2, v))

	long := model.VehiclePlan{VehicleClass: model.VehicleClass{Name: strings.Repeat("é", 40)}}
	assert.Len(t, []rune(VehicleSheetName(0, long)), maxSheetName)
}
