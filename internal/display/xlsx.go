package display

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
)

// WriteOrdersXLSX exports the order table to a spreadsheet at path.
func WriteOrdersXLSX(orders []kraken.Order, path string) error {
	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Orders"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	for col, h := range orderHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for rowIdx, o := range orders {
		values := []interface{}{
			o.ID, o.Status, o.Pair, o.Side, o.OrderType,
			o.Price, o.Volume, o.Cost, o.Fee,
			formatTime(o.OpenedAt), formatTime(o.ClosedAt),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := fx.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
