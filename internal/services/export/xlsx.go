package export

import (
	"fmt"
	"io"

	"relic-search/internal/models"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Relics"

// header is the first row of the sheet; slot columns carry their rarity.
func header() []interface{} {
	row := []interface{}{"ID", "Name"}
	for _, slot := range models.Slots {
		row = append(row, fmt.Sprintf("%s (%s)", slot.Column, slot.Rarity))
	}
	return row
}

// WriteRelics writes one row per relic, slot items in slot order, to w as an xlsx workbook.
func WriteRelics(w io.Writer, relics []*models.RelicDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	h := header()
	if err := f.SetSheetRow(SheetName, "A1", &h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range relics {
		row := []interface{}{r.ID, r.Name}
		for _, item := range r.Items {
			if item == nil {
				row = append(row, "")
				continue
			}
			row = append(row, *item)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write relic %d: %w", r.ID, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
