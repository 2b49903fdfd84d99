package service

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jjenkins/clients/internal/model"
)

const exportSheet = "Clients"

// exportTimeFormat is the layout used for timestamps in exported spreadsheets
const exportTimeFormat = "2006-01-02 15:04"

// WriteXLSX writes rows as a spreadsheet with one column per catalogue field, in catalogue order
func WriteXLSX(w io.Writer, rows []model.ClientRecord, catalogue model.Catalogue) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(catalogue))
	for i, field := range catalogue {
		header[i] = field.Label
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(catalogue))
		for j, field := range catalogue {
			values[j] = exportValue(r, field.Value)
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func exportValue(r model.ClientRecord, field string) interface{} {
	switch field {
	case model.FieldID:
		return r.ID
	case model.FieldName:
		return r.Name
	case model.FieldType:
		return string(r.Type)
	case model.FieldEmail:
		return r.Email
	case model.FieldStatus:
		return string(r.Status)
	case model.FieldCreatedAt:
		return r.CreatedAt.Format(exportTimeFormat)
	case model.FieldUpdatedAt:
		return r.UpdatedAt.Format(exportTimeFormat)
	default:
		return ""
	}
}

// FieldText renders a record field as display text
func FieldText(r model.ClientRecord, field string) string {
	switch v := exportValue(r, field).(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}
