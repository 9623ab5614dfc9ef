// Package sheets overwrites the destination Google Sheet range with the
// assembled table.
package sheets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/arubero/mlb-nrsi-prediction/internal/metrics"
	"github.com/arubero/mlb-nrsi-prediction/internal/models"
)

// Writer clears the fixed destination range and overwrites it with
// header plus data rows in a single update call.
type Writer struct {
	svc        *sheets.Service
	sheetID    string
	clearRange string
	writeRange string
}

// NewWriter builds a Writer backed by a service-account credentials file.
func NewWriter(ctx context.Context, credentialsFile, sheetID, clearRange, writeRange string) (*Writer, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		svc:        svc,
		sheetID:    sheetID,
		clearRange: clearRange,
		writeRange: writeRange,
	}, nil
}

// Write clears the destination range, then writes header + rows in one
// overwrite. The clear and the update fail independently: a failed clear
// is logged and the write still proceeds; a failed write is returned.
// No retry, no rollback.
func (w *Writer) Write(ctx context.Context, rows []models.Row) error {
	_, err := w.svc.Spreadsheets.Values.
		Clear(w.sheetID, w.clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	metrics.RecordSheetOperation("clear", err)
	if err != nil {
		log.Error().
			Err(err).
			Str("range", w.clearRange).
			Msg("Failed to clear sheet range")
	} else {
		log.Info().Str("range", w.clearRange).Msg("Cleared sheet range")
	}

	payload := BuildValueRange(rows)

	_, err = w.svc.Spreadsheets.Values.
		Update(w.sheetID, w.writeRange, payload).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	metrics.RecordSheetOperation("update", err)
	if err != nil {
		log.Error().
			Err(err).
			Str("range", w.writeRange).
			Msg("Failed to update sheet")
		return fmt.Errorf("failed to update sheet: %w", err)
	}

	metrics.SheetRowsWritten.Set(float64(len(rows)))
	log.Info().
		Int("rows", len(rows)).
		Str("range", w.writeRange).
		Msg("Sheet updated")
	return nil
}

// BuildValueRange converts rows into the typed tabular payload: the fixed
// header followed by one value row per game, with the 18 stat columns
// coerced to numbers or blank.
func BuildValueRange(rows []models.Row) *sheets.ValueRange {
	values := make([][]any, 0, len(rows)+1)

	header := make([]any, len(models.Header))
	for i, h := range models.Header {
		header[i] = h
	}
	values = append(values, header)

	for _, row := range rows {
		cells := row.Values()
		// Columns F..W are the stat blocks.
		for i := 5; i < len(cells); i++ {
			cells[i] = coerceNumeric(cells[i])
		}
		values = append(values, cells)
	}

	return &sheets.ValueRange{Values: values}
}

// coerceNumeric converts a stat cell to a float64, or blank when the
// value is empty or not a number.
func coerceNumeric(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return f
}
