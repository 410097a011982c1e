package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"livefeedback/internal/domain"
	"livefeedback/internal/domain/entities"
	"livefeedback/pkg/tz"
)

var (
	fullResponseHeader = []string{"id", "code", "user_id", "username", "first_name", "last_name"}
	aggregatedHeader   = []string{"username", "speech_codes"}
)

// Exporter renders aggregator output as CSV.
type Exporter struct {
	aggregator *Aggregator
}

func NewExporter(aggregator *Aggregator) *Exporter {
	return &Exporter{aggregator: aggregator}
}

// ExportFileName names an export document, e.g. attendance-by_code-20261015-2130.csv.
func ExportFileName(layout entities.ExportLayout, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("attendance-%s-%s.csv", layout, tz.Stamp(now, loc))
}

// Export builds the CSV document for layout from the current store state.
func (e *Exporter) Export(ctx context.Context, layout entities.ExportLayout) ([]byte, error) {
	switch layout {
	case entities.LayoutByCode:
		reports, err := e.aggregator.ReportAllCodes(ctx)
		if err != nil {
			return nil, err
		}
		return ExportByCodeCSV(reports)
	case entities.LayoutByUser:
		reports, err := e.aggregator.ReportAllUsersFull(ctx)
		if err != nil {
			return nil, err
		}
		return ExportByUserCSV(reports)
	case entities.LayoutAggregated:
		reports, err := e.aggregator.ReportAllUsersFull(ctx)
		if err != nil {
			return nil, err
		}
		return ExportAggregatedCSV(reports)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLayout, layout)
	}
}

// ExportByCodeCSV renders one row per response, code by code.
func ExportByCodeCSV(reports []entities.CodeReport) ([]byte, error) {
	var rows []entities.FullResponse
	for _, r := range reports {
		rows = append(rows, r.Responses...)
	}
	return writeFullResponses(rows)
}

// ExportByUserCSV renders one row per response, user by user.
func ExportByUserCSV(reports []entities.UserReport) ([]byte, error) {
	var rows []entities.FullResponse
	for _, r := range reports {
		rows = append(rows, r.Responses...)
	}
	return writeFullResponses(rows)
}

// ExportAggregatedCSV renders one row per user with the user's codes joined
// by ", ". A user without a username is labelled "ID: <user_id>".
func ExportAggregatedCSV(reports []entities.UserReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(aggregatedHeader)
	for _, r := range reports {
		name := r.Username
		if name == "" {
			name = fmt.Sprintf("ID: %d", r.UserID)
		}
		if err := w.Write([]string{name, strings.Join(r.Codes(), ", ")}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeFullResponses(rows []entities.FullResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(fullResponseHeader)
	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			r.Code,
			strconv.FormatInt(r.UserID, 10),
			r.Username,
			r.FirstName,
			r.LastName,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
