package store

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetsStore reads and appends rows of a single worksheet through the
// Google Sheets API, authenticated with service-account credentials. The
// first row of the worksheet is the header. This is the production
// backend: the authoritative roster lives in a spreadsheet shared by the
// whole class and edited by hand when needed.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetIndex    int64

	title string // worksheet title, resolved once
}

func NewSheetsStore(ctx context.Context, credentialsFile, spreadsheetID string, sheetIndex int64) (*SheetsStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client init error: %w", err)
	}

	return &SheetsStore{svc: svc, spreadsheetID: spreadsheetID, sheetIndex: sheetIndex}, nil
}

// sheetTitle resolves the worksheet index to its title, which the values
// API uses as the range. The result is cached; renaming the worksheet
// mid-run requires a restart.
func (s *SheetsStore) sheetTitle(ctx context.Context) (string, error) {
	if s.title != "" {
		return s.title, nil
	}

	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("spreadsheet metadata error: %w", err)
	}

	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Index == s.sheetIndex {
			s.title = sh.Properties.Title
			return s.title, nil
		}
	}

	return "", fmt.Errorf("worksheet with index %d not found", s.sheetIndex)
}

func (s *SheetsStore) GetAllRecords(ctx context.Context) ([]map[string]string, error) {
	title, err := s.sheetTitle(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("values get error: %w", err)
	}

	return RecordsFromRows(resp.Values), nil
}

func (s *SheetsStore) AppendRow(ctx context.Context, values []string) error {
	title, err := s.sheetTitle(ctx)
	if err != nil {
		return err
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	vr := &sheets.ValueRange{Values: [][]any{cells}}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, title, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row error: %w", err)
	}

	return nil
}

// RecordsFromRows converts a raw value grid into column-keyed records.
// The first row is the header; header cells are trimmed, blank header
// cells are skipped, and short data rows are padded with empty strings.
func RecordsFromRows(rows [][]any) []map[string]string {
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(c))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = fmt.Sprint(row[i])
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}
