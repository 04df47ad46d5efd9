package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/simaogato/banksynth/internal/domain"
)

// Format is an export serialization
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name
// Returns domain.ErrUnsupportedFormat for anything but csv or json
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
	}
}

// FileName returns the table's file name for a format, e.g. customer_data.csv
func (t Table) FileName(format Format) string {
	return t.FileBase + "." + string(format)
}

// WriteCSV writes the table as UTF-8 CSV with a header row and no index column
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.Name, err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", t.Name, err)
	}
	return nil
}

// WriteJSON writes the table as an array of objects keyed by the CSV header names
func WriteJSON(w io.Writer, t Table, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(t.Records); err != nil {
		return fmt.Errorf("failed to write %s json: %w", t.Name, err)
	}
	return nil
}

// Write serializes the table in the given format; JSON is indented
func Write(w io.Writer, t Table, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatJSON:
		return WriteJSON(w, t, true)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// BuildArchive bundles all five tables of a dataset into a single zip archive
// containing customer_data, kyc_data, account_data, transaction_data and transfer_data files
func BuildArchive(ds *domain.Dataset, format Format) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, t := range Tables(ds) {
		f, err := zw.Create(t.FileName(format))
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", t.Name, err)
		}
		if err := Write(f, t, format); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// ArchiveName returns the download name of a dataset archive
func ArchiveName(ds *domain.Dataset, format Format) string {
	return fmt.Sprintf("banking_data_%s_%s.zip", ds.Stats.RunID, format)
}
