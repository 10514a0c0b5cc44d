// Package tabular converts delimited text to a row-oriented document and back.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/coliin8/book-explorer/internal/core/domain"
)

// Decode parses UTF-8 comma-separated text. The first line is the header row;
// every subsequent line becomes a row mapping header to cell.
func Decode(content []byte) (*domain.Document, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", domain.ErrMalformedInput)
	}

	reader := csv.NewReader(bytes.NewReader(content))

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no header line", domain.ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	doc := &domain.Document{Columns: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
		}

		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		doc.Rows = append(doc.Rows, row)
	}

	return doc, nil
}

// Encode writes a header line followed by one line per row in original order.
// Fields containing the delimiter, quote character or line breaks are quoted
// per standard CSV escaping.
func Encode(doc *domain.Document) ([]byte, error) {
	if len(doc.Rows) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(doc.Columns); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(doc.Columns))
	for _, row := range doc.Rows {
		for i, column := range doc.Columns {
			record[i] = row[column]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv writer: %w", err)
	}

	return buf.Bytes(), nil
}
