package storage

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jacksmith/kicks/internal/model"
	"github.com/jszwec/csvutil"
)

// Header is the literal header row of an inventory file.
const Header = "brand,model,size,color"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// shoeRow is the on-disk shape of a record. Field order is column order.
type shoeRow struct {
	Brand string `csv:"brand"`
	Model string `csv:"model"`
	Size  string `csv:"size"`
	Color string `csv:"color"`
}

func toRow(s model.Shoe) shoeRow {
	return shoeRow{
		Brand: s.Brand,
		Model: s.Model,
		Size:  model.FormatSize(s.Size),
		Color: s.Color,
	}
}

// lineReader remembers the last raw record and the line it started on, so
// decode failures can name the offending row.
type lineReader struct {
	r      *csv.Reader
	record []string
	line   int
}

func (lr *lineReader) Read() ([]string, error) {
	record, err := lr.r.Read()
	if err != nil {
		lr.record = nil
		return nil, err
	}
	lr.record = record
	lr.line, _ = lr.r.FieldPos(0)
	return record, nil
}

// Parse reads an inventory from r.
// The header row maps columns by name; extra columns are ignored.
// Parsing stops at the first bad row: no partial inventory is returned.
func Parse(r io.Reader) ([]model.Shoe, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(bom, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	lr := &lineReader{r: cr}

	dec, err := csvutil.NewDecoder(lr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Message: "missing header row"}
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &SchemaError{Message: fmt.Sprintf("unreadable header row: %v", perr.Err)}
		}
		return nil, err
	}

	header := dec.Header()
	seen := make(map[string]bool, len(header))
	for _, column := range header {
		if seen[column] {
			return nil, &SchemaError{
				Header:  header,
				Message: fmt.Sprintf("header repeats column %q", column),
			}
		}
		seen[column] = true
	}

	var missing []string
	for _, field := range model.Fields {
		if !slices.Contains(header, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{
			Header:  header,
			Message: "header is missing columns " + strings.Join(missing, ", "),
		}
	}

	shoes := []model.Shoe{}
	for {
		var row shoeRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedRecordError{Line: perr.StartLine, Reason: perr.Err.Error()}
			}
			return nil, &MalformedRecordError{Line: lr.line, Raw: lr.record, Reason: err.Error()}
		}

		shoe, err := model.NewShoe(row.Brand, row.Model, row.Size, row.Color)
		if err != nil {
			return nil, &MalformedRecordError{Line: lr.line, Raw: lr.record, Reason: err.Error()}
		}
		shoes = append(shoes, shoe)
	}

	return shoes, nil
}

// Write writes the header row followed by one row per shoe, in order.
// Rows end in "\n".
func Write(w io.Writer, shoes []model.Shoe) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(shoeRow{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for _, s := range shoes {
		if err := enc.Encode(toRow(s)); err != nil {
			return fmt.Errorf("failed to encode %s: %w", s, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
