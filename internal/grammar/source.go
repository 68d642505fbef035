// internal/grammar/source.go
//
// Grammar sources.
//
// Selection (Open):
//   1. If Source.DB is set, rows are read from that SQLite database.
//   2. Else if Source.File is set, rows are read from that CSV file.
//   3. Otherwise the embedded default grammar is used.
//
// The conflation table comes from Source.ConflationFile when set, otherwise
// from the embedded default.
//
// CSV format: one rule per line, `Symbol,word` or `Symbol,Symbol,Symbol`.
// Lines starting with '#' and blank lines are skipped.

package grammar

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/robalobadob/cfgmaze/assets"
)

// Source says where a grammar and its conflation table come from.
type Source struct {
	File           string
	DB             string
	ConflationFile string
	Start          Symbol
}

// Open loads the table and conflation index described by src.
func Open(ctx context.Context, src Source) (*Table, *Conflation, error) {
	var (
		t   *Table
		err error
	)
	switch {
	case src.DB != "":
		t, err = LoadSQLite(ctx, src.DB, WithStart(src.Start))
	case src.File != "":
		t, err = LoadFile(src.File, WithStart(src.Start))
	default:
		var data []byte
		if data, err = assets.GrammarCSV(); err == nil {
			t, err = LoadCSV(bytes.NewReader(data), WithStart(src.Start))
		}
	}
	if err != nil {
		return nil, nil, err
	}

	var conf []byte
	if src.ConflationFile != "" {
		conf, err = os.ReadFile(src.ConflationFile)
	} else {
		conf, err = assets.ConflationYAML()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read conflation: %w", err)
	}
	c, err := ParseConflation(conf)
	if err != nil {
		return nil, nil, err
	}
	return t, c, nil
}

// LoadFile loads a CSV grammar from path.
func LoadFile(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadCSV reads rows with ReadCSV and builds a Table from them.
func LoadCSV(r io.Reader, opts ...LoadOption) (*Table, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return Load(rows, opts...)
}

// ReadCSV reads grammar rows, keeping source line numbers for errors.
// Row shape is not checked here; Load does that.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &LoadError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{Line: line, Fields: rec})
	}
}
