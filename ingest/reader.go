// Package ingest parses a CSV record stream into engine transactions, one
// record at a time. A malformed record never poisons the ones after it.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matheusgomes28/transactions/engine"
)

// RecordError reports a single malformed input record. Callers can skip the
// record and keep reading; any error from Next that is not a RecordError
// (and not io.EOF) is terminal for the stream.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Reader yields parsed transactions from a CSV source with columns
// type, client, tx, amount. Column positions are taken from the header row,
// fields tolerate surrounding whitespace, and rows may omit the trailing
// amount field. Type tokens are matched exactly: deposit, withdraw,
// withdrawal, dispute, resolve, chargeback.
type Reader struct {
	csv  *csv.Reader
	line int

	header                            bool
	typeCol, clientCol, txCol, amtCol int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Line returns the input line of the record most recently returned by Next.
func (r *Reader) Line() int { return r.line }

// Next returns the next parsed transaction, io.EOF at end of input, or a
// *RecordError for a row that cannot be parsed.
func (r *Reader) Next() (engine.Transaction, error) {
	if !r.header {
		if err := r.readHeader(); err != nil {
			return engine.Transaction{}, err
		}
	}

	rec, err := r.csv.Read()
	if err == io.EOF {
		return engine.Transaction{}, io.EOF
	}
	if err != nil {
		// csv.Reader recovers from quoting/field errors on the next Read,
		// so these are skippable. Anything else is an I/O failure.
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			r.line = perr.Line
			return engine.Transaction{}, &RecordError{Line: r.line, Err: err}
		}
		return engine.Transaction{}, err
	}
	r.line, _ = r.csv.FieldPos(0)

	tx, err := r.parse(rec)
	if err != nil {
		return engine.Transaction{}, &RecordError{Line: r.line, Err: err}
	}
	return tx, nil
}

func (r *Reader) readHeader() error {
	rec, err := r.csv.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	r.typeCol, r.clientCol, r.txCol, r.amtCol = -1, -1, -1, -1
	for i, name := range rec {
		switch strings.TrimSpace(name) {
		case "type":
			r.typeCol = i
		case "client":
			r.clientCol = i
		case "tx":
			r.txCol = i
		case "amount":
			r.amtCol = i
		}
	}
	if r.typeCol < 0 || r.clientCol < 0 || r.txCol < 0 {
		return fmt.Errorf("header is missing one of the type, client, tx columns: %q", rec)
	}

	r.header = true
	return nil
}

func (r *Reader) parse(rec []string) (engine.Transaction, error) {
	field := func(col int) string {
		if col < 0 || col >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[col])
	}

	var kind engine.Kind
	switch token := field(r.typeCol); token {
	case "deposit":
		kind = engine.KindDeposit
	case "withdraw", "withdrawal":
		kind = engine.KindWithdraw
	case "dispute":
		kind = engine.KindDispute
	case "resolve":
		kind = engine.KindResolve
	case "chargeback":
		kind = engine.KindChargeback
	default:
		return engine.Transaction{}, fmt.Errorf("unrecognized transaction type %q", token)
	}

	client, err := strconv.ParseUint(field(r.clientCol), 10, 16)
	if err != nil {
		return engine.Transaction{}, fmt.Errorf("bad client id %q: %w", field(r.clientCol), err)
	}

	txID, err := strconv.ParseUint(field(r.txCol), 10, 64)
	if err != nil {
		return engine.Transaction{}, fmt.Errorf("bad transaction id %q: %w", field(r.txCol), err)
	}

	tx := engine.Transaction{
		Kind:     kind,
		TxID:     txID,
		ClientID: uint16(client),
	}

	// Amount is required for deposits and withdrawals and ignored for the
	// dispute family, whose commands carry no amount of their own.
	if kind == engine.KindDeposit || kind == engine.KindWithdraw {
		raw := field(r.amtCol)
		if raw == "" {
			return engine.Transaction{}, fmt.Errorf("missing amount for %s", kind)
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return engine.Transaction{}, fmt.Errorf("bad amount %q: %w", raw, err)
		}
		tx.Amount = amount
	}

	return tx, nil
}
