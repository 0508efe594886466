package signal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type readConfig struct {
	minLength int
}

// ReadOption configures ReadCSV.
type ReadOption func(*readConfig)

// WithMinLength overrides MinLength. Zero disables the check.
func WithMinLength(n int) ReadOption {
	return func(cfg *readConfig) {
		if n >= 0 {
			cfg.minLength = n
		}
	}
}

// ReadCSV reads a table whose column 0 is time and column 1 is amplitude.
// Extra columns are ignored. A first row that is not numeric is treated as
// a header. Fewer than MinLength data rows yields ErrTooShort.
func ReadCSV(r io.Reader, opts ...ReadOption) (Signal, error) {
	cfg := readConfig{minLength: MinLength}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var s Signal
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Signal{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if len(rec) < 2 {
			return Signal{}, fmt.Errorf("%w: row %d has %d columns, need 2", ErrMalformed, row+1, len(rec))
		}

		t, errT := parseField(rec[0])
		a, errA := parseField(rec[1])
		if errT != nil || errA != nil {
			if row == 0 {
				continue
			}
			return Signal{}, fmt.Errorf("%w: row %d: %q, %q", ErrMalformed, row+1, rec[0], rec[1])
		}
		s.Time = append(s.Time, t)
		s.Amplitude = append(s.Amplitude, a)
	}

	if s.Len() < cfg.minLength {
		return Signal{}, fmt.Errorf("%w: %d samples, need at least %d", ErrTooShort, s.Len(), cfg.minLength)
	}
	return s, nil
}

// LoadFile reads a CSV signal from path.
func LoadFile(path string, opts ...ReadOption) (Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signal{}, fmt.Errorf("signal: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}

// WriteCSV writes a header row and one row per index of the given
// equal-length columns.
func WriteCSV(w io.Writer, header []string, columns ...[]float64) error {
	if len(header) != len(columns) {
		return fmt.Errorf("signal: %d header names for %d columns", len(header), len(columns))
	}
	n := 0
	if len(columns) > 0 {
		n = len(columns[0])
	}
	for i, c := range columns {
		if len(c) != n {
			return fmt.Errorf("signal: column %d has %d rows, want %d", i, len(c), n)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(columns))
	for i := range n {
		for j, c := range columns {
			rec[j] = strconv.FormatFloat(c[i], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
