// Package matfile reads the small binary fixture format used by this
// module's test suite: a magic header, a row count, and per-row a length
// prefix followed by that many little-endian float64s.
package matfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const magic = "MAT "

// FormatError reports a malformed matrix fixture.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("matfile: %s", e.Reason)
}

func floatFromBits(bits uint64) float64 {
	return math.Float64frombits(bits)
}

// Read parses r as a matrix fixture and returns one []float64 per row.
func Read(r io.Reader) ([][]float64, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("reading magic: %v", err)}
	}
	if string(hdr[:]) != magic {
		return nil, &FormatError{Reason: fmt.Sprintf("bad magic %q", hdr[:])}
	}

	rowCount, err := readUint32(r)
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("reading row count: %v", err)}
	}

	rows := make([][]float64, rowCount)
	for i := range rows {
		n, err := readUint32(r)
		if err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("reading row %d length: %v", i, err)}
		}
		row := make([]float64, n)
		for j := range row {
			bits, err := readUint64(r)
			if err != nil {
				return nil, &FormatError{Reason: fmt.Sprintf("reading row %d element %d: %v", i, j, err)}
			}
			row[j] = floatFromBits(bits)
		}
		rows[i] = row
	}

	var extra [1]byte
	if _, err := r.Read(extra[:]); err != io.EOF {
		return nil, &FormatError{Reason: "trailing bytes after last row"}
	}

	return rows, nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Write serializes rows in the format Read expects. Used only by tests to
// build fixtures in-memory.
func Write(w io.Writer, rows [][]float64) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(rows))); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeUint32(w, uint32(len(row))); err != nil {
			return err
		}
		for _, v := range row {
			if err := writeUint64(w, math.Float64bits(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
