package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteOptions controls Write.
type WriteOptions struct {
	// Delimiter is one of ',', ';' or '\t'. Zero means ','.
	Delimiter rune
	// Header writes a non-numeric first line, which Parse skips.
	Header bool
	// Index prepends a sample index column.
	Index bool
}

// Write renders equally long columns as delimited text that Parse reads
// back unchanged, provided every value is finite. Values use the shortest
// representation that round-trips.
func Write(w io.Writer, columns [][]float64, opts WriteOptions) error {
	if len(columns) == 0 {
		return fmt.Errorf("write table: no columns")
	}
	rows := len(columns[0])
	for j, c := range columns {
		if len(c) != rows {
			return fmt.Errorf("write table: column %d has %d rows, want %d", j, len(c), rows)
		}
	}

	delim := opts.Delimiter
	switch delim {
	case 0:
		delim = ','
	case ',', ';', '\t':
	default:
		return fmt.Errorf("write table: unsupported delimiter %q", delim)
	}

	bw := bufio.NewWriter(w)
	if opts.Header {
		var line []byte
		if opts.Index {
			line = append(line, "index"...)
		}
		for j := range columns {
			if opts.Index || j > 0 {
				line = append(line, byte(delim))
			}
			line = append(line, "ch"...)
			line = strconv.AppendInt(line, int64(j+1), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	buf := make([]byte, 0, 24*(len(columns)+1))
	for i := range rows {
		buf = buf[:0]
		if opts.Index {
			buf = strconv.AppendInt(buf, int64(i), 10)
		}
		for j, c := range columns {
			if opts.Index || j > 0 {
				buf = append(buf, byte(delim))
			}
			buf = strconv.AppendFloat(buf, c[i], 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
