package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint8 writes a byte c to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {

	if w.Available() == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() == 0 {
			return 0, fmt.Errorf("cannot WriteUint8: available buffer is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:1]

	buf[0] = c

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteBool writes c to w as a single byte equal to 0 or 1.
func WriteBool(w Writer, c bool) (n int64, err error) {
	var b uint8
	if c {
		b = 1
	}
	return WriteUint8(w, b)
}

// WriteUint64 writes a uint64 c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteInt64 writes the two's complement representation of c into w.
func WriteInt64(w Writer, c int64) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}
