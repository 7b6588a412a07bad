package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint8 reads a byte from r and stores it in c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = bb[0]

	return int64(nint), nil
}

// ReadBool reads a byte from r and stores it in c. It returns
// an error if the byte is neither 0 nor 1.
func ReadBool(r Reader, c *bool) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadBool: c is nil")
	}

	var b uint8
	if n, err = ReadUint8(r, &b); err != nil {
		return
	}

	switch b {
	case 0:
		*c = false
	case 1:
		*c = true
	default:
		return n, fmt.Errorf("cannot ReadBool: invalid byte 0x%02x", b)
	}

	return n, nil
}

// ReadUint64 reads an uint64 from r and stores it in c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadInt64 reads an int64 from r and stores it in c.
func ReadInt64(r Reader, c *int64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt64: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = int64(u)

	return n, nil
}
