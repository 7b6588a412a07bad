package structs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/utils"
	"github.com/termalg/termalg/utils/buffer"
)

// Vector is a struct wrapping a slice of signed integers of type T.
// Its binary representation does not depend on T: the size is written
// as an uint64 followed by every component as an int64, so that a vector
// written with a given T can be read back with any other T as long as
// its components fit.
type Vector[T constraints.Signed] []T

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly:
//
//   - When writing multiple times to a io.Writer, it is preferable to first wrap the
//     io.Writer in a pre-allocated bufio.Writer.
//   - When writing to a pre-allocated var b []byte, it is preferable to pass
//     buffer.NewBuffer(b) as w (see utils/buffer/buffer.go).
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		for i := range v {
			if inc, err = buffer.WriteInt64(w, int64(v[i])); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteInt64: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader. Since this requires allocation, it
// is preferable to pass a buffer.Reader directly:
//
//   - When reading multiple values from a io.Reader, it is preferable to first
//     first wrap io.Reader in a pre-allocated bufio.Reader.
//   - When reading from a var b []byte, it is preferable to pass a buffer.NewBuffer(b)
//     as w (see utils/buffer/buffer.go).
//
// An error wrapping termalg.ErrOverflow is returned if a component does not fit T.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size uint64

		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if size > math.MaxInt32 {
			return n, fmt.Errorf("cannot ReadFrom: invalid vector size %d", size)
		}

		*v = (*v)[:0]

		for i := uint64(0); i < size; i++ {

			var c int64
			if inc, err = buffer.ReadInt64(r, &c); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadInt64: %w", err)
			}

			n += inc

			ci, ok := utils.Narrow[T](c)
			if !ok {
				return n, fmt.Errorf("%w: cannot ReadFrom: component %d does not fit in %d bits", termalg.ErrOverflow, c, utils.BitWidth[T]())
			}

			*v = append(*v, ci)
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(bytes.NewReader(p))
	return
}
