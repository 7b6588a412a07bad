package monomial

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils"
	"github.com/termalg/termalg/utils/buffer"
	"github.com/termalg/termalg/utils/structs"
)

// BinarySize returns the serialized size of the object in bytes.
func (m Monomial[T]) BinarySize() int {
	return 8
}

// WriteTo writes the code of the monomial on an io.Writer. It implements the
// io.WriterTo interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (m Monomial[T]) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:
		if n, err = buffer.WriteInt64(w, int64(m.value)); err != nil {
			return n, fmt.Errorf("buffer.WriteInt64: %w", err)
		}
		return n, w.Flush()
	default:
		return m.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the code of the monomial from an io.Reader. It implements the
// io.ReaderFrom interface. The result is not checked against any symbol set.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (m *Monomial[T]) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var c int64
		if n, err = buffer.ReadInt64(r, &c); err != nil {
			return n, fmt.Errorf("buffer.ReadInt64: %w", err)
		}

		value, ok := utils.Narrow[T](c)
		if !ok {
			return n, fmt.Errorf("%w: cannot ReadFrom: code %d does not fit in %d bits", termalg.ErrOverflow, c, utils.BitWidth[T]())
		}

		m.value = value

		return
	default:
		return m.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (m Monomial[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(m.BinarySize())
	_, err = m.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (m *Monomial[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = m.ReadFrom(bytes.NewReader(p))
	return
}

// UnmarshalBinaryWithSymbols decodes a slice of bytes generated by
// MarshalBinary and checks that the result is compatible with ss.
// The receiver is left unchanged when an error is returned.
func (m *Monomial[T]) UnmarshalBinaryWithSymbols(p []byte, ss symbols.Set) (err error) {

	var r Monomial[T]
	if err = r.UnmarshalBinary(p); err != nil {
		return
	}

	if _, err = r.Unpack(ss); err != nil {
		return fmt.Errorf("%w: cannot UnmarshalBinaryWithSymbols: the deserialized monomial is not compatible with the reference symbol set %s: %w", termalg.ErrInvalidArgument, ss, err)
	}

	*m = r

	return
}

// MarshalPortable encodes the exponent vector of the monomial, which does not
// depend on the codec parameters or on T.
func (m Monomial[T]) MarshalPortable(ss symbols.Set) (p []byte, err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return nil, fmt.Errorf("cannot MarshalPortable: %w", err)
	}

	return structs.Vector[T](v).MarshalBinary()
}

// UnmarshalPortable decodes a slice of bytes generated by MarshalPortable
// and re-encodes the exponent vector in ss.
func (m *Monomial[T]) UnmarshalPortable(p []byte, ss symbols.Set) (err error) {

	var v structs.Vector[T]
	if err = v.UnmarshalBinary(p); err != nil {
		return fmt.Errorf("cannot UnmarshalPortable: %w", err)
	}

	if err = CheckSize(len(v), ss); err != nil {
		return
	}

	r, err := New(v, ss)
	if err != nil {
		return fmt.Errorf("cannot UnmarshalPortable: %w", err)
	}

	*m = r

	return
}

// CheckSize returns an error if a deserialized vector of the given size
// cannot live in ss.
func CheckSize(size int, ss symbols.Set) error {
	if size != ss.Len() {
		return fmt.Errorf("%w: invalid size detected in deserialization: the deserialized size (%d) differs from the size of the reference symbol set (%d)", termalg.ErrInvalidArgument, size, ss.Len())
	}
	return nil
}
