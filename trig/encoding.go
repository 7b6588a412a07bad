package trig

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/termalg/termalg"
	"github.com/termalg/termalg/monomial"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/utils/buffer"
	"github.com/termalg/termalg/utils/structs"
)

// BinarySize returns the serialized size of the object in bytes.
func (m Monomial[T]) BinarySize() int {
	return m.key.BinarySize() + 1
}

// WriteTo writes the code of the multiplier vector followed by the flavour
// on an io.Writer. It implements the io.WriterTo interface, and will write
// exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (m Monomial[T]) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		if n, err = m.key.WriteTo(w); err != nil {
			return
		}

		var inc int64
		if inc, err = buffer.WriteBool(w, !m.sine); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteBool: %w", err)
		}

		return n + inc, w.Flush()

	default:
		return m.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface. The result is not checked against any symbol set.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (m *Monomial[T]) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var key monomial.Monomial[T]
		if n, err = key.ReadFrom(r); err != nil {
			return
		}

		var cos bool
		var inc int64
		if inc, err = buffer.ReadBool(r, &cos); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadBool: %w", err)
		}

		m.key, m.sine = key, !cos

		return n + inc, nil

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

	if !r.IsCompatible(ss) {
		return fmt.Errorf("%w: cannot UnmarshalBinaryWithSymbols: the deserialized monomial is not compatible with the reference symbol set %s", termalg.ErrInvalidArgument, ss)
	}

	*m = r

	return
}

// MarshalPortable encodes the multiplier vector and the flavour of the
// monomial, which do not depend on the codec parameters or on T.
func (m Monomial[T]) MarshalPortable(ss symbols.Set) (p []byte, err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return nil, fmt.Errorf("cannot MarshalPortable: %w", err)
	}

	vec := structs.Vector[T](v)

	buf := buffer.NewBufferSize(vec.BinarySize() + 1)

	if _, err = vec.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("cannot MarshalPortable: %w", err)
	}

	if _, err = buffer.WriteBool(buf, !m.sine); err != nil {
		return nil, fmt.Errorf("cannot MarshalPortable: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalPortable decodes a slice of bytes generated by MarshalPortable
// and re-encodes the multiplier vector in ss.
func (m *Monomial[T]) UnmarshalPortable(p []byte, ss symbols.Set) (err error) {

	buf := buffer.NewBuffer(p)

	var v structs.Vector[T]
	if _, err = v.ReadFrom(buf); err != nil {
		return fmt.Errorf("cannot UnmarshalPortable: %w", err)
	}

	var cos bool
	if _, err = buffer.ReadBool(buf, &cos); err != nil {
		return fmt.Errorf("cannot UnmarshalPortable: %w", err)
	}

	if err = monomial.CheckSize(len(v), ss); err != nil {
		return
	}

	r, err := New(v, cos, ss)
	if err != nil {
		return fmt.Errorf("cannot UnmarshalPortable: %w", err)
	}

	if !isCanonical(v) {
		return fmt.Errorf("%w: cannot UnmarshalPortable: the deserialized monomial is not canonical", termalg.ErrInvalidArgument)
	}

	*m = r

	return
}
