package buffer

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteRead", func(t *testing.T) {
		b := NewBufferSize(18)

		_, err := WriteInt64(b, math.MinInt64)
		require.NoError(t, err)
		_, err = WriteUint64(b, 0x0102030405060708)
		require.NoError(t, err)
		_, err = WriteBool(b, true)
		require.NoError(t, err)
		_, err = WriteUint8(b, 0xff)
		require.NoError(t, err)

		require.Equal(t, 0, b.Available())
		require.Len(t, b.Bytes(), 18)

		_, err = WriteUint8(b, 0)
		require.Error(t, err)

		var i int64
		var u uint64
		var f bool
		var c uint8

		_, err = ReadInt64(b, &i)
		require.NoError(t, err)
		_, err = ReadUint64(b, &u)
		require.NoError(t, err)
		_, err = ReadBool(b, &f)
		require.NoError(t, err)
		_, err = ReadUint8(b, &c)
		require.NoError(t, err)

		require.Equal(t, int64(math.MinInt64), i)
		require.Equal(t, uint64(0x0102030405060708), u)
		require.True(t, f)
		require.Equal(t, uint8(0xff), c)

		_, err = ReadUint8(b, &c)
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("InvalidBool", func(t *testing.T) {
		var f bool
		_, err := ReadBool(NewBuffer([]byte{2}), &f)
		require.Error(t, err)
	})

	t.Run("Bufio", func(t *testing.T) {
		var data bytes.Buffer
		w := bufio.NewWriterSize(&data, 16)
		for i := int64(-8); i < 8; i++ {
			_, err := WriteInt64(w, i)
			require.NoError(t, err)
		}
		require.NoError(t, w.Flush())

		r := bufio.NewReader(&data)
		for i := int64(-8); i < 8; i++ {
			var v int64
			_, err := ReadInt64(r, &v)
			require.NoError(t, err)
			require.Equal(t, i, v)
		}
	})
}
