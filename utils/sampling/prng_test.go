package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/termalg/termalg/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	t.Run("KeyedPRNG", func(t *testing.T) {

		key := sampling.DeriveKey("test", 1, 2, 3)
		require.Len(t, key, sampling.KeySize)
		require.Equal(t, key, sampling.DeriveKey("test", 1, 2, 3))
		require.NotEqual(t, key, sampling.DeriveKey("test", 1, 2, 4))

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Ha.Read(sum0)
			require.NoError(t, err)
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
			require.Equal(t, sum0, sum1)
		}
	})

	t.Run("Int64", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte{0x01})
		require.NoError(t, err)

		for i := 0; i < 1024; i++ {
			v := sampling.Int64(prng, -3, 5)
			require.GreaterOrEqual(t, v, int64(-3))
			require.LessOrEqual(t, v, int64(5))

			f := sampling.Float64(prng, -1, 1)
			require.GreaterOrEqual(t, f, -1.0)
			require.Less(t, f, 1.0)
		}

		require.Equal(t, int64(7), sampling.Int64(prng, 7, 7))
	})
}
