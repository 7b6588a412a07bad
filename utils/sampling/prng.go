// Package sampling implements deterministic sampling of bytes and integers.
package sampling

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// KeySize is the size in bytes of the keys returned by DeriveKey.
const KeySize = 32

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a structure storing the parameters used to *deterministically* generate
// sequences of random bytes using the hash function blake2b.
// Two KeyedPRNG created with the same key produce the same stream of bytes.
// WARNING: KeyedPRNG should NOT be called by multiple threads. It does not make sense to do so as the resulting
// sequence will not be deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
// The key must not be longer than 64 bytes.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// DeriveKey returns a KeySize bytes key derived from the given integers with blake3.
func DeriveKey(domain string, values ...int64) []byte {
	hasher := blake3.New()
	buf := new(bytes.Buffer)

	buf.WriteString(domain)

	for _, v := range values {
		/* #nosec G104 -- writes to a bytes.Buffer never fail */
		binary.Write(buf, binary.BigEndian, v)
	}

	/* #nosec G104 -- writes to a blake3.Hasher never fail */
	hasher.Write(buf.Bytes())
	return hasher.Sum(nil)[:KeySize]
}

// Read reads bytes from the KeyedPRNG on sum.
// WARNING: Read() should NOT be called concurrently by multiple threads. If that occurs, the generated sequence will not be deterministic.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}
