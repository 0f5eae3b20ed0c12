package vault

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSealer(t *testing.T) *Sealer {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	s, err := New(key)
	require.NoError(t, err)
	return s
}

func TestNew_RejectsBadKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "not hex", key: strings.Repeat("zz", 32)},
		{name: "too short", key: strings.Repeat("ab", 16)},
		{name: "too long", key: strings.Repeat("ab", 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.key)
			require.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestSealOpen(t *testing.T) {
	t.Parallel()

	s := newSealer(t)

	sealed, err := s.Seal("listing-1", []byte("sk_live_123"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "sk_live_123")

	plain, err := s.Open("listing-1", sealed)
	require.NoError(t, err)
	assert.Equal(t, "sk_live_123", string(plain))
}

func TestOpen_Failures(t *testing.T) {
	t.Parallel()

	s := newSealer(t)
	sealed, err := s.Seal("listing-1", []byte("secret"))
	require.NoError(t, err)

	_, err = s.Open("listing-2", sealed)
	require.ErrorIs(t, err, ErrOpen, "sealed data is bound to its listing")

	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0xff
	_, err = s.Open("listing-1", tampered)
	require.ErrorIs(t, err, ErrOpen)

	_, err = s.Open("listing-1", []byte("short"))
	require.ErrorIs(t, err, ErrOpen)

	other := newSealer(t)
	_, err = other.Open("listing-1", sealed)
	require.ErrorIs(t, err, ErrOpen)
}

func TestSeal_UniqueNonces(t *testing.T) {
	t.Parallel()

	s := newSealer(t)
	a, err := s.Seal("l", []byte("same"))
	require.NoError(t, err)
	b, err := s.Seal("l", []byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
