package keystore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternSharesIdenticalKeys(t *testing.T) {
	s := New()
	a, err := s.Intern("name")
	require.Nil(t, err)
	b, err := s.Intern("name")
	require.Nil(t, err)
	require.Same(t, a, b, "equal key strings must share one key object")
	require.Equal(t, 2, a.Refs())
	require.Equal(t, 1, s.Len())
}

func TestReleaseErasesAtZeroRefcount(t *testing.T) {
	s := New()
	k, err := s.Intern("name")
	require.Nil(t, err)
	require.Equal(t, 1, s.Len())
	s.Release(k)
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.Lookup("name"))
}

func TestKeyLengthLimit(t *testing.T) {
	s := New()
	ok127 := make([]byte, 127)
	_, err := s.Intern(string(ok127))
	require.Nil(t, err)

	tooLong := make([]byte, 128)
	_, err = s.Intern(string(tooLong))
	require.NotNil(t, err)
	require.Equal(t, "capacity", err.Kind.String())
}

func TestLookupDoesNotAffectRefcount(t *testing.T) {
	s := New()
	k, _ := s.Intern("x")
	require.Equal(t, 1, k.Refs())
	found := s.Lookup("x")
	require.Same(t, k, found)
	require.Equal(t, 1, k.Refs())
}

func TestDjb2SeedAndRecurrence(t *testing.T) {
	// h = ((h<<5)+h)+c starting from seed 5381, single-char input 'a'.
	want := uint32(5381)
	want = (want << 5) + want + uint32('a')
	require.Equal(t, want, djb2("a"))
}
