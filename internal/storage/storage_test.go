package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("missing")
	require.False(t, ok)

	require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
	got, ok := s.Get("k")
	require.True(t, ok)
	require.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, s.Remove("k"))
	_, ok = s.Get("k")
	require.False(t, ok)
}

func TestGetJSONFailsSoftOnMalformedValue(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Set("k", []byte("{not json")))

	var v map[string]int
	require.False(t, GetJSON(s, "k", &v))
	require.False(t, GetJSON(s, "absent", &v))
}

func TestSetJSONThenGetJSON(t *testing.T) {
	s := NewMemStore()
	in := map[string]string{"theme": "modern-blue"}
	require.NoError(t, SetJSON(s, "k", in))

	var out map[string]string
	require.True(t, GetJSON(s, "k", &out))
	require.Equal(t, in, out)
}
