package ingest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ebe-flow/internal/domain"
)

func TestStdReader_SingleParticle(t *testing.T) {
	r := NewStdReader(strings.NewReader("1 0.5 0.1 -0.2\n"), "test")

	p, sep, err := r.Read()
	require.NoError(t, err)
	require.False(t, sep)
	require.Equal(t, domain.Particle{ID: 1, PT: 0.5, Phi: 0.1, Eta: -0.2}, p)

	_, _, err = r.Read()
	require.Equal(t, io.EOF, err)
}

func TestStdReader_BlankLineIsBoundary(t *testing.T) {
	r := NewStdReader(strings.NewReader("211 1 0 0.3\n\n-211 0.8 1.5 -0.1\n"), "test")

	_, sep, err := r.Read()
	require.NoError(t, err)
	require.False(t, sep)

	_, sep, err = r.Read()
	require.NoError(t, err)
	require.True(t, sep, "blank line must be a boundary, not a particle")

	p, sep, err := r.Read()
	require.NoError(t, err)
	require.False(t, sep)
	require.Equal(t, -211, p.ID)
}

func TestStdReader_WhitespaceOnlyLineIsBoundary(t *testing.T) {
	r := NewStdReader(strings.NewReader("  \t \n"), "test")

	_, sep, err := r.Read()
	require.NoError(t, err)
	require.True(t, sep)
}

func TestStdReader_WrongFieldCount(t *testing.T) {
	for _, in := range []string{"211 1.0 0.0\n", "211 1.0 0.0 0.3 extra\n"} {
		r := NewStdReader(strings.NewReader(in), "test")
		_, _, err := r.Read()
		require.ErrorIs(t, err, ErrFormat, "input %q", in)
	}
}

func TestStdReader_BadNumericField(t *testing.T) {
	cases := []string{
		"abc 1.0 0.0 0.3\n", // non-integer ID
		"211 x 0.0 0.3\n",   // bad pT
		"211 1.0 y 0.3\n",   // bad phi
		"211 1.0 0.0 z\n",   // bad eta
	}
	for _, in := range cases {
		r := NewStdReader(strings.NewReader(in), "test")
		_, _, err := r.Read()
		require.ErrorIs(t, err, ErrFormat, "input %q", in)
	}
}

func TestStdReader_RoundTrip(t *testing.T) {
	ev := domain.Event{
		{ID: 211, PT: 1.0, Phi: 0.0, Eta: 0.3},
		{ID: -211, PT: 0.8, Phi: 1.5707963267948966, Eta: -0.1},
		{ID: 2212, PT: 0.123456789012345, Phi: -3.0000000000000004, Eta: 2.5},
	}

	var sb strings.Builder
	for _, p := range ev {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}

	r := NewStdReader(strings.NewReader(sb.String()), "roundtrip")
	var got domain.Event
	for {
		p, sep, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.False(t, sep)
		got = append(got, p)
	}

	require.Equal(t, ev, got, "serialize/parse must be field-for-field lossless")
}
