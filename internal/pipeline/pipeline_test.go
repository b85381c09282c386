package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"ebe-flow/internal/domain"
	"ebe-flow/internal/filter"
	"ebe-flow/internal/ingest"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func writeGzip(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func drain(t *testing.T, s *Stream) []domain.Event {
	t.Helper()
	var out []domain.Event
	for {
		ev, err := s.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

const twoEvents = "211 1.0 0.0 0.3\n-211 0.8 1.5708 -0.1\n\n2212 0.7 0.5 2.0\n"

func TestOpenSource_PlainFile(t *testing.T) {
	path := writeFile(t, "events.txt", twoEvents)
	rc, err := OpenSource(path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, twoEvents, string(data))
}

func TestOpenSource_Gzip(t *testing.T) {
	path := writeGzip(t, "events.txt.gz", twoEvents)
	rc, err := OpenSource(path)
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, twoEvents, string(data))
	require.NoError(t, rc.Close())
}

func TestOpenSource_BadGzip(t *testing.T) {
	path := writeFile(t, "events.txt.gz", "not gzip at all")
	_, err := OpenSource(path)
	require.Error(t, err)
}

func TestOpenSource_Missing(t *testing.T) {
	_, err := OpenSource(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestOpen_StreamsEvents(t *testing.T) {
	path := writeFile(t, "events.txt", twoEvents)
	s, err := Open([]string{path}, ingest.FormatAuto, nil)
	require.NoError(t, err)
	defer s.Close()

	events := drain(t, s)
	require.Len(t, events, 2)
	require.Equal(t, 2, events[0].Multiplicity())
	require.Equal(t, 1, events[1].Multiplicity())
	require.Equal(t, domain.Particle{ID: 211, PT: 1.0, Phi: 0.0, Eta: 0.3}, events[0][0])
}

func TestOpen_MultipleFilesKeepOrder(t *testing.T) {
	a := writeFile(t, "a.txt", "211 1.0 0.0 0.3\n")
	b := writeFile(t, "b.txt", "2212 0.7 0.5 2.0\n")
	s, err := Open([]string{a, b}, ingest.FormatAuto, nil)
	require.NoError(t, err)
	defer s.Close()

	events := drain(t, s)
	require.Len(t, events, 2)
	require.Equal(t, 211, events[0][0].ID)
	require.Equal(t, 2212, events[1][0].ID)
}

func TestOpen_GzipDetectsUnderlyingName(t *testing.T) {
	// a gzipped std file must not be mistaken for anything else
	path := writeGzip(t, "events.txt.gz", twoEvents)
	s, err := Open([]string{path}, ingest.FormatAuto, nil)
	require.NoError(t, err)
	defer s.Close()

	require.Len(t, drain(t, s), 2)
}

func TestOpen_AppliesFilter(t *testing.T) {
	path := writeFile(t, "events.txt", twoEvents)
	keep, err := filter.Config{IDs: []int{211}}.Build()
	require.NoError(t, err)

	s, err := Open([]string{path}, ingest.FormatAuto, keep)
	require.NoError(t, err)
	defer s.Close()

	events := drain(t, s)
	require.Len(t, events, 1)
	require.Equal(t, 1, events[0].Multiplicity())
	require.Equal(t, 211, events[0][0].ID)
}

func TestOpen_FormatOverride(t *testing.T) {
	// std content in a .f13-named file parses once the override forces std
	path := writeFile(t, "misnamed.f13", twoEvents)

	s, err := Open([]string{path}, ingest.FormatStd, nil)
	require.NoError(t, err)
	defer s.Close()
	require.Len(t, drain(t, s), 2)
}

func TestOpen_ParseErrorSurfaces(t *testing.T) {
	path := writeFile(t, "events.txt", "211 1.0 0.0\n")
	s, err := Open([]string{path}, ingest.FormatAuto, nil)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Next()
	require.ErrorIs(t, err, ingest.ErrFormat)
}

func TestOpen_MissingFileClosesEarlierSources(t *testing.T) {
	a := writeFile(t, "a.txt", "211 1.0 0.0 0.3\n")
	_, err := Open([]string{a, filepath.Join(t.TempDir(), "absent.txt")}, ingest.FormatAuto, nil)
	require.Error(t, err)
}
