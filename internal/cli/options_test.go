package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ebe-flow/internal/domain"
	"ebe-flow/internal/ingest"
)

func parse(t *testing.T, args ...string) (*Options, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var o Options
	o.Register(fs)
	require.NoError(t, fs.Parse(args))
	return &o, fs
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs("211,-211, 2212")
	require.NoError(t, err)
	require.Equal(t, []int{211, -211, 2212}, ids)

	_, err = ParseIDs("211,pi+")
	require.Error(t, err)
	_, err = ParseIDs("")
	require.Error(t, err)
}

func TestResolve_Defaults(t *testing.T) {
	o, fs := parse(t)
	cfg, format, keep, err := o.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, ingest.FormatAuto, format)
	require.Nil(t, keep)
	require.Equal(t, 2, cfg.Flow.VnMin)
	require.Equal(t, 6, cfg.Flow.VnMax)
}

func TestResolve_ShortAndLongFlagsAgree(t *testing.T) {
	for _, args := range [][]string{
		{"-f", "urqmd", "-p", "0.5"},
		{"--format", "urqmd", "--ptmin", "0.5"},
	} {
		o, fs := parse(t, args...)
		cfg, format, keep, err := o.Resolve(fs)
		require.NoError(t, err)
		require.Equal(t, ingest.FormatURQMD, format)
		require.NotNil(t, keep)
		require.NotNil(t, cfg.Filter.PTMin)
		require.Equal(t, 0.5, *cfg.Filter.PTMin)
	}
}

func TestResolve_ZeroValuedFlagCounts(t *testing.T) {
	// an explicit -p 0 is a cut at zero, not an absent cut
	o, fs := parse(t, "-p", "0")
	cfg, _, _, err := o.Resolve(fs)
	require.NoError(t, err)
	require.NotNil(t, cfg.Filter.PTMin)
	require.Equal(t, 0.0, *cfg.Filter.PTMin)
}

func TestResolve_AtlasPreset(t *testing.T) {
	o, fs := parse(t, "--atlas")
	cfg, _, keep, err := o.Resolve(fs)
	require.NoError(t, err)
	require.True(t, cfg.Filter.Charged)
	require.Equal(t, 0.5, *cfg.Filter.PTMin)
	require.Equal(t, 2.5, *cfg.Filter.EtaMax)

	// soft neutral particle fails, hard charged one passes
	require.False(t, keep(domain.Particle{ID: 22, PT: 1.0, Eta: 0.1}))
	require.True(t, keep(domain.Particle{ID: 211, PT: 1.0, Eta: 0.1}))

	// explicit cuts still win over the preset
	o, fs = parse(t, "--atlas", "-p", "1.0")
	cfg, _, _, err = o.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, 1.0, *cfg.Filter.PTMin)
}

func TestResolve_ConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
format: urqmd
filter:
  pt_min: 0.2
  eta_max: 1.0
`), 0o644))

	o, fs := parse(t, "--config", path, "-p", "0.4")
	cfg, format, keep, err := o.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, ingest.FormatURQMD, format)
	require.NotNil(t, keep)
	// flag beats file, file beats default
	require.Equal(t, 0.4, *cfg.Filter.PTMin)
	require.Equal(t, 1.0, *cfg.Filter.EtaMax)
}

func TestResolve_Errors(t *testing.T) {
	o, fs := parse(t, "-f", "hepmc")
	_, _, _, err := o.Resolve(fs)
	require.Error(t, err)

	o, fs = parse(t, "-i", "211", "-c")
	_, _, _, err = o.Resolve(fs)
	require.Error(t, err)

	o, fs = parse(t, "-i", "banana")
	_, _, _, err = o.Resolve(fs)
	require.Error(t, err)

	o, fs = parse(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	_, _, _, err = o.Resolve(fs)
	require.Error(t, err)
}
