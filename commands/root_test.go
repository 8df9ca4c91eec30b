package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/marykwonn/Project-Texas/internal/application/render"
	"github.com/marykwonn/Project-Texas/internal/config"
	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplesCSV = `PROJECT_NAME,WELL_COMMON_NAME,API_SUFFIX,MD,TVDSS,MAP_NORTHING,MAP_EASTING,mrkname,top_perf,bot_perf,frac_flag,perf_status
LBU,A374,01,100,500,1000,2000,,,,,
LBU,A374,01,200,1500,1001,2001,F0,4100,4150,F,ACTIVE
LBU,A547,00,150,450,900,1900,G4,,,X,
LBU,Z999,00,120,400,800,1800,AA,,,,
LBU,A547,,250,600,901,1901,H1,,,,
`

func writeSamples(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/test/path",
			expected: func(home string) string {
				return filepath.Join(home, "test/path")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path",
			expected: func(home string) string {
				return "/absolute/path"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected(home), expandPath(tt.input))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, ensureDir(testDir))
	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	assert.NoError(t, ensureDir(testDir))
}

func TestRootCommandFlags(t *testing.T) {
	rootCmd := newRootCmd()

	tests := []struct {
		flag         string
		defaultValue string
		shorthand    string
	}{
		{"input", "", "i"},
		{"fault", "", ""},
		{"fault-name", "", ""},
		{"header-lines", "-1", ""},
		{"region", config.DefaultRegion, ""},
		{"wells", "[]", ""},
		{"output", "json", "o"},
		{"out", "-", ""},
		{"debug", "false", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, tt.defaultValue, flag.DefValue)
			if tt.shorthand != "" {
				assert.Equal(t, tt.shorthand, flag.Shorthand)
			}
		})
	}

	for _, name := range []string{"render", "markers", "wells", "watch"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)

	cfgPath := filepath.Join(dir, "wellviz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
regions:
  north:
    title: North Block
    wells: [A547]
fault:
  path: faults/WILM.dat
  header_lines: 20
`), 0644))

	tests := []struct {
		name        string
		opts        options
		wells       []string
		title       string
		headerLines int
		faultName   string
	}{
		{
			name:        "default_region",
			opts:        options{input: input, region: config.DefaultRegion, headerLines: -1},
			wells:       config.DefaultWells,
			title:       "LBU -SAMPLE",
			headerLines: 0,
			faultName:   "WILM",
		},
		{
			name:        "explicit_wells_override_region",
			opts:        options{input: input, region: "missing", wells: []string{"A374"}, headerLines: 3, faultName: "Newport"},
			wells:       []string{"A374"},
			title:       "LBU -SAMPLE",
			headerLines: 3,
			faultName:   "Newport",
		},
		{
			name:        "configured_region",
			opts:        options{input: input, region: "north", configPath: cfgPath, headerLines: -1},
			wells:       []string{"A547"},
			title:       "North Block",
			headerLines: 20,
			faultName:   "WILM",
		},
		{
			name:        "all_wells_with_title",
			opts:        options{input: input, allWells: true, title: "Everything", headerLines: -1},
			title:       "Everything",
			headerLines: 0,
			faultName:   "WILM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			rc, err := setup(&opts)
			require.NoError(t, err)

			assert.Equal(t, input, rc.InputPath)
			assert.Equal(t, tt.wells, rc.Wells)
			assert.Equal(t, tt.title, rc.Layout.Title)
			assert.Equal(t, tt.headerLines, rc.HeaderLines)
			assert.Equal(t, tt.faultName, rc.FaultName)
			assert.Equal(t, 1400, rc.Layout.Height)
		})
	}

	t.Run("config_fault_path_is_absolute", func(t *testing.T) {
		rc, err := setup(&options{input: input, allWells: true, configPath: cfgPath, headerLines: -1})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(rc.FaultPath))
		assert.Equal(t, "WILM.dat", filepath.Base(rc.FaultPath))
	})
}

func TestSetupErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)

	_, err := setup(&options{region: config.DefaultRegion, headerLines: -1})
	assert.ErrorContains(t, err, "--input")

	_, err = setup(&options{input: input, region: "nowhere", headerLines: -1})
	assert.ErrorIs(t, err, config.ErrUnknownRegion)

	_, err = setup(&options{input: input, configPath: filepath.Join(dir, "absent.yaml")})
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)

	faultPath := filepath.Join(dir, "WILM.dat")
	require.NoError(t, os.WriteFile(faultPath, []byte("X Y Z\n0 0 1000\n1 0 1000\n0 1 1100\n"), 0644))

	out, err := execute(t, "--input", input, "--fault", faultPath, "--header-lines", "1")
	require.NoError(t, err)

	var fig model.Figure
	require.NoError(t, sonic.UnmarshalString(out, &fig))

	// Z999 is outside the default region and the A547 row without a suffix
	// is dropped.
	require.Len(t, fig.Data, 2*4+1)
	assert.Equal(t, "A374_01", fig.Data[0].Name)
	assert.Equal(t, "A547_00", fig.Data[2].Name)
	assert.Equal(t, "WILM", fig.Data[8].Name)
	assert.Equal(t, model.TraceMesh3D, fig.Data[8].Type)
	assert.Equal(t, []string{"G4", "FO"}, fig.MarkerOptions)
	assert.Equal(t, "LBU -SAMPLE", fig.Layout.Title)
}

func TestRenderCommandToFile(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)
	outPath := filepath.Join(dir, "out", "summary.txt")

	stdout, err := execute(t, "render", "--input", input, "--all-wells", "-o", "summary", "--out", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Z999_00")
	assert.Contains(t, string(data), "Wells: 3")
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)

	tests := []struct {
		name string
		args []string
	}{
		{"missing_input", nil},
		{"unsupported_input", []string{"--input", filepath.Join(dir, "samples.parquet")}},
		{"unknown_format", []string{"--input", input, "-o", "svg"}},
		{"missing_fault", []string{"--input", input, "--fault", filepath.Join(dir, "absent.dat")}},
		{"unexpected_argument", []string{"render", "extra", "--input", input}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestMarkersCommand(t *testing.T) {
	input := writeSamples(t, t.TempDir(), samplesCSV)

	out, err := execute(t, "markers", "--input", input, "--all-wells")
	require.NoError(t, err)
	// First-seen order by MD, not sorted.
	assert.Equal(t, "AA\nG4\nFO\n", out)
}

func TestWellsCommand(t *testing.T) {
	input := writeSamples(t, t.TempDir(), samplesCSV)

	out, err := execute(t, "wells", "--input", input, "--wells", "A374,A547")
	require.NoError(t, err)
	assert.Equal(t, "A374_01\t2\nA547_00\t1\n", out)
}

func TestWatchCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)
	outPath := filepath.Join(dir, "wells.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"watch", "--input", input, "--all-wells", "-o", "csv", "--out", outPath})

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	readOut := func() string {
		data, _ := os.ReadFile(outPath)
		return string(data)
	}
	require.Eventually(t, func() bool {
		return strings.Contains(readOut(), "Z999_00")
	}, 5*time.Second, 20*time.Millisecond)
	assert.NotContains(t, readOut(), "J155_02")

	updated := samplesCSV + "LBU,J155,02,100,400,800,1800,,,,,\n"
	require.NoError(t, os.WriteFile(input, []byte(updated), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(readOut(), "J155_02")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestFailedRenderKeepsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)
	outPath := filepath.Join(dir, "plot.json")

	_, err := execute(t, "--input", input, "--all-wells", "--out", outPath)
	require.NoError(t, err)
	good, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.NotEmpty(t, good)

	// A save caught halfway through leaves only part of the header.
	require.NoError(t, os.WriteFile(input, []byte("PROJECT_NAME,WELL_COMMON_NAME\n"), 0644))
	_, err = execute(t, "--input", input, "--all-wells", "--out", outPath)
	require.Error(t, err)

	after, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, good, after)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temporary output left behind")
	}
}

func TestRenderToHonorsContext(t *testing.T) {
	dir := t.TempDir()
	input := writeSamples(t, dir, samplesCSV)
	outPath := filepath.Join(dir, "plot.json")
	require.NoError(t, os.WriteFile(outPath, []byte("previous"), 0644))

	rc, err := setup(&options{input: input, allWells: true, headerLines: -1, outputFormat: "json"})
	require.NoError(t, err)
	r, err := render.New(rc)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = renderTo(ctx, newRootCmd(), r, outPath)
	assert.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}
