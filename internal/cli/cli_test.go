package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/cli"
	"github.com/econum/cableviz/internal/config"
)

const hotPrediction = `{
  "temperatures": [25.0, 60.0, 95.0],
  "timestamps": [0, 60000, 120000],
  "execution_time_seconds": 0.42,
  "carbon_emissions_kg": 0.0000005
}`

const coolPrediction = `{
  "temperatures": [20.0, 30.0],
  "timestamps": [0, 60000],
  "code_carbon": {"emissions": 0.004, "cpu_energy": 0.001, "ram_energy": 0.001}
}`

// setupCLITest isolates the configuration directory and global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CABLEVIZ_HOME", home)
	t.Setenv("CABLEVIZ_LOG_LEVEL", "error")
	t.Setenv("CABLEVIZ_PROJECT_CONFIG", filepath.Join(home, "none.yaml"))
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRender_File(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "hot.json", hotPrediction)

	out, err := execute(t, "", "render", path, "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "95.00°C Max")
	assert.Contains(t, out, "Empreinte Carbone")
	assert.Contains(t, out, "0.000500 g CO₂")
	assert.Contains(t, out, "0 ms")
}

func TestRender_Stdin(t *testing.T) {
	setupCLITest(t)

	for _, args := range [][]string{{"render"}, {"render", "-"}} {
		out, err := execute(t, coolPrediction, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "30.00°C Max")
		assert.Contains(t, out, "Impact Faible")
	}
}

func TestRender_Flags(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "hot.json", hotPrediction)

	out, err := execute(t, "", "render", path, "--view", "energy", "--policy", "minutes")
	require.NoError(t, err)
	assert.Contains(t, out, "Énergie totale consommée")
	assert.Contains(t, out, "120000 min")
}

func TestRender_Errors(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "hot.json", hotPrediction)
	broken := writeFile(t, home, "broken.json", "{")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unknown policy", "", []string{"render", path, "--policy", "weekly"}, "unknown axis policy"},
		{"unknown view", "", []string{"render", path, "--view", "costs"}, "costs"},
		{"broken file", "", []string{"render", broken}, "broken.json"},
		{"missing file", "", []string{"render", filepath.Join(home, "nope.json")}, "nope.json"},
		{"stdin twice", hotPrediction, []string{"render", "-", "-"}, "stdin given 2 times"},
		{"empty stdin", "", []string{"render"}, "stdin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_MultipleFiles(t *testing.T) {
	home := setupCLITest(t)
	hot := writeFile(t, home, "hot.json", hotPrediction)
	cool := writeFile(t, home, "cool.json", coolPrediction)

	out, err := execute(t, "", "render", cool, hot)
	require.NoError(t, err)
	first := strings.Index(out, "30.00°C Max")
	second := strings.Index(out, "95.00°C Max")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "reports follow the argument order")
}

func TestRender_RecordAndHistory(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "hot.json", hotPrediction)

	out, err := execute(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded runs.")

	_, err = execute(t, "", "render", path, "--record")
	require.NoError(t, err)
	_, err = execute(t, coolPrediction, "render", "--record")
	require.NoError(t, err)

	out, err = execute(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "danger")
	assert.Contains(t, out, "95.00°C")
	assert.Contains(t, out, "Faible")

	out, err = execute(t, "", "history", "list", "--limit", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, path, "the newest run comes from stdin")
	assert.FileExists(t, filepath.Join(home, "history.db"))
}

func TestRender_MetricsTextfile(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "hot.json", hotPrediction)
	prom := filepath.Join(home, "cableviz.prom")

	_, err := execute(t, "", "render", path, path, "--metrics-textfile", prom)
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cableviz_renders_total{status="danger"} 2`)
	assert.Contains(t, string(data), "cableviz_peak_temperature_celsius 95")
}

func TestConfig_InitShowValidate(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, err = execute(t, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "gauge:")
	assert.Contains(t, out, "max: 120")

	out, err = execute(t, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfig_Overrides(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "hot.json", hotPrediction)
	custom := writeFile(t, home, "custom.yaml", "thresholds:\n  warning_celsius: 96\n  danger_celsius: 99\n")

	_, err := execute(t, "", "--config", custom, "render", path, "--record")
	require.NoError(t, err)
	out, err := execute(t, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "safe", "95 is below the custom warning threshold")

	t.Setenv("CABLEVIZ_GAUGE_MAX", "-1")
	_, err = execute(t, "", "render", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

func TestConfig_Decimals(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, home, "cool.json", coolPrediction)

	two := writeFile(t, home, "two.yaml", "display:\n  decimals: 2\n")
	out, err := execute(t, "", "--config", two, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4.00 mg")
	assert.NotContains(t, out, "4.000000 mg")

	zero := writeFile(t, home, "zero.yaml", "display:\n  decimals: 0\n")
	_, err = execute(t, "", "--config", zero, "render", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.decimals")
}

func TestConfig_InitRepairsBrokenFile(t *testing.T) {
	home := setupCLITest(t)
	writeFile(t, home, "config.yaml", "gauge: [")

	_, err := execute(t, "", "config", "show")
	require.Error(t, err)

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
	_, err = execute(t, "", "config", "show")
	require.NoError(t, err)
}

func TestRootCmd(t *testing.T) {
	setupCLITest(t)
	root := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "cableviz", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"render", "view", "history", "config"})
}
