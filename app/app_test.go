package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/keyformat"
	"github.com/tinygenkey/tinygenkey/internal/keygen"
	"github.com/tinygenkey/tinygenkey/internal/render"
)

// execute runs the command tree with a sampler that always draws index 0.
func execute(t *testing.T, stdin string, args ...string) (string, *runtime, error) {
	t.Helper()

	rt := newRuntime(bytes.NewReader(make([]byte, 4096)))
	cmd := newRootCmd(rt)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()

	return out.String(), rt, err
}

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "defaults",
			args:     []string{"generate"},
			expected: strings.Repeat("a", 42) + "\n",
		},
		{
			name:     "preset affixes and count",
			args:     []string{"generate", "-l", "5", "-p", "hex", "--prefix", "k_", "--suffix", "_z", "-n", "2"},
			expected: "k_00000_z\nk_00000_z\n",
		},
		{
			name:     "explicit alphabet",
			args:     []string{"generate", "-l", "3", "-a", "xyz"},
			expected: "xxx\n",
		},
		{
			name:     "grouped",
			args:     []string{"generate", "-l", "8", "-p", "numbers", "--group", "4", "--sep", " "},
			expected: "0000 0000\n",
		},
		{
			name:     "zero length",
			args:     []string{"generate", "-l", "0", "--prefix", "p", "--suffix", "s"},
			expected: "ps\n",
		},
		{
			name:     "config file",
			args:     []string{"--config", "../etc", "generate", "-n", "1"},
			expected: strings.Repeat("a", 32) + "\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	_, _, err := execute(t, "", "generate", "-p", "klingon")
	require.ErrorIs(t, err, alphabet.ErrUnknownPreset)

	_, _, err = execute(t, "", "generate", "-n", "0")
	require.Error(t, err)

	_, _, err = execute(t, "", "generate", "-p", "hex", "-a", "abc")
	require.Error(t, err)

	_, _, err = execute(t, "", "generate", "-l", "9223372036854775807", "--prefix", "x")
	require.ErrorIs(t, err, keygen.ErrInvalidRequest)
}

func TestGenerateEnv(t *testing.T) {
	t.Setenv("TINYGENKEY_GENERATE_LENGTH", "6")
	t.Setenv("TINYGENKEY_GENERATE_PREFIX", "env_")

	out, _, err := execute(t, "", "generate")
	require.NoError(t, err)
	assert.Equal(t, "env_aaaaaa\n", out)

	// flags beat env
	out, _, err = execute(t, "", "generate", "-l", "2")
	require.NoError(t, err)
	assert.Equal(t, "env_aa\n", out)
}

func TestGenerateConfigJSON(t *testing.T) {
	t.Setenv("TINYGENKEY_CONFIG_JSON", `{"Generate":{"Alphabet":"q","Length":4}}`)

	out, _, err := execute(t, "", "generate")
	require.NoError(t, err)
	assert.Equal(t, "qqqq\n", out)

	// a preset flag overrides the configured alphabet
	out, _, err = execute(t, "", "generate", "-p", "numbers")
	require.NoError(t, err)
	assert.Equal(t, "0000\n", out)
}

func TestVerify(t *testing.T) {
	out, _, err := execute(t, "", "verify", "-p", "hex", "--min", "4", "--max", "4", "--prefix", "k_", "k_beef")
	require.NoError(t, err)
	assert.Contains(t, out, "VALID")
	assert.NotContains(t, out, "INVALID")

	out, _, err = execute(t, "", "verify", "-p", "lowercase", "--min", "5", "abc", "ab1_")
	require.ErrorIs(t, err, ErrInvalidKeys)
	assert.Contains(t, out, "key 1 out of 2: abc")
	assert.Contains(t, out, "Too small (length of key): 3")
	assert.Contains(t, out, "Invalid characters: 1, _")
}

func TestVerifyJSON(t *testing.T) {
	out, _, err := execute(t, "", "verify", "-o", "json", "anything")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)

	assert.Equal(t, true, reports[0]["valid"])
	assert.Nil(t, reports[0]["expected_charset"])
	assert.Nil(t, reports[0]["min_length"])
	assert.NotContains(t, reports[0], "key_number")
	assert.Len(t, reports[0]["hints"], 1)
}

func TestVerifyEmptyAlphabet(t *testing.T) {
	out, _, err := execute(t, "", "verify", "-a", "", "-o", "yaml", "x")
	require.ErrorIs(t, err, ErrInvalidKeys)
	assert.Contains(t, out, "Invalid characters: x")
}

func TestVerifyEnvBounds(t *testing.T) {
	t.Setenv("TINYGENKEY_VERIFY_MIN", "10")

	out, _, err := execute(t, "", "verify", "short")
	require.ErrorIs(t, err, ErrInvalidKeys)
	assert.Contains(t, out, "Too small (length of key): 5")
}

func TestVerifyErrors(t *testing.T) {
	_, _, err := execute(t, "", "verify", "-o", "xml", "abc")
	require.ErrorIs(t, err, render.ErrUnknownFormat)

	_, _, err = execute(t, "", "verify", "-p", "klingon", "abc")
	require.ErrorIs(t, err, alphabet.ErrUnknownPreset)

	_, _, err = execute(t, "", "verify")
	require.Error(t, err)
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "", "--config", "../etc", "presets", "-o", "json")
	require.NoError(t, err)

	var list []render.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &list))

	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}

	assert.Equal(t, alphabet.Alphanumeric, names[0])
	assert.Equal(t, []string{"binary", "vowels"}, names[len(names)-2:])
}

func TestFormat(t *testing.T) {
	out, _, err := execute(t, "", "format", "ABCDEFGHIJ", "xy")
	require.NoError(t, err)
	assert.Equal(t, "ABCD-EFGH-IJ\nxy\n", out)

	out, _, err = execute(t, "", "format", "--group", "5", "--sep", ".", "ABCDEFGHIJ")
	require.NoError(t, err)
	assert.Equal(t, "ABCDE.FGHIJ\n", out)

	_, _, err = execute(t, "", "format", "--group", "0", "ABC")
	require.ErrorIs(t, err, keyformat.ErrInvalidGroupSize)
}

func TestRepl(t *testing.T) {
	out, _, err := execute(t, "quick\nexit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Here's your quick key: "+strings.Repeat("a", 42))
	assert.Contains(t, out, "Goodbye!")
}

func TestConfigDump(t *testing.T) {
	out, _, err := execute(t, "", "--config", "../etc", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[Generate]")
	assert.Contains(t, out, "binary")

	out, _, err = execute(t, "", "config", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Length": 42`)

	_, _, err = execute(t, "", "config", "-o", "ini")
	require.ErrorIs(t, err, ErrUnknownDumpFormat)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := execute(t, "", "--config", t.TempDir(), "generate")
	require.Error(t, err)
}

func TestMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tinygenkey.prom")

	_, rt, err := execute(t, "", "--metrics-file", path, "generate", "-n", "3")
	require.NoError(t, err)
	require.NoError(t, rt.writeMetrics())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tinygenkey_keys_generated_total")
	assert.Contains(t, string(data), "tinygenkey_sampler_draws_total")

	_, rt, err = execute(t, "", "presets")
	require.NoError(t, err)
	require.NoError(t, rt.writeMetrics())
}
