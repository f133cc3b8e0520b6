package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/greeknames"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("RULES_DIR", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCorrectText(t *testing.T) {
	out, err := execute(t, "", "γιώργος", "παπαδόπουλος", "--case", "vocative")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Γιώργο Παπαδόπουλο", lines[0])
	assert.Contains(t, out, "Γιώργος Παπαδόπουλος")
	assert.Contains(t, out, "Last name:")
}

func TestCorrectJSON(t *testing.T) {
	out, err := execute(t, "", "--name", "giorgos papadopoulos",
		"--transliterate", "greeklish-to-greek", "--suggest-corrections", "--genitive", "-o", "json")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "Γιώργος Παπαδοπουλος", m["corrected"])
	assert.Equal(t, "Γιώργος Παπαδοπουλος", m["output"])
	assert.Equal(t, "Γιώργου Παπαδοπουλου", m["genitive"])
	assert.Equal(t, true, m["was_corrected"])
}

func TestCorrectYAML(t *testing.T) {
	out, err := execute(t, "", "Δρ", "Μαρία", "Παπαδοπούλου", "--detect-gender", "-o", "yaml")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "Δρ Μαρία Παπαδοπούλου", m["corrected"])
	assert.Equal(t, "Δρ", m["title"])
	assert.Equal(t, "female", m["gender"])
}

func TestCorrectErrors(t *testing.T) {
	_, err := execute(t, "")
	assert.ErrorIs(t, err, errNoName)

	_, err = execute(t, "", "Νίκος", "--case", "dative")
	assert.ErrorIs(t, err, greeknames.ErrUnknownCase)

	_, err = execute(t, "", "Νίκος", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestBatchText(t *testing.T) {
	input := "γιώργος παπαδόπουλος\n\nνίκος ξινός\nμαρία\n"
	out, err := execute(t, input, "batch", "-", "--case", "vocative", "-q", "--workers", "2")
	require.NoError(t, err)

	assert.Equal(t, "Γιώργο Παπαδόπουλο\nΝίκο Ξινέ\nΜαρία\n", out)
}

func TestBatchFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("κωνσταντίνος\nελένη\n"), 0o644))

	out, err := execute(t, "", "batch", path, "--case", "accusative", "-o", "json", "-q")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Κωνσταντίνο", first["output"])
	assert.Equal(t, "Κωνσταντίνος", first["corrected"])
}

func TestBatchRecords(t *testing.T) {
	input := `{"id": 1, "name": "νίκος παπαδόπουλος"}
{"id": 2}
`
	out, err := execute(t, input, "batch", "-", "--json-key", "name", "--output-key", "fixed", "-q")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "Νίκος Παπαδόπουλος", rec["fixed"])
	assert.EqualValues(t, 1, rec["id"])

	var rec2 map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec2))
	assert.EqualValues(t, 2, rec2["id"])
	assert.NotContains(t, rec2, "fixed")
}

func TestBatchErrors(t *testing.T) {
	_, err := execute(t, "{not json\n", "batch", "-", "--json-key", "name", "-q")
	assert.ErrorContains(t, err, "line 1")

	_, err = execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"), "-q")
	assert.ErrorContains(t, err, "open input")
}

func TestRulesCommand(t *testing.T) {
	dir := t.TempDir()
	doc := "## Μικρά ονόματα\n- Στέλιος → Στέλιο\n- Λάμπρος → Λάμπρο\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, greeknames.VocativeRulesFile), []byte(doc), 0o644))

	out, err := execute(t, "", "rules", "--rules-dir", dir, "-o", "json")
	require.NoError(t, err)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "vocative", summaries[0]["case"])
	assert.EqualValues(t, 2, summaries[0]["first_names_in_o"])
	assert.EqualValues(t, 2, summaries[0]["examples"])

	out, err = execute(t, "", "Στέλιος", "--case", "vocative", "--rules-dir", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Στέλιο\n"), out)

	_, err = execute(t, "", "rules")
	assert.ErrorContains(t, err, "no rule documents loaded")

	_, err = execute(t, "", "rules", "--rules-dir", dir, "--case", "genitive")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "greekname dev")
}
