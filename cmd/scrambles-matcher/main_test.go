package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
)

const wcifDoc = `{"formatVersion":"1.0","id":"WinterOpen2019","name":"Winter Open 2019","shortName":"Winter 2019","events":[],"persons":[]}`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportWCIFToFile(t *testing.T) {
	in := writeFile(t, "wcif.json", wcifDoc)
	out := filepath.Join(t.TempDir(), "out.json")

	_, _, err := execute(t, "import", "wcif", in, "-o", out, "--format", "json")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"formatVersion":"1.0","id":"WinterOpen2019","name":"Winter Open 2019","shortName":"Winter 2019","schedule":null,"events":[],"persons":[]}`, string(data))
}

func TestImportWCIFAsYAML(t *testing.T) {
	in := writeFile(t, "wcif.json", wcifDoc)

	stdout, _, err := execute(t, "import", "wcif", in, "-o", "", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "WinterOpen2019", doc["id"])
	assert.Equal(t, "Winter 2019", doc["shortName"])
}

func TestImportFailures(t *testing.T) {
	t.Run("read failure alerts", func(t *testing.T) {
		_, stderr, err := execute(t, "import", "xlsx", filepath.Join(t.TempDir(), "missing.xlsx"), "-o", "")
		require.ErrorIs(t, err, importer.ErrReadFailed)
		assert.Contains(t, stderr, importer.ReadFailedMessage)
	})

	t.Run("malformed input", func(t *testing.T) {
		in := writeFile(t, "broken.json", `{"persons": {}`)
		_, stderr, err := execute(t, "import", "wcif", in, "-o", "")
		require.ErrorIs(t, err, importer.ErrMalformedInput)
		assert.NotContains(t, stderr, importer.ReadFailedMessage)
	})

	t.Run("invalid format", func(t *testing.T) {
		in := writeFile(t, "wcif.json", wcifDoc)
		_, _, err := execute(t, "import", "wcif", in, "-o", "", "--format", "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}

func TestLoginRequiresClientID(t *testing.T) {
	_, _, err := execute(t, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wca.client_id")
}

func TestLoginPrintsAuthorizeURL(t *testing.T) {
	t.Setenv("SCRAMBLES_MATCHER_WCA_CLIENT_ID", "client")

	stdout, _, err := execute(t, "login", "--code", "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://www.worldcubeassociation.org/oauth/authorize?")
	assert.Contains(t, stdout, "client_id=client")
}
