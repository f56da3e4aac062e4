package impact

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImpactCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.ts"), []byte("import './utils';\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "utils.ts"), []byte(""), 0o644))

	out, err := runCommand(t, "-r", dir, filepath.Join(dir, "utils.ts"))
	require.NoError(t, err)

	assert.Contains(t, out, "Impact of changing")
	assert.Contains(t, out, "Impact score: 4.0")
	assert.Contains(t, out, filepath.Join(dir, "main.ts"))
}

func TestImpactCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.ts"), []byte("import './utils';\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "utils.ts"), []byte(""), 0o644))

	out, err := runCommand(t, "-r", dir, "--json", filepath.Join(dir, "utils.ts"))
	require.NoError(t, err)
	assert.Contains(t, out, `"impactScore": 4`)
	assert.Contains(t, out, `"directlyAffected"`)
}

func TestImpactCommand_UnknownFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.ts"), []byte(""), 0o644))

	_, err := runCommand(t, "-r", dir, filepath.Join(dir, "missing.ts"))
	require.Error(t, err)
}

func TestImpactCommand_RequiresArgument(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
}
