package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EXPLORER_TEST_PORT=4000\nEXPLORER_TEST_KEPT=file\n"), 0o600))
	t.Setenv("EXPLORER_TEST_KEPT", "env")
	t.Cleanup(func() { os.Unsetenv("EXPLORER_TEST_PORT") })

	Load(path, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "4000", os.Getenv("EXPLORER_TEST_PORT"))
	assert.Equal(t, "env", os.Getenv("EXPLORER_TEST_KEPT"))
}
