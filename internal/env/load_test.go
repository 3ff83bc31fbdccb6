package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadSetsUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nPOOL_TEST_ASSETS=\"/srv/assets\"\nPOOL_TEST_KEEP=file\n"), 0644))
	t.Setenv("POOL_TEST_KEEP", "env")
	t.Setenv("POOL_TEST_ASSETS", "")
	require.NoError(t, os.Unsetenv("POOL_TEST_ASSETS"))

	require.NoError(t, Load(path))
	assert.Equal(t, "/srv/assets", os.Getenv("POOL_TEST_ASSETS"))
	assert.Equal(t, "env", os.Getenv("POOL_TEST_KEEP"))
}
