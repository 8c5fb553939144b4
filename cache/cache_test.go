package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, stat.IsDir())

	require.NoError(t, EnsureDir(dir), "existing directory")
}

func TestFile(t *testing.T) {
	fn := File("archctl.log")
	require.True(t, strings.HasSuffix(fn, "/archctl/archctl.log"))
	require.True(t, strings.HasPrefix(fn, Dir()))
}
