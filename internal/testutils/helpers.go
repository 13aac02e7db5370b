package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree creates a temporary directory populated with files and returns its
// absolute path. Keys are slash-separated paths relative to the root; a key
// ending in "/" creates an empty directory. It fails the test immediately on
// error.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755), "Failed to create %s", name)
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create parent of %s", name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	}

	return root
}

// VersionFiles returns the two documents of a version directory keyed for
// WriteTree, under dir (e.g. "dev/v1").
func VersionFiles(dir, config, schema string) map[string]string {
	return map[string]string{
		dir + "/app-config.json":        config,
		dir + "/app-config-schema.json": schema,
	}
}

// Merge combines several file maps into one.
func Merge(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
