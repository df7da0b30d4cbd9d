package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/awantoch/edgebridge/constants"
)

// NewTree creates a temporary project root containing the adapter directory and,
// when withBackend is set, its sibling backend directory. It returns the adapter
// directory; the root is its parent.
func NewTree(t testing.TB, withBackend bool) string {
	t.Helper()
	root := t.TempDir()
	adapterDir := filepath.Join(root, constants.AdapterDirName)
	if err := os.MkdirAll(adapterDir, 0o755); err != nil {
		t.Fatalf("create adapter dir: %v", err)
	}
	if withBackend {
		if err := os.MkdirAll(filepath.Join(root, constants.BackendDirName), 0o755); err != nil {
			t.Fatalf("create backend dir: %v", err)
		}
	}
	return adapterDir
}
