package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awantoch/edgebridge/constants"
)

var (
	ErrNotFound     = errors.New("backend directory not found")
	ErrNotDirectory = errors.New("backend path is not a directory")
	ErrUnreadable   = errors.New("backend directory not readable")
	ErrNoAdapterDir = errors.New("adapter directory not set")
)

// Layout is a resolved adapter/backend directory pair. Both paths are absolute and clean.
type Layout struct {
	AdapterDir string
	BackendDir string
}

// Resolve computes the sibling backend directory of adapterDir and checks that
// it exists, is a directory and can be listed. There is no fallback location.
func Resolve(adapterDir, sibling string) (Layout, error) {
	if adapterDir == "" {
		return Layout{}, ErrNoAdapterDir
	}
	if sibling == "" {
		sibling = constants.BackendDirName
	}
	absAdapter, err := filepath.Abs(adapterDir)
	if err != nil {
		return Layout{}, err
	}
	backendDir := filepath.Join(absAdapter, "..", sibling)

	info, err := os.Stat(backendDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{}, fmt.Errorf("%w: %s", ErrNotFound, backendDir)
		}
		return Layout{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, backendDir, err)
	}
	if !info.IsDir() {
		return Layout{}, fmt.Errorf("%w: %s", ErrNotDirectory, backendDir)
	}
	if _, err := os.ReadDir(backendDir); err != nil {
		return Layout{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, backendDir, err)
	}
	return Layout{AdapterDir: absAdapter, BackendDir: backendDir}, nil
}

// AdapterDir returns the adapter's own directory. An explicit dir wins; otherwise
// the working directory is used when it already is the adapter directory (as under
// `go test ./api`), and <cwd>/api when it is the project root (as in the host's task root).
func AdapterDir(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if filepath.Base(wd) == constants.AdapterDirName {
		return wd, nil
	}
	return filepath.Join(wd, constants.AdapterDirName), nil
}

// IsResolution reports whether err came from resolving the backend directory.
func IsResolution(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNotDirectory) ||
		errors.Is(err, ErrUnreadable) ||
		errors.Is(err, ErrNoAdapterDir)
}
