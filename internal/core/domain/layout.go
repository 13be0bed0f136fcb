package domain

import "path/filepath"

const (
	// PlansyncDirName is the name of the internal data directory.
	PlansyncDirName = ".plansync"

	// StoreDirName is the name of the key-value store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "plansync.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPlansyncPath returns the default root directory for plansync metadata.
func DefaultPlansyncPath() string {
	return PlansyncDirName
}

// DefaultStorePath returns the default path for the key-value store.
// It joins .plansync and store.
func DefaultStorePath() string {
	return filepath.Join(PlansyncDirName, StoreDirName)
}
