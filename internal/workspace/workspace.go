// Package workspace manages the ephemeral on-disk area owned by one judge run.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minijudge/minijudge/internal/language"
)

const artifactName = "program"

// Workspace is a scoped filesystem resource holding one submission's source
// file and compiled artifact. It is exclusively owned by the run that acquired
// it and must be released on every exit path.
type Workspace struct {
	Root       string
	SourcePath string
}

// Acquire creates a fresh uniquely named directory and writes the submission
// source into it, named per the language profile. Callers must pair every
// successful Acquire with a deferred Release.
func Acquire(runID, sourceCode string, profile language.Profile) (*Workspace, error) {
	root, err := os.MkdirTemp("", fmt.Sprintf("minijudge-%s-*", runID))
	if err != nil {
		return nil, fmt.Errorf("create workspace dir: %w", err)
	}

	sourcePath := filepath.Join(root, profile.SourceFile)
	if err := os.WriteFile(sourcePath, []byte(sourceCode), 0o644); err != nil {
		// Partial acquisition still owns the directory.
		_ = os.RemoveAll(root)
		return nil, fmt.Errorf("write source file: %w", err)
	}

	return &Workspace{Root: root, SourcePath: sourcePath}, nil
}

// ArtifactPath is the workspace-local path compiled native binaries are
// written to. Languages with launcher-resolved artifacts (java) ignore it.
func (w *Workspace) ArtifactPath() string {
	return filepath.Join(w.Root, artifactName)
}

// Release removes the workspace tree unconditionally. It is safe to call on
// a nil workspace so cleanup can be deferred before checking Acquire's error.
func (w *Workspace) Release() error {
	if w == nil {
		return nil
	}
	return os.RemoveAll(w.Root)
}
