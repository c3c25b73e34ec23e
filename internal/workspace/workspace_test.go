package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minijudge/minijudge/internal/language"
)

func pythonProfile(t *testing.T) language.Profile {
	t.Helper()
	profile, err := language.NewRegistry().Resolve("python")
	if err != nil {
		t.Fatalf("resolve python: %v", err)
	}
	return profile
}

func TestAcquire_WritesSourceFile(t *testing.T) {
	ws, err := Acquire("test-run", "print('hello')", pythonProfile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ws.Release()

	if filepath.Base(ws.SourcePath) != "main.py" {
		t.Errorf("expected main.py, got %q", ws.SourcePath)
	}

	data, err := os.ReadFile(ws.SourcePath)
	if err != nil {
		t.Fatalf("read source: %v", err)
	}
	if string(data) != "print('hello')" {
		t.Errorf("unexpected source contents: %q", string(data))
	}
}

func TestAcquire_UniqueDirectories(t *testing.T) {
	first, err := Acquire("run", "x = 1", pythonProfile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer first.Release()

	second, err := Acquire("run", "x = 2", pythonProfile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer second.Release()

	if first.Root == second.Root {
		t.Errorf("two workspaces share a root: %q", first.Root)
	}
}

func TestRelease_RemovesTree(t *testing.T) {
	ws, err := Acquire("cleanup", "pass", pythonProfile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Put an extra artifact in the tree to prove removal is recursive.
	if err := os.WriteFile(ws.ArtifactPath(), []byte{0x7f}, 0o755); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	if err := ws.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	if _, err := os.Stat(ws.Root); !os.IsNotExist(err) {
		t.Errorf("workspace root still exists after release: %q", ws.Root)
	}
}

func TestRelease_NilSafe(t *testing.T) {
	var ws *Workspace
	if err := ws.Release(); err != nil {
		t.Errorf("nil release should be a no-op, got %v", err)
	}
}

func TestArtifactPath_InsideRoot(t *testing.T) {
	ws, err := Acquire("artifact", "pass", pythonProfile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ws.Release()

	rel, err := filepath.Rel(ws.Root, ws.ArtifactPath())
	if err != nil || rel != "program" {
		t.Errorf("artifact path %q not directly inside root %q", ws.ArtifactPath(), ws.Root)
	}
}
