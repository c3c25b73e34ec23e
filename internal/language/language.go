// Package language holds the static registry of supported toolchains.
package language

import (
	"fmt"
	"sort"
	"strings"
)

// Command template placeholders, expanded against a concrete workspace
// before the command is spawned.
const (
	SourcePlaceholder   = "{source}"
	ArtifactPlaceholder = "{artifact}"
)

// Profile describes how to compile (optionally) and run one language.
// Profiles are immutable; the registry hands out copies by value.
type Profile struct {
	ID         string
	Name       string
	Extension  string
	SourceFile string

	// CompileCmd is empty for interpreted languages.
	CompileCmd      []string
	RunCmd          []string
	RequiresCompile bool

	// RunInWorkspace forces the run step's working directory to the
	// workspace root, so launcher-resolved artifacts (java classes)
	// are found without a path.
	RunInWorkspace bool
}

// ExpandCommand substitutes the source and artifact paths into a command
// template. The template slice itself is never modified.
func ExpandCommand(tpl []string, sourcePath, artifactPath string) []string {
	out := make([]string, len(tpl))
	for i, arg := range tpl {
		arg = strings.ReplaceAll(arg, SourcePlaceholder, sourcePath)
		arg = strings.ReplaceAll(arg, ArtifactPlaceholder, artifactPath)
		out[i] = arg
	}
	return out
}

// UnsupportedLanguageError is returned by Resolve for an unknown language id.
// It carries the full supported set so callers can render an actionable message.
type UnsupportedLanguageError struct {
	ID        string
	Supported []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s (supported: %s)",
		e.ID, strings.Join(e.Supported, ", "))
}

// Registry is the static language table. It is built once at process start
// and never mutated afterwards, so concurrent reads need no locking.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry builds the registry with the default language set.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	r.registerDefaults()
	return r
}

// Resolve looks up the profile for a language id. Unknown ids return an
// *UnsupportedLanguageError listing the supported set.
func (r *Registry) Resolve(id string) (Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, &UnsupportedLanguageError{ID: id, Supported: r.IDs()}
	}
	return p, nil
}

// IDs returns the sorted set of supported language ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns all registered profiles sorted by id.
func (r *Registry) List() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, id := range r.IDs() {
		out = append(out, r.profiles[id])
	}
	return out
}

func (r *Registry) register(p Profile) {
	r.profiles[p.ID] = p
}

func (r *Registry) registerDefaults() {
	r.register(Profile{
		ID:         "python",
		Name:       "Python",
		Extension:  ".py",
		SourceFile: "main.py",
		RunCmd:     []string{"python3", SourcePlaceholder},
	})

	r.register(Profile{
		ID:              "c",
		Name:            "C",
		Extension:       ".c",
		SourceFile:      "main.c",
		CompileCmd:      []string{"gcc", "-O2", "-o", ArtifactPlaceholder, SourcePlaceholder},
		RunCmd:          []string{ArtifactPlaceholder},
		RequiresCompile: true,
	})

	r.register(Profile{
		ID:              "cpp",
		Name:            "C++",
		Extension:       ".cpp",
		SourceFile:      "main.cpp",
		CompileCmd:      []string{"g++", "-std=c++17", "-O2", "-o", ArtifactPlaceholder, SourcePlaceholder},
		RunCmd:          []string{ArtifactPlaceholder},
		RequiresCompile: true,
	})

	// javac produces Main.class next to the source; the java launcher then
	// resolves the bare class name from the working directory, so the run
	// step must execute from inside the workspace.
	r.register(Profile{
		ID:              "java",
		Name:            "Java",
		Extension:       ".java",
		SourceFile:      "Main.java",
		CompileCmd:      []string{"javac", SourcePlaceholder},
		RunCmd:          []string{"java", "Main"},
		RequiresCompile: true,
		RunInWorkspace:  true,
	})

	r.register(Profile{
		ID:         "javascript",
		Name:       "JavaScript",
		Extension:  ".js",
		SourceFile: "main.js",
		RunCmd:     []string{"node", SourcePlaceholder},
	})
}
