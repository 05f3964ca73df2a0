package gen

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-enfgen/internal/ordered"
	"github.com/goliatone/go-enfgen/pkg/guid"
	"github.com/goliatone/go-enfgen/pkg/node"
)

// BaseGameGUID identifies the base-game project. Every generated project
// depends on it; it is always the first entry in the dependency list
// regardless of caller input.
const BaseGameGUID = "58D0FB3206B6F859"

// defaultConfigurations are emitted when the caller names none.
var defaultConfigurations = []string{"PC", "HEADLESS"}

var (
	// ErrMissingName is returned when a project has no name.
	ErrMissingName = errors.New("gen: project name is required")
	// ErrInvalidGUID is returned when a caller-supplied project GUID is not a
	// well-formed identifier.
	ErrInvalidGUID = errors.New("gen: invalid project guid")
	// ErrInvalidDependency is returned when an extra dependency reference is
	// not a well-formed identifier.
	ErrInvalidDependency = errors.New("gen: invalid dependency identifier")
	// ErrMissingConfiguration is returned when a configuration entry has no
	// name.
	ErrMissingConfiguration = errors.New("gen: configuration name is required")
)

// Project describes a .gproj document. Zero values fall back to defaults:
// Title to Name, GUID to a freshly generated identifier, Configurations to
// PC and HEADLESS. Dependencies are extra project references on top of the
// implicit base-game entry; duplicates collapse to their first occurrence.
type Project struct {
	Name           string
	Title          string
	GUID           string
	Dependencies   []string
	Configurations []string
}

// BuildProjectTree assembles the project document: ID, GUID and TITLE
// properties, a Dependencies block listing the deduplicated reference set,
// and a Configurations block with one empty GameProjectConfig per
// configuration name. The returned tree is caller-owned and safe to mutate
// before serialization.
func BuildProjectTree(p Project) (*node.Node, error) {
	if p.Name == "" {
		return nil, ErrMissingName
	}

	title := p.Title
	if title == "" {
		title = p.Name
	}

	id := p.GUID
	switch {
	case id == "":
		generated, err := guid.New()
		if err != nil {
			return nil, fmt.Errorf("gen: project guid: %w", err)
		}
		id = generated
	case !guid.Valid(id):
		return nil, fmt.Errorf("%w: %q", ErrInvalidGUID, id)
	}

	deps := ordered.NewSet(BaseGameGUID)
	for _, dep := range p.Dependencies {
		if !guid.Valid(dep) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDependency, dep)
		}
		deps.Add(dep)
	}

	names := p.Configurations
	if len(names) == 0 {
		names = defaultConfigurations
	}
	configs := node.New("Configurations")
	for _, name := range names {
		if name == "" {
			return nil, ErrMissingConfiguration
		}
		configs.AppendChild(node.New("GameProjectConfig", node.WithID(name)))
	}

	root := node.New("GameProject",
		node.WithProperty("ID", p.Name),
		node.WithProperty("GUID", id),
		node.WithProperty("TITLE", title),
	)
	root.AppendChild(node.New("Dependencies", node.WithValues(deps.Items()...)))
	root.AppendChild(configs)
	return root, nil
}

// GenerateProject builds the project tree and serializes it into the final
// .gproj text.
func GenerateProject(p Project) (string, error) {
	root, err := BuildProjectTree(p)
	if err != nil {
		return "", err
	}
	return node.Serialize(root)
}
