package generator

import "strings"

// Module is the root container: an ordered list of top-level components of
// any node type. Its name and output location are consumed by whatever
// persistence layer writes the rendered text; the module itself only
// composes strings.
type Module struct {
	indentation
	name       string
	output     string
	components []Node
}

func NewModule(name, output string) *Module {
	return &Module{
		indentation: defaultIndentation(),
		name:        name,
		output:      output,
	}
}

// AddComponent appends a top-level component. Unlike the Function and Class
// attach operations it deliberately leaves the component's indentation level
// untouched: components render at whatever level they already carry, 0
// unless the caller configured otherwise.
func (m *Module) AddComponent(component Node) {
	m.components = append(m.components, component)
}

// Render joins the non-empty component renderings with a blank line and
// wraps the result in a leading blank line and a trailing terminator.
func (m *Module) Render() string {
	parts := make([]string, 0, len(m.components))
	for _, component := range m.components {
		text := component.Render()
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return "\n\n" + strings.Join(parts, "\n\n") + "\n"
}

// IsEmpty reports whether the module has no components.
func (m *Module) IsEmpty() bool {
	return len(m.components) == 0
}

func (m *Module) Name() string {
	return m.name
}

// OutputLocation is the directory the persistence layer writes the module
// file into.
func (m *Module) OutputLocation() string {
	return m.output
}

func (m *Module) Clone() Node {
	clone := &Module{
		indentation: m.indentation,
		name:        m.name,
		output:      m.output,
		components:  make([]Node, len(m.components)),
	}
	for i, component := range m.components {
		clone.components[i] = component.Clone()
	}
	return clone
}
