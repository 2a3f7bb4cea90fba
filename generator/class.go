package generator

import (
	"slices"
	"strings"
)

// Class renders a Python class: a signature line with an optional base-type
// list, then a body assembled from three ordered groups. Class attributes
// come first, nested classes second, methods last, with exactly one blank
// line between any two adjacent non-empty groups. A class with all three
// groups empty renders a single pass statement.
type Class struct {
	indentation
	name       string
	bases      []string
	attributes []*Assignment
	nested     []*Class
	methods    []*Function
}

func NewClass(name string, bases []string) *Class {
	return &Class{
		indentation: defaultIndentation(),
		name:        name,
		bases:       slices.Clone(bases),
	}
}

// AddClassAttribute appends a class-level assignment, indented one level
// below the class. The class takes ownership of the node.
func (c *Class) AddClassAttribute(attr *Assignment) {
	attr.SetIndentLevel(c.level + 1)
	c.attributes = append(c.attributes, attr)
}

// AddNestedClass appends a nested class, indented one level below this one.
// The outer class takes ownership of the node.
func (c *Class) AddNestedClass(nested *Class) {
	nested.SetIndentLevel(c.level + 1)
	c.nested = append(c.nested, nested)
}

// AddMethod appends fn as a method: its member flag is forced on and its
// indentation set one level below the class. The class takes ownership of
// the node.
func (c *Class) AddMethod(fn *Function) {
	fn.SetMember(true)
	fn.SetIndentLevel(c.level + 1)
	c.methods = append(c.methods, fn)
}

func (c *Class) renderSignature() string {
	bases := ""
	if len(c.bases) > 0 {
		bases = "(" + strings.Join(c.bases, ", ") + ")"
	}
	return c.prefix() + "class " + c.name + bases + ":\n"
}

func (c *Class) renderBody() string {
	if c.IsEmpty() {
		return c.prefixAt(c.level+1) + "pass\n"
	}

	groups := make([]string, 0, 3)
	if len(c.attributes) > 0 {
		var attrs strings.Builder
		for _, attr := range c.attributes {
			attrs.WriteString(attr.Render())
		}
		groups = append(groups, attrs.String())
	}
	if len(c.nested) > 0 {
		parts := make([]string, len(c.nested))
		for i, nested := range c.nested {
			parts[i] = nested.Render()
		}
		groups = append(groups, strings.Join(parts, "\n"))
	}
	if len(c.methods) > 0 {
		parts := make([]string, len(c.methods))
		for i, fn := range c.methods {
			parts[i] = fn.Render()
		}
		groups = append(groups, strings.Join(parts, "\n"))
	}

	// every group ends with a terminator, so a single "\n" between groups
	// produces exactly one blank line
	return strings.Join(groups, "\n")
}

func (c *Class) Render() string {
	return c.renderSignature() + c.renderBody()
}

// IsEmpty reports whether the class has no attributes, nested classes, or
// methods.
func (c *Class) IsEmpty() bool {
	return len(c.attributes) == 0 && len(c.nested) == 0 && len(c.methods) == 0
}

// SetIndentLevel sets the class's level and cascades level+1 to every
// attribute, nested class, and method already attached.
func (c *Class) SetIndentLevel(level int) error {
	if err := c.indentation.SetIndentLevel(level); err != nil {
		return err
	}
	for _, attr := range c.attributes {
		attr.SetIndentLevel(level + 1)
	}
	for _, nested := range c.nested {
		nested.SetIndentLevel(level + 1)
	}
	for _, fn := range c.methods {
		fn.SetIndentLevel(level + 1)
	}
	return nil
}

func (c *Class) Clone() Node {
	clone := &Class{
		indentation: c.indentation,
		name:        c.name,
		bases:       slices.Clone(c.bases),
		attributes:  make([]*Assignment, len(c.attributes)),
		nested:      make([]*Class, len(c.nested)),
		methods:     make([]*Function, len(c.methods)),
	}
	for i, attr := range c.attributes {
		clone.attributes[i] = attr.Clone().(*Assignment)
	}
	for i, nested := range c.nested {
		clone.nested[i] = nested.Clone().(*Class)
	}
	for i, fn := range c.methods {
		clone.methods[i] = fn.Clone().(*Function)
	}
	return clone
}
