package generator

import (
	"slices"
	"strings"
)

// Function renders a Python def: optional decorator lines, a signature line,
// and an indented body of arbitrary nodes. A function with an empty body
// renders a single pass statement instead.
type Function struct {
	indentation
	name       string
	params     []string
	body       []Node
	decorators []string
	member     bool
}

// NewFunction builds a function node. It takes ownership of the body nodes
// and immediately cascades their indentation one level below its own; clone
// a node before passing it in if it must also live elsewhere.
func NewFunction(name string, params []string, body []Node, decorators []string) *Function {
	f := &Function{
		indentation: defaultIndentation(),
		name:        name,
		params:      slices.Clone(params),
		decorators:  slices.Clone(decorators),
		body:        make([]Node, 0, len(body)),
	}
	for _, stmt := range body {
		f.AddStatement(stmt)
	}
	return f
}

// AddStatement appends a statement to the body and sets its indentation
// level one below the function's own. The function takes ownership of the
// node.
func (f *Function) AddStatement(stmt Node) {
	stmt.SetIndentLevel(f.level + 1)
	f.body = append(f.body, stmt)
}

// SetMember marks the function as a class method. Class.AddMethod forces
// this at attach time; callers should not flip it on an attached method.
// A member function with no parameters renders a synthesized @staticmethod
// decorator after any caller-supplied decorators.
func (f *Function) SetMember(member bool) {
	f.member = member
}

func (f *Function) renderSignature() string {
	base := f.prefix()
	var sig strings.Builder
	for _, dec := range f.decorators {
		sig.WriteString(base)
		sig.WriteString(dec)
		sig.WriteString("\n")
	}
	if f.member && len(f.params) == 0 {
		sig.WriteString(base)
		sig.WriteString("@staticmethod\n")
	}
	sig.WriteString(base)
	sig.WriteString("def ")
	sig.WriteString(f.name)
	sig.WriteString("(")
	sig.WriteString(strings.Join(f.params, ", "))
	sig.WriteString("):\n")
	return sig.String()
}

func (f *Function) renderBody() string {
	if f.IsEmpty() {
		return f.prefixAt(f.level+1) + "pass\n"
	}
	var body strings.Builder
	for _, stmt := range f.body {
		body.WriteString(stmt.Render())
		body.WriteString("\n")
	}
	return body.String()
}

func (f *Function) Render() string {
	return f.renderSignature() + f.renderBody()
}

// IsEmpty reports whether the body has no statements.
func (f *Function) IsEmpty() bool {
	return len(f.body) == 0
}

// SetIndentLevel sets the function's level and cascades level+1 to every
// body node.
func (f *Function) SetIndentLevel(level int) error {
	if err := f.indentation.SetIndentLevel(level); err != nil {
		return err
	}
	for _, stmt := range f.body {
		stmt.SetIndentLevel(level + 1)
	}
	return nil
}

func (f *Function) Clone() Node {
	clone := &Function{
		indentation: f.indentation,
		name:        f.name,
		params:      slices.Clone(f.params),
		decorators:  slices.Clone(f.decorators),
		member:      f.member,
		body:        make([]Node, len(f.body)),
	}
	for i, stmt := range f.body {
		clone.body[i] = stmt.Clone()
	}
	return clone
}
