package generator

// Assignment is a leaf node for a single `name = value` statement. The value
// is an opaque Python literal or expression.
type Assignment struct {
	indentation
	name  string
	value string
}

func NewAssignment(name, value string) *Assignment {
	return &Assignment{
		indentation: defaultIndentation(),
		name:        name,
		value:       value,
	}
}

// Render returns the indented assignment, always with a trailing line
// terminator.
func (a *Assignment) Render() string {
	return a.prefix() + a.name + " = " + a.value + "\n"
}

func (a *Assignment) IsEmpty() bool {
	return false
}

func (a *Assignment) Clone() Node {
	clone := *a
	return &clone
}
