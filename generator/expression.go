package generator

// Expression is a leaf node holding one opaque line of Python: a statement,
// an import, a call, anything the caller wants emitted verbatim.
type Expression struct {
	indentation
	text string
}

func NewExpression(text string) *Expression {
	return &Expression{
		indentation: defaultIndentation(),
		text:        text,
	}
}

// Render returns the indent prefix followed by the raw text. No line
// terminator is added; containers insert line breaks between siblings.
func (e *Expression) Render() string {
	return e.prefix() + e.text
}

// IsEmpty always reports false; an expression counts as body content even
// when its text is blank.
func (e *Expression) IsEmpty() bool {
	return false
}

func (e *Expression) Clone() Node {
	clone := *e
	return &clone
}
