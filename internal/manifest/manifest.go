// Package manifest loads declarative TOML descriptions of Python modules
// and builds the corresponding generator tree.
package manifest

import (
	"github.com/BurntSushi/toml"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/pycodegen/pygen/generator"
)

// Document is the decoded form of a module manifest. Components are kept in
// manifest order; the order they appear in is the order they render in.
type Document struct {
	Name           string      `toml:"name"`
	Output         string      `toml:"output"`
	NormalizeNames bool        `toml:"normalize_names"`
	IndentChar     string      `toml:"indent_char"`
	IndentWidth    int         `toml:"indent_width"`
	Components     []Component `toml:"component"`
}

// Component is one top-level manifest entry. Kind selects which of the
// remaining fields apply.
type Component struct {
	Kind string `toml:"kind"`

	// expression
	Text string `toml:"text"`

	// assignment, function, and class
	Name string `toml:"name"`

	// assignment
	Value string `toml:"value"`

	// function
	Params     []string `toml:"params"`
	Decorators []string `toml:"decorators"`
	Body       []string `toml:"body"`

	// class
	Bases      []string    `toml:"bases"`
	Attributes []Attribute `toml:"attributes"`
	Methods    []Method    `toml:"methods"`
	Classes    []ClassSpec `toml:"classes"`
}

// Attribute is a class-level assignment.
type Attribute struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Method is a function attached to a class.
type Method struct {
	Name       string   `toml:"name"`
	Params     []string `toml:"params"`
	Decorators []string `toml:"decorators"`
	Body       []string `toml:"body"`
}

// ClassSpec describes a class; nesting is arbitrary depth.
type ClassSpec struct {
	Name       string      `toml:"name"`
	Bases      []string    `toml:"bases"`
	Attributes []Attribute `toml:"attributes"`
	Methods    []Method    `toml:"methods"`
	Classes    []ClassSpec `toml:"classes"`
}

// LoadDocument decodes a manifest file without building the tree, so the
// caller can override document fields first.
func LoadDocument(path string) (*Document, error) {
	doc := &Document{}
	if _, err := toml.DecodeFile(path, doc); err != nil {
		return nil, errors.Wrapf(err, "decoding manifest %s", path)
	}
	return doc, nil
}

// Load decodes a manifest file and builds the module tree it describes.
func Load(path string) (*generator.Module, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build converts a decoded document into a generator tree. Document-level
// indentation settings are applied to every node built.
func Build(doc *Document) (*generator.Module, error) {
	if doc.Name == "" {
		return nil, errors.New("module name is required")
	}
	output := doc.Output
	if output == "" {
		output = "."
	}

	module := generator.NewModule(doc.Name, output)
	for i, comp := range doc.Components {
		node, err := doc.buildComponent(comp)
		if err != nil {
			return nil, errors.Wrapf(err, "component %d", i)
		}
		module.AddComponent(node)
	}
	return module, nil
}

func (doc *Document) buildComponent(comp Component) (generator.Node, error) {
	switch comp.Kind {
	case "expression":
		expr := generator.NewExpression(comp.Text)
		return expr, doc.applyIndent(expr)
	case "assignment":
		return doc.buildAssignment(Attribute{Name: comp.Name, Value: comp.Value})
	case "function":
		return doc.buildFunction(Method{
			Name:       comp.Name,
			Params:     comp.Params,
			Decorators: comp.Decorators,
			Body:       comp.Body,
		})
	case "class":
		return doc.buildClass(ClassSpec{
			Name:       comp.Name,
			Bases:      comp.Bases,
			Attributes: comp.Attributes,
			Methods:    comp.Methods,
			Classes:    comp.Classes,
		})
	}
	return nil, errors.Errorf("unknown component kind %q", comp.Kind)
}

func (doc *Document) buildAssignment(attr Attribute) (*generator.Assignment, error) {
	if attr.Name == "" {
		return nil, errors.New("assignment name is required")
	}
	name := attr.Name
	if doc.NormalizeNames {
		name = strcase.ToSnake(name)
	}
	assignment := generator.NewAssignment(name, attr.Value)
	return assignment, doc.applyIndent(assignment)
}

func (doc *Document) buildFunction(method Method) (*generator.Function, error) {
	if method.Name == "" {
		return nil, errors.New("function name is required")
	}
	name := method.Name
	if doc.NormalizeNames {
		name = strcase.ToSnake(name)
	}

	body := make([]generator.Node, 0, len(method.Body))
	for _, line := range method.Body {
		expr := generator.NewExpression(line)
		if err := doc.applyIndent(expr); err != nil {
			return nil, err
		}
		body = append(body, expr)
	}

	fn := generator.NewFunction(name, method.Params, body, method.Decorators)
	return fn, doc.applyIndent(fn)
}

func (doc *Document) buildClass(spec ClassSpec) (*generator.Class, error) {
	if spec.Name == "" {
		return nil, errors.New("class name is required")
	}
	name := spec.Name
	if doc.NormalizeNames {
		name = strcase.ToCamel(name)
	}

	class := generator.NewClass(name, spec.Bases)
	if err := doc.applyIndent(class); err != nil {
		return nil, err
	}
	for _, attr := range spec.Attributes {
		assignment, err := doc.buildAssignment(attr)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", spec.Name)
		}
		class.AddClassAttribute(assignment)
	}
	for _, nested := range spec.Classes {
		inner, err := doc.buildClass(nested)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", spec.Name)
		}
		class.AddNestedClass(inner)
	}
	for _, method := range spec.Methods {
		fn, err := doc.buildFunction(method)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", spec.Name)
		}
		class.AddMethod(fn)
	}
	return class, nil
}

// applyIndent pushes document-level indentation settings onto a node. The
// node's level is left alone; attach operations own that.
func (doc *Document) applyIndent(node generator.Node) error {
	if doc.IndentChar != "" {
		if err := node.SetIndentChar(doc.IndentChar); err != nil {
			return err
		}
	}
	if doc.IndentWidth != 0 {
		if err := node.SetIndentWidth(doc.IndentWidth); err != nil {
			return err
		}
	}
	return nil
}
