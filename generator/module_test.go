package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleRender(t *testing.T) {
	tests := []struct {
		name   string
		module func() *Module
		want   string
	}{
		{
			name: "empty module",
			module: func() *Module {
				return NewModule("m", ".")
			},
			want: "\n\n\n",
		},
		{
			name: "two components wrapped in blank lines",
			module: func() *Module {
				m := NewModule("m", ".")
				m.AddComponent(NewExpression("a"))
				m.AddComponent(NewExpression("b"))
				return m
			},
			want: "\n\na\n\nb\n",
		},
		{
			name: "empty renderings are skipped",
			module: func() *Module {
				m := NewModule("m", ".")
				m.AddComponent(NewExpression(""))
				m.AddComponent(NewExpression("b"))
				return m
			},
			want: "\n\nb\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.module().Render())
		})
	}
}

// AddComponent leaves the component's level alone, unlike Function and Class
// attach operations
func TestModuleAttachKeepsComponentLevel(t *testing.T) {
	expr := NewExpression("x = 1")
	assert.NoError(t, expr.SetIndentLevel(1))

	m := NewModule("m", ".")
	m.AddComponent(expr)

	assert.Equal(t, 1, expr.IndentLevel())
	assert.Equal(t, "\n\n    x = 1\n", m.Render())
}

func TestModuleIsEmpty(t *testing.T) {
	m := NewModule("m", "./out")
	assert.True(t, m.IsEmpty())
	assert.Equal(t, "m", m.Name())
	assert.Equal(t, "./out", m.OutputLocation())

	m.AddComponent(NewExpression("x"))
	assert.False(t, m.IsEmpty())
}

// full tree: functions, a class with attributes, a nested class, and methods
// reused via Clone
func TestModuleRenderTutorial(t *testing.T) {
	hello := NewFunction("say_hello_world", nil,
		[]Node{NewExpression(`print("hello world!")`)}, nil)
	helloName := NewFunction("say_hello", []string{"self", "name"},
		[]Node{NewExpression("print(f'hello {name}!')")}, nil)
	initMethod := NewFunction("__init__", []string{"self"},
		[]Node{NewExpression("self.random_int = random.randint(1, 100)")}, nil)

	meta := NewClass("Meta", nil)
	meta.AddMethod(initMethod.Clone().(*Function))

	person := NewClass("Person", nil)
	person.AddClassAttribute(NewAssignment("first_name", "'Will'"))
	person.AddClassAttribute(NewAssignment("last_name", "'Smith'"))
	person.AddNestedClass(meta.Clone().(*Class))
	person.AddMethod(hello.Clone().(*Function))
	person.AddMethod(helloName.Clone().(*Function))

	module := NewModule("tutorial", ".")
	module.AddComponent(hello)
	module.AddComponent(helloName)
	module.AddComponent(meta)
	module.AddComponent(person)

	want := "\n\n" + strings.Join([]string{
		"def say_hello_world():\n" +
			"    print(\"hello world!\")\n",
		"def say_hello(self, name):\n" +
			"    print(f'hello {name}!')\n",
		"class Meta:\n" +
			"    def __init__(self):\n" +
			"        self.random_int = random.randint(1, 100)\n",
		"class Person:\n" +
			"    first_name = 'Will'\n" +
			"    last_name = 'Smith'\n" +
			"\n" +
			"    class Meta:\n" +
			"        def __init__(self):\n" +
			"            self.random_int = random.randint(1, 100)\n" +
			"\n" +
			"    @staticmethod\n" +
			"    def say_hello_world():\n" +
			"        print(\"hello world!\")\n" +
			"\n" +
			"    def say_hello(self, name):\n" +
			"        print(f'hello {name}!')\n",
	}, "\n\n") + "\n"
	assert.Equal(t, want, module.Render())

	// the top-level originals were cloned before attach, so they stay at
	// level 0 and never become members
	assert.Equal(t, 0, hello.IndentLevel())
	assert.Equal(t, "def say_hello_world():\n    print(\"hello world!\")\n", hello.Render())
}
