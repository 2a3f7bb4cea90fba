// Package generator builds Python source text from a tree of typed nodes.
// Each node renders itself at its current indentation level, and container
// nodes cascade indentation to their children whenever a child is attached
// or the container is re-leveled, so the tree is always render-ready.
//
// The package composes strings only; it never parses or validates the
// Python fragments supplied by the caller.
package generator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidConfig is returned by the indentation setters when given a pad
// string that is not exactly one character, a width below 1, or a negative
// level. A failed setter leaves the node unchanged.
var ErrInvalidConfig = errors.New("invalid indentation config")

// Node is any renderable unit of Python source text, leaf or container.
type Node interface {
	// Render returns the node's source text at its current indentation
	// level. It never mutates the tree, so repeated calls without
	// intervening mutation return identical strings.
	Render() string

	// IsEmpty reports whether the node has nothing to put in a body.
	// Containers consult this to emit a pass placeholder instead of an
	// empty block.
	IsEmpty() bool

	// Clone returns a deep copy of the node. Attach operations take
	// ownership of the node they are given; clone first when the same
	// node must live under more than one parent.
	Clone() Node

	SetIndentChar(c string) error
	SetIndentWidth(width int) error
	SetIndentLevel(level int) error
	IndentLevel() int
}

// indentation is the indent configuration every node carries: a single pad
// character, how many times it repeats per level, and the current level.
// Each node owns its configuration exclusively; nothing is shared between
// nodes.
type indentation struct {
	char  string
	width int
	level int
}

func defaultIndentation() indentation {
	return indentation{char: " ", width: 4}
}

// SetIndentChar replaces the pad character. The indentation level is not
// affected.
func (i *indentation) SetIndentChar(c string) error {
	if utf8.RuneCountInString(c) != 1 {
		return fmt.Errorf("%w: indentation character must be exactly one character, got %q", ErrInvalidConfig, c)
	}
	i.char = c
	return nil
}

// SetIndentWidth replaces the number of pad characters per level. The
// indentation level is not affected.
func (i *indentation) SetIndentWidth(width int) error {
	if width < 1 {
		return fmt.Errorf("%w: indentation width must be at least 1, got %d", ErrInvalidConfig, width)
	}
	i.width = width
	return nil
}

// SetIndentLevel stores the level. Container types shadow this method to
// also cascade level+1 to every attached child.
func (i *indentation) SetIndentLevel(level int) error {
	if level < 0 {
		return fmt.Errorf("%w: indentation level must not be negative, got %d", ErrInvalidConfig, level)
	}
	i.level = level
	return nil
}

func (i *indentation) IndentLevel() int {
	return i.level
}

// prefix is the indent unit repeated once per level.
func (i *indentation) prefix() string {
	return i.prefixAt(i.level)
}

func (i *indentation) prefixAt(level int) string {
	return strings.Repeat(strings.Repeat(i.char, i.width), level)
}
