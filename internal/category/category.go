// Package category defines the fixed registry of pylint issue categories.
package category

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownCategory is returned when a name does not match any registered category.
var ErrUnknownCategory = errors.New("unknown category")

// Name identifies a category symbolically.
type Name string

const (
	Fatal      Name = "fatal"
	Error      Name = "error"
	Warning    Name = "warning"
	Refactor   Name = "refactor"
	Convention Name = "convention"
	Usage      Name = "usage"
)

// Category is one class of issue pylint can report, identified by a unique bit.
type Category struct {
	Bit             uint64
	Name            Name
	Description     string
	Weight          int  // Exit-code contribution while blocking
	DefaultBlocking bool // Enforcement state before any override
}

// registry is ordered by ascending bit significance. Decode order follows it.
var registry = []Category{
	{Bit: 1, Name: Fatal, Description: "fatal message issued", Weight: 1, DefaultBlocking: true},
	{Bit: 2, Name: Error, Description: "error message issued", Weight: 2, DefaultBlocking: true},
	{Bit: 4, Name: Warning, Description: "warning message issued", Weight: 4, DefaultBlocking: true},
	{Bit: 8, Name: Refactor, Description: "refactor message issued", Weight: 8, DefaultBlocking: false},
	{Bit: 16, Name: Convention, Description: "convention message issued", Weight: 16, DefaultBlocking: false},
	{Bit: 32, Name: Usage, Description: "usage error", Weight: 32, DefaultBlocking: true},
}

// All returns the registered categories in ascending bit order.
// The returned slice is a copy; modifying it does not affect the registry.
func All() []Category {
	return slices.Clone(registry)
}

// Names returns the category names in registry order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, c := range registry {
		names = append(names, string(c.Name))
	}
	return names
}

// KnownBits returns the union of every registered category bit.
func KnownBits() uint64 {
	var bits uint64
	for _, c := range registry {
		bits |= c.Bit
	}
	return bits
}

// Lookup returns the category registered under name.
func Lookup(name string) (Category, error) {
	for _, c := range registry {
		if string(c.Name) == name {
			return c, nil
		}
	}
	if suggestion := FindSimilar(name, Names()); suggestion != "" {
		return Category{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCategory, name, suggestion)
	}
	return Category{}, fmt.Errorf("%w %q (must be one of %v)", ErrUnknownCategory, name, Names())
}

// Set reports whether the category's bit is set in mask.
func (c Category) Set(mask uint64) bool {
	return mask&c.Bit != 0
}

func (c Category) String() string {
	return string(c.Name)
}
