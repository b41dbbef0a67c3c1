// Package enforce decodes pylint masks and applies the enforcement policy
// that decides which triggered categories fail the run.
package enforce

import (
	"maps"

	"github.com/richhaase/pylint-exit/internal/category"
)

// Policy maps each category to whether it currently blocks.
// A Policy is a value: overrides return a modified copy and never touch
// the registry defaults or the receiver.
type Policy struct {
	blocking map[category.Name]bool
}

// DefaultPolicy returns a fresh policy copied from the registry defaults.
func DefaultPolicy() Policy {
	all := category.All()
	p := Policy{blocking: make(map[category.Name]bool, len(all))}
	for _, c := range all {
		p.blocking[c.Name] = c.DefaultBlocking
	}
	return p
}

// Blocking reports whether c blocks under this policy.
// A zero Policy falls back to the registry default.
func (p Policy) Blocking(c category.Category) bool {
	if b, ok := p.blocking[c.Name]; ok {
		return b
	}
	return c.DefaultBlocking
}

// Override is a single named enforcement change.
type Override struct {
	Name     string
	Blocking bool
}

// ApplyOverride returns a copy of p with the named category's blocking state set.
// An unknown name returns ErrUnknownCategory and p unchanged.
func ApplyOverride(p Policy, name string, blocking bool) (Policy, error) {
	c, err := category.Lookup(name)
	if err != nil {
		return p, err
	}

	next := p.clone()
	next.blocking[c.Name] = blocking
	return next, nil
}

func (p Policy) clone() Policy {
	if p.blocking == nil {
		return DefaultPolicy()
	}
	return Policy{blocking: maps.Clone(p.blocking)}
}

// NewPolicy builds a policy from the registry defaults plus overrides, in order.
func NewPolicy(overrides ...Override) (Policy, error) {
	p := DefaultPolicy()
	for _, o := range overrides {
		var err error
		p, err = ApplyOverride(p, o.Name, o.Blocking)
		if err != nil {
			return Policy{}, err
		}
	}
	return p, nil
}

// Entry is one row of a policy table.
type Entry struct {
	Category category.Category
	Blocking bool
}

// Entries returns the policy in registry order.
func (p Policy) Entries() []Entry {
	all := category.All()
	entries := make([]Entry, 0, len(all))
	for _, c := range all {
		entries = append(entries, Entry{Category: c, Blocking: p.Blocking(c)})
	}
	return entries
}
