package enforce

import (
	"github.com/richhaase/pylint-exit/internal/category"
	"github.com/richhaase/pylint-exit/internal/domain"
)

// Report is the outcome of decoding one mask under one policy.
type Report struct {
	Mask      domain.Mask
	Triggered []category.Category
	Blocking  []category.Category
	ExitCode  int
}

// HasTriggered returns true if any category was triggered.
func (r Report) HasTriggered() bool {
	return len(r.Triggered) > 0
}

// Graceful returns true if no blocking category contributed to the exit code.
func (r Report) Graceful() bool {
	return r.ExitCode == 0
}

// Decode returns the categories whose bit is set in mask, in ascending bit order.
// Bits above the highest registered category are ignored.
func Decode(mask domain.Mask) []category.Category {
	var triggered []category.Category
	for _, c := range category.All() {
		if c.Set(uint64(mask)) {
			triggered = append(triggered, c)
		}
	}
	return triggered
}

// AggregateExitCode sums the weights of the categories that block under p.
// Non-blocking categories contribute nothing, so the result is order independent.
func AggregateExitCode(triggered []category.Category, p Policy) int {
	code := 0
	for _, c := range triggered {
		if p.Blocking(c) {
			code += c.Weight
		}
	}
	return code
}

// BuildReport decodes mask, partitions the triggered categories by policy
// and computes the exit code from the blocking subset.
func BuildReport(mask domain.Mask, p Policy) Report {
	triggered := Decode(mask)

	var blocking []category.Category
	for _, c := range triggered {
		if p.Blocking(c) {
			blocking = append(blocking, c)
		}
	}

	return Report{
		Mask:      mask,
		Triggered: triggered,
		Blocking:  blocking,
		ExitCode:  AggregateExitCode(blocking, p),
	}
}
