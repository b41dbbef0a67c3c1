package report

import (
	"fmt"
	"strings"

	"github.com/richhaase/pylint-exit/internal/enforce"
)

// RenderPolicy renders the effective enforcement policy as a table.
func RenderPolicy(p enforce.Policy) string {
	var b strings.Builder
	b.WriteString("Enforcement policy:\n\n")
	for _, e := range p.Entries() {
		state := "informational"
		if e.Blocking {
			state = "blocking"
		}
		fmt.Fprintf(&b, "  %-12s %-4d %-14s %s\n", e.Category.Name+":", e.Category.Bit, state, e.Category.Description)
	}
	return b.String()
}
