package report

import (
	"github.com/richhaase/pylint-exit/internal/category"
	"github.com/richhaase/pylint-exit/internal/enforce"
)

// Item is one category as it appears in structured output.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Bit         uint64 `json:"bit" yaml:"bit"`
	Description string `json:"description" yaml:"description"`
}

// Document is the structured form of a report.
type Document struct {
	Mask      uint64 `json:"mask" yaml:"mask"`
	Binary    string `json:"binary" yaml:"binary"`
	Triggered []Item `json:"triggered" yaml:"triggered"`
	Blocking  []Item `json:"blocking" yaml:"blocking"`
	ExitCode  int    `json:"exit_code" yaml:"exit_code"`
	Graceful  bool   `json:"graceful" yaml:"graceful"`
}

// NewDocument converts r into its structured form.
// Empty category lists serialize as [] rather than null.
func NewDocument(r enforce.Report) Document {
	return Document{
		Mask:      uint64(r.Mask),
		Binary:    r.Mask.Binary(),
		Triggered: items(r.Triggered),
		Blocking:  items(r.Blocking),
		ExitCode:  r.ExitCode,
		Graceful:  r.Graceful(),
	}
}

func items(cats []category.Category) []Item {
	out := make([]Item, 0, len(cats))
	for _, c := range cats {
		out = append(out, Item{Name: string(c.Name), Bit: c.Bit, Description: c.Description})
	}
	return out
}
