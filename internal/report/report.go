// Package report renders a decoded enforcement report for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/richhaase/pylint-exit/internal/category"
	"github.com/richhaase/pylint-exit/internal/enforce"
)

// Format selects how a report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

const (
	foundHeader   = "The following types of issues were found:"
	blockerHeader = "The following types of issues are blocker:"
	exitIssues    = "Exiting with issues..."
	exitGraceful  = "Exiting gracefully..."
)

// Write renders r to w in the requested format.
func Write(w io.Writer, r enforce.Report, format Format) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, RenderText(r))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(r)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// RenderText renders the console report consumers parse.
// The issues block is omitted when nothing triggered; the blocker block is
// omitted when the run exits gracefully.
func RenderText(r enforce.Report) string {
	var lines []string

	if r.HasTriggered() {
		lines = append(lines, foundHeader, "")
		lines = append(lines, bulletList(r.Triggered)...)
		lines = append(lines, "")
	}

	if r.Graceful() {
		lines = append(lines, exitGraceful)
	} else {
		lines = append(lines, blockerHeader, "")
		lines = append(lines, bulletList(r.Blocking)...)
		lines = append(lines, "", exitIssues)
	}

	return strings.Join(lines, "\n") + "\n"
}

func bulletList(cats []category.Category) []string {
	lines := make([]string, 0, len(cats))
	for _, c := range cats {
		lines = append(lines, "  - "+c.Description)
	}
	return lines
}

// RenderWorkings shows how a mask breaks down, e.g.
// 12 (1100) = ['warning message issued', 'refactor message issued']
func RenderWorkings(r enforce.Report) string {
	quoted := make([]string, 0, len(r.Triggered))
	for _, c := range r.Triggered {
		quoted = append(quoted, "'"+c.Description+"'")
	}
	return fmt.Sprintf("%d (%s) = [%s]\n", r.Mask, r.Mask.Binary(), strings.Join(quoted, ", "))
}
