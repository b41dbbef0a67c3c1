package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/richhaase/pylint-exit/internal/domain"
	"github.com/richhaase/pylint-exit/internal/enforce"
)

func buildReport(t *testing.T, mask domain.Mask, overrides ...enforce.Override) enforce.Report {
	t.Helper()
	p, err := enforce.NewPolicy(overrides...)
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}
	return enforce.BuildReport(mask, p)
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name      string
		mask      domain.Mask
		overrides []enforce.Override
		expected  string
	}{
		{
			name: "fatal",
			mask: 1,
			expected: `The following types of issues were found:

  - fatal message issued

The following types of issues are blocker:

  - fatal message issued

Exiting with issues...
`,
		},
		{
			name: "warning and refactor",
			mask: 12,
			expected: `The following types of issues were found:

  - warning message issued
  - refactor message issued

The following types of issues are blocker:

  - warning message issued

Exiting with issues...
`,
		},
		{
			name: "refactor only",
			mask: 8,
			expected: `The following types of issues were found:

  - refactor message issued

Exiting gracefully...
`,
		},
		{
			name:     "nothing triggered",
			mask:     0,
			expected: "Exiting gracefully...\n",
		},
		{
			name:     "only unknown bits",
			mask:     128,
			expected: "Exiting gracefully...\n",
		},
		{
			name:      "convention forced blocking",
			mask:      16,
			overrides: []enforce.Override{{Name: "convention", Blocking: true}},
			expected: `The following types of issues were found:

  - convention message issued

The following types of issues are blocker:

  - convention message issued

Exiting with issues...
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderText(buildReport(t, tt.mask, tt.overrides...))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("RenderText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderWorkings(t *testing.T) {
	tests := []struct {
		mask     domain.Mask
		expected string
	}{
		{0, "0 (0) = []\n"},
		{1, "1 (1) = ['fatal message issued']\n"},
		{12, "12 (1100) = ['warning message issued', 'refactor message issued']\n"},
	}

	for _, tt := range tests {
		if got := RenderWorkings(buildReport(t, tt.mask)); got != tt.expected {
			t.Errorf("RenderWorkings(%d) = %q, want %q", tt.mask, got, tt.expected)
		}
	}
}

func TestWrite_Text(t *testing.T) {
	r := buildReport(t, 3)

	var buf bytes.Buffer
	if err := Write(&buf, r, FormatText); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != RenderText(r) {
		t.Errorf("text output differs from RenderText:\n%s", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildReport(t, 12), FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	want := Document{
		Mask:   12,
		Binary: "1100",
		Triggered: []Item{
			{Name: "warning", Bit: 4, Description: "warning message issued"},
			{Name: "refactor", Bit: 8, Description: "refactor message issued"},
		},
		Blocking: []Item{
			{Name: "warning", Bit: 4, Description: "warning message issued"},
		},
		ExitCode: 4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON document mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_JSONEmptyListsNotNull(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildReport(t, 0), FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "null") {
		t.Errorf("expected empty arrays, got %s", out)
	}
	if !strings.Contains(out, `"graceful": true`) {
		t.Errorf("expected graceful true, got %s", out)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildReport(t, 33), FormatYAML); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}

	if got.ExitCode != 33 {
		t.Errorf("exit_code = %d, want 33", got.ExitCode)
	}
	if len(got.Blocking) != 2 || got.Blocking[0].Name != "fatal" || got.Blocking[1].Name != "usage" {
		t.Errorf("unexpected blocking list: %+v", got.Blocking)
	}
	if !strings.Contains(buf.String(), "exit_code: 33") {
		t.Errorf("expected snake_case key in YAML, got:\n%s", buf.String())
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildReport(t, 1), Format("xml")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRenderPolicy(t *testing.T) {
	p, err := enforce.NewPolicy(enforce.Override{Name: "warning", Blocking: true}, enforce.Override{Name: "refactor", Blocking: true})
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}

	out := RenderPolicy(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected header, blank line and 6 rows, got %d lines:\n%s", len(lines), out)
	}

	for i, want := range []struct {
		name  string
		state string
	}{
		{"fatal:", "blocking"},
		{"error:", "blocking"},
		{"warning:", "blocking"},
		{"refactor:", "blocking"},
		{"convention:", "informational"},
		{"usage:", "blocking"},
	} {
		fields := strings.Fields(lines[i+2])
		if fields[0] != want.name || fields[2] != want.state {
			t.Errorf("row %d = %q, want name %q state %q", i, lines[i+2], want.name, want.state)
		}
	}
}
