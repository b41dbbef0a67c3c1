package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetGroupedUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Usage(); err != nil {
		t.Fatalf("Usage() returned error: %v", err)
	}

	output := buf.String()

	for _, header := range []string{"Usage:", "Commands:", "Enforcement:", "Output:", "Other Flags:"} {
		if !strings.Contains(output, header) {
			t.Errorf("expected header %q in output, got:\n%s", header, output)
		}
	}

	enforcementIdx := strings.Index(output, "Enforcement:")
	outputIdx := strings.Index(output, "Output:")
	otherIdx := strings.Index(output, "Other Flags:")

	warnIdx := strings.Index(output, "--warn-fail")
	if warnIdx < enforcementIdx || warnIdx > outputIdx {
		t.Error("expected --warn-fail under Enforcement")
	}
	formatIdx := strings.Index(output, "--format")
	if formatIdx < outputIdx || formatIdx > otherIdx {
		t.Error("expected --format under Output")
	}
	debugIdx := strings.Index(output, "--debug")
	if debugIdx < otherIdx {
		t.Error("expected --debug under Other Flags")
	}

	if strings.Count(output, "--warn-fail") != 1 {
		t.Errorf("expected --warn-fail listed once, got:\n%s", output)
	}
}

func TestSetGroupedUsage_PolicySubcommand(t *testing.T) {
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)

	policy, _, err := root.Find([]string{"policy"})
	if err != nil {
		t.Fatalf("Find(policy): %v", err)
	}

	var buf bytes.Buffer
	policy.SetOut(&buf)
	if err := policy.Usage(); err != nil {
		t.Fatalf("Usage() returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Enforcement:") || !strings.Contains(output, "--convention-fail") {
		t.Errorf("expected inherited enforcement flags in policy usage, got:\n%s", output)
	}
	if strings.Contains(output, "--format") {
		t.Errorf("root-only --format should not appear in policy usage, got:\n%s", output)
	}
}
