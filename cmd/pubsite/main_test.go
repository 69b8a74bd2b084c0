package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowDefaultsToJSON(t *testing.T) {
	out, err := runCommand(t, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Fatalf("show output is not JSON:\n%s", out)
	}
	if !strings.Contains(out, `"name": "Twitter"`) {
		t.Error("show should include inactive socials")
	}
}

func TestShowActiveOnly(t *testing.T) {
	out, err := runCommand(t, "show", "--format", "yaml", "--active")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if strings.Contains(out, "Twitter") || strings.Contains(out, "mailto:") {
		t.Errorf("show --active should drop inactive socials:\n%s", out)
	}
}

func TestShowTable(t *testing.T) {
	out, err := runCommand(t, "show", "-f", "table")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"postPerPage", "900000 ms", "LinkedIn", "216x46"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestShowUnknownFormat(t *testing.T) {
	if _, err := runCommand(t, "show", "-f", "xml"); err == nil {
		t.Error("show -f xml should fail")
	}
}

func TestCheckMissingAssets(t *testing.T) {
	out, err := runCommand(t, "check", "--assets", t.TempDir())
	if err == nil {
		t.Fatal("check should fail when assets are missing")
	}
	if !strings.Contains(out, "configuration: ok") {
		t.Errorf("check output = %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "pubsite dev\n" {
		t.Errorf("version output = %q", out)
	}
}
