package main

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	testConfigEnv(t)
	out, err := cobraTest(t, nil, "version")
	if err != nil {
		t.Fatalf("failed to run version: %v", err)
	}
	if !strings.Contains(out, "Platform:") {
		t.Errorf("unexpected version output: %s", out)
	}
	out, err = cobraTest(t, nil, "version", "--format", "{{.GoCompile}}")
	if err != nil {
		t.Fatalf("failed to run version with format: %v", err)
	}
	if out == "" {
		t.Errorf("missing compiler output")
	}
}

func TestRootVerbosity(t *testing.T) {
	testConfigEnv(t)
	_, err := cobraTest(t, nil, "platforms", "-v", "loud")
	if err == nil {
		t.Errorf("invalid verbosity did not fail")
	}
	out, err := cobraTest(t, nil, "select", "-c", testCatalog, "--release", "1.4.2", "--platform", "linux/amd64", "-v", "debug", "--logopt", "json", "--format", "{{.Arch}}")
	if err != nil {
		t.Fatalf("failed to select with debug logging: %v", err)
	}
	if !strings.Contains(out, `"msg":"Variant selected"`) {
		t.Errorf("json debug log missing: %s", out)
	}
	if !strings.HasSuffix(out, "amd64") {
		t.Errorf("selection output missing: %s", out)
	}
}

func TestRootConfigDir(t *testing.T) {
	tmpDir := t.TempDir()

	// This is invalid but should gracefully degrade and not crash
	t.Setenv(ConfigEnv, tmpDir)

	out, err := cobraTest(t, nil, "select", "-c", testCatalog, "--release", "1.4.2", "--platform", "linux/386", "--format", "{{.Arch}}")
	if err != nil {
		t.Fatalf("failed to select: %v", err)
	}
	if !strings.HasSuffix(out, "386") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestCLIDoc(t *testing.T) {
	testConfigEnv(t)
	out, err := cobraTest(t, nil, "cli-doc", "--list")
	if err != nil {
		t.Fatalf("failed to list commands: %v", err)
	}
	for _, want := range []string{"toolsel select", "toolsel matrix", "toolsel release get", "toolsel config set"} {
		if !strings.Contains(out, want) {
			t.Errorf("command list missing %s: %s", want, out)
		}
	}
	out, err = cobraTest(t, nil, "cli-doc", "normalize")
	if err != nil {
		t.Fatalf("failed to document normalize: %v", err)
	}
	if !strings.HasPrefix(out, "## toolsel normalize") {
		t.Errorf("unexpected doc output: %s", out)
	}
}
