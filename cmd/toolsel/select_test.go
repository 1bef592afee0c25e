package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/regclient/toolsel/types"
)

func TestSelect(t *testing.T) {
	testConfigEnv(t)
	tests := []struct {
		name      string
		args      []string
		expectErr error
		expectOut string
	}{
		{
			name:      "linux 32",
			args:      []string{"select", "-c", testCatalog, "--release", "1.4.2", "--platform", "Linux/i686", "--format", "{{.URL}}"},
			expectOut: "https://storage.googleapis.com/golang/go1.4.2.linux-386.tar.gz",
		},
		{
			name:      "os x by version",
			args:      []string{"select", "-c", testCatalog, "-r", "go1.4.2", "--os", "Mac OS X", "--arch", "x86_64", "--os-version", "10.7", "--format", "{{.OSXVersion}}"},
			expectOut: "10.6",
		},
		{
			name:      "newer os x",
			args:      []string{"select", "-c", testCatalog, "-r", "1.4.2", "-p", "darwin/amd64/10.11.12", "--format", "{{.OSXVersion}}"},
			expectOut: "10.8",
		},
		{
			name:      "override platform version",
			args:      []string{"select", "-c", testCatalog, "-r", "1.4.2", "-p", "darwin/amd64/10.5", "--os-version", "10.9", "--format", "{{.OSXVersion}}"},
			expectOut: "10.8",
		},
		{
			name:      "latest release",
			args:      []string{"select", "-c", testCatalog, "-p", "windows/x64", "--format", "{{.URL}}"},
			expectOut: "https://dl.google.com/go/go1.10.windows-amd64.zip",
		},
		{
			name:      "pretty output",
			args:      []string{"select", "-c", testCatalog, "-r", "1.4.2", "-p", "linux/386"},
			expectOut: "Platform:",
		},
		{
			name:      "unsupported os",
			args:      []string{"select", "-c", testCatalog, "-r", "1.4.2", "-p", "Android/armv7a"},
			expectErr: types.ErrUnsupportedPlatform,
		},
		{
			name:      "unsupported os x",
			args:      []string{"select", "-c", testCatalog, "-r", "1.4.2", "-p", "Mac OS X/x86_64/10.5"},
			expectErr: types.ErrUnsupportedOSVersion,
		},
		{
			name:      "missing release",
			args:      []string{"select", "-c", testCatalog, "-r", "0.1", "-p", "linux/amd64"},
			expectErr: types.ErrNotFound,
		},
		{
			name:      "missing catalog",
			args:      []string{"select", "-p", "linux/amd64"},
			expectErr: ErrMissingCatalog,
		},
		{
			name:      "missing catalog file",
			args:      []string{"select", "-c", "../../testdata/no-such-file.yaml", "-p", "linux/amd64"},
			expectErr: os.ErrNotExist,
		},
		{
			name:      "invalid platform",
			args:      []string{"select", "-c", testCatalog, "-p", "linux"},
			expectErr: types.ErrParsingFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := cobraTest(t, nil, tt.args...)
			if tt.expectErr != nil {
				if err == nil {
					t.Fatalf("did not receive expected error: %v", tt.expectErr)
				}
				// pflag does not wrap errors from Value.Set
				if !errors.Is(err, tt.expectErr) && !strings.Contains(err.Error(), tt.expectErr.Error()) {
					t.Errorf("unexpected error, received %v, expected %v", err, tt.expectErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("returned unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.expectOut) {
				t.Errorf("unexpected output, expected %s, received %s", tt.expectOut, out)
			}
		})
	}
}

func TestSelectStdin(t *testing.T) {
	testConfigEnv(t)
	catalog, err := os.ReadFile(testCatalog)
	if err != nil {
		t.Fatalf("failed to read catalog: %v", err)
	}
	out, err := cobraTest(t, &cobraTestOpts{stdin: bytes.NewReader(catalog)}, "select", "-c", "-", "-r", "1.9.7", "-p", "linux/amd64", "--format", "{{.Arch}}")
	if err != nil {
		t.Fatalf("failed to select from stdin: %v", err)
	}
	if out != "amd64" {
		t.Errorf("unexpected output: %s", out)
	}
	_, err = cobraTest(t, &cobraTestOpts{stdin: strings.NewReader("version: 2\n")}, "select", "-c", "-", "-p", "linux/amd64")
	if !errors.Is(err, types.ErrUnsupportedConfigVersion) {
		t.Errorf("unexpected error for unsupported catalog: %v", err)
	}
}

func TestMatrix(t *testing.T) {
	testConfigEnv(t)
	out, err := cobraTest(t, nil, "matrix", "-c", testCatalog, "-r", "1.4.2",
		"--platform", "linux/i686",
		"--platform", "Android/armv7a,Mac OS X/x86_64/10.11.12",
		"--platform", "Mac OS X/x86_64/10.5",
		"--format", "{{json .}}")
	if err != nil {
		t.Fatalf("failed to run matrix: %v", err)
	}
	var results []struct {
		Platform struct {
			OS           string `json:"os"`
			Architecture string `json:"architecture"`
		} `json:"platform"`
		Variant *struct {
			OS         string `json:"os"`
			OSXVersion string `json:"osxversion"`
		} `json:"variant"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("failed to parse output: %v\n%s", err, out)
	}
	if len(results) != 4 {
		t.Fatalf("unexpected result count: %d", len(results))
	}
	if results[0].Variant == nil || results[0].Platform.Architecture != "386" {
		t.Errorf("unexpected linux result: %v", results[0])
	}
	if results[1].Variant != nil || !strings.Contains(results[1].Error, types.ErrUnsupportedPlatform.Error()) {
		t.Errorf("unexpected android result: %v", results[1])
	}
	if results[2].Variant == nil || results[2].Variant.OSXVersion != "10.8" {
		t.Errorf("unexpected os x result: %v", results[2])
	}
	if results[3].Variant != nil || !strings.Contains(results[3].Error, types.ErrUnsupportedOSVersion.Error()) {
		t.Errorf("unexpected old os x result: %v", results[3])
	}

	out, err = cobraTest(t, nil, "matrix", "-c", testCatalog, "-r", "1.4.2", "-p", "linux/amd64", "-p", "plan9/386")
	if err != nil {
		t.Fatalf("failed to run matrix: %v", err)
	}
	for _, want := range []string{"Platform", "linux/amd64", "plan9/386", types.ErrUnsupportedPlatform.Error()} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %s: %s", want, out)
		}
	}

	_, err = cobraTest(t, nil, "matrix", "-c", testCatalog)
	if err == nil {
		t.Errorf("matrix without platforms did not fail")
	}
}
