package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = "../../testdata/catalog.yaml"

type cobraTestOpts struct {
	stdin io.Reader
}

func cobraTest(t *testing.T, opts *cobraTestOpts, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd, _ := NewRootCmd()
	if opts != nil && opts.stdin != nil {
		rootCmd.SetIn(opts.stdin)
	}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return strings.TrimSpace(buf.String()), err
}

// testConfigEnv points the config file to an empty temp dir
func testConfigEnv(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(ConfigEnv, name)
	return name
}
