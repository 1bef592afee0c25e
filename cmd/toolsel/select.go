package main

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/regclient/toolsel"
	"github.com/regclient/toolsel/pkg/template"
	"github.com/regclient/toolsel/types/platform"
)

type selectOpts struct {
	rootOpts  *rootOpts
	release   string
	platform  platform.Platform
	platforms []platform.Platform
	os        string
	arch      string
	osVersion string
	format    string
}

func NewSelectCmd(rOpts *rootOpts) *cobra.Command {
	opts := selectOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "select",
		Short: "select the release variant for a platform",
		Long: `Select the variant of a release to install on a platform.
The platform defaults to the local host. Individual fields of the platform
may be overridden with --os, --arch, and --os-version. Names are normalized,
so "Mac OS X" and "x86_64" are accepted.`,
		Example: `
# select for the local host from the latest release
toolsel select -c catalog.yaml

# select for a 32-bit linux host
toolsel select -c catalog.yaml --release 1.4.2 --platform linux/i686

# select for a macOS host by version, output only the url
toolsel select -c catalog.yaml --os "Mac OS X" --arch x86_64 --os-version 10.7 --format '{{.URL}}'`,
		Args: cobra.ExactArgs(0),
		RunE: opts.runSelect,
	}
	cmd.Flags().StringVarP(&opts.release, "release", "r", "", "Release id, defaults to the config or the latest release")
	_ = cmd.RegisterFlagCompletionFunc("release", rOpts.completeArgRelease)
	cmd.Flags().VarP(newPlatformValue(&opts.platform), "platform", "p", "Platform (os/arch[/osversion] or local)")
	_ = cmd.RegisterFlagCompletionFunc("platform", completeArgPlatform)
	cmd.Flags().StringVar(&opts.os, "os", "", "Override the operating system")
	_ = cmd.RegisterFlagCompletionFunc("os", completeArgOS)
	cmd.Flags().StringVar(&opts.arch, "arch", "", "Override the architecture")
	_ = cmd.RegisterFlagCompletionFunc("arch", completeArgArch)
	cmd.Flags().StringVar(&opts.osVersion, "os-version", "", "Override the operating system version")
	_ = cmd.RegisterFlagCompletionFunc("os-version", completeArgNone)
	cmd.Flags().StringVar(&opts.format, "format", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func NewMatrixCmd(rOpts *rootOpts) *cobra.Command {
	opts := selectOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "select the release variant for several platforms",
		Long: `Select the variant of a release for each platform.
Platforms that cannot be satisfied are reported in the output without failing the command.`,
		Example: `
# show the artifacts for a set of hosts
toolsel matrix -c catalog.yaml --platform linux/amd64 --platform windows/amd64 --platform darwin/arm64/14.1

# output json
toolsel matrix -c catalog.yaml --platform linux/amd64,linux/arm64 --format '{{json .}}'`,
		Args: cobra.ExactArgs(0),
		RunE: opts.runMatrix,
	}
	cmd.Flags().StringVarP(&opts.release, "release", "r", "", "Release id, defaults to the config or the latest release")
	_ = cmd.RegisterFlagCompletionFunc("release", rOpts.completeArgRelease)
	cmd.Flags().VarP(newPlatformListValue(&opts.platforms), "platform", "p", "Platforms (os/arch[/osversion] or local), may be repeated")
	_ = cmd.RegisterFlagCompletionFunc("platform", completeArgPlatform)
	_ = cmd.MarkFlagRequired("platform")
	cmd.Flags().StringVar(&opts.format, "format", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func (opts *selectOpts) runSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p := opts.platform
	if !flagChanged(cmd, "platform") {
		p = platform.Local()
	}
	if flagChanged(cmd, "os") {
		p.OS = opts.os
	}
	if flagChanged(cmd, "arch") {
		p.Architecture = opts.arch
	}
	if flagChanged(cmd, "os-version") {
		p.OSVersion = opts.osVersion
	}

	c, releaseID, err := opts.rootOpts.newClient(cmd, opts.release)
	if err != nil {
		return err
	}
	opts.rootOpts.log.WithFields(logrus.Fields{
		"release":  releaseID,
		"platform": p.String(),
	}).Debug("Selecting variant")
	v, err := c.Candidate(ctx, releaseID, p)
	if err != nil {
		return err
	}
	return template.Writer(cmd.OutOrStdout(), opts.format, v)
}

func (opts *selectOpts) runMatrix(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if len(opts.platforms) == 0 {
		return fmt.Errorf("at least one platform is needed: %w", ErrMissingInput)
	}
	c, releaseID, err := opts.rootOpts.newClient(cmd, opts.release)
	if err != nil {
		return err
	}
	results, err := c.Matrix(ctx, releaseID, opts.platforms)
	if err != nil {
		return err
	}
	return template.Writer(cmd.OutOrStdout(), opts.format, matrixResults(results))
}

type matrixResults []toolsel.Result

// MarshalPretty outputs one line per platform with the selected variant or the failure
func (m matrixResults) MarshalPretty() ([]byte, error) {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Platform\tVariant\tURL\n")
	for _, r := range m {
		if r.Variant == nil {
			fmt.Fprintf(tw, "%s\t-\t%s\n", r.Platform.String(), r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Platform.String(), r.Variant.String(), r.Variant.URL)
	}
	err := tw.Flush()
	return buf.Bytes(), err
}
