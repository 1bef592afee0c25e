package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/regclient/toolsel/pkg/template"
	"github.com/regclient/toolsel/types/release"
)

type releaseOpts struct {
	rootOpts *rootOpts
	format   string
}

func NewReleaseCmd(rOpts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "release <cmd>",
		Aliases: []string{"releases"},
		Short:   "inspect the releases in a catalog",
	}
	cmd.AddCommand(newReleaseListCmd(rOpts))
	cmd.AddCommand(newReleaseGetCmd(rOpts))
	return cmd
}

func newReleaseListCmd(rOpts *rootOpts) *cobra.Command {
	opts := releaseOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list releases",
		Long:    `List each release in the catalog, in catalog order.`,
		Example: `
# list the releases
toolsel release list -c catalog.yaml

# list only the ids
toolsel release ls -c catalog.yaml --format '{{range .}}{{println .ID}}{{end}}'`,
		Args: cobra.ExactArgs(0),
		RunE: opts.runReleaseList,
	}
	cmd.Flags().StringVar(&opts.format, "format", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func newReleaseGetCmd(rOpts *rootOpts) *cobra.Command {
	opts := releaseOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "show a release",
		Long: `Show a release and its variants.
Without an id, the configured release or the latest release is shown.
A leading "go" on the id is ignored.`,
		Example: `
# show the latest release
toolsel release get -c catalog.yaml

# show the platforms of a release
toolsel release get go1.4.2 -c catalog.yaml --format '{{range .Platforms}}{{println .}}{{end}}'`,
		Args:              cobra.RangeArgs(0, 1),
		ValidArgsFunction: rOpts.completeArgRelease,
		RunE:              opts.runReleaseGet,
	}
	cmd.Flags().StringVar(&opts.format, "format", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func (opts *releaseOpts) runReleaseList(cmd *cobra.Command, args []string) error {
	c, _, err := opts.rootOpts.newClient(cmd, "")
	if err != nil {
		return err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	return template.Writer(cmd.OutOrStdout(), opts.format, releaseList(catalog.Releases))
}

func (opts *releaseOpts) runReleaseGet(cmd *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	c, releaseID, err := opts.rootOpts.newClient(cmd, id)
	if err != nil {
		return err
	}
	rel, err := c.Release(releaseID)
	if err != nil {
		return err
	}
	return template.Writer(cmd.OutOrStdout(), opts.format, rel)
}

// completeArgRelease suggests the release ids of the catalog
func (opts *rootOpts) completeArgRelease(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 && cmd.Name() == "get" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, _, err := opts.newClient(cmd, "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	catalog, err := c.Catalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	result := []string{}
	for _, id := range catalog.IDs() {
		if strings.HasPrefix(id, toComplete) {
			result = append(result, id)
		}
	}
	return result, cobra.ShellCompDirectiveNoFileComp
}

type releaseList []release.Release

// MarshalPretty outputs one line per release
func (l releaseList) MarshalPretty() ([]byte, error) {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID\tName\tVariants\n")
	for _, r := range l {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r.ID, r.Name, len(r.Variants))
	}
	err := tw.Flush()
	return buf.Bytes(), err
}
