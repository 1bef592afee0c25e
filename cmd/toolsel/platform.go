package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/regclient/toolsel/pkg/template"
	"github.com/regclient/toolsel/types/platform"
)

type platformOpts struct {
	rootOpts *rootOpts
	format   string
}

// normalized is the output of the normalize command
type normalized struct {
	Input     platform.Platform `json:"input"`
	OS        platform.OS       `json:"os"`
	Arch      platform.Arch     `json:"arch"`
	OSKnown   bool              `json:"osKnown"`
	ArchKnown bool              `json:"archKnown"`
}

// vocabulary is the output of the platforms command
type vocabulary struct {
	OS   []platform.OS   `json:"os"`
	Arch []platform.Arch `json:"arch"`
}

func NewNormalizeCmd(rOpts *rootOpts) *cobra.Command {
	opts := platformOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "normalize <os> <arch>",
		Short: "normalize an os and architecture",
		Long: `Show the canonical identifiers for an operating system and architecture name.
Names that are not recognized are returned unchanged and reported as unknown.`,
		Example: `
# normalize names reported by a macOS host
toolsel normalize "Mac OS X" x86_64

# output only the architecture
toolsel normalize linux armv7l --format '{{.Arch}}'`,
		Args: cobra.ExactArgs(2),
		RunE: opts.runNormalize,
	}
	cmd.Flags().StringVar(&opts.format, "format", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func NewPlatformsCmd(rOpts *rootOpts) *cobra.Command {
	opts := platformOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "list the canonical operating systems and architectures",
		Long:  `List every canonical operating system and architecture identifier.`,
		Example: `
# list the identifiers
toolsel platforms

# list only the operating systems
toolsel platforms --format '{{range .OS}}{{println .}}{{end}}'`,
		Args: cobra.ExactArgs(0),
		RunE: opts.runPlatforms,
	}
	cmd.Flags().StringVar(&opts.format, "format", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func (opts *platformOpts) runNormalize(cmd *cobra.Command, args []string) error {
	n := normalized{
		Input: platform.Platform{OS: args[0], Architecture: args[1]},
		OS:    platform.NormalizeOS(args[0]),
		Arch:  platform.NormalizeArch(args[1]),
	}
	n.OSKnown = n.OS.Known()
	n.ArchKnown = n.Arch.Known()
	return template.Writer(cmd.OutOrStdout(), opts.format, n)
}

func (opts *platformOpts) runPlatforms(cmd *cobra.Command, args []string) error {
	v := vocabulary{
		OS:   platform.KnownOS(),
		Arch: platform.KnownArch(),
	}
	return template.Writer(cmd.OutOrStdout(), opts.format, v)
}

func (n normalized) MarshalPretty() ([]byte, error) {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "OS:\t%s\t%s\n", n.OS, knownString(n.OSKnown))
	fmt.Fprintf(tw, "Arch:\t%s\t%s\n", n.Arch, knownString(n.ArchKnown))
	err := tw.Flush()
	return buf.Bytes(), err
}

func (v vocabulary) MarshalPretty() ([]byte, error) {
	osList := make([]string, 0, len(v.OS))
	for _, o := range v.OS {
		osList = append(osList, string(o))
	}
	archList := make([]string, 0, len(v.Arch))
	for _, a := range v.Arch {
		archList = append(archList, string(a))
	}
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "OS:\t%s\n", strings.Join(osList, ", "))
	fmt.Fprintf(tw, "Arch:\t%s\n", strings.Join(archList, ", "))
	err := tw.Flush()
	return buf.Bytes(), err
}

func knownString(known bool) string {
	if known {
		return "(known)"
	}
	return "(unknown)"
}

func completeArgOS(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	result := []string{}
	for _, o := range platform.KnownOS() {
		if strings.HasPrefix(string(o), toComplete) {
			result = append(result, string(o))
		}
	}
	return result, cobra.ShellCompDirectiveNoFileComp
}

func completeArgArch(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	result := []string{}
	for _, a := range platform.KnownArch() {
		if strings.HasPrefix(string(a), toComplete) {
			result = append(result, string(a))
		}
	}
	return result, cobra.ShellCompDirectiveNoFileComp
}

func completeArgPlatform(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	result := []string{}
	if strings.HasPrefix("local", toComplete) {
		result = append(result, "local")
	}
	osPart, archPart, found := strings.Cut(toComplete, "/")
	if !found {
		for _, o := range platform.KnownOS() {
			if strings.HasPrefix(string(o), osPart) {
				result = append(result, string(o)+"/")
			}
		}
		return result, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
	for _, a := range platform.KnownArch() {
		if strings.HasPrefix(string(a), archPart) {
			result = append(result, osPart+"/"+string(a))
		}
	}
	return result, cobra.ShellCompDirectiveNoFileComp
}
