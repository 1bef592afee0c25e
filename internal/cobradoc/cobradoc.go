// Package cobradoc renders Markdown documentation for a tree of cobra commands.
package cobradoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/regclient/toolsel/pkg/template"
)

// List writes the path of cmd and each of its descendants, one per line.
func List(cmd *cobra.Command, hidden bool, out io.Writer) {
	_ = walk(cmd, hidden, func(c *cobra.Command) error {
		_, err := fmt.Fprintln(out, c.CommandPath())
		return err
	})
}

// Markdown writes the documentation for a single command.
func Markdown(cmd *cobra.Command, out io.Writer) error {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "## %s\n\n%s\n\n", cmd.CommandPath(), cmd.Short)
	if long := strings.TrimSpace(cmd.Long); long != "" {
		fmt.Fprintf(buf, "### Synopsis\n\n%s\n\n", long)
	}
	if cmd.Runnable() {
		fmt.Fprintf(buf, "```\n%s\n```\n\n", cmd.UseLine())
	}
	if example := strings.TrimSpace(cmd.Example); example != "" {
		fmt.Fprintf(buf, "### Examples\n\n```\n%s\n```\n\n", example)
	}
	writeFlags(buf, "Options", cmd.NonInheritedFlags())
	writeFlags(buf, "Options inherited from parent commands", cmd.InheritedFlags())
	_, err := buf.WriteTo(out)
	return err
}

// WriteDir writes one Markdown file per command into dir, named from the command path.
func WriteDir(cmd *cobra.Command, hidden bool, dir string) error {
	//#nosec G301 docs are not sensitive
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return walk(cmd, hidden, func(c *cobra.Command) error {
		buf := &bytes.Buffer{}
		if err := Markdown(c, buf); err != nil {
			return err
		}
		name := strings.ReplaceAll(c.CommandPath(), " ", "_") + ".md"
		//#nosec G306 docs are not sensitive
		return os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644)
	})
}

func walk(cmd *cobra.Command, hidden bool, fn func(*cobra.Command) error) error {
	if err := fn(cmd); err != nil {
		return err
	}
	for _, child := range cmd.Commands() {
		if child.Hidden && !hidden {
			continue
		}
		if err := walk(child, hidden, fn); err != nil {
			return err
		}
	}
	return nil
}

func writeFlags(buf *bytes.Buffer, title string, flags *pflag.FlagSet) {
	if !flags.HasAvailableFlags() {
		return
	}
	fmt.Fprintf(buf, "### %s\n\n```\n%s```\n\n", title, flags.FlagUsages())
}

type docOpts struct {
	dir    string
	format string
	hidden bool
	list   bool
}

// NewCmd returns a hidden command that documents its parent's command tree.
func NewCmd(rootName, use string) *cobra.Command {
	opts := docOpts{}
	cmd := &cobra.Command{
		Hidden: true,
		Use:    use,
		Short:  "Document CLI",
		Long:   `Output Markdown documentation for the commands of the CLI.`,
		Example: fmt.Sprintf(`
# list all commands
%[1]s %[2]s --list

# output documentation for the "select" command
%[1]s %[2]s select

# write documentation for every command to a directory
%[1]s %[2]s --dir docs/cli`, rootName, use),
		Args: cobra.ArbitraryArgs,
		RunE: opts.run,
	}
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Write a file per command to a directory")
	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "Include hidden commands")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List all commands")
	cmd.Flags().StringVar(&opts.format, "format", "", "Format output with go template syntax")
	return cmd
}

func (opts *docOpts) run(cmd *cobra.Command, args []string) error {
	root := cmd.Parent()
	switch {
	case opts.list:
		List(root, opts.hidden, cmd.OutOrStdout())
		return nil
	case opts.dir != "":
		return WriteDir(root, opts.hidden, opts.dir)
	}
	target, _, err := root.Find(args)
	if err != nil {
		return err
	}
	if opts.format != "" {
		return template.Writer(cmd.OutOrStdout(), opts.format, target)
	}
	return Markdown(target, cmd.OutOrStdout())
}
