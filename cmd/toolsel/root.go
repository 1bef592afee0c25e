package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/regclient/toolsel"
	"github.com/regclient/toolsel/internal/cobradoc"
	"github.com/regclient/toolsel/internal/version"
	"github.com/regclient/toolsel/pkg/template"
	"github.com/regclient/toolsel/types/release"
)

const usageDesc = `Utility for selecting the toolchain release artifact for a platform
More details at https://github.com/regclient/toolsel`

type rootOpts struct {
	name      string
	catalog   string
	verbosity string
	logopts   []string
	log       *logrus.Logger
}

type versionOpts struct {
	rootOpts *rootOpts
	format   string
}

func NewRootCmd() (*cobra.Command, *rootOpts) {
	rOpts := &rootOpts{}
	cmd := &cobra.Command{
		Use:   "toolsel <cmd>",
		Short: "Select the toolchain release artifact for a platform",
		Long:  usageDesc,
		Example: `
# select the artifact of the latest release for this host
toolsel select -c catalog.yaml

# select a release for an older macOS host
toolsel select -c catalog.yaml --release 1.4.2 --platform "Mac OS X/x86_64/10.7"

# read the catalog from stdin and show debugging output
curl -s https://example.org/catalog.yaml | toolsel select -c - -v debug`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rOpts.name = cmd.Name()
	rOpts.log = &logrus.Logger{
		Out:       cmd.ErrOrStderr(),
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.WarnLevel,
	}

	cmd.PersistentFlags().StringVarP(&rOpts.catalog, "catalog", "c", "", "Catalog file, use \"-\" for stdin")
	_ = cmd.MarkPersistentFlagFilename("catalog", "yaml", "yml", "json")
	cmd.PersistentFlags().StringVarP(&rOpts.verbosity, "verbosity", "v", logrus.WarnLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	_ = cmd.RegisterFlagCompletionFunc("verbosity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.PersistentFlags().StringArrayVar(&rOpts.logopts, "logopt", []string{}, "Log options")
	_ = cmd.RegisterFlagCompletionFunc("logopt", completeArgNone)

	cmd.PersistentPreRunE = rOpts.rootPreRun
	cmd.AddCommand(cobradoc.NewCmd(rOpts.name, "cli-doc"))
	cmd.AddCommand(
		NewConfigCmd(rOpts),
		NewMatrixCmd(rOpts),
		NewNormalizeCmd(rOpts),
		NewPlatformsCmd(rOpts),
		NewReleaseCmd(rOpts),
		NewSelectCmd(rOpts),
		newVersionCmd(rOpts),
	)
	return cmd, rOpts
}

func newVersionCmd(rOpts *rootOpts) *cobra.Command {
	opts := versionOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Long:  fmt.Sprintf(`Show the version of %s.`, opts.rootOpts.name),
		Example: fmt.Sprintf(`
# display full version details
%[1]s version

# retrieve the version number
%[1]s version --format '{{.VCSTag}}'`, opts.rootOpts.name),
		Args: cobra.ExactArgs(0),
		RunE: opts.runVersion,
	}
	cmd.Flags().StringVarP(&opts.format, "format", "", "{{printPretty .}}", "Format output with go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func (opts *rootOpts) rootPreRun(cmd *cobra.Command, args []string) error {
	lvl, err := logrus.ParseLevel(opts.verbosity)
	if err != nil {
		return fmt.Errorf("unable to parse verbosity %s: %w", opts.verbosity, err)
	}
	opts.log.SetOutput(cmd.ErrOrStderr())
	opts.log.SetLevel(lvl)
	opts.log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	for _, opt := range opts.logopts {
		if opt == "json" {
			opts.log.Formatter = new(logrus.JSONFormatter)
		}
	}
	return nil
}

// newClient loads the catalog from the flag or the config file.
// The release id from the config is returned when releaseFlag is empty.
func (opts *rootOpts) newClient(cmd *cobra.Command, releaseFlag string) (*toolsel.Client, string, error) {
	conf, err := ConfigLoadDefault()
	if err != nil {
		opts.log.WithFields(logrus.Fields{
			"err": err,
		}).Warn("Failed to load default config")
		if conf == nil {
			conf = ConfigNew()
		}
	}
	catalogName := opts.catalog
	if catalogName == "" {
		catalogName = conf.Catalog
	}
	releaseID := releaseFlag
	if releaseID == "" {
		releaseID = conf.Release
	}
	if catalogName == "" {
		return nil, "", ErrMissingCatalog
	}

	var catalog *release.Catalog
	if catalogName == "-" {
		catalog, err = release.LoadReader(cmd.InOrStdin())
	} else {
		catalog, err = release.LoadFile(catalogName)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load catalog %s: %w", catalogName, err)
	}
	opts.log.WithFields(logrus.Fields{
		"catalog":  catalogName,
		"releases": len(catalog.Releases),
	}).Debug("Catalog loaded")

	return toolsel.New(toolsel.WithCatalog(catalog), toolsel.WithLog(opts.log)), releaseID, nil
}

func (opts *versionOpts) runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()
	return template.Writer(cmd.OutOrStdout(), opts.format, info)
}

func completeArgNone(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return false
	}
	return flag.Changed
}
