package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/regclient/toolsel/internal/conffile"
	"github.com/regclient/toolsel/pkg/template"
	"github.com/regclient/toolsel/types"
)

var (
	// ConfigFilename is the default filename to read/write configuration
	ConfigFilename = "config.yaml"
	// ConfigDir is the default directory within the user's home directory to read/write configuration
	ConfigDir = ".toolsel"
	// ConfigAppDir is the directory within the OS application config directory
	ConfigAppDir = "toolsel"
	// ConfigEnv is the environment variable to override the config filename
	ConfigEnv = "TOOLSEL_CONFIG"
)

// Config struct contains contents loaded from / saved to a config file
type Config struct {
	Filename string `yaml:"-" json:"-"`                                 // filename that was loaded
	Version  int    `yaml:"version,omitempty" json:"version,omitempty"` // version the file in case the config file syntax changes in the future
	Catalog  string `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Release  string `yaml:"release,omitempty" json:"release,omitempty"`
}

type configOpts struct {
	rootOpts *rootOpts
	catalog  string
	release  string
	format   string
}

func NewConfigCmd(rOpts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <cmd>",
		Short: "read/set configuration options",
	}
	cmd.AddCommand(newConfigGetCmd(rOpts))
	cmd.AddCommand(newConfigSetCmd(rOpts))
	return cmd
}

func newConfigGetCmd(rOpts *rootOpts) *cobra.Command {
	opts := configOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "show the config",
		Long:  `Displays the configuration.`,
		Example: `
# show the configuration
toolsel config get

# show the default catalog
toolsel config get --format '{{.Catalog}}'`,
		Args: cobra.ExactArgs(0),
		RunE: opts.runConfigGet,
	}
	cmd.Flags().StringVar(&opts.format, "format", "{{ printPretty . }}", "format the output with Go template syntax")
	_ = cmd.RegisterFlagCompletionFunc("format", completeArgNone)
	return cmd
}

func newConfigSetCmd(rOpts *rootOpts) *cobra.Command {
	opts := configOpts{
		rootOpts: rOpts,
	}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "set a configuration option",
		Long:  `Modifies an option used in future executions.`,
		Example: `
# use a default catalog
toolsel config set --catalog ~/catalogs/go.yaml

# pin the release, an empty value returns to the latest release
toolsel config set --release 1.21.0`,
		Args: cobra.ExactArgs(0),
		RunE: opts.runConfigSet,
	}
	// "catalog" is also a persistent root flag, the local flag shadows it here
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "default catalog file")
	_ = cmd.MarkFlagFilename("catalog", "yaml", "yml", "json")
	cmd.Flags().StringVar(&opts.release, "release", "", "default release id")
	_ = cmd.RegisterFlagCompletionFunc("release", rOpts.completeArgRelease)
	return cmd
}

func (opts *configOpts) runConfigGet(cmd *cobra.Command, args []string) error {
	c, err := ConfigLoadDefault()
	if err != nil {
		return err
	}
	return template.Writer(cmd.OutOrStdout(), opts.format, c)
}

func (opts *configOpts) runConfigSet(cmd *cobra.Command, args []string) error {
	c, err := ConfigLoadDefault()
	if err != nil {
		return err
	}

	if flagChanged(cmd, "catalog") {
		c.Catalog = opts.catalog
		if c.Catalog != "" && c.Catalog != "-" {
			abs, err := filepath.Abs(c.Catalog)
			if err != nil {
				return err
			}
			c.Catalog = abs
		}
	}
	if flagChanged(cmd, "release") {
		c.Release = opts.release
	}

	err = c.ConfigSave()
	if err != nil {
		return err
	}
	opts.rootOpts.log.WithField("filename", c.Filename).Info("Config saved")
	return nil
}

// ConfigNew creates an empty configuration
func ConfigNew() *Config {
	return &Config{Version: 1}
}

// ConfigLoadConfFile loads the config from a conffile
func ConfigLoadConfFile(cf *conffile.File) (*Config, error) {
	r, err := cf.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	c := ConfigNew()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	c.Filename = cf.Name()
	// verify loaded version is not higher than supported version
	if c.Version > 1 {
		return c, fmt.Errorf("config version %d: %w", c.Version, types.ErrUnsupportedConfigVersion)
	}
	return c, nil
}

// ConfigLoadDefault loads the config from the (default) filename
func ConfigLoadDefault() (*Config, error) {
	cf := conffile.New(
		conffile.WithHomeDir(ConfigDir, ConfigFilename, true),
		conffile.WithAppDir(ConfigAppDir, ConfigAppDir, ConfigFilename, false),
		conffile.WithEnvFile(ConfigEnv),
	)
	if cf == nil {
		return nil, fmt.Errorf("failed to define config file")
	}
	c, err := ConfigLoadConfFile(cf)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		// do not error on file not found
		c := ConfigNew()
		c.Filename = cf.Name()
		return c, nil
	}
	return c, err
}

// ConfigSave saves to previously loaded filename
func (c *Config) ConfigSave() error {
	cf := conffile.New(conffile.WithFullname(c.Filename))
	if cf == nil {
		return types.ErrNotFound
	}
	out, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return cf.Write(bytes.NewReader(out))
}

// MarshalPretty outputs the config in yaml
func (c *Config) MarshalPretty() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return append([]byte("# "+c.Filename+"\n"), out...), nil
}
