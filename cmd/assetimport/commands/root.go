// Package commands implements the CLI commands for the asset importer.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/assetimport/internal/app"
	"go.trai.ch/assetimport/internal/build"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/engine/importer"
	"go.trai.ch/assetimport/internal/ui/output"
)

// Application is what the commands drive.
type Application interface {
	Configure(opts app.GlobalOptions)
	Import(ctx context.Context, req importer.Request, opts app.ImportOptions) ([]domain.ImportResult, error)
	ImportDocument(ctx context.Context, opts app.DocumentOptions) (importer.Report, error)
	Status(ctx context.Context, paths []string) ([]app.FileState, error)
	Catalog(ctx context.Context) (app.CatalogListing, error)
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// CLI represents the command line interface of assetimport.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	logOut  io.Writer
	json    bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "assetimport",
		Short:         "Import transformed assets from a digital asset service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}
	rootCmd.SetVersionTemplate("assetimport version {{.Version}}\n")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to assetimport.yaml (default: discovered upwards)")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs and results as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		logOut:  os.Stderr,
	}
	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newBulkCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCatalogCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command results and logs.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
	c.logOut = stderr
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	jsonMode, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	// A server without a terminal is usually supervised; its logs go to a collector.
	if cmd.Name() == "serve" && !cmd.Flags().Changed("json") && !output.IsTerminal(c.logOut) {
		jsonMode = true
	}
	c.json = jsonMode

	c.app.Configure(app.GlobalOptions{
		ConfigPath: configPath,
		JSON:       jsonMode,
		Verbose:    verbose,
		LogOutput:  c.logOut,
	})
	return nil
}
