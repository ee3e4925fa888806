package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assetimport/internal/app"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/engine/importer"
)

func (c *CLI) newImportCmd() *cobra.Command {
	var (
		req  importer.Request
		wait bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the transformations bound to one content field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := c.app.Import(cmd.Context(), req, app.ImportOptions{Wait: wait})
			if rerr := c.renderResults(cmd.OutOrStdout(), results); rerr != nil {
				return rerr
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&req.ContentType, "content-type", "t", "", "Content type of the document holding the field")
	flags.StringVar(&req.Context, "context", "", "Usage context the catalog is keyed by")
	flags.StringVarP(&req.Location, "location", "l", "", "Field location inside the document")
	flags.StringVar(&req.Asset.ID, "id", "", "Asset id on the asset service")
	flags.StringVar(&req.Asset.Path, "path", "", "Asset path on the asset service, used when the id does not resolve")
	flags.BoolVarP(&wait, "wait", "w", false, "Report file states after queued fetches finished")
	_ = cmd.MarkFlagRequired("content-type")
	_ = cmd.MarkFlagRequired("context")
	_ = cmd.MarkFlagRequired("location")
	cmd.MarkFlagsOneRequired("id", "path")
	return cmd
}

func (c *CLI) newBulkCmd() *cobra.Command {
	var opts app.DocumentOptions
	cmd := &cobra.Command{
		Use:   "bulk <document>",
		Short: "Import every asset referenced by a content document and annotate it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			report, err := c.app.ImportDocument(cmd.Context(), opts)
			if rerr := c.renderReport(cmd.OutOrStdout(), report); rerr != nil {
				return rerr
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.Context, "context", "", "Usage context the catalog is keyed by")
	flags.StringVar(&opts.Locale, "locale", "", "Locale substituted into localized field locations, e.g. en-US")
	flags.StringVarP(&opts.Output, "output", "o", "", "Write the annotated document here instead of in place")
	_ = cmd.MarkFlagRequired("context")
	return cmd
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <file>...",
		Short: "Show whether imported files can be served",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := c.app.Status(cmd.Context(), args)
			if rerr := c.renderStates(cmd.OutOrStdout(), states); rerr != nil {
				return rerr
			}
			if err != nil {
				return err
			}
			for _, s := range states {
				if s.Status != domain.StatusReady {
					return domain.ErrFilesNotReady
				}
			}
			return nil
		},
	}
}

func (c *CLI) newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the transformation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, err := c.app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			return c.renderCatalog(cmd.OutOrStdout(), listing)
		},
	}
}
