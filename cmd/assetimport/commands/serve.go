package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assetimport/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer import requests over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context(), app.ServeOptions{Addr: addr})
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", app.DefaultAddr, "Address to listen on")
	return cmd
}
