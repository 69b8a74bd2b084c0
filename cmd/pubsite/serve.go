package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/eringen/pubsite"
	"github.com/eringen/pubsite/site"
)

func newServeCommand() *cobra.Command {
	var cfg pubsite.ServerConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local preview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := pubsite.New(site.Default(), cfg)
			defer app.Close()
			log.Printf("pubsite: previewing %s on %s", site.Default().Site().Website, app.Config.Addr)
			return app.Start()
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", pubsite.EnvOr("SITE_ADDR", ":4321"), "Listen address")
	cmd.Flags().StringVar(&cfg.StaticDir, "static", pubsite.EnvOr("SITE_STATIC_DIR", "public"), "Static directory holding the assets/ folder")

	return cmd
}
