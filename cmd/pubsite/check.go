package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/pubsite"
	"github.com/eringen/pubsite/site"
)

func newCheckCommand() *cobra.Command {
	var assetsDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the site configuration and its image assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := site.New(site.DefaultValues())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "configuration: ok")

			checks := pubsite.CheckAssets(cfg, assetsDir)
			rows := make([][]string, 0, len(checks))
			failed := 0
			for _, c := range checks {
				status := "ok"
				detail := fmt.Sprintf("%s %dx%d", c.Info.Format, c.Info.Width, c.Info.Height)
				switch {
				case c.Err != nil:
					status, detail = "error", c.Err.Error()
				case c.Warning != "":
					status, detail = "warning", c.Warning
				}
				if !c.OK() {
					failed++
				}
				rows = append(rows, []string{c.Name, status, detail})
			}
			fmt.Fprintln(out, renderTable("Assets in "+assetsDir, []string{"Asset", "Status", "Detail"}, rows))
			if failed > 0 {
				return fmt.Errorf("%d asset check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assetsDir, "assets", pubsite.EnvOr("SITE_STATIC_DIR", "public"), "Static directory holding the assets/ folder")

	return cmd
}
