package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/pubsite/site"
)

func newShowCommand() *cobra.Command {
	var format string
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the site configuration",
		Long: "Print the site configuration as tables or as json, toml or yaml.\n" +
			"Inactive social links are included unless --active is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if format == "" {
				format = "json"
				if isTerminal(out) {
					format = "table"
				}
			}
			cfg := site.Default()
			policy := site.AllSocials
			if activeOnly {
				policy = site.ActiveSocials
			}
			if format == "table" {
				return writeTables(out, site.NewDocument(cfg, policy))
			}
			f, err := site.ParseFormat(format)
			if err != nil {
				return err
			}
			return site.NewDocument(cfg, policy).Encode(out, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, toml, yaml (default table on a terminal, json otherwise)")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only include active social links")

	return cmd
}

func writeTables(w io.Writer, doc site.Document) error {
	s := doc.Site
	siteRows := [][]string{
		{"website", s.Website},
		{"author", s.Author},
		{"title", s.Title},
		{"desc", truncate(s.Desc, 72)},
		{"ogImage", s.OGImage},
		{"lightAndDarkMode", strconv.FormatBool(s.LightAndDarkMode)},
		{"postPerPage", strconv.Itoa(s.PostPerPage)},
		{"scheduledPostMargin", fmt.Sprintf("%d ms", s.ScheduledPostMargin)},
		{"lang", orDefault(doc.Locale.Lang)},
		{"langTag", orDefault(strings.Join(doc.Locale.LangTag, ", "))},
		{"logo", fmt.Sprintf("enable=%t svg=%t %dx%d", doc.Logo.Enable, doc.Logo.SVG, doc.Logo.Width, doc.Logo.Height)},
	}
	if _, err := fmt.Fprintln(w, renderTable("Site", []string{"Key", "Value"}, siteRows)); err != nil {
		return err
	}

	socialRows := make([][]string, 0, len(doc.Socials))
	for _, e := range doc.Socials {
		socialRows = append(socialRows, []string{e.Name, e.Href, e.LinkTitle, strconv.FormatBool(e.Active)})
	}
	_, err := fmt.Fprintln(w, renderTable("Socials", []string{"Name", "Href", "Link title", "Active"}, socialRows))
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func orDefault(s string) string {
	if s == "" {
		return "(host default)"
	}
	return s
}
