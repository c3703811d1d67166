package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ai-act-tracker/internal/catalog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the requirements a new gap assessment starts with",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.Load()
		if err != nil {
			return err
		}
		return writeCatalog(cmd.OutOrStdout(), entries, catalogFormat)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "table", "Output format: table, yaml")
}

func writeCatalog(w io.Writer, entries []catalog.Entry, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ARTICLE\tCATEGORY\tTITLE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Article, e.Category, e.Title)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		categories := catalog.Categories(entries)
		_, err := fmt.Fprintf(w, "\n%d requirements in %d categories: %s\n",
			len(entries), len(categories), strings.Join(categories, ", "))
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
