package main

import (
	"strings"

	"relic-search/internal/services/relic"

	"github.com/spf13/cobra"
)

var (
	searchField    string
	searchAdvanced bool
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search relics directly against the database",
	Long: "Run the same search as GET /api/search and print the JSON envelope. " +
		"With --advanced the single-column search of GET /api/search/advanced is used instead.",
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", "name", "Column for --advanced searches (id, name)")
	searchCmd.Flags().BoolVar(&searchAdvanced, "advanced", false, "Use the single-column advanced search")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	term := strings.Join(args, " ")
	ctx := newContext(cmd)

	var resp *relic.SearchResponse
	if searchAdvanced {
		resp, err = svc.AdvancedSearch(ctx, term, relic.ParseSearchField(searchField))
	} else {
		resp, err = svc.Search(ctx, term)
	}
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}
