package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/quillmark/quill/cmd/quill/app"
	"github.com/quillmark/quill/internal/content"
)

// listCmd prints the local content set and the canonical URLs that
// publishing would use.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List local posts and their canonical URLs",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := app.LoadConfig()

		files, err := content.Discover(cfg.ContentDir)
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(os.Stdout)
		table.Header("FILE", "TITLE", "DRAFT", "CANONICAL URL")

		for _, file := range files {
			rel := content.Rel(cfg.ContentDir, file)
			post, err := content.Load(file, rel)
			if err != nil {
				return err
			}

			draft := ""
			if post.Meta.Draft {
				draft = "yes"
			}
			if err := table.Append(post.Rel, post.Title(), draft,
				content.CanonicalURL(cfg.SiteURL, post.Rel)); err != nil {
				return err
			}
		}

		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
