package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillmark/quill/cmd/quill/app"
	"github.com/quillmark/quill/internal/site"
)

var (
	buildOut    string
	buildDrafts bool
)

// buildCmd renders the static site.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long: `Build renders every Markdown file under the content root through the
site templates into a static HTML tree, along with a post index and an
RSS feed. Site metadata comes from site.yaml.`,
	Example: `  quill build
  quill build --out dist --drafts`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := app.LoadConfig()

		result, err := buildSite(cfg, buildOut, buildDrafts)
		if err != nil {
			return err
		}

		fmt.Printf("Built %d pages (%d posts) into %s\n", result.Pages, result.Posts, buildOut)
		return nil
	},
}

// buildSite is shared by the build and serve commands.
func buildSite(cfg *app.Config, out string, drafts bool) (*site.BuildResult, error) {
	s, err := site.LoadSite(cfg.SiteConfig)
	if err != nil {
		return nil, err
	}
	if s.BaseURL == "" {
		s.BaseURL = cfg.SiteURL
	}

	builder, err := site.NewBuilder(s, cfg.ContentDir, out, cfg.TemplatesDir, drafts)
	if err != nil {
		return nil, err
	}
	return builder.Build()
}

func init() {
	buildCmd.Flags().StringVar(&buildOut, "out", "public", "output directory")
	buildCmd.Flags().BoolVar(&buildDrafts, "drafts", false, "include draft posts")
	rootCmd.AddCommand(buildCmd)
}
