package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quillmark/quill/cmd/quill/app"
	"github.com/quillmark/quill/internal/forem"
	"github.com/quillmark/quill/internal/publish"
)

var (
	publishFileList string
	publishDryRun   bool
)

// publishCmd pushes local posts to the publishing platform.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish posts to the platform",
	Long: `Publish reconciles local Markdown posts against your articles on the
platform. Each file's canonical URL decides the action: articles that do
not exist yet are created, existing ones are overwritten in place.

Requires QUILL_API_KEY and QUILL_SITE_URL (flags, environment, .env, or
.quill.yaml). Removing a local file never deletes the remote article.`,
	Example: `  quill publish
  quill publish --dry-run
  quill publish --file-list changed.txt`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := app.LoadConfig()
		if err := cfg.ValidatePublish(); err != nil {
			return err
		}

		client := forem.NewClient(cfg.APIURL, cfg.APIKey, cfg.UserAgent)
		publisher, err := publish.New(publish.Config{
			SiteURL:     cfg.SiteURL,
			ContentRoot: cfg.ContentDir,
			FileList:    publishFileList,
			DryRun:      publishDryRun,
		}, client)
		if err != nil {
			return err
		}

		_, err = publisher.Run(cmd.Context())
		return err
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishFileList, "file-list", "",
		"path to a newline-delimited list of Markdown files to publish instead of scanning the content root")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false,
		"report planned actions without calling the write endpoints")
	rootCmd.AddCommand(publishCmd)
}
