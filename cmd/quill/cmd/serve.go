package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quillmark/quill/cmd/quill/app"
	"github.com/quillmark/quill/internal/site"
)

var (
	serveHost   string
	servePort   int
	serveOut    string
	serveDrafts bool
)

// serveCmd builds the site once and serves it locally.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally",
	Long: `Serve builds the site into the output directory and serves it over
HTTP until interrupted. Drafts are included by default, since this is a
preview tool.`,
	Example: `  quill serve
  quill serve --port 3000`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := app.LoadConfig()

		if _, err := buildSite(cfg, serveOut, serveDrafts); err != nil {
			return err
		}

		srvCfg := site.DefaultServerConfig()
		srvCfg.Host = serveHost
		srvCfg.Port = servePort
		return site.Serve(cmd.Context(), serveOut, srvCfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "bind address")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "listen port")
	serveCmd.Flags().StringVar(&serveOut, "out", "public", "output directory")
	serveCmd.Flags().BoolVar(&serveDrafts, "drafts", true, "include draft posts")
	rootCmd.AddCommand(serveCmd)
}
