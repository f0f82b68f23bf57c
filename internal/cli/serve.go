package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawset/internal/server"
	"github.com/matzehuels/drawset/pkg/cache"
	"github.com/matzehuels/drawset/pkg/config"
)

// serveCommand creates the preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   canvasFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Long: `Serve renders documents posted to /v1/render and arranges documents
posted to /v1/arrange. Renders can be fetched again from /v1/renders/{id}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(c.Config)
			if err != nil {
				return err
			}
			if err := config.Apply(&cfg, config.Config{Server: config.Server{Addr: addr}}); err != nil {
				return err
			}
			layout, _ := cfg.Layout()
			background, _ := cfg.Background()

			runner, err := c.newRunner(noCache, cache.NewScopedKeyer(nil, "server:"))
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, server.Config{
				Addr:         cfg.Server.Addr,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
				Layout:       layout,
				Background:   background,
				RenderTTL:    cfg.Cache.TTL,
			}, c.Logger)

			printInfo("Serving on %s", cfg.Server.Addr)
			printNextStep("Render a document", "curl --data-binary @doc.yaml http://localhost"+portOf(cfg.Server.Addr)+"/v1/render")
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	flags.register(cmd)
	return cmd
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ""
}
