package cli

import (
	"github.com/spf13/cobra"

	"github.com/pktviz/pktviz/internal/server"
	"github.com/pktviz/pktviz/pkg/cache"
	"github.com/pktviz/pktviz/pkg/pipeline"
)

// newServeCmd creates the serve command for running the HTTP API.
func newServeCmd() *cobra.Command {
	var addr, namespace string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		Long: `Run an HTTP server exposing the rendering pipeline.

Endpoints:
  POST /api/render   render a diagram, returns the artifact
  POST /api/check    validate a diagram, returns field info
  GET  /healthz      liveness probe
  GET  /version      build information`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := loadConfig()

			if addr == "" {
				addr = cfg.Serve.Addr
			}
			if namespace == "" {
				namespace = cfg.Serve.CacheNamespace
			}

			c := newCache(ctx, cfg, noCache)
			runner := pipeline.NewRunner(c, serveKeyer(namespace), logger)
			defer runner.Close()

			s := server.New(server.Config{Addr: addr}, runner, logger)
			return s.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&namespace, "cache-namespace", "", "prefix for cache keys (for shared backends)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// serveKeyer builds the cache keyer for a serve deployment. A namespace
// isolates this deployment's entries on a shared Redis or MongoDB backend.
func serveKeyer(namespace string) cache.Keyer {
	if namespace == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), namespace+":")
}
