package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/evaszabo/folio/internal/config"
	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/livereload"
	"github.com/evaszabo/folio/internal/metrics"
	"github.com/evaszabo/folio/internal/server"
	"github.com/evaszabo/folio/internal/site"
)

var (
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Starts the portfolio web server. Pages are rendered on every request from
the configured content. With --watch, edits to the content or assets reload
the catalog and refresh connected browsers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		lib, err := openLibrary(cfg)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		renderer, err := newRenderer(cfg, serveWatch)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		var (
			m        *metrics.Metrics
			gatherer prometheus.Gatherer
		)
		if cfg.Server.Metrics {
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			m = metrics.New(reg)
			gatherer = reg
		}

		h := site.NewHandler(lib, renderer, viewOptions(cfg))
		h.AssetsDir = cfg.Build.AssetsDir
		h.Metrics = m

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			hub := livereload.NewHub(m)
			defer hub.Close()
			h.LiveReload = hub

			w, err := newContentWatcher(cfg, h, hub, m)
			if err != nil {
				return err
			}
			if w != nil {
				defer w.Close()
				go func() {
					if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
						log.Printf("livereload: watcher stopped: %v", err)
					}
				}()
			}
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			Version:  Version,
			AllowAll: cfg.Server.AllowAll,
			Gatherer: gatherer,
		})
		h.RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "folio %s serving %s\n", Version, url)
		fmt.Fprintf(os.Stderr, "  Content: %s (%d projects)\n", describeSource(cfg), lib.Len())
		if verbose {
			fmt.Fprintf(os.Stderr, "  Assets: %s\n", cfg.Build.AssetsDir)
			fmt.Fprintf(os.Stderr, "  Metrics: %v\n", cfg.Server.Metrics)
		}
		if serveWatch {
			fmt.Fprintln(os.Stderr, "  Watching for changes")
		}
		if serveOpen {
			openBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// newContentWatcher watches the content source and the assets directory.
// On a change it reloads the library and tells browsers to refresh. It
// returns nil when there is nothing on disk to watch.
func newContentWatcher(cfg *config.Config, h *site.Handler, hub *livereload.Hub, m *metrics.Metrics) (*livereload.Watcher, error) {
	var roots []string
	if cfg.Content.Source != content.SourceBuiltin {
		roots = append(roots, cfg.Content.Path)
	}
	if info, err := os.Stat(cfg.Build.AssetsDir); err == nil && info.IsDir() {
		roots = append(roots, cfg.Build.AssetsDir)
	}
	if len(roots) == 0 {
		return nil, nil
	}

	w, err := livereload.NewWatcher(roots, livereload.DefaultDebounce, func(names []string) {
		lib, err := openLibrary(cfg)
		m.Reload(err)
		if err != nil {
			// Keep serving the last good catalog.
			log.Printf("livereload: reload failed: %v", err)
			return
		}
		h.SetLibrary(lib)
		n := hub.Broadcast("")
		if verbose {
			log.Printf("livereload: %d change(s), refreshed %d client(s)", len(names), n)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}
	return w, nil
}

func describeSource(cfg *config.Config) string {
	if cfg.Content.Source == content.SourceBuiltin {
		return string(content.SourceBuiltin)
	}
	return fmt.Sprintf("%s %s", cfg.Content.Source, cfg.Content.Path)
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload content and refresh browsers on changes")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in a browser")
	rootCmd.AddCommand(serveCmd)
}
