// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/oelhwry/folio/config"
	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/db"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/internal/server"
	"github.com/oelhwry/folio/internal/site"
)

// shutdownTimeout bounds how long serve waits for open requests.
const shutdownTimeout = 10 * time.Second

// addFromDBFlag lets a command publish the stored catalog instead of the
// content file.
func addFromDBFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("from-db", false, "Use the portfolio stored in the database instead of the content file")
}

// loadPortfolio returns the portfolio a publishing command works on. Images
// always resolve against the content file's directory.
func loadPortfolio(cmd *cobra.Command) (model.Portfolio, content.Source, error) {
	fromDB, _ := cmd.Flags().GetBool("from-db")
	if !fromDB {
		return loadContent()
	}
	src := content.Source{Path: appConfig.Content}
	store, err := openStore()
	if err != nil {
		return model.Portfolio{}, src, err
	}
	defer func() { _ = store.Close() }()

	p, err := store.LoadPortfolio(cmd.Context())
	if errors.Is(err, db.ErrNoPortfolio) {
		return p, src, errors.New(i18n.T("cli.db_empty"))
	}
	return p, src, err
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the content file and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadContent()
			if err != nil {
				return err
			}
			s := content.Summarize(p)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.validate_ok", s.Pages, s.Sections, s.Images))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write the portfolio as a static site",
		Long: `Renders every page and every lightbox state to its own index.html and
copies the stylesheet, the script and the images referenced by the content.
The target directory defaults to export.dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := appConfig.Export.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			p, src, err := loadPortfolio(cmd)
			if err != nil {
				return err
			}
			renderer, err := site.New()
			if err != nil {
				return err
			}
			res, err := renderer.Export(cmd.Context(), p, src, dir)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.T("cli.export_done", res.Pages, dir))
			printExportStats(out, res)
			return nil
		},
	}
	cmd.Flags().String("export.dir", config.Defaults()["export.dir"].(string), "Output directory")
	addFromDBFlag(cmd)
	return cmd
}

func printExportStats(out io.Writer, res site.Result) {
	fmt.Fprintf(out, "%d lightbox pages, %d files, %s\n", res.Lightboxes, res.Files, humanize.Bytes(uint64(res.Bytes)))
	if len(res.Missing) == 0 {
		return
	}
	fmt.Fprintf(out, "%d images were not found next to the content file\n", len(res.Missing))
	for _, ref := range res.Missing {
		logging.Debugf("missing image: %s", ref)
	}
}

func newServeCmd() *cobra.Command {
	defaults := config.Defaults()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and reload it when the content changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, src, err := loadPortfolio(cmd)
			if err != nil {
				return err
			}
			renderer, err := site.New()
			if err != nil {
				return err
			}
			fromDB, _ := cmd.Flags().GetBool("from-db")
			allowAll, _ := cmd.Flags().GetBool("cors-allow-all")
			srv := server.New(server.Config{
				Addr:     appConfig.Serve.Addr,
				Source:   src,
				Watch:    appConfig.Serve.Watch && !fromDB,
				AllowAll: allowAll,
			}, renderer, p)

			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.serve_listening", appConfig.Serve.Addr))
			return serve(cmd.Context(), srv)
		},
	}
	cmd.Flags().String("serve.addr", defaults["serve.addr"].(string), "Listen address")
	cmd.Flags().Bool("serve.watch", defaults["serve.watch"].(bool), "Reload when the content file changes")
	cmd.Flags().Bool("cors-allow-all", false, "Allow cross-origin requests from any origin")
	addFromDBFlag(cmd)
	return cmd
}

// serve runs srv until ctx ends or the listener fails, then shuts it down.
func serve(ctx context.Context, srv *server.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
