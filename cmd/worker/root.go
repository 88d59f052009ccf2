package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-lab/portfolio-backend/config"
	"github.com/folio-lab/portfolio-backend/internal/bootstrap"
	"github.com/folio-lab/portfolio-backend/internal/content/domain"
	"github.com/folio-lab/portfolio-backend/internal/content/seed"
	"github.com/folio-lab/portfolio-backend/internal/logging"
)

type rootOptions struct {
	contentPath string
	cfg         *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "worker",
		Short:         "Offline tooling for the portfolio content and theme pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.contentPath != "" {
				cfg.Content.Path = opts.contentPath
			}
			opts.cfg = cfg
			logging.Setup(cfg.App.Environment, cfg.App.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.contentPath, "content", "", "content YAML file (defaults to CONTENT_PATH or the embedded seed)")

	root.AddCommand(newContentCmd(opts), newTranslateCmd(opts), newPaletteCmd(opts))
	return root
}

func (o *rootOptions) loadContent() (*domain.WebsiteContent, error) {
	return seed.LoadFile(o.cfg.Content.Path, time.Now())
}

func (o *rootOptions) openModel(ctx context.Context) (bootstrap.Model, error) {
	return bootstrap.OpenModel(ctx, o.cfg.LLM)
}
