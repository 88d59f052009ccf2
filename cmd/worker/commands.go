package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/folio-lab/portfolio-backend/internal/theme/domain"
	themerepo "github.com/folio-lab/portfolio-backend/internal/theme/repository"
	themeservice "github.com/folio-lab/portfolio-backend/internal/theme/service"
	translationservice "github.com/folio-lab/portfolio-backend/internal/translation/service"
)

func newContentCmd(opts *rootOptions) *cobra.Command {
	content := &cobra.Command{Use: "content", Short: "Inspect website content"}
	content.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load and validate the content seed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadContent()
			if err != nil {
				return err
			}
			fields := c.Fields()
			translatable := len(c.TranslatableFields())
			fmt.Fprintf(cmd.OutOrStdout(), "content ok: %d projects, %d fields (%d translatable)\n",
				len(c.Projects), len(fields), translatable)
			return nil
		},
	})
	return content
}

func newTranslateCmd(opts *rootOptions) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate the content seed and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadContent()
			if err != nil {
				return err
			}
			model, err := opts.openModel(cmd.Context())
			if err != nil {
				return err
			}
			out, err := translationservice.NewTranslator(model).Translate(cmd.Context(), c, lang)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "target language (required)")
	_ = cmd.MarkFlagRequired("lang")
	return cmd
}

func newPaletteCmd(opts *rootOptions) *cobra.Command {
	palette := &cobra.Command{Use: "palette", Short: "Theme palette tooling"}

	var (
		mode string
		css  bool
	)
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}
			model, err := opts.openModel(cmd.Context())
			if err != nil {
				return err
			}
			p, err := themeservice.NewGenerator(model).Generate(cmd.Context())
			if err != nil {
				return err
			}

			a := themeservice.NewApplicator(themerepo.NewMemoryStore())
			if err := a.SetPalette(cmd.Context(), p); err != nil {
				return err
			}
			if err := a.SetMode(cmd.Context(), m); err != nil {
				return err
			}
			if css {
				_, err := io.WriteString(cmd.OutOrStdout(), a.State().Variables.CSS())
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.State())
		},
	}
	generate.Flags().StringVar(&mode, "mode", string(domain.ModeLight), "mode to apply: light or dark")
	generate.Flags().BoolVar(&css, "css", false, "print the applied variables as CSS")

	palette.AddCommand(generate)
	return palette
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
