package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/observability"
	"github.com/jonathan/portfolio/internal/schemas"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	validateSchema      string
	validatePrintSchema bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every language bundle",
	Long: `Fetches every content bundle concurrently and checks it against the content schema and the document rules.
With --schema, bundles must also satisfy an additional JSON schema, such as a
stricter site policy.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Additional JSON schema every bundle must satisfy")
	validateCmd.Flags().BoolVar(&validatePrintSchema, "print-schema", false, "Print the built-in content schema and exit")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validatePrintSchema {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), schemas.ContentSchema())
		return err
	}

	var extra string
	if validateSchema != "" {
		data, err := os.ReadFile(validateSchema)
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
		extra = string(data)
	}

	statuses := validateBundles(cmd.Context(), contentSource(cfg), extra)

	observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(statuses)

	failed := 0
	for _, s := range statuses {
		if s.Err != nil {
			failed++
			logger.Warn("Invalid content bundle", zap.String("lang", string(s.Lang)), zap.Error(s.Err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("validation failed: %d of %d bundles invalid", failed, len(statuses))
	}
	return nil
}

// validateBundles checks every supported language, and against extraSchema
// when it is set. One bundle failing does not stop the others.
func validateBundles(ctx context.Context, src content.Source, extraSchema string) []observability.BundleStatus {
	langs := types.SupportedLanguages()
	statuses := make([]observability.BundleStatus, len(langs))

	g, ctx := errgroup.WithContext(ctx)
	for i, lang := range langs {
		g.Go(func() error {
			statuses[i].Lang = lang
			data, err := src.Fetch(ctx, lang)
			if err != nil {
				statuses[i].Err = &content.LoadError{Lang: string(lang), Message: "failed to fetch bundle", Cause: err}
				return nil
			}
			if _, err := content.Parse(data); err != nil {
				statuses[i].Err = err
				return nil
			}
			if extraSchema != "" {
				statuses[i].Err = schemas.ValidateJSONString(extraSchema, string(data))
			}
			return nil
		})
	}
	_ = g.Wait()
	return statuses
}
