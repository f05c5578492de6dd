package main

import (
	"fmt"
	"os"

	"github.com/jonathan/portfolio/internal/app"
	"github.com/jonathan/portfolio/internal/config"
	"github.com/jonathan/portfolio/internal/nav"
	"github.com/jonathan/portfolio/internal/observability"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderLang   string
	renderLocale string
	renderToggle bool
	renderTheme  string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page and write the resulting HTML",
	Long: `Boots the page the way a browser would: the persisted theme is applied, the
language is detected from the saved preference or the locale and its bundle is
rendered into the skeleton. --toggle then clicks the language toggle and
--theme selects a theme. Preferences are saved to the state file.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderLang, "lang", "", "Force the language (pt or en) instead of detecting it")
	renderCmd.Flags().StringVar(&renderLocale, "locale", "", "Locale used for detection (default: config, then LC_ALL/LC_MESSAGES/LANG)")
	renderCmd.Flags().BoolVar(&renderToggle, "toggle", false, "Click the language toggle after loading")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Select a theme (theme-purple, theme-cyan, theme-green)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	var forced types.Lang
	if renderLang != "" {
		lang, err := config.ForcedLang(renderLang)
		if err != nil {
			return err
		}
		forced = lang
	}
	if renderTheme != "" && !types.IsTheme(renderTheme) {
		return fmt.Errorf("unknown theme %q", renderTheme)
	}

	page, err := newPage()
	if err != nil {
		return err
	}
	defer page.Close()

	ctx := cmd.Context()
	locale := renderLocale
	if locale == "" {
		locale = cfg.ResolveLocale()
	}
	if err := page.Boot(ctx, locale); err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	if forced != "" && page.Language.Current() != forced {
		if err := page.Language.Load(ctx, forced); err != nil {
			return fmt.Errorf("failed to load content: %w", err)
		}
	}
	if renderToggle {
		page.Click("#" + nav.LangToggleID)
		page.Wait()
	}
	if renderTheme != "" {
		if err := page.SelectTheme(types.Theme(renderTheme)); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintContentDocument(page.Content.Current())
	}

	html, err := page.HTML()
	if err != nil {
		return fmt.Errorf("failed to serialize page: %w", err)
	}

	if renderOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(renderOut, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("Page rendered",
		zap.String("lang", string(page.Language.Current())),
		zap.String("theme", string(page.Theme.Current())),
		zap.String("out", renderOut),
	)
	return nil
}

// newPage builds a page from the configured site, content source and state file.
func newPage() (*app.Page, error) {
	page, err := skeleton(cfg)
	if err != nil {
		return nil, err
	}
	prefs, err := openPrefs(cfg)
	if err != nil {
		return nil, err
	}
	return app.New(app.Options{
		Skeleton:      page,
		Source:        contentSource(cfg),
		Prefs:         prefs,
		DropdownClass: cfg.DropdownClass,
		Logger:        logger,
	})
}
