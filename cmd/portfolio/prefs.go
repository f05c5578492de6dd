package main

import (
	"fmt"

	"github.com/jonathan/portfolio/internal/config"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the persisted preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted language and theme",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <lang|theme> <value>",
	Short: "Persist a language or theme preference",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefsSet,
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear <lang|theme>",
	Short: "Remove a persisted preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsClear,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd, prefsClearCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	prefs, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, key := range []string{types.PrefLang, types.PrefTheme} {
		value, ok := prefs.Get(key)
		if !ok {
			value = "(unset)"
		}
		fmt.Fprintf(out, "%-6s %s\n", key+":", value) //nolint:errcheck
	}
	return nil
}

func runPrefsSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	switch key {
	case types.PrefLang:
		if _, err := config.ForcedLang(value); err != nil {
			return err
		}
	case types.PrefTheme:
		if !types.IsTheme(value) {
			return fmt.Errorf("unknown theme %q", value)
		}
	default:
		return fmt.Errorf("unknown preference %q: must be %s or %s", key, types.PrefLang, types.PrefTheme)
	}

	prefs, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	if err := prefs.Set(key, value); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

func runPrefsClear(_ *cobra.Command, args []string) error {
	key := args[0]
	if key != types.PrefLang && key != types.PrefTheme {
		return fmt.Errorf("unknown preference %q: must be %s or %s", key, types.PrefLang, types.PrefTheme)
	}
	prefs, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	return prefs.Remove(key)
}
