package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/i18n"
)

var translateAll bool

var translateCmd = &cobra.Command{
	Use:   "translate [keys...]",
	Short: "Look up dashboard strings",
	Long: `Print the translation of each key in the configured locale. Keys with
no translation print unchanged. With --all, print the key in every locale.

Examples:
  agribot translate nav.dashboard controls.water
  agribot translate logs.title --locale mr
  agribot translate widgets.tank.refill --all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().BoolVarP(&translateAll, "all", "a", false, "show every supported locale")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	catalog := i18n.NewCatalog()
	if pattern := cfg.CatalogPattern(); pattern != "" {
		if _, err := catalog.LoadGlob(pattern); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, key := range args {
		if !translateAll {
			fmt.Fprintln(out, catalog.Translate(cfg.Locale, i18n.Key(key)))
			continue
		}
		fmt.Fprintln(out, key)
		for _, l := range catalog.Locales() {
			fmt.Fprintf(out, "  %-3s %s\n", l, catalog.Translate(l, i18n.Key(key)))
		}
	}
	return nil
}
