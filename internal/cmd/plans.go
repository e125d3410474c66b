package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/plans"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Show subscription plans",
	Long: `Show the AgriBot subscription plans with monthly and yearly prices and
the saving from yearly billing. Plan names follow --locale.`,
	Args: cobra.NoArgs,
	RunE: runPlans,
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

var (
	planBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	planCell    = lipgloss.NewStyle().Padding(0, 1)
	planPopular = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

func runPlans(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	tr := func(k i18n.Key) string { return i18n.Default.Translate(cfg.Locale, k) }

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(planBorder).
		StyleFunc(func(row, col int) lipgloss.Style { return planCell }).
		Headers("", "₹/"+tr(i18n.SubscriptionMonth), "₹/"+tr(i18n.SubscriptionYear), "yearly saving")

	for _, p := range plans.Catalog {
		name := tr(p.NameKey)
		if p.Popular {
			name += " " + planPopular.Render("★ "+tr(i18n.SubscriptionPopular))
		}
		t.Row(name, fmt.Sprint(p.Monthly), fmt.Sprint(p.Yearly), fmt.Sprintf("%d%%", plans.YearlySavings(p)))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Render())
	for _, p := range plans.Catalog {
		fmt.Fprintf(out, "\n%s: %s\n  • %s\n", tr(p.NameKey), p.Description, strings.Join(p.Features, "\n  • "))
	}
	return nil
}
