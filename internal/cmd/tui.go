package cmd

import (
	"github.com/spf13/cobra"

	"github.com/atikulmunna/agribot/internal/config"
	"github.com/atikulmunna/agribot/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal dashboard",
	Long: `Open a full-screen terminal version of the dashboard.

Keys:
  arrows   drive         space  stop
  w        water         x      weed
  p        pause/resume  c      clear log
  e        export log    l      next language
  t        theme         q      quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	// Process logs would tear through the alternate screen.
	sess, cleanup, err := newSession(func(c *config.Config) {
		if c.LogLevel == "debug" || c.LogLevel == "info" {
			c.LogLevel = "warn"
		}
	})
	if err != nil {
		return err
	}
	defer cleanup()

	sess.Start(ctx)
	return tui.Run(sess)
}
