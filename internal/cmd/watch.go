package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/output"
)

var (
	outputFmt   string
	levelFilter string
	kindFilter  string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream dashboard events to the terminal",
	Long: `Run a dashboard session headless and stream every change to the
terminal in real time: log entries, telemetry ticks, feed state changes and
commands. Supports colorized output and JSON mode.

Examples:
  agribot watch
  agribot watch --level warning,error
  agribot watch --kind telemetry --output json`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	watchCmd.Flags().StringVarP(&levelFilter, "level", "l", "", "only log entries of these levels (comma-separated: info,success,warning,error)")
	watchCmd.Flags().StringVarP(&kindFilter, "kind", "k", "", "only these event kinds (comma-separated: log.appended,log.cleared,telemetry,feed.state,command)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	levelSet, err := parseLevelSet(levelFilter)
	if err != nil {
		return err
	}
	kindSet := parseKindSet(kindFilter)

	// --- Choose renderer ---
	var renderer output.Renderer
	switch strings.ToLower(outputFmt) {
	case "json":
		renderer = output.NewJSONRenderer(os.Stdout)
	case "text", "":
		renderer = output.NewTextRenderer(os.Stdout)
	default:
		return fmt.Errorf("unknown output format %q", outputFmt)
	}

	sess, cleanup, err := newSession(nil)
	if err != nil {
		return err
	}
	defer cleanup()

	// Subscribe before Start so the first ticks are not missed.
	sub := sess.Hub.Subscribe()
	defer sess.Hub.Unsubscribe(sub.ID)

	// Replay what the session was seeded with.
	for _, e := range sess.Buffer.Snapshot() {
		ev := model.Event{Kind: model.EventLogAppended, Time: e.Time, Entry: &e}
		if shouldShow(ev, levelSet, kindSet) {
			if err := renderer.Render(ev); err != nil {
				return err
			}
		}
	}

	sess.Start(ctx)
	fmt.Fprintf(os.Stderr, "🌱 AgriBot watching (feed %s, locale %s)\n\n", sess.Feed.State(), sess.Locale())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Events:
			if !ok {
				return nil
			}
			if !shouldShow(ev, levelSet, kindSet) {
				continue
			}
			if err := renderer.Render(ev); err != nil {
				sess.Logger().Warn("render failed", zap.Error(err))
			}
		}
	}
}

func parseLevelSet(s string) (map[model.Level]bool, error) {
	set := make(map[model.Level]bool)
	if s == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		lvl, err := model.ParseLevel(part)
		if err != nil {
			return nil, err
		}
		set[lvl] = true
	}
	return set, nil
}

func parseKindSet(s string) map[model.EventKind]bool {
	set := make(map[model.EventKind]bool)
	if s == "" {
		return set
	}
	for _, part := range strings.Split(s, ",") {
		set[model.EventKind(strings.ToLower(strings.TrimSpace(part)))] = true
	}
	return set
}

// shouldShow reports whether ev passes the kind and level filters. A level
// filter hides everything except matching log entries.
func shouldShow(ev model.Event, levels map[model.Level]bool, kinds map[model.EventKind]bool) bool {
	if len(kinds) > 0 && !kinds[ev.Kind] {
		return false
	}
	if len(levels) == 0 {
		return true // no filter = show all
	}
	return ev.Entry != nil && levels[ev.Entry.Level]
}
