package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atikulmunna/agribot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard",
	Long: `Serve the web dashboard, its JSON API and the /ws live event stream.

Examples:
  agribot serve
  agribot serve --port 9090 --locale hi
  AGRIBOT_LOG_CAPACITY=200 agribot serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\n🌱 AgriBot shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	sess, cleanup, err := newSession(nil)
	if err != nil {
		return err
	}
	defer cleanup()

	sess.Start(ctx)

	srv := server.New(sess, sess.Logger().Named("http"))
	fmt.Fprintf(os.Stderr, "🌱 AgriBot dashboard on http://localhost%s\n", sess.Config().Addr())
	return srv.Start(ctx)
}
