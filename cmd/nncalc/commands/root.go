package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"nncalc/internal/app"
)

var (
	maxDigits int
	liveMode  string
	verbose   bool
	appCtx    *app.Wire
)

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := trapInterrupt(context.Background())
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// trapInterrupt returns a context cancelled by the first interrupt. The
// handler is released on cancellation, so a second interrupt terminates the
// process even while a single step is still computing.
func trapInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nncalc",
		Short: "Two-register calculator for arbitrarily large natural numbers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				Out:       cmd.OutOrStdout(),
				Err:       cmd.ErrOrStderr(),
				MaxDigits: maxDigits,
				Live:      liveMode,
				Verbose:   verbose,
			})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		RunE:         runRepl,
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVar(&maxDigits, "max-digits", 60, "elide displayed values longer than this (0 = never)")
	root.PersistentFlags().StringVar(&liveMode, "live", app.LiveAuto, "repaint in place: auto, on or off")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(replCmd(), evalCmd(), runCmd())
	return root
}
