package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"nncalc/internal/domain"
	"nncalc/internal/script"
)

var (
	watch          bool
	debounce       time.Duration
	transcriptPath string
)

// runCmd applies a script file and optionally keeps re-running it.
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Apply a keystroke script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if watch {
				w := script.NewWatcher(appCtx.Fs, path, debounce, appCtx.Logger)
				return w.Watch(cmd.Context(), func(ctx context.Context, content []byte) error {
					steps, err := script.Parse(string(content))
					if err != nil {
						appCtx.Session.Terminal.Message("%s: %v", path, err)
						return err
					}
					return runSteps(ctx, path, steps)
				})
			}

			steps, err := script.Load(appCtx.Fs, path)
			if err != nil {
				return err
			}
			return runSteps(cmd.Context(), path, steps)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the script whenever it changes")
	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "wait this long after a change before re-running")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "write a JSON transcript of the run to this path")
	return cmd
}

// runSteps runs steps on a fresh session, renders it and writes the
// transcript if requested. A transcript is written even when a step fails.
func runSteps(ctx context.Context, source string, steps []domain.Step) error {
	sess := appCtx.Reset()
	tr, runErr := sess.Runner.Run(ctx, steps)
	if err := sess.Terminal.Render(); err != nil {
		return err
	}
	if transcriptPath != "" {
		tr.Source = source
		if err := script.WriteTranscript(appCtx.Fs, transcriptPath, tr); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}
	return runErr
}
