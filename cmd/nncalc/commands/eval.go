package commands

import (
	"github.com/spf13/cobra"

	"nncalc/internal/script"
)

// evalCmd applies tokens from the command line, e.g. `nncalc eval 73 enter c 2 /`.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <token>...",
		Short: "Apply keystroke tokens and print the final registers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := script.ParseArgs(args)
			if err != nil {
				return err
			}
			sess := appCtx.Session
			_, runErr := sess.Runner.Run(cmd.Context(), steps)
			if err := sess.Terminal.Render(); err != nil {
				return err
			}
			return runErr
		},
	}
}
