package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nncalc/internal/app"
	"nncalc/internal/script"
)

const replHelp = `tokens (space separated, several per line):
  clear c      bottom := 0
  swap s       exchange top and bottom
  enter e =    top := bottom
  + - * /      bottom := top op bottom (/ leaves the remainder in top)
  ^            bottom := top ** bottom
  root r       bottom := bottom-th root of top
  0-9...       append digits to bottom
keys in parentheses are currently disabled
help, quit`

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator session",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

// runRepl reads lines of tokens from stdin until EOF or quit.
func runRepl(cmd *cobra.Command, args []string) error {
	// Repainting in place would fight with the echoed input.
	if appCtx.Live() {
		cfg := appCtx.Config
		cfg.Live = app.LiveOff
		w, err := app.NewWire(cfg)
		if err != nil {
			return err
		}
		appCtx = w
	}
	sess := appCtx.Session
	out := cmd.OutOrStdout()

	if err := sess.Terminal.Render(); err != nil {
		return err
	}
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if err := cmd.Context().Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprintln(out, replHelp)
			continue
		}

		steps, err := script.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		for _, step := range steps {
			if err := sess.Runner.Apply(step); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				break
			}
		}
		if err := sess.Terminal.Render(); err != nil {
			return err
		}
	}
	return sc.Err()
}
