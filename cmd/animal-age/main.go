// Package main provides the animal-age CLI entrypoint.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joss/animal-age/internal/batch"
	"github.com/joss/animal-age/internal/config"
	"github.com/joss/animal-age/internal/registry"
	"github.com/joss/animal-age/internal/render"
)

var version = "3.0"

// errMissingArgs is the usage error for a conversion request without the
// required flags.
var errMissingArgs = errors.New("missing required arguments: --type and --age")

// errUnresolved signals that at least one animal key could not be resolved.
// Per-entry messages are already on stderr; main maps this to exit code 1
// without printing anything further.
var errUnresolved = errors.New("one or more animal types were not recognized")

func newRootCmd() *cobra.Command {
	var (
		animalTypes []string
		age         float64
		list        bool
		jsonOut     bool
		noColor     bool
		width       int
	)

	cmd := &cobra.Command{
		Use:     "animal-age",
		Short:   "Convert animal age to human years & show colorful lifespan comparisons",
		Version: version,
		Long: `animal-age converts a pet's age into equivalent human years using
species-specific aging curves, and draws a lifespan-progress comparison
against the 80-year human baseline.

Examples:
  animal-age -t cat -a 3
  animal-age --type small_dog --age 5
  animal-age --list
  animal-age -t horse -a 10 --json
  animal-age -t cat,small_dog -a 3 --no-color`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := config.Get()
			colorEnabled := !noColor && !env.NoColor
			renderer := render.New(colorEnabled, resolveWidth(width, env))
			reg := registry.New()

			if list {
				fmt.Fprint(cmd.OutOrStdout(), renderer.List(reg.Profiles()))
				return nil
			}

			if len(animalTypes) == 0 || !cmd.Flags().Changed("age") {
				return errMissingArgs
			}

			mode := batch.ModeBar
			if jsonOut {
				mode = batch.ModeJSON
			}

			orch := batch.New(reg, renderer)
			unresolved, err := orch.Run(cmd.OutOrStdout(), cmd.ErrOrStderr(), animalTypes, age, mode)
			if err != nil {
				return err
			}
			if unresolved > 0 {
				return errUnresolved
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&animalTypes, "type", "t", nil, "animal type (repeatable, comma-separated; see --list)")
	cmd.Flags().Float64VarP(&age, "age", "a", 0, "age of the animal in real years")
	cmd.Flags().BoolVar(&list, "list", false, "show supported animal types")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().IntVar(&width, "width", 0, "override terminal width for the progress bars")

	return cmd
}

// resolveWidth picks the bar width: flag, then environment, then the
// terminal, then an 80-column fallback for pipes.
func resolveWidth(flagWidth int, env *config.Env) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if env.Width > 0 {
		return env.Width
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errUnresolved) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
