package main

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/descant"
	"github.com/aretw0/descant/internal/adapters/file"
	"github.com/aretw0/descant/internal/config"
	"github.com/aretw0/descant/internal/presentation/tui"
	"github.com/aretw0/descant/pkg/notation"
)

// sampleCantus is the default input when no cantus is given.
//
//go:embed cantus.txt
var sampleCantus string

var generateCmd = &cobra.Command{
	Use:   "generate [pitches...]",
	Short: "Generate a counterpoint line against a cantus firmus",
	Long: `Generates a first-species counterpoint for the given cantus firmus.
The cantus is passed as arguments ("descant generate c4 d4 e4 d4 c4"),
loaded from an exercises file with --file, or, with neither, taken from
the built-in sample.`,
	Example: `  descant generate c4 d4 e4 d4 c4 --root c --mode ionian --direction above
  descant generate --file exercises.yaml --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := appLogger(cmd)

		filePath, _ := cmd.Flags().GetString("file")
		if filePath != "" {
			return runExercises(cmd, logger, filePath)
		}

		cantusText := strings.Join(args, " ")
		if cantusText == "" {
			cantusText = strings.TrimSpace(sampleCantus)
		}

		rootArg, _ := cmd.Flags().GetString("root")
		modeArg, _ := cmd.Flags().GetString("mode")
		dirArg, _ := cmd.Flags().GetString("direction")
		budget, _ := cmd.Flags().GetInt("budget")

		ex := config.Exercise{
			Name:      "cli",
			Cantus:    cantusText,
			Root:      rootArg,
			Mode:      modeArg,
			Direction: dirArg,
			Budget:    budget,
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			ex.Seed = &seed
		}

		resolved, err := ex.Resolve()
		if err != nil {
			return err
		}

		return runOne(cmd, logger, resolved)
	},
}

func runExercises(cmd *cobra.Command, logger *slog.Logger, path string) error {
	exercises, err := config.Load(path)
	if err != nil {
		return err
	}

	for _, ex := range exercises {
		resolved, err := ex.Resolve()
		if err != nil {
			return err
		}

		fmt.Printf("== %s ==\n", resolved.Name)
		if err := runOne(cmd, logger, resolved); err != nil {
			return err
		}
	}
	return nil
}

func runOne(cmd *cobra.Command, logger *slog.Logger, ex *config.Resolved) error {
	opts := []descant.Option{
		descant.WithLogger(logger),
		descant.WithStepBudget(ex.Budget),
	}
	if ex.Seed != nil {
		opts = append(opts, descant.WithRand(rand.New(rand.NewSource(*ex.Seed))))
	}

	result, err := descant.New(opts...).Generate(cmd.Context(), ex.Cantus, ex.Scale, ex.Direction)
	if err != nil {
		switch {
		case errors.Is(err, descant.ErrNoSolution):
			return fmt.Errorf("no valid counterpoint exists for %q in %s %s", notation.Format(ex.Cantus), ex.Scale, ex.Direction)
		case errors.Is(err, descant.ErrBudgetExhausted):
			return fmt.Errorf("search budget exhausted after %d steps; raise --budget or try another seed", ex.Budget)
		default:
			return err
		}
	}

	score := descant.NewScore(descant.NewID(), result, ex.Scale, ex.Direction)
	score.Name = ex.Name
	fmt.Print(tui.RenderScore(score))
	logger.Debug("generation finished", "steps", result.Steps)

	save, _ := cmd.Flags().GetBool("save")
	if save {
		storePath, _ := cmd.Flags().GetString("store-path")
		store := file.New(storePath)
		if err := store.Save(cmd.Context(), score); err != nil {
			return fmt.Errorf("failed to save score: %w", err)
		}
		logger.Info("score saved", "id", score.ID, "name", score.Name, "path", store.BasePath)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("root", "r", "c", "Scale root note, e.g. c, f#, eb")
	generateCmd.Flags().StringP("mode", "m", "ionian", "Scale mode (see 'descant modes')")
	generateCmd.Flags().StringP("direction", "d", "above", "Place the counterpoint 'above' or 'below' the cantus")
	generateCmd.Flags().Int64P("seed", "s", 0, "Seed for reproducible output")
	generateCmd.Flags().IntP("budget", "b", 0, "Abort after this many search steps (0 = unbounded)")
	generateCmd.Flags().StringP("file", "f", "", "Exercises file (YAML or JSON) to run instead of arguments")
	generateCmd.Flags().Bool("save", false, "Persist the score to the local store")
	generateCmd.Flags().String("store-path", "", "Score store directory (default .descant/scores)")
}
