package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/mines/internal/game"
	"github.com/vancomm/mines/internal/render"
)

var (
	scoresLimit int
	scoresAll   bool
)

func init() {
	scoresCmd := &cobra.Command{
		Use:   "scores [WxH(M)]",
		Short: "List the fastest won games",
		Long: `List the fastest won games for a board size. The size is taken from
the argument, or else from the --width, --height and --mines flags.

Examples:
  mines scores
  mines scores 30x16(99)
  mines scores --all -n 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScores,
	}

	scoresCmd.Flags().IntVarP(&scoresLimit, "limit", "n", 10, "Number of records to show (0 for all)")
	scoresCmd.Flags().BoolVarP(&scoresAll, "all", "a", false, "Show records for every board size")

	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	filter := game.HighscoreFilter{Limit: scoresLimit}
	switch {
	case scoresAll:
	case len(args) == 1:
		p, err := game.ParseParams(args[0])
		if err != nil {
			return err
		}
		filter.Params = p
	default:
		p := params()
		if err := p.Validate(); err != nil {
			return err
		}
		filter.Params = &p
	}

	app, err := newApplication(cmd.Context(), conf)
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.records.Highscores(cmd.Context(), filter)
	if err != nil {
		return err
	}
	return render.Renderer{Color: conf.Color}.Highscores(os.Stdout, records)
}
