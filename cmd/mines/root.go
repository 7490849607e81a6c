package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/mines/internal/config"
	"github.com/vancomm/mines/internal/console"
	"github.com/vancomm/mines/internal/game"
	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/render"
)

var (
	log = logrus.New()

	v          = config.New()
	configPath string
	conf       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Play minesweeper in the terminal",
	Long: `Play minesweeper in the terminal. The first cell you open is never a mine.

Examples:
  mines
  mines -W 30 -H 16 -m 99
  MINES_RECORDS_BACKEND=none mines`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file path")
	flags.IntP("width", "W", 10, "board width")
	flags.IntP("height", "H", 10, "board height")
	flags.IntP("mines", "m", 10, "number of mines")

	for _, name := range []string{"width", "height", "mines"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if conf, err = config.Load(v, configPath); err != nil {
		return err
	}
	if err := setupLogging(conf); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":   conf.Width,
		"height":  conf.Height,
		"mines":   conf.Mines,
		"records": conf.Records.Backend,
	}).Debug("config")
	return nil
}

func params() game.Params {
	return game.Params{
		Width:     conf.Width,
		Height:    conf.Height,
		MineCount: conf.Mines,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	mainCtx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	session, err := game.NewSession(params(), mines.NewRand(), game.WithLogger(log))
	if err != nil {
		return err
	}

	app, err := newApplication(mainCtx, conf)
	if err != nil {
		return err
	}

	loop := &console.Loop{
		Session:     session,
		Store:       app.records,
		Renderer:    render.Renderer{Color: conf.Color},
		In:          os.Stdin,
		Out:         os.Stdout,
		Log:         log,
		ClearScreen: conf.ClearScreen,
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return loop.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return app.Close()
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("exit reason")
		return err
	}
	return nil
}
