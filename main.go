package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"langtons-ant/game"
	"langtons-ant/ui"
	"langtons-ant/ui/frontend"
)

func main() {
	log.SetPrefix("langtons-ant: ")
	log.SetFlags(log.LstdFlags)

	cfg := DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func gameOptions(cfg Config) []game.Option {
	if cfg.Density <= 0 {
		return nil
	}
	return []game.Option{game.WithPattern(cfg.Seed, cfg.Radius, cfg.Density)}
}

func run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.HelpKeys {
		fmt.Println(ui.Help())
		return nil
	}

	if cfg.Steps > 0 {
		return runHeadless(cfg)
	}

	fmt.Println(ui.Help())

	c := ui.NewController(cfg.Width, cfg.Height, cfg.PixelWidth, cfg.Speed, cfg.Paused, gameOptions(cfg)...)
	log.Printf("starting run %s with %s frontend", c.Game.UUID, frontend.Name)

	if err := frontend.New(WindowTitle, cfg.FPS).Run(c); err != nil {
		return fmt.Errorf("frontend %s: %w", frontend.Name, err)
	}

	return finish(cfg, c.Game)
}

func runHeadless(cfg Config) error {
	g := game.NewGame(gameOptions(cfg)...)
	g.StepN(cfg.Steps)

	ant := g.GetAnt()
	fmt.Printf("Generation: %d | Ant: %d,%d facing %s | Active Cells: %d\n",
		g.Generation(), ant.Position.X, ant.Position.Y, ant.Direction, g.OnCells())

	return finish(cfg, g)
}

// finish closes the run stats and writes them out when asked to.
func finish(cfg Config, g *game.Game) error {
	g.Stats.Observe(g.Generation(), g.OnCells())
	g.Stats.Finish(time.Now())
	log.Printf("run %s stopped at generation %d (%.0f steps/s)", g.UUID, g.Generation(), g.Stats.StepsPerSecond())

	if cfg.StatsFile == "" {
		return nil
	}
	if err := g.Stats.SaveToFile(cfg.StatsFile); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	log.Printf("stats written to %s", cfg.StatsFile)
	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\n%s\n", ui.Help())
	}
}
