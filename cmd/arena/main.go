package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skirmish/arena"
	"github.com/milk9111/skirmish/audio"
	"github.com/milk9111/skirmish/config"
	"github.com/milk9111/skirmish/prefabs"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "skirmish.yaml", "arena config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	mute := flag.Bool("mute", false, "start with sound off")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.PrefabDir != "" {
		prefabs.Dir = cfg.PrefabDir
	}

	mixer := audio.NewMixer(audio.SampleRate)
	mixer.SetMuted(cfg.Muted || *mute)
	if err := mixer.Init(); err != nil {
		slog.Warn("audio disabled", "err", err)
	}

	input := NewInput()
	a, err := arena.New(arena.Options{
		Config:  cfg,
		Intents: input,
		Mixer:   mixer,
		Logger:  slog.Default(),
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	reloads := make(chan string, 16)
	if cfg.HotReload {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			slog.Warn("hot reload disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.Go(func() error {
				return w.Run(gctx, func(name string) {
					select {
					case reloads <- name:
					default:
						slog.Warn("reload dropped", "file", name)
					}
				})
			})
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(cfg.Arena.Width)*2, int(cfg.Arena.Height)*2)
	ebiten.SetWindowTitle("skirmish")
	ebiten.SetTPS(cfg.TPS)

	game := NewGame(a, input, cfg, reloads, *debug)

	runErr := ebiten.RunGame(game)
	cancel()
	if err := g.Wait(); err != nil {
		slog.Error("watcher", "err", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
