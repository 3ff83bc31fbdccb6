package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"pool-scene/internal/app"
	"pool-scene/internal/assets"
	"pool-scene/internal/config"
	"pool-scene/internal/debug"
	"pool-scene/internal/env"
	"pool-scene/internal/graphics"
	"pool-scene/internal/loading"
	"pool-scene/internal/logger"
	"pool-scene/internal/render"
	"pool-scene/internal/ui"
)

func main() {
	envErr := env.Load(".env")

	path := config.Path()
	cfg, cfgErr := config.Load(path)
	cfg = config.ApplyEnv(cfg)

	log := logger.New(cfg.LogFile)
	if envErr != nil {
		log.Errorf("env: %v", envErr)
	}
	if cfgErr != nil {
		log.Errorf("%v", cfgErr)
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(path, config.Default()); err != nil {
			log.Errorf("%v", err)
		}
	}

	width, height := graphics.Open(cfg.Window)
	defer graphics.Close()

	screen := ui.NewLoadingScreen()
	overlay := ui.New()
	if sheet, err := ui.DefaultStylesheet(); err != nil {
		log.Errorf("%v", err)
	} else {
		overlay.SetStylesheet(sheet)
	}
	overlay.AddNode(screen.Nodes()...)

	manager := loading.NewManager()
	screen.Track(manager, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ld := assets.New(ctx, assets.Options{
		Root:           cfg.Assets.Root,
		Workers:        cfg.Assets.Workers,
		MaxTextureSize: cfg.Assets.MaxTextureSize,
		Manager:        manager,
		Log:            log,
	})

	dbg := debug.New()
	dbg.SetShowFPS(cfg.Debug.ShowFPS)
	dbg.SetShowMemAlloc(cfg.Debug.ShowMemAlloc)
	dbg.SetAssets(manager)
	dbg.SetLog(log)

	r := render.New(log, overlay, dbg)
	defer r.Close()

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	a := app.New(cfg, aspect, ld, r, graphics.MouseInput{})
	log.Infof("scene composed: %d nodes", a.Graph.Len())

	graphics.Run(a.Step)
}
