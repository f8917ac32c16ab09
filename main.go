// Package main provides the entry point for the Room Masker application.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"room-masker/internal/app"
	"room-masker/internal/editor"
	"room-masker/internal/version"
	"room-masker/ui/mainwindow"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	log.Info("starting room-masker", "version", version.Version)

	cfgPath := configPath()
	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		log.Error("loading config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	fyneApp := fyneapp.NewWithID("io.room-masker")
	fyneApp.Settings().SetTheme(&app.RoomMaskerTheme{})

	eng := editor.New(log)
	win := mainwindow.New(fyneApp, eng, cfg)
	win.Resize(fyne.NewSize(1280, 800))

	watcher, err := app.WatchConfig(cfgPath, log, func(cfg *app.Config) {
		fyne.Do(func() { win.ApplyConfig(cfg) })
	})
	if err != nil {
		log.Warn("config hot reload disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	if len(os.Args) > 1 {
		win.OpenImage(os.Args[1])
	} else {
		win.RestoreLastImage()
	}

	win.ShowAndRun()
}

func configPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "room-masker", "config.toml")
	}
	return "config.toml"
}
