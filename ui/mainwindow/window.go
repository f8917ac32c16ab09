// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"room-masker/internal/app"
	"room-masker/internal/editor"
	"room-masker/internal/image"
	"room-masker/internal/version"
	"room-masker/ui/canvas"
	"room-masker/ui/panels"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir   = "lastDirectory"
	prefKeyLastImage = "lastImage"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app        fyne.App
	engine     *editor.Engine
	canvas     *canvas.MaskCanvas
	roomsPanel *panels.RoomsPanel
	toolsPanel *panels.ToolsPanel
	statusBar  *widget.Label
}

// New creates the main window bound to the engine.
func New(fyneApp fyne.App, eng *editor.Engine, cfg *app.Config) *MainWindow {
	win := fyneApp.NewWindow("Room Masker")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		engine: eng,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.toolsPanel.ApplyConfig(cfg)

	return mw
}

// ApplyConfig pushes a reloaded configuration into the UI.
func (mw *MainWindow) ApplyConfig(cfg *app.Config) {
	mw.toolsPanel.ApplyConfig(cfg)
	mw.updateStatus("Configuration reloaded")
}

func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewMaskCanvas(mw.engine)
	mw.roomsPanel = panels.NewRoomsPanel(mw.engine, mw.Window)
	mw.toolsPanel = panels.NewToolsPanel(mw.engine)
	mw.statusBar = widget.NewLabel("Open an image to begin")

	side := container.NewBorder(
		mw.toolsPanel.Container(),
		nil, nil, nil,
		mw.roomsPanel.Container(),
	)

	canvasArea := container.NewBorder(
		mw.createToolbar(),
		nil, nil, nil,
		mw.canvas.Container(),
	)

	split := container.NewHSplit(side, canvasArea)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil, nil,
		split,
	)

	mw.SetContent(content)
}

func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", mw.canvas.ZoomOut)
	zoomInBtn := widget.NewButton("+", mw.canvas.ZoomIn)
	actualBtn := widget.NewButton("1:1", func() {
		mw.canvas.SetZoom(1.0)
	})

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		actualBtn,
	)
}

func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mw.onOpenImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.engine.Undo),
		fyne.NewMenuItem("Redo", mw.engine.Redo),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Actual Size", func() { mw.canvas.SetZoom(1.0) }),
	)

	roomMenu := fyne.NewMenu("Room",
		fyne.NewMenuItem("New Room", func() {
			if _, err := mw.engine.CreateRoom(); err != nil {
				dialog.ShowError(err, mw.Window)
			}
		}),
		fyne.NewMenuItem("Confirm", mw.engine.ConfirmRoom),
		fyne.NewMenuItem("Cancel", mw.engine.CancelRoom),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, roomMenu, helpMenu))
}

func (mw *MainWindow) setupEventHandlers() {
	mw.engine.On(editor.EventImageLoaded, func(any) {
		fyne.Do(func() {
			mw.updateStatus("Image loaded")
		})
	})
	mw.engine.On(editor.EventSessionChanged, func(any) {
		fyne.Do(func() {
			if s := mw.engine.Session(); s.Active() {
				mw.updateStatus(fmt.Sprintf("Editing %s", s.Room.Name))
			} else {
				mw.updateStatus("Ready")
			}
		})
	})
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// RestoreLastImage reloads the image used in the previous session, if any.
func (mw *MainWindow) RestoreLastImage() {
	path := mw.app.Preferences().String(prefKeyLastImage)
	if path == "" {
		return
	}
	if err := mw.engine.LoadImageFile(path); err != nil {
		mw.updateStatus("Could not restore previous image")
		return
	}
	mw.SetTitle("Room Masker - " + filepath.Base(path))
}

// OpenImage loads an image and records it for session restore.
func (mw *MainWindow) OpenImage(path string) {
	if err := mw.engine.LoadImageFile(path); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.app.Preferences().SetString(prefKeyLastImage, path)
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(path))
	mw.SetTitle("Room Masker - " + filepath.Base(path))
}

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		mw.OpenImage(reader.URI().Path())
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(image.SupportedFormats()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Room Masker",
		fmt.Sprintf("Room Masker v%s\n\n"+
			"Paints per-room reveal masks over battle map images.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
