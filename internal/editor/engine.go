// Package editor provides the Engine facade: the external interface of the
// room-mask editing core. It owns the image context, the mask store, the
// history manager and the overlay compositor, and routes pointer input to
// the active tool. All mutations are synchronous with the input event that
// caused them; the only deferred work is the coalesced compositor flush.
package editor

import (
	"fmt"
	goimage "image"
	"image/color"
	"log/slog"
	"sync"

	"room-masker/internal/compositor"
	"room-masker/internal/history"
	roomimage "room-masker/internal/image"
	"room-masker/internal/mask"
	"room-masker/internal/tools"
	"room-masker/pkg/colorutil"
	"room-masker/pkg/geometry"
)

// Event identifies engine notifications consumed by the UI.
type Event int

const (
	EventImageLoaded Event = iota
	EventRoomsChanged
	EventSessionChanged
	EventSelectionChanged
	EventOverlayDirty
	EventModified
)

// Listener is called when an event occurs.
type Listener func(data any)

// Engine is the single-operator, single-document mask editing engine.
// There is exactly one logical writer; the listener table is the only
// structure guarded by a lock.
type Engine struct {
	mu        sync.RWMutex
	listeners map[Event][]Listener

	log *slog.Logger

	ctx   *roomimage.Context
	store *mask.Store
	hist  *history.Manager
	comp  *compositor.Compositor

	session  tools.Session
	selected *mask.Room

	tool          tools.Tool
	brushRadius   int
	wandTolerance float64
	snapRadius    int
	palette       []color.RGBA

	lasso    tools.Lasso
	magnetic tools.Magnetic

	pointerDown bool
	lastPoint   pointInt

	roomSeq int

	// repaint is invoked once per batch of overlay mutations to request a
	// display refresh; the display's draw callback then calls FlushOverlay.
	repaint func()
}

type pointInt struct{ X, Y int }

// New creates an engine with default tool parameters. No image is loaded;
// every editing operation is a no-op until LoadImage succeeds.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		listeners:     make(map[Event][]Listener),
		log:           log,
		tool:          tools.ToolMove,
		brushRadius:   tools.BrushRadiusDefault,
		wandTolerance: tools.DefaultWandTolerance,
		snapRadius:    tools.DefaultSnapRadius,
		palette:       colorutil.DefaultPalette,
		session:       tools.Idle(),
	}
}

// On registers an event listener.
func (e *Engine) On(ev Event, fn Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[ev] = append(e.listeners[ev], fn)
}

// Emit triggers all listeners for the event.
func (e *Engine) Emit(ev Event, data any) {
	e.mu.RLock()
	listeners := e.listeners[ev]
	e.mu.RUnlock()
	for _, fn := range listeners {
		fn(data)
	}
}

// SetRepaintFunc installs the display-refresh request callback.
func (e *Engine) SetRepaintFunc(fn func()) {
	e.repaint = fn
	if e.comp != nil {
		e.comp.SetScheduler(e.scheduleFlush)
	}
}

func (e *Engine) scheduleFlush() {
	if e.repaint != nil {
		e.repaint()
	}
	e.Emit(EventOverlayDirty, nil)
}

// LoadImage (re)initializes the engine for a new image: luminance and
// gradient buffers are computed and all rooms and history are cleared.
// Zero-area images are rejected before any allocation.
func (e *Engine) LoadImage(pix []uint8, w, h int) error {
	ctx, err := roomimage.NewContext(pix, w, h)
	if err != nil {
		return err
	}
	e.installContext(ctx)
	return nil
}

// LoadImageFile loads an image from disk and initializes the engine from it.
func (e *Engine) LoadImageFile(path string) error {
	ctx, err := roomimage.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	e.installContext(ctx)
	return nil
}

func (e *Engine) installContext(ctx *roomimage.Context) {
	e.ctx = ctx
	e.store = mask.NewStore(ctx.Width, ctx.Height)
	e.hist = history.NewManager()
	e.comp = compositor.New(ctx.Width, ctx.Height)
	e.comp.SetScheduler(e.scheduleFlush)
	e.session = tools.Idle()
	e.selected = nil
	e.pointerDown = false
	e.lasso.Reset()
	e.magnetic.Reset()
	e.roomSeq = 0

	e.comp.Recomposite(nil)
	e.log.Info("image loaded", "width", ctx.Width, "height", ctx.Height)
	e.Emit(EventImageLoaded, ctx)
	e.Emit(EventRoomsChanged, nil)
	e.Emit(EventSessionChanged, e.session)
}

// Loaded reports whether an image context is present.
func (e *Engine) Loaded() bool { return e.ctx != nil }

// Context returns the current image context, nil before any load.
func (e *Engine) Context() *roomimage.Context { return e.ctx }

// Rooms returns the rooms of the current image in creation order.
func (e *Engine) Rooms() []*mask.Room {
	if e.store == nil {
		return nil
	}
	return e.store.Rooms()
}

// RoomAt returns the room covering the given pixel, or nil.
func (e *Engine) RoomAt(x, y int) *mask.Room {
	if e.store == nil {
		return nil
	}
	return e.store.RoomAt(x, y)
}

// Selected returns the room picked with the move tool, or nil.
func (e *Engine) Selected() *mask.Room { return e.selected }

// Session returns the current editing session value.
func (e *Engine) Session() tools.Session { return e.session }

// SetTool switches the active tool, discarding any in-progress capture.
func (e *Engine) SetTool(t tools.Tool) {
	if e.tool == t {
		return
	}
	e.tool = t
	e.pointerDown = false
	e.lasso.Reset()
	e.magnetic.Reset()
}

// Tool returns the active tool.
func (e *Engine) Tool() tools.Tool { return e.tool }

// SetBrushRadius sets the brush/eraser radius, clamped to the valid range.
func (e *Engine) SetBrushRadius(r int) {
	e.brushRadius = tools.ClampBrushRadius(r)
}

// BrushRadius returns the current brush radius.
func (e *Engine) BrushRadius() int { return e.brushRadius }

// SetWandTolerance sets the magic-wand luminance tolerance; values <= 0
// select automatic derivation from the seed neighborhood.
func (e *Engine) SetWandTolerance(t float64) { e.wandTolerance = t }

// SetSnapRadius sets the magnetic lasso edge-search radius.
func (e *Engine) SetSnapRadius(r int) {
	if r < 1 {
		r = 1
	}
	e.snapRadius = r
}

// SetPalette replaces the room color palette used for new rooms.
func (e *Engine) SetPalette(p []color.RGBA) {
	if len(p) > 0 {
		e.palette = p
	}
}

// Overlay returns the composited overlay buffer for display.
func (e *Engine) Overlay() *goimage.NRGBA {
	if e.comp == nil {
		return nil
	}
	return e.comp.Overlay()
}

// FlushOverlay applies the pending dirty rectangle to the overlay exactly
// once. The display's draw callback invokes this per refresh, which is the
// coalescing boundary for all mutations since the last flush.
func (e *Engine) FlushOverlay() geometry.PixelRect {
	if e.comp == nil {
		return geometry.PixelRect{}
	}
	return e.comp.Flush(e.storeRooms())
}

func (e *Engine) storeRooms() []*mask.Room {
	if e.store == nil {
		return nil
	}
	return e.store.Rooms()
}
