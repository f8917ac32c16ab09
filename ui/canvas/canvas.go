// Package canvas provides the mask editing canvas with pan and zoom.
package canvas

import (
	"image"
	"time"

	"room-masker/internal/editor"
	"room-masker/internal/tools"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25

	hoverDelay = 400 * time.Millisecond
)

// MaskCanvas displays the loaded image with the room overlay composited on
// top and routes pointer gestures to the editing engine. The raster draw
// callback pulls the pending overlay flush, so however many strokes landed
// since the last frame, the overlay is recomposited once.
type MaskCanvas struct {
	widget.BaseWidget

	engine *editor.Engine

	raster *fynecanvas.Raster
	zoom   float64

	scroll  *zoomScroll
	content *draggableContent
	imgSize fyne.Size

	dragging bool
	lastDrag fyne.Position

	hoverTimer *time.Timer
	hoverLabel *fynecanvas.Text

	onZoomChange func(zoom float64)
}

// NewMaskCanvas creates a canvas bound to the engine. The engine's repaint
// requests refresh the raster.
func NewMaskCanvas(eng *editor.Engine) *MaskCanvas {
	mc := &MaskCanvas{
		engine:  eng,
		zoom:    1.0,
		imgSize: fyne.NewSize(400, 300),
	}

	mc.raster = fynecanvas.NewRaster(mc.draw)
	mc.raster.ScaleMode = fynecanvas.ImageScalePixels
	mc.raster.SetMinSize(mc.imgSize)

	mc.hoverLabel = fynecanvas.NewText("", hoverTextColor)
	mc.hoverLabel.TextSize = 13
	mc.hoverLabel.Hide()

	mc.content = newDraggableContent(mc, mc.raster)
	mc.scroll = newZoomScroll(mc.content, mc)

	eng.SetRepaintFunc(func() {
		fyne.Do(mc.raster.Refresh)
	})
	eng.On(editor.EventImageLoaded, func(any) {
		mc.SetZoom(1.0)
	})

	mc.ExtendBaseWidget(mc)
	return mc
}

// Container returns the canvas for embedding in layouts.
func (mc *MaskCanvas) Container() fyne.CanvasObject {
	return mc.scroll
}

// SetZoom sets the zoom level, clamped to the supported range.
func (mc *MaskCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	mc.zoom = zoom
	mc.updateContentSize()

	if mc.onZoomChange != nil {
		mc.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (mc *MaskCanvas) Zoom() float64 { return mc.zoom }

// ZoomIn increases the zoom level.
func (mc *MaskCanvas) ZoomIn() { mc.SetZoom(mc.zoom * zoomStep) }

// ZoomOut decreases the zoom level.
func (mc *MaskCanvas) ZoomOut() { mc.SetZoom(mc.zoom / zoomStep) }

// OnZoomChange sets a callback for zoom changes.
func (mc *MaskCanvas) OnZoomChange(callback func(zoom float64)) {
	mc.onZoomChange = callback
}

// Refresh redraws the canvas.
func (mc *MaskCanvas) Refresh() {
	mc.raster.Refresh()
}

// canvasToImage converts widget coordinates to image coordinates.
func (mc *MaskCanvas) canvasToImage(pos fyne.Position) (x, y float64) {
	return float64(pos.X) / mc.zoom, float64(pos.Y) / mc.zoom
}

func (mc *MaskCanvas) updateContentSize() {
	ctx := mc.engine.Context()
	if ctx == nil {
		mc.imgSize = fyne.NewSize(400, 300)
	} else {
		mc.imgSize = fyne.NewSize(
			float32(float64(ctx.Width)*mc.zoom),
			float32(float64(ctx.Height)*mc.zoom),
		)
	}

	mc.raster.SetMinSize(mc.imgSize)
	mc.raster.Resize(mc.imgSize)
	if mc.content != nil {
		mc.content.Resize(mc.imgSize)
		mc.content.Refresh()
	}
	mc.raster.Refresh()
	if mc.scroll != nil {
		mc.scroll.Refresh()
	}
}

// draw renders one frame: base image, composited overlay, then any
// in-progress lasso path. The single FlushOverlay call here is what
// coalesces all mask edits since the previous frame.
func (mc *MaskCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBackground(output)

	ctx := mc.engine.Context()
	if ctx == nil {
		return output
	}

	mc.engine.FlushOverlay()

	drawBaseImage(output, ctx, mc.zoom)
	drawOverlay(output, mc.engine.Overlay(), mc.zoom)

	if path := mc.engine.LassoPreview(); len(path) > 1 {
		drawPreviewPath(output, path, mc.zoom, previewColor(mc.engine))
	}

	return output
}

// pointer handling, called by draggableContent

func (mc *MaskCanvas) pointerDown(pos fyne.Position) {
	x, y := mc.canvasToImage(pos)
	mc.engine.PointerDown(x, y)
}

func (mc *MaskCanvas) pointerMove(pos fyne.Position) {
	x, y := mc.canvasToImage(pos)
	mc.engine.PointerMove(x, y)
	mc.raster.Refresh()
}

func (mc *MaskCanvas) pointerUp(pos fyne.Position) {
	x, y := mc.canvasToImage(pos)
	mc.engine.PointerUp(x, y)
	mc.raster.Refresh()
}

// hover handling

func (mc *MaskCanvas) hoverMoved(pos fyne.Position) {
	mc.hideHoverLabel()
	if mc.hoverTimer != nil {
		mc.hoverTimer.Stop()
	}
	mc.hoverTimer = time.AfterFunc(hoverDelay, func() {
		fyne.Do(func() { mc.showHoverLabel(pos) })
	})
}

func (mc *MaskCanvas) hoverEnded() {
	if mc.hoverTimer != nil {
		mc.hoverTimer.Stop()
		mc.hoverTimer = nil
	}
	mc.hideHoverLabel()
}

func (mc *MaskCanvas) showHoverLabel(pos fyne.Position) {
	x, y := mc.canvasToImage(pos)
	room := mc.engine.RoomAt(int(x), int(y))
	if room == nil {
		return
	}
	mc.hoverLabel.Text = room.Name
	mc.hoverLabel.Move(fyne.NewPos(pos.X+12, pos.Y-8))
	mc.hoverLabel.Show()
	mc.hoverLabel.Refresh()
}

func (mc *MaskCanvas) hideHoverLabel() {
	if !mc.hoverLabel.Hidden {
		mc.hoverLabel.Hide()
	}
}

// CreateRenderer implements fyne.Widget.
func (mc *MaskCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &maskCanvasRenderer{canvas: mc}
}

type maskCanvasRenderer struct {
	canvas *MaskCanvas
}

func (r *maskCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.scroll.Resize(size)
}

func (r *maskCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *maskCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *maskCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *maskCanvasRenderer) Destroy() {}

// zoomScroll wraps a scroll container but intercepts wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *MaskCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *MaskCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// scrollBy pans the viewport, used by the move tool.
func (zs *zoomScroll) scrollBy(dx, dy float32) {
	zs.scroll.Offset = fyne.NewPos(zs.scroll.Offset.X-dx, zs.scroll.Offset.Y-dy)
	zs.scroll.Refresh()
}

// draggableContent wraps the raster to receive mouse events.
type draggableContent struct {
	widget.BaseWidget
	canvas *MaskCanvas
	raster *fynecanvas.Raster
}

var _ desktop.Hoverable = (*draggableContent)(nil)

func newDraggableContent(mc *MaskCanvas, raster *fynecanvas.Raster) *draggableContent {
	dc := &draggableContent{canvas: mc, raster: raster}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (dc *draggableContent) CreateRenderer() fyne.WidgetRenderer {
	return &draggableContentRenderer{content: dc}
}

func (dc *draggableContent) MinSize() fyne.Size {
	return dc.raster.MinSize()
}

func (dc *draggableContent) Dragged(ev *fyne.DragEvent) {
	mc := dc.canvas

	// The move tool pans; everything else is a mask gesture.
	if mc.engine.Tool() == tools.ToolMove {
		mc.scroll.scrollBy(ev.Dragged.DX, ev.Dragged.DY)
		return
	}

	if !mc.dragging {
		mc.dragging = true
		start := fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
		mc.pointerDown(start)
	}
	mc.pointerMove(ev.Position)
	mc.lastDrag = ev.Position
}

func (dc *draggableContent) DragEnd() {
	mc := dc.canvas
	if !mc.dragging {
		return
	}
	mc.dragging = false
	mc.pointerUp(mc.lastDrag)
}

func (dc *draggableContent) Tapped(ev *fyne.PointEvent) {
	size := dc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}
	// A click without drag is a complete down/up gesture: selection with
	// the move tool, a single dab or fill with the paint tools.
	dc.canvas.pointerDown(ev.Position)
	dc.canvas.pointerUp(ev.Position)
}

func (dc *draggableContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.canvas.ZoomOut()
	}
}

func (dc *draggableContent) MouseIn(ev *desktop.MouseEvent) {
	dc.canvas.hoverMoved(ev.Position)
}

func (dc *draggableContent) MouseMoved(ev *desktop.MouseEvent) {
	dc.canvas.hoverMoved(ev.Position)
}

func (dc *draggableContent) MouseOut() {
	dc.canvas.hoverEnded()
}

type draggableContentRenderer struct {
	content *draggableContent
}

func (r *draggableContentRenderer) Layout(size fyne.Size) {
	r.content.raster.Resize(size)
}

func (r *draggableContentRenderer) MinSize() fyne.Size {
	return r.content.raster.MinSize()
}

func (r *draggableContentRenderer) Refresh() {
	r.content.raster.Refresh()
}

func (r *draggableContentRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content.raster, r.content.canvas.hoverLabel}
}

func (r *draggableContentRenderer) Destroy() {}
