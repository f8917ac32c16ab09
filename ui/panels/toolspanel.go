package panels

import (
	"fmt"

	"room-masker/internal/app"
	"room-masker/internal/editor"
	"room-masker/internal/tools"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var toolNames = []string{"Move", "Brush", "Eraser", "Lasso", "Magnetic Lasso", "Wand"}

var toolByName = map[string]tools.Tool{
	"Move":           tools.ToolMove,
	"Brush":          tools.ToolBrush,
	"Eraser":         tools.ToolEraser,
	"Lasso":          tools.ToolLasso,
	"Magnetic Lasso": tools.ToolMagneticLasso,
	"Wand":           tools.ToolWand,
}

// ToolsPanel selects the active tool and its parameters.
type ToolsPanel struct {
	engine *editor.Engine

	toolRadio   *widget.RadioGroup
	radiusSlide *widget.Slider
	radiusLabel *widget.Label
	tolSlide    *widget.Slider
	tolLabel    *widget.Label
	autoTol     *widget.Check
	undoBtn     *widget.Button
	redoBtn     *widget.Button

	box *fyne.Container
}

// NewToolsPanel creates the tools panel bound to the engine.
func NewToolsPanel(eng *editor.Engine) *ToolsPanel {
	tp := &ToolsPanel{engine: eng}

	tp.toolRadio = widget.NewRadioGroup(toolNames, func(name string) {
		if t, ok := toolByName[name]; ok {
			eng.SetTool(t)
		}
	})
	tp.toolRadio.SetSelected("Move")

	tp.radiusLabel = widget.NewLabel(fmt.Sprintf("Brush: %d px", eng.BrushRadius()))
	tp.radiusSlide = widget.NewSlider(tools.BrushRadiusMin, tools.BrushRadiusMax)
	tp.radiusSlide.Step = 1
	tp.radiusSlide.Value = float64(eng.BrushRadius())
	tp.radiusSlide.OnChanged = func(v float64) {
		eng.SetBrushRadius(int(v))
		tp.radiusLabel.SetText(fmt.Sprintf("Brush: %d px", eng.BrushRadius()))
	}

	tp.tolLabel = widget.NewLabel(fmt.Sprintf("Tolerance: %.0f", float64(tools.DefaultWandTolerance)))
	tp.tolSlide = widget.NewSlider(1, 120)
	tp.tolSlide.Step = 1
	tp.tolSlide.Value = tools.DefaultWandTolerance
	tp.tolSlide.OnChanged = func(v float64) {
		if !tp.autoTol.Checked {
			eng.SetWandTolerance(v)
		}
		tp.tolLabel.SetText(fmt.Sprintf("Tolerance: %.0f", v))
	}

	tp.autoTol = widget.NewCheck("Auto tolerance", func(on bool) {
		if on {
			eng.SetWandTolerance(0)
			tp.tolSlide.Disable()
		} else {
			eng.SetWandTolerance(tp.tolSlide.Value)
			tp.tolSlide.Enable()
		}
	})

	tp.undoBtn = widget.NewButton("Undo", eng.Undo)
	tp.redoBtn = widget.NewButton("Redo", eng.Redo)

	tp.box = container.NewVBox(
		widget.NewLabel("Tool"),
		tp.toolRadio,
		widget.NewSeparator(),
		tp.radiusLabel,
		tp.radiusSlide,
		tp.tolLabel,
		tp.tolSlide,
		tp.autoTol,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, tp.undoBtn, tp.redoBtn),
	)

	eng.On(editor.EventModified, func(any) {
		fyne.Do(tp.updateHistoryButtons)
	})
	eng.On(editor.EventSessionChanged, func(any) {
		fyne.Do(tp.updateHistoryButtons)
	})

	tp.updateHistoryButtons()
	return tp
}

// Container returns the panel for embedding in layouts.
func (tp *ToolsPanel) Container() fyne.CanvasObject {
	return tp.box
}

// ApplyConfig pushes reloaded configuration values into the engine and the
// panel controls.
func (tp *ToolsPanel) ApplyConfig(cfg *app.Config) {
	tp.engine.SetBrushRadius(cfg.Tools.BrushRadius)
	tp.engine.SetSnapRadius(cfg.Tools.SnapRadius)
	if !tp.autoTol.Checked {
		tp.engine.SetWandTolerance(cfg.Tools.WandTolerance)
		tp.tolSlide.SetValue(cfg.Tools.WandTolerance)
	}
	tp.radiusSlide.SetValue(float64(tp.engine.BrushRadius()))

	if palette, err := cfg.PaletteColors(); err == nil {
		tp.engine.SetPalette(palette)
	}
}

func (tp *ToolsPanel) updateHistoryButtons() {
	if tp.engine.CanUndo() {
		tp.undoBtn.Enable()
	} else {
		tp.undoBtn.Disable()
	}
	if tp.engine.CanRedo() {
		tp.redoBtn.Enable()
	} else {
		tp.redoBtn.Disable()
	}
}
