// Package tools provides the editing session state machine and the tool
// engines that mutate room masks: brush/eraser, lasso, magnetic lasso, and
// magic wand. Tools operate in image pixel space; callers clamp device
// coordinates before dispatching.
package tools

// Tool identifies the active interaction tool. The set is closed: each
// variant has exactly one handler in the editor's pointer dispatch.
type Tool int

const (
	ToolMove Tool = iota
	ToolBrush
	ToolEraser
	ToolLasso
	ToolMagneticLasso
	ToolWand
)

func (t Tool) String() string {
	switch t {
	case ToolMove:
		return "Move"
	case ToolBrush:
		return "Brush"
	case ToolEraser:
		return "Eraser"
	case ToolLasso:
		return "Lasso"
	case ToolMagneticLasso:
		return "Magnetic Lasso"
	case ToolWand:
		return "Magic Wand"
	default:
		return "Unknown"
	}
}

// Mutating reports whether the tool writes to masks. Move only selects and
// pans.
func (t Tool) Mutating() bool {
	return t != ToolMove
}
