// Package panels provides the side panel widgets.
package panels

import (
	"fmt"
	"strings"

	"room-masker/internal/editor"
	"room-masker/internal/mask"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// RoomsPanel lists the rooms of the current image and drives the room
// lifecycle: create, edit, confirm, cancel, delete.
type RoomsPanel struct {
	engine *editor.Engine
	win    fyne.Window

	list       *widget.List
	newBtn     *widget.Button
	editBtn    *widget.Button
	confirmBtn *widget.Button
	cancelBtn  *widget.Button
	deleteBtn  *widget.Button

	nameEntry    *widget.Entry
	descEntry    *widget.Entry
	tagsEntry    *widget.Entry
	visibleCheck *widget.Check

	box *fyne.Container
}

// NewRoomsPanel creates the rooms panel bound to the engine.
func NewRoomsPanel(eng *editor.Engine, win fyne.Window) *RoomsPanel {
	rp := &RoomsPanel{engine: eng, win: win}

	rp.list = widget.NewList(
		func() int { return len(eng.Rooms()) },
		func() fyne.CanvasObject {
			return widget.NewLabel("room")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			rooms := eng.Rooms()
			if id >= len(rooms) {
				return
			}
			r := rooms[id]
			label := r.Name
			if !r.Confirmed {
				label += " (editing)"
			}
			obj.(*widget.Label).SetText(label)
		},
	)
	rp.list.OnSelected = func(id widget.ListItemID) {
		rooms := eng.Rooms()
		if id < len(rooms) {
			rp.showMetadata(rooms[id])
		}
	}

	rp.newBtn = widget.NewButton("New Room", rp.onNewRoom)
	rp.editBtn = widget.NewButton("Edit", rp.onEditRoom)
	rp.confirmBtn = widget.NewButton("Confirm", func() {
		eng.ConfirmRoom()
	})
	rp.cancelBtn = widget.NewButton("Cancel", func() {
		eng.CancelRoom()
	})
	rp.deleteBtn = widget.NewButton("Delete", rp.onDeleteRoom)

	rp.nameEntry = widget.NewEntry()
	rp.nameEntry.OnChanged = func(s string) {
		if r := rp.currentRoom(); r != nil && s != "" {
			r.Name = s
			rp.list.Refresh()
		}
	}
	rp.descEntry = widget.NewEntry()
	rp.descEntry.MultiLine = true
	rp.descEntry.OnChanged = func(s string) {
		if r := rp.currentRoom(); r != nil {
			r.Description = s
		}
	}
	rp.tagsEntry = widget.NewEntry()
	rp.tagsEntry.OnChanged = func(s string) {
		if r := rp.currentRoom(); r != nil {
			r.Tags = splitTags(s)
		}
	}
	rp.visibleCheck = widget.NewCheck("Visible at start", func(v bool) {
		if r := rp.currentRoom(); r != nil {
			r.VisibleAtStart = v
		}
	})

	metadata := widget.NewForm(
		widget.NewFormItem("Name", rp.nameEntry),
		widget.NewFormItem("Notes", rp.descEntry),
		widget.NewFormItem("Tags", rp.tagsEntry),
	)

	buttons := container.NewGridWithColumns(2,
		rp.newBtn, rp.editBtn,
		rp.confirmBtn, rp.cancelBtn,
	)

	rp.box = container.NewBorder(
		buttons,
		container.NewVBox(metadata, rp.visibleCheck, rp.deleteBtn),
		nil, nil,
		rp.list,
	)

	eng.On(editor.EventRoomsChanged, func(any) {
		fyne.Do(func() {
			rp.list.Refresh()
			rp.updateButtons()
		})
	})
	eng.On(editor.EventSessionChanged, func(any) {
		fyne.Do(rp.updateButtons)
	})
	eng.On(editor.EventSelectionChanged, func(data any) {
		fyne.Do(func() {
			if r, ok := data.(*mask.Room); ok && r != nil {
				rp.selectRoom(r)
			}
		})
	})

	rp.updateButtons()
	return rp
}

// Container returns the panel for embedding in layouts.
func (rp *RoomsPanel) Container() fyne.CanvasObject {
	return rp.box
}

func (rp *RoomsPanel) currentRoom() *mask.Room {
	if s := rp.engine.Session(); s.Active() {
		return s.Room
	}
	return rp.engine.Selected()
}

func (rp *RoomsPanel) selectRoom(room *mask.Room) {
	for i, r := range rp.engine.Rooms() {
		if r == room {
			rp.list.Select(i)
			return
		}
	}
}

func (rp *RoomsPanel) showMetadata(room *mask.Room) {
	rp.nameEntry.SetText(room.Name)
	rp.descEntry.SetText(room.Description)
	rp.tagsEntry.SetText(strings.Join(room.Tags, ", "))
	rp.visibleCheck.SetChecked(room.VisibleAtStart)
}

func (rp *RoomsPanel) updateButtons() {
	active := rp.engine.Session().Active()
	if active {
		rp.newBtn.Disable()
		rp.editBtn.Disable()
		rp.confirmBtn.Enable()
		rp.cancelBtn.Enable()
	} else {
		rp.confirmBtn.Disable()
		rp.cancelBtn.Disable()
		if rp.engine.Loaded() {
			rp.newBtn.Enable()
		} else {
			rp.newBtn.Disable()
		}
		if rp.engine.Selected() != nil {
			rp.editBtn.Enable()
		} else {
			rp.editBtn.Disable()
		}
	}
}

func (rp *RoomsPanel) onNewRoom() {
	room, err := rp.engine.CreateRoom()
	if err != nil {
		dialog.ShowError(err, rp.win)
		return
	}
	rp.showMetadata(room)
	rp.selectRoom(room)
}

func (rp *RoomsPanel) onEditRoom() {
	room := rp.engine.Selected()
	if room == nil {
		return
	}
	if err := rp.engine.EditRoom(room.ID); err != nil {
		dialog.ShowError(err, rp.win)
	}
}

func (rp *RoomsPanel) onDeleteRoom() {
	room := rp.currentRoom()
	if room == nil {
		return
	}
	dialog.ShowConfirm("Delete Room",
		fmt.Sprintf("Delete %q and its mask? This cannot be undone.", room.Name),
		func(ok bool) {
			if ok {
				rp.engine.DeleteRoom(room.ID)
			}
		}, rp.win)
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
