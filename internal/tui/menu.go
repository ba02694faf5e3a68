package tui

import (
	"strings"

	"github.com/MKhiriev/go-metadata-console/internal/app"
	"github.com/MKhiriev/go-metadata-console/internal/i18n"
)

type menuAction int

const (
	menuRename menuAction = iota
	menuEditDesc
	menuCopyID
	menuDelete
)

var menuLabels = map[menuAction]string{
	menuRename:   app.KeyMenuRename,
	menuEditDesc: app.KeyMenuDesc,
	menuCopyID:   app.KeyMenuCopyID,
	menuDelete:   app.KeyMenuDelete,
}

// contextMenuModel is the options menu of the detail page.
type contextMenuModel struct {
	items []menuAction
	idx   int
	shown bool
}

func newContextMenu() contextMenuModel {
	return contextMenuModel{
		items: []menuAction{menuRename, menuEditDesc, menuCopyID, menuDelete},
	}
}

func (m *contextMenuModel) toggle() {
	m.shown = !m.shown
	m.idx = 0
}

func (m *contextMenuModel) hide() {
	m.shown = false
	m.idx = 0
}

func (m *contextMenuModel) move(delta int) {
	m.idx = (m.idx + delta + len(m.items)) % len(m.items)
}

func (m contextMenuModel) selected() menuAction {
	return m.items[m.idx]
}

func (m contextMenuModel) View(tr *i18n.Translator) string {
	var b strings.Builder
	for i, item := range m.items {
		label := tr.T(menuLabels[item])
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return menuBoxStyle.Render(b.String())
}
