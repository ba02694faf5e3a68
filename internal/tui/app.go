package tui

import (
	"strings"

	"github.com/MKhiriev/go-metadata-console/internal/state"
	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mounter is implemented by pages that need the route of the navigation that
// activated them.
type Mounter interface {
	Mount(nav NavigateTo) tea.Cmd
}

// Unmounter is implemented by pages that release state when they are left.
type Unmounter interface {
	Unmount()
}

// inputCapturer is implemented by pages with text editors. While a page
// captures input, global hotkeys are passed to it untouched.
type inputCapturer interface {
	CapturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages, calling Unmount/Mount hooks
// 4) renders the header bar and alerts shared by every page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	shared    *state.MetadataModel
	alert     alertModel
	buildInfo models.AppBuildInfo
	window    *tea.WindowSizeMsg

	quitByUser    bool
	showBuildInfo bool

	// header is rebuilt only when the page or the shared model version changes
	headerText    string
	headerPage    string
	headerVersion uint64
	headerBuilt   bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, shared *state.MetadataModel, buildInfo models.AppBuildInfo) *RootModel {
	return &RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		shared:      shared,
		buildInfo:   buildInfo,
	}
}

func (r *RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if key.Matches(msg, keys.buildInfo) && !r.capturesInput() {
			r.showBuildInfo = true
			return r, nil
		}

	case NavigateTo:
		return r, r.navigate(msg)

	case alertMsg:
		return r, r.alert.show(msg)

	case clearAlertMsg:
		r.alert.clear(msg)
		return r, nil

	case tea.WindowSizeMsg:
		r.window = &msg
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// navigate switches to nav.Page. Unknown pages are ignored.
func (r *RootModel) navigate(nav NavigateTo) tea.Cmd {
	next, exists := r.pages[nav.Page]
	if !exists {
		return nil
	}

	if u, ok := r.current.(Unmounter); ok {
		u.Unmount()
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	var cmds []tea.Cmd
	if mounter, ok := next.(Mounter); ok {
		cmds = append(cmds, mounter.Mount(nav))
	} else {
		cmds = append(cmds, next.Init())
	}
	if r.window != nil {
		size := *r.window
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

func (r *RootModel) capturesInput() bool {
	c, ok := r.current.(inputCapturer)
	return ok && c.CapturesInput()
}

func (r *RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("\n\n")

	if r.current == nil {
		b.WriteString(renderPage("metadata console", "", ""))
	} else {
		b.WriteString(r.current.View())
	}

	if alert := r.alert.View(); alert != "" {
		b.WriteString("\n\n")
		b.WriteString(alert)
	}

	return appStyle.Render(b.String())
}

// header is the sibling panel that follows the record shown on the detail
// page through the shared model.
func (r *RootModel) header() string {
	version := r.shared.Version()
	if r.headerBuilt && r.headerVersion == version && r.headerPage == r.currentName {
		return r.headerText
	}

	crumbs := "metadata console › " + r.currentName
	if record, ok := r.shared.Get(); ok {
		crumbs += " › " + fitText(record.DisplayName(), 40) + " (" + record.ID + ")"
	}

	r.headerText = headerStyle.Render(crumbs)
	r.headerPage = r.currentName
	r.headerVersion = version
	r.headerBuilt = true
	return r.headerText
}

// QuitByUser reports whether the program was left with ctrl+c.
func (r *RootModel) QuitByUser() bool {
	return r.quitByUser
}
