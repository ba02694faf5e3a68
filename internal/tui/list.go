package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-metadata-console/internal/app"
	"github.com/MKhiriev/go-metadata-console/internal/i18n"
	"github.com/MKhiriev/go-metadata-console/internal/service"
	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultPageSize = 20

// ListModel is the listing page: one page of catalog records filtered by
// name. When the catalog is unreachable the page shows cached records and an
// offline banner.
type ListModel struct {
	ctx      context.Context
	metadata service.ClientMetadataService
	tr       *i18n.Translator

	req       models.ListRequest
	page      models.MetadataPage
	idx       int
	loading   bool
	filtering bool
	filter    textinput.Model
	spinner   spinner.Model
}

func NewListModel(ctx context.Context, metadata service.ClientMetadataService, tr *i18n.Translator) *ListModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.CharLimit = 150
	filter.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ListModel{
		ctx:      ctx,
		metadata: metadata,
		tr:       tr,
		req:      models.ListRequest{Size: defaultPageSize},
		filter:   filter,
		spinner:  sp,
	}
}

func (m *ListModel) Init() tea.Cmd {
	return m.load()
}

// Mount reloads the current page, so records deleted on the detail page
// disappear.
func (m *ListModel) Mount(NavigateTo) tea.Cmd {
	return m.load()
}

func (m *ListModel) CapturesInput() bool {
	return m.filtering
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.req != m.req {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, showAlert(alertFail, failureText(m.tr, app.KeyListFailed, msg.err))
		}
		// the page emptied under us, e.g. its last record was deleted
		if len(msg.page.Items) == 0 && m.req.Page > 0 {
			m.req.Page = min(m.req.Page-1, max(msg.page.TotalPages-1, 0))
			m.idx = 0
			return m, m.load()
		}
		m.page = msg.page
		m.idx = min(m.idx, len(m.page.Items)-1)
		m.idx = max(m.idx, 0)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if m.page.HasNext() {
			m.req.Page++
			m.idx = 0
			return m, m.load()
		}
	case key.Matches(msg, keys.prevPage):
		if m.req.Page > 0 {
			m.req.Page--
			m.idx = 0
			return m, m.load()
		}
	case key.Matches(msg, keys.enter):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: PageDetail, MetadataID: item.ID}
		}
	case key.Matches(msg, keys.filter):
		m.filtering = true
		m.filter.SetValue(m.req.NameContains)
		m.filter.CursorEnd()
		return m, m.filter.Focus()
	case key.Matches(msg, keys.refresh):
		return m, m.load()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *ListModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		m.req.NameContains = strings.TrimSpace(m.filter.Value())
		m.req.Page = 0
		m.idx = 0
		return m, m.load()
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *ListModel) current() (models.Metadata, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Metadata{}, false
	}
	return m.page.Items[m.idx], true
}

func (m *ListModel) load() tea.Cmd {
	m.loading = true

	ctx, svc, req := m.ctx, m.metadata, m.req
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := svc.List(operationContext(ctx), req)
		return listLoadedMsg{req: req, page: page, err: err}
	})
}

func (m *ListModel) View() string {
	var b strings.Builder

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	} else if m.req.NameContains != "" {
		b.WriteString(helpStyle.Render("/ " + m.req.NameContains))
		b.WriteString("\n\n")
	}

	if m.page.Cached {
		b.WriteString(offlineStyle.Render(m.tr.T(app.KeyOffline)))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.tr.T(app.KeyLoading))
	case len(m.page.Items) == 0:
		b.WriteString(helpStyle.Render(m.tr.T(app.KeyNoRecords)))
	default:
		b.WriteString(m.renderTable())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.tr.T(app.KeyPageInfo,
			m.page.Number+1, max(m.page.TotalPages, 1), m.page.TotalElements)))
	}

	hotKeys := "enter: open │ /: filter │ ←/→: page │ ctrl+r: reload │ v: version │ q: quit"
	if m.filtering {
		hotKeys = "enter: apply │ esc: cancel"
	}
	return renderPage(m.tr.T(app.KeyListTitle), b.String(), hotKeys)
}

func (m *ListModel) renderTable() string {
	var b strings.Builder

	nameHeader := m.tr.T(app.KeyLabelName)
	nameColWidth := lipgloss.Width(nameHeader)
	for _, item := range m.page.Items {
		nameColWidth = max(nameColWidth, lipgloss.Width(fitText(item.DisplayName(), 40)))
	}

	b.WriteString(fmt.Sprintf("  %-*s │ %s\n", nameColWidth, nameHeader, m.tr.T(app.KeyLabelDesc)))
	b.WriteString(strings.Repeat("─", nameColWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 30))
	b.WriteString("\n")

	for i, item := range m.page.Items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		row := fmt.Sprintf("%s %-*s │ %s", cursor, nameColWidth, fitText(item.DisplayName(), 40), fitText(item.Description, 40))
		if i == m.idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		if i < len(m.page.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
