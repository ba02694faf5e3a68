// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-metadata-console/internal/app"
	"github.com/MKhiriev/go-metadata-console/internal/i18n"
	"github.com/MKhiriev/go-metadata-console/internal/service"
	"github.com/MKhiriev/go-metadata-console/internal/state"
	"github.com/MKhiriev/go-metadata-console/internal/validators"
	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type detailTab int

const (
	tabInformation detailTab = iota
	tabFields
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

// DetailModel is the Bubble Tea model of the metadata detail page. It shows
// one record by id, edits its name and description in place and deletes it
// after confirmation.
//
// The record itself lives in the shared [state.MetadataModel]; the page only
// keeps transient UI state. Name and description editing are mutually
// exclusive: entering one always leaves the other.
type DetailModel struct {
	ctx       context.Context
	metadata  service.ClientMetadataService
	shared    *state.MetadataModel
	tr        *i18n.Translator
	validator validators.Validator

	id      string
	loading bool
	spinner spinner.Model
	tab     detailTab

	nameEditMode bool
	descEditMode bool
	nameInput    textinput.Model
	descInput    textarea.Model

	menu        contextMenuModel
	showConfirm bool
	confirm     confirmModel
}

// NewDetailModel creates the detail page. id may be empty; the page then
// waits for a [NavigateTo] carrying the metadata id.
func NewDetailModel(
	ctx context.Context,
	metadata service.ClientMetadataService,
	shared *state.MetadataModel,
	tr *i18n.Translator,
	id string,
) *DetailModel {
	nameInput := textinput.New()
	nameInput.CharLimit = validators.MaxNameLength
	nameInput.Width = 48

	descInput := textarea.New()
	descInput.CharLimit = validators.MaxDescriptionLength
	descInput.ShowLineNumbers = false
	descInput.SetWidth(60)
	descInput.SetHeight(5)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &DetailModel{
		ctx:       ctx,
		metadata:  metadata,
		shared:    shared,
		tr:        tr,
		validator: validators.NewMetadataValidator(),
		id:        strings.TrimSpace(id),
		spinner:   sp,
		nameInput: nameInput,
		descInput: descInput,
		menu:      newContextMenu(),
	}
}

// Init implements [tea.Model]. Loads the record when the page was opened
// with an id.
func (m *DetailModel) Init() tea.Cmd {
	if m.id == "" {
		return nil
	}
	return m.loadDetail(m.id)
}

// Mount is called by [RootModel] when the page becomes active.
func (m *DetailModel) Mount(nav NavigateTo) tea.Cmd {
	m.resetUI()
	return m.loadDetail(nav.MetadataID)
}

// Unmount is called by [RootModel] when the page is left. The shared record
// is dropped so sibling panels stop showing it.
func (m *DetailModel) Unmount() {
	m.resetUI()
	m.id = ""
	m.loading = false
	m.shared.Clear()
}

// CapturesInput reports whether keystrokes go to a text editor.
func (m *DetailModel) CapturesInput() bool {
	return m.nameEditMode || m.descEditMode
}

// Update implements [tea.Model]. Handled messages:
//   - detailLoadedMsg, metadataUpdatedMsg, metadataDeletedMsg: results of
//     the store calls; results for another id are dropped.
//   - key presses: routed to the confirmation modal, the active editor, the
//     context menu or the page hotkeys, in that order.
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, showAlert(alertFail, failureText(m.tr, app.KeyFetchFailed, msg.err))
		}
		m.shared.Set(msg.record)
		return m, nil

	case metadataUpdatedMsg:
		if msg.id != m.id {
			return m, nil
		}
		if msg.err != nil {
			return m, showAlert(alertFail, failureText(m.tr, app.KeyUpdateFailed, msg.err))
		}
		m.shared.Set(msg.record)
		return m, showAlert(alertSuccess, m.tr.T(app.KeyUpdated))

	case metadataDeletedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, showAlert(alertFail, failureText(m.tr, app.KeyDeleteFailed, msg.err))
		}
		return m, tea.Batch(
			showAlert(alertSuccess, m.tr.T(app.KeyDeleted, msg.name)),
			m.goBack(),
		)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		width := max(msg.Width-24, 20)
		m.nameInput.Width = width
		m.descInput.SetWidth(width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateEditors(msg)
}

func (m *DetailModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			return m, m.confirmedDelete()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	if m.nameEditMode {
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.commitNameEdit()
		case key.Matches(msg, keys.esc):
			m.cancelNameEdit()
			return m, nil
		}
		return m.updateEditors(msg)
	}

	if m.descEditMode {
		switch {
		case key.Matches(msg, keys.saveDesc):
			return m, m.commitDescEdit()
		case key.Matches(msg, keys.esc):
			m.cancelDescEdit()
			return m, nil
		}
		return m.updateEditors(msg)
	}

	if key.Matches(msg, keys.menu) {
		m.toggleContextMenu()
		return m, nil
	}

	if m.menu.shown {
		switch {
		case key.Matches(msg, keys.up):
			m.menu.move(-1)
		case key.Matches(msg, keys.down):
			m.menu.move(1)
		case key.Matches(msg, keys.esc):
			m.menu.hide()
		case key.Matches(msg, keys.enter):
			action := m.menu.selected()
			m.menu.hide()
			return m, m.runMenuAction(action)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.backspace):
		return m, m.goBack()
	case key.Matches(msg, keys.rename):
		return m, m.beginNameEdit()
	case key.Matches(msg, keys.editDesc):
		return m, m.beginDescEdit()
	case key.Matches(msg, keys.delete):
		m.requestDelete()
	case key.Matches(msg, keys.copyID):
		return m, m.copyID()
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % 2
	case key.Matches(msg, keys.refresh):
		if m.id != "" && !m.loading {
			return m, m.loadDetail(m.id)
		}
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *DetailModel) updateEditors(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.nameEditMode:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.descEditMode:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *DetailModel) runMenuAction(action menuAction) tea.Cmd {
	switch action {
	case menuRename:
		return m.beginNameEdit()
	case menuEditDesc:
		return m.beginDescEdit()
	case menuCopyID:
		return m.copyID()
	case menuDelete:
		m.requestDelete()
	}
	return nil
}

// loadDetail shows the loading indicator and fetches the record by id.
func (m *DetailModel) loadDetail(id string) tea.Cmd {
	m.id = strings.TrimSpace(id)
	if m.id == "" {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdFetch(m.id))
}

// beginNameEdit leaves description editing, seeds the draft with the current
// name and returns the command that focuses the name input.
func (m *DetailModel) beginNameEdit() tea.Cmd {
	m.exitDescEdit()
	m.menu.hide()

	record, ok := m.record()
	if !ok {
		return nil
	}

	m.nameInput.SetValue(record.Name)
	m.nameInput.CursorEnd()
	m.nameEditMode = true
	return m.nameInput.Focus()
}

// commitNameEdit leaves name editing and sends the trimmed draft to the
// store. A blank draft only raises an info alert.
func (m *DetailModel) commitNameEdit() tea.Cmd {
	if !m.nameEditMode {
		return nil
	}
	m.exitNameEdit()

	draft := strings.TrimSpace(m.nameInput.Value())
	update := models.NameUpdate(draft)
	if err := m.validator.Validate(m.ctx, update); err != nil {
		return showAlert(alertInfo, humanizeError(m.tr, err))
	}

	return m.cmdUpdate(m.id, update)
}

// cancelNameEdit restores the draft to the last committed name.
func (m *DetailModel) cancelNameEdit() {
	if !m.nameEditMode {
		return
	}
	if record, ok := m.record(); ok {
		m.nameInput.SetValue(record.Name)
	}
	m.exitNameEdit()
}

func (m *DetailModel) beginDescEdit() tea.Cmd {
	m.exitNameEdit()
	m.menu.hide()

	record, ok := m.record()
	if !ok {
		return nil
	}

	m.descInput.SetValue(record.Description)
	m.descEditMode = true
	return m.descInput.Focus()
}

// commitDescEdit sends the description draft. Unlike the name, an empty
// description is a valid value.
func (m *DetailModel) commitDescEdit() tea.Cmd {
	if !m.descEditMode {
		return nil
	}
	m.exitDescEdit()

	update := models.DescriptionUpdate(strings.TrimSpace(m.descInput.Value()))
	if err := m.validator.Validate(m.ctx, update); err != nil {
		return showAlert(alertInfo, humanizeError(m.tr, err))
	}

	return m.cmdUpdate(m.id, update)
}

func (m *DetailModel) cancelDescEdit() {
	if !m.descEditMode {
		return
	}
	if record, ok := m.record(); ok {
		m.descInput.SetValue(record.Description)
	}
	m.exitDescEdit()
}

// requestDelete opens the confirmation modal for the current record.
func (m *DetailModel) requestDelete() {
	m.menu.hide()

	record, ok := m.record()
	if !ok {
		return
	}

	m.confirm = confirmModel{
		header: m.tr.T(app.KeyDeleteHeader),
		name:   record.DisplayName(),
		yes:    m.tr.T(app.KeyConfirmYes),
		no:     m.tr.T(app.KeyConfirmNo),
	}
	m.showConfirm = true
}

// confirmedDelete closes the modal and deletes the record by id.
func (m *DetailModel) confirmedDelete() tea.Cmd {
	m.showConfirm = false
	if m.id == "" {
		return nil
	}

	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdDelete(m.id, m.confirm.name))
}

// toggleContextMenu flips the options menu. The key that triggers it is not
// passed on to any other handler.
func (m *DetailModel) toggleContextMenu() {
	m.menu.toggle()
}

func (m *DetailModel) goBack() tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: PageList}
	}
}

func (m *DetailModel) copyID() tea.Cmd {
	m.menu.hide()
	if m.id == "" {
		return nil
	}

	id, tr := m.id, m.tr
	return func() tea.Msg {
		if err := clipboardWriteAll(id); err != nil {
			return alertMsg{kind: alertFail, text: failureText(tr, app.KeyCopyFailed, err)}
		}
		return alertMsg{kind: alertSuccess, text: tr.T(app.KeyCopied, id)}
	}
}

func (m *DetailModel) record() (models.Metadata, bool) {
	record, ok := m.shared.Get()
	if !ok || record.ID != m.id {
		return models.Metadata{}, false
	}
	return record, true
}

func (m *DetailModel) exitNameEdit() {
	m.nameEditMode = false
	m.nameInput.Blur()
}

func (m *DetailModel) exitDescEdit() {
	m.descEditMode = false
	m.descInput.Blur()
}

func (m *DetailModel) resetUI() {
	m.exitNameEdit()
	m.exitDescEdit()
	m.menu.hide()
	m.showConfirm = false
	m.tab = tabInformation
}

func (m *DetailModel) cmdFetch(id string) tea.Cmd {
	ctx, svc := m.ctx, m.metadata
	return func() tea.Msg {
		record, err := svc.FetchByID(operationContext(ctx), id)
		return detailLoadedMsg{id: id, record: record, err: err}
	}
}

func (m *DetailModel) cmdUpdate(id string, update models.MetadataUpdate) tea.Cmd {
	ctx, svc := m.ctx, m.metadata
	return func() tea.Msg {
		record, err := svc.Update(operationContext(ctx), id, update)
		return metadataUpdatedMsg{id: id, record: record, err: err}
	}
}

func (m *DetailModel) cmdDelete(id, name string) tea.Cmd {
	ctx, svc := m.ctx, m.metadata
	return func() tea.Msg {
		err := svc.DeleteByID(operationContext(ctx), id)
		return metadataDeletedMsg{id: id, name: name, err: err}
	}
}

// View implements [tea.Model].
func (m *DetailModel) View() string {
	title := m.tr.T(app.KeyDetailTitle)

	if m.loading {
		return renderPage(title, m.spinner.View()+" "+m.tr.T(app.KeyLoading), "esc: back")
	}

	record, ok := m.record()
	if !ok {
		return renderPage(title, "", "esc: back │ ctrl+r: reload")
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabInformation:
		b.WriteString(m.renderInformation(record))
	case tabFields:
		b.WriteString(m.renderFields(record))
	}

	if m.menu.shown {
		b.WriteString("\n\n")
		b.WriteString(m.menu.View(m.tr))
	}
	if m.showConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	return renderPage(title, b.String(), m.hotKeys())
}

func (m *DetailModel) renderTabs() string {
	tabs := []struct {
		tab   detailTab
		label string
	}{
		{tabInformation, m.tr.T(app.KeyTabInformation)},
		{tabFields, m.tr.T(app.KeyTabFields)},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.tab == m.tab {
			parts = append(parts, activeTabStyle.Render(t.label))
			continue
		}
		parts = append(parts, helpStyle.Render(t.label))
	}
	return strings.Join(parts, "   ")
}

func (m *DetailModel) renderInformation(record models.Metadata) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(m.tr.T(app.KeyLabelID)))
	b.WriteString(record.ID)
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(m.tr.T(app.KeyLabelName)))
	if m.nameEditMode {
		b.WriteString(m.nameInput.View())
	} else {
		b.WriteString(valueOrDash(record.Name))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(m.tr.T(app.KeyLabelDesc)))
	switch {
	case m.descEditMode:
		b.WriteString("\n")
		b.WriteString(m.descInput.View())
	case strings.TrimSpace(record.Description) == "":
		b.WriteString(helpStyle.Render(m.tr.T(app.KeyNoDescription)))
	default:
		b.WriteString(record.Description)
	}

	return b.String()
}

func (m *DetailModel) renderFields(record models.Metadata) string {
	fieldKeys := record.FieldKeys()
	if len(fieldKeys) == 0 {
		return helpStyle.Render(m.tr.T(app.KeyNoFields))
	}

	var b strings.Builder
	for i, k := range fieldKeys {
		b.WriteString(labelStyle.Render(fitText(k, 13)))
		b.WriteString(fitText(string(record.Fields[k]), 80))
		if i < len(fieldKeys)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *DetailModel) hotKeys() string {
	switch {
	case m.showConfirm:
		return fmt.Sprintf("%s │ %s", m.confirm.yes, m.confirm.no)
	case m.nameEditMode:
		return "enter: save │ esc: cancel"
	case m.descEditMode:
		return "ctrl+s: save │ esc: cancel"
	case m.menu.shown:
		return "↑/↓: navigate │ enter: select │ esc/m: close"
	}
	return "r: rename │ e: description │ d: delete │ c: copy id │ m: menu │ tab: fields │ esc: back"
}
