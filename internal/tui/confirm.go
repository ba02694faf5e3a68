package tui

// confirmModel is the delete confirmation modal.
type confirmModel struct {
	header string
	name   string
	yes    string
	no     string
}

func (m confirmModel) View() string {
	content := titleStyle.Render(m.header) + "\n\n"
	content += "\"" + m.name + "\"\n\n"
	content += m.yes + "    " + m.no
	return overlayBoxStyle.Render(content)
}
