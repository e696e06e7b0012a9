package tui

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteCase
	confirmRemoveOperation
	confirmClearQueue
)

type confirmModel struct {
	kind     confirmKind
	message  string
	targetID int64
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
