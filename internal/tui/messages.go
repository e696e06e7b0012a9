package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vetward/vetward/models"
)

// NavigateTo switches the root router to another page, optionally
// re-delivering Payload as the first message of the new page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow. Err is nil on success.
type LoginResult struct {
	Err     error
	Session models.Session
}

type casesLoadedMsg struct {
	cases []models.SurgeryCase
	err   error
}

type caseSavedMsg struct {
	err error
}

type caseDeletedMsg struct {
	err error
}

type toggleDoneMsg struct {
	err error
}

type todoDoneMsg struct {
	err error
}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

type queueActionDoneMsg struct {
	err error
}
