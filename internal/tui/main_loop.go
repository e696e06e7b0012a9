package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vetward/vetward/internal/service"
	"github.com/vetward/vetward/models"
)

const scheduledLayout = "2006-01-02 15:04"

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	cases   []models.SurgeryCase
	idx     int
	loading bool

	sync    syncModel
	syncing bool
	status  string
	errMsg  string

	detail      bool
	todoIdx     int
	addingTodo  bool
	todoInput   textinput.Model
	pendingView bool
	pendingIdx  int

	confirm confirmModel

	formOpen       bool
	formEdit       bool
	formCaseID     int64
	formInputs     []textinput.Model
	formFocus      int
	formSubmitting bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		sync:     newSyncModel(),
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadCases()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case casesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.cases = msg.cases
		if m.idx >= len(m.cases) {
			m.idx = len(m.cases) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = syncErrorMessage(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Sync finished: %d synced, %d failed", msg.report.Synced, msg.report.Failed)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCases()

	case caseSavedMsg:
		m.formSubmitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.resetForm()
		m.status = "Case saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCases()

	case caseDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete error: %v", msg.err)
			return m, nil
		}
		m.detail = false
		m.status = "Case deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCases()

	case toggleDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("toggle error: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCases()

	case todoDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("to-do error: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCases()

	case queueActionDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("queue error: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		if m.pendingIdx >= m.pendingCount() {
			m.pendingIdx = m.pendingCount() - 1
		}
		if m.pendingIdx < 0 {
			m.pendingIdx = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			return m.updateForm(msg)
		}
		if m.addingTodo {
			return m.updateTodoInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm.kind != confirmNone {
		return m.updateConfirm(keyMsg)
	}

	if m.formOpen {
		return m.updateForm(msg)
	}

	if m.addingTodo {
		return m.updateTodoInput(msg)
	}

	if m.pendingView {
		return m.updatePendingView(keyMsg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.cases)-1 {
			m.idx++
		}
	case "a":
		m.startForm(models.SurgeryCase{}, false)
		return m, textinput.Blink
	case "e":
		c, ok := m.current()
		if !ok {
			m.status = "No cases"
			return m, nil
		}
		m.startForm(c, true)
		return m, textinput.Blink
	case "ctrl+d":
		c, ok := m.current()
		if !ok {
			m.status = "No cases"
			return m, nil
		}
		m.confirm = confirmModel{
			kind:     confirmDeleteCase,
			message:  fmt.Sprintf("Delete case %q?", c.PatientName),
			targetID: c.ID,
		}
		return m, nil
	case "s":
		return m.startSync()
	case "p":
		m.pendingView = true
		m.pendingIdx = 0
		return m, nil
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No cases"
			return m, nil
		}
		m.detail = true
		m.todoIdx = 0
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.detail = false
	case "up", "k":
		if m.todoIdx > 0 {
			m.todoIdx--
		}
	case "down", "j":
		if m.todoIdx < len(c.Todos)-1 {
			m.todoIdx++
		}
	case "1", "2", "3", "4":
		field := models.KnownCaseFields[keyMsg.String()[0]-'1']
		return m, m.cmdToggleField(c.ID, field)
	case " ":
		todo, ok := m.currentTodo(c)
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleTodo(c.ID, todo.ID)
	case "t":
		m.startTodoInput()
		return m, textinput.Blink
	case "ctrl+d":
		todo, ok := m.currentTodo(c)
		if !ok {
			return m, nil
		}
		return m, m.cmdDeleteTodo(c.ID, todo.ID)
	case "e":
		m.startForm(c, true)
		return m, textinput.Blink
	case "s":
		return m.startSync()
	}

	return m, nil
}

func (m mainLoopModel) updatePendingView(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.services.SyncEngine.PendingOperations()

	switch keyMsg.String() {
	case "esc":
		m.pendingView = false
	case "up", "k":
		if m.pendingIdx > 0 {
			m.pendingIdx--
		}
	case "down", "j":
		if m.pendingIdx < len(pending)-1 {
			m.pendingIdx++
		}
	case "s":
		return m.startSync()
	case "r":
		op, ok := m.currentPending(pending)
		if !ok {
			return m, nil
		}
		return m, m.cmdRetryOperation(op.ID)
	case "ctrl+d":
		op, ok := m.currentPending(pending)
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{
			kind:     confirmRemoveOperation,
			message:  fmt.Sprintf("Discard queued change %q? It was never synced.", operationLabel(op)),
			targetID: op.ID,
		}
	case "ctrl+x":
		if len(pending) == 0 {
			return m, nil
		}
		m.confirm = confirmModel{
			kind:    confirmClearQueue,
			message: fmt.Sprintf("Discard all %d queued changes? They were never synced.", len(pending)),
		}
	}

	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		confirm := m.confirm
		m.confirm = confirmModel{}
		switch confirm.kind {
		case confirmDeleteCase:
			m.detail = false
			return m, m.cmdDeleteCase(confirm.targetID)
		case confirmRemoveOperation:
			return m, m.cmdRemoveOperation(confirm.targetID)
		case confirmClearQueue:
			return m, m.cmdClearQueue()
		}
	case "n", "esc":
		m.confirm = confirmModel{}
	}

	return m, nil
}

func (m mainLoopModel) updateTodoInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.addingTodo = false
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.todoInput.Value())
			if text == "" {
				m.errMsg = "to-do text is required"
				return m, nil
			}
			c, okCase := m.current()
			if !okCase {
				m.addingTodo = false
				return m, nil
			}
			m.addingTodo = false
			m.errMsg = ""
			return m, m.cmdAddTodo(c.ID, text)
		}
	}

	var cmd tea.Cmd
	m.todoInput, cmd = m.todoInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			if m.formSubmitting {
				return m, nil
			}

			c, err := m.collectForm()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.formSubmitting = true
			return m, m.cmdSaveCase(c, m.formEdit)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) startSync() (tea.Model, tea.Cmd) {
	if m.syncing {
		return m, nil
	}
	m.syncing = true
	m.status = ""
	m.errMsg = ""
	return m, tea.Batch(m.sync.spinner.Tick, m.cmdSync())
}

func (m *mainLoopModel) startTodoInput() {
	input := textinput.New()
	input.Placeholder = "to-do text"
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	m.todoInput = input
	m.addingTodo = true
	m.errMsg = ""
}

func (m *mainLoopModel) startForm(c models.SurgeryCase, edit bool) {
	mk := func(placeholder, value string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = width
		in.SetValue(value)
		return in
	}

	scheduled := ""
	if c.ScheduledFor != nil {
		scheduled = c.ScheduledFor.Format(scheduledLayout)
	}

	m.formInputs = []textinput.Model{
		mk("patient name", c.PatientName, 40),
		mk("species", c.Species, 40),
		mk("breed", c.Breed, 40),
		mk("owner", c.OwnerName, 40),
		mk("procedure", c.Procedure, 40),
		mk("scheduled (YYYY-MM-DD HH:MM)", scheduled, 40),
		mk("notes", c.Notes, 48),
	}
	m.formInputs[0].Focus()
	m.formFocus = 0
	m.formCaseID = c.ID
	m.formEdit = edit
	m.formOpen = true
	m.formSubmitting = false
	m.errMsg = ""
}

func (m *mainLoopModel) resetForm() {
	m.formOpen = false
	m.formEdit = false
	m.formCaseID = 0
	m.formInputs = nil
	m.formFocus = 0
	m.formSubmitting = false
}

func (m mainLoopModel) collectForm() (models.SurgeryCase, error) {
	patient := strings.TrimSpace(m.formInputs[0].Value())
	species := strings.TrimSpace(m.formInputs[1].Value())
	procedure := strings.TrimSpace(m.formInputs[4].Value())
	if patient == "" || species == "" || procedure == "" {
		return models.SurgeryCase{}, fmt.Errorf("patient, species and procedure are required")
	}

	c := models.SurgeryCase{
		ID:          m.formCaseID,
		PatientName: patient,
		Species:     species,
		Breed:       strings.TrimSpace(m.formInputs[2].Value()),
		OwnerName:   strings.TrimSpace(m.formInputs[3].Value()),
		Procedure:   procedure,
		Notes:       strings.TrimSpace(m.formInputs[6].Value()),
	}

	if raw := strings.TrimSpace(m.formInputs[5].Value()); raw != "" {
		scheduled, err := time.Parse(scheduledLayout, raw)
		if err != nil {
			return models.SurgeryCase{}, fmt.Errorf("scheduled date must look like 2026-03-14 09:30")
		}
		c.ScheduledFor = &scheduled
	}

	return c, nil
}

func (m mainLoopModel) current() (models.SurgeryCase, bool) {
	if len(m.cases) == 0 || m.idx < 0 || m.idx >= len(m.cases) {
		return models.SurgeryCase{}, false
	}
	return m.cases[m.idx], true
}

func (m mainLoopModel) currentTodo(c models.SurgeryCase) (models.TodoItem, bool) {
	if len(c.Todos) == 0 || m.todoIdx < 0 || m.todoIdx >= len(c.Todos) {
		return models.TodoItem{}, false
	}
	return c.Todos[m.todoIdx], true
}

func (m mainLoopModel) currentPending(pending []models.QueuedOperation) (models.QueuedOperation, bool) {
	if len(pending) == 0 || m.pendingIdx < 0 || m.pendingIdx >= len(pending) {
		return models.QueuedOperation{}, false
	}
	return pending[m.pendingIdx], true
}

func (m mainLoopModel) pendingCount() int {
	return m.services.SyncEngine.PendingCount()
}

func (m mainLoopModel) cmdLoadCases() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		cases, err := svc.ListCases(ctx)
		return casesLoadedMsg{cases: cases, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	engine := m.services.SyncEngine

	return func() tea.Msg {
		report, err := engine.SyncAll(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m mainLoopModel) cmdSaveCase(c models.SurgeryCase, edit bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		var err error
		if edit {
			_, err = svc.UpdateCase(ctx, c)
		} else {
			_, err = svc.CreateCase(ctx, c)
		}
		return caseSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteCase(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		return caseDeletedMsg{err: svc.DeleteCase(ctx, id)}
	}
}

func (m mainLoopModel) cmdToggleField(id int64, field models.CaseField) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		return toggleDoneMsg{err: svc.ToggleCaseField(ctx, id, field)}
	}
}

func (m mainLoopModel) cmdAddTodo(caseID int64, text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		_, err := svc.AddTodo(ctx, caseID, text)
		return todoDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdToggleTodo(caseID, todoID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		return todoDoneMsg{err: svc.ToggleTodo(ctx, caseID, todoID)}
	}
}

func (m mainLoopModel) cmdDeleteTodo(caseID, todoID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CaseService

	return func() tea.Msg {
		return todoDoneMsg{err: svc.DeleteTodo(ctx, caseID, todoID)}
	}
}

func (m mainLoopModel) cmdRetryOperation(id int64) tea.Cmd {
	ctx := m.ctx
	engine := m.services.SyncEngine

	return func() tea.Msg {
		return queueActionDoneMsg{err: engine.RetryOperation(ctx, id)}
	}
}

func (m mainLoopModel) cmdRemoveOperation(id int64) tea.Cmd {
	ctx := m.ctx
	engine := m.services.SyncEngine

	return func() tea.Msg {
		return queueActionDoneMsg{err: engine.RemoveOperation(ctx, id)}
	}
}

func (m mainLoopModel) cmdClearQueue() tea.Cmd {
	ctx := m.ctx
	engine := m.services.SyncEngine

	return func() tea.Msg {
		return queueActionDoneMsg{err: engine.ClearAll(ctx)}
	}
}

func (m mainLoopModel) View() string {
	if m.confirm.kind != confirmNone {
		return m.confirm.View()
	}
	if m.formOpen {
		return m.viewForm()
	}
	if m.addingTodo {
		return m.viewTodoInput()
	}
	if m.pendingView {
		return m.viewPending()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m mainLoopModel) statusLine() string {
	line := ""
	if m.services.Monitor.Online() {
		line += "online"
	} else {
		line += offlineStyle.Render("OFFLINE")
	}
	if n := m.pendingCount(); n > 0 {
		line += fmt.Sprintf(" │ %d unsynced", n)
	}
	if m.syncing {
		line += " │ " + m.sync.View()
	}
	return line
}

func (m mainLoopModel) viewList() string {
	out := m.statusLine() + "\n"

	if m.loading {
		out += "Loading cases...\n"
		return renderPage("SURGERY CASES", strings.TrimRight(out, "\n"), "a: add │ s: sync │ p: queue │ enter: open │ e: edit │ ctrl+d: delete │ ↑/↓: nav")
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	if len(m.cases) == 0 {
		out += "\nNo cases\n"
	} else {
		out += "\n"
		out += "     │ Patient              │ Procedure            │ Scheduled        │ \n"
		out += "─────┼──────────────────────┼──────────────────────┼──────────────────┼───\n"
		for i, c := range m.cases {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			scheduled := "-"
			if c.ScheduledFor != nil {
				scheduled = c.ScheduledFor.Format(scheduledLayout)
			}

			marker := " "
			if c.ID < 0 {
				marker = "*" // not yet synced
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-20s │ %-20s │ %-16s │ %s\n",
				cursor,
				i+1,
				fitText(c.PatientName, 20),
				fitText(c.Procedure, 20),
				scheduled,
				marker,
			)
		}
	}

	return renderPage(
		"SURGERY CASES",
		strings.TrimRight(out, "\n"),
		"a: add │ s: sync │ p: queue │ enter: open │ e: edit │ ctrl+d: delete │ l: logout │ ↑/↓: nav",
	)
}

func (m mainLoopModel) viewDetail() string {
	c, ok := m.current()
	if !ok {
		return renderPage("CASE", "Case not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString(m.statusLine() + "\n\n")

	b.WriteString("[ PATIENT ]\n")
	b.WriteString("Name      : " + c.PatientName + "\n")
	b.WriteString("Species   : " + valueOrDash(c.Species) + "\n")
	b.WriteString("Breed     : " + valueOrDash(c.Breed) + "\n")
	b.WriteString("Owner     : " + valueOrDash(c.OwnerName) + "\n\n")

	b.WriteString("[ SURGERY ]\n")
	b.WriteString("Procedure : " + c.Procedure + "\n")
	if c.ScheduledFor != nil {
		b.WriteString("Scheduled : " + c.ScheduledFor.Format(scheduledLayout) + "\n")
	} else {
		b.WriteString("Scheduled : -\n")
	}
	b.WriteString("\n")

	b.WriteString("[ CHECKLIST ]\n")
	b.WriteString("1 " + checkbox(c.ConsentSigned) + " consent signed\n")
	b.WriteString("2 " + checkbox(c.FastingVerified) + " fasting verified\n")
	b.WriteString("3 " + checkbox(c.PreOpExamDone) + " pre-op exam done\n")
	b.WriteString("4 " + checkbox(c.PostOpCheckDone) + " post-op check done\n\n")

	b.WriteString("[ TO-DO ]\n")
	if len(c.Todos) == 0 {
		b.WriteString("(empty)\n")
	} else {
		for i, todo := range c.Todos {
			cursor := " "
			if i == m.todoIdx {
				cursor = ">"
			}
			marker := ""
			if todo.ID < 0 {
				marker = " *"
			}
			b.WriteString(fmt.Sprintf("%s %s %s%s\n", cursor, checkbox(todo.Done), todo.Text, marker))
		}
	}

	if strings.TrimSpace(c.Notes) != "" {
		b.WriteString("\n[ NOTES ]\n")
		b.WriteString(c.Notes + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	title := "CASE: " + c.PatientName
	if c.ID < 0 {
		title += " (not synced)"
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"1-4: toggle flag │ space: toggle to-do │ t: new to-do │ ctrl+d: delete to-do │ e: edit │ s: sync │ esc: back",
	)
}

func (m mainLoopModel) viewPending() string {
	pending := m.services.SyncEngine.PendingOperations()

	var b strings.Builder
	b.WriteString(m.statusLine() + "\n")
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n")
	}
	b.WriteString("\n")

	if len(pending) == 0 {
		b.WriteString("Queue is empty, everything is synced\n")
	} else {
		b.WriteString("     │ Change               │ Status   │ Last error\n")
		b.WriteString("─────┼──────────────────────┼──────────┼─────────────────────────\n")
		for i, op := range pending {
			cursor := " "
			if i == m.pendingIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf(
				"%s %-3d│ %-20s │ %-8s │ %s\n",
				cursor,
				i+1,
				fitText(operationLabel(op), 20),
				op.Status,
				fitText(op.LastError, 25),
			))
		}
	}

	return renderPage(
		"PENDING CHANGES",
		strings.TrimRight(b.String(), "\n"),
		"s: sync all │ r: retry │ ctrl+d: discard │ ctrl+x: discard all │ esc: back │ ↑/↓: nav",
	)
}

func (m mainLoopModel) viewTodoInput() string {
	out := "New to-do : [ " + m.todoInput.View() + " ]\n"
	if m.errMsg != "" {
		out += "\nError: " + m.errMsg + "\n"
	}
	return renderPage("ADD TO-DO", strings.TrimRight(out, "\n"), "enter: save │ esc: cancel")
}

func (m mainLoopModel) viewForm() string {
	labels := []string{
		"Patient   ", "Species   ", "Breed     ", "Owner     ",
		"Procedure ", "Scheduled ", "Notes     ",
	}

	out := ""
	for i, label := range labels {
		out += label + ": [ " + m.formInputs[i].View() + " ]\n"
	}

	if m.formSubmitting {
		out += "\n[Saving...]\n"
	} else {
		out += "\n[Save]\n"
	}
	if m.errMsg != "" {
		out += "\nError: " + m.errMsg + "\n"
	}

	title := "NEW CASE"
	if m.formEdit {
		title = "EDIT CASE"
	}
	return renderPage(title, strings.TrimRight(out, "\n"), "tab: next field │ shift+tab: prev field │ enter: save │ esc: cancel")
}

func operationLabel(op models.QueuedOperation) string {
	switch op.Type {
	case models.OpCreateCase:
		if op.Payload.Case != nil {
			return "create " + op.Payload.Case.PatientName
		}
		return "create case"
	case models.OpUpdateCase:
		if op.Payload.Case != nil {
			return "update " + op.Payload.Case.PatientName
		}
		return "update case"
	case models.OpDeleteCase:
		return fmt.Sprintf("delete case #%d", op.Payload.CaseID)
	case models.OpToggleField:
		return fmt.Sprintf("toggle %s", op.Payload.Field)
	case models.OpAddTodo:
		return "add to-do " + fitText(op.Payload.TodoText, 12)
	case models.OpToggleTodo:
		return "toggle to-do"
	case models.OpDeleteTodo:
		return "delete to-do"
	default:
		return string(op.Type)
	}
}
