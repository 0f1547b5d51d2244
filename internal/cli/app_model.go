package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/flow"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// planResultMsg carries the outcome of a RequestPlan call.
type planResultMsg struct {
	plan *domain.Plan
	err  error
}

// keySavedMsg reports the outcome of persisting a key from the modal.
type keySavedMsg struct {
	err error
}

// appModel is the root bubbletea Model for the TUI. Screens follow the
// flow.Machine; the key modal can be layered over welcome and input.
type appModel struct {
	app     *App
	ctx     context.Context
	machine *flow.Machine

	width  int
	height int

	// Welcome: highlighted stage.
	cursor int

	// Input: the profile form and the values it writes into.
	fields *profileFields
	form   *huh.Form

	// Key modal, open while keyForm is non-nil.
	keyValue *string
	keyForm  *huh.Form

	// One-line status shown under the header, e.g. "API key saved."
	notice string

	spinner spinner.Model
	results viewport.Model

	quitting bool
}

func newAppModel(ctx context.Context, app *App) appModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		app:     app,
		ctx:     ctx,
		machine: flow.NewMachine(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(formatter.StylePurple),
		),
		results: vp,
	}
}

// runTUI runs the interface until the user quits. Cancelling ctx aborts
// an in-flight request.
func runTUI(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(ctx, app),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return err
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tea.SetWindowTitle("pathwise")
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = msg.Width
		m.results.Height = m.contentHeight()
		if res, ok := m.machine.State().(flow.Results); ok {
			m.results.SetContent(m.renderPlan(res))
		}
		return m.forwardToForms(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.machine.Phase() == flow.PhaseResults {
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if m.machine.Phase() != flow.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case planResultMsg:
		return m.handlePlanResult(msg)

	case keySavedMsg:
		if msg.err != nil {
			m.notice = formatter.ErrorBanner("Could not save API key: " + msg.err.Error())
			return m, nil
		}
		m.notice = formatter.StyleGreen.Render("✔ API key saved.")
		return m, nil
	}

	return m.forwardToForms(msg)
}

// forwardToForms routes non-key messages (field navigation, blink, resize)
// to the modal if open, else to the profile form.
func (m appModel) forwardToForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.keyForm != nil {
		return m.updateKeyForm(msg)
	}
	if m.form != nil && m.machine.Phase() == flow.PhaseInput {
		return m.updateProfileForm(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyForm != nil {
		if msg.Type == tea.KeyEsc {
			m.keyForm = nil
			m.keyValue = nil
			return m, nil
		}
		return m.updateKeyForm(msg)
	}

	switch m.machine.Phase() {
	case flow.PhaseWelcome:
		return m.handleWelcomeKey(msg)
	case flow.PhaseInput:
		if msg.Type == tea.KeyEsc {
			if err := m.machine.Back(); err != nil {
				return m, nil
			}
			m.form = nil
			m.fields = nil
			return m, nil
		}
		return m.updateProfileForm(msg)
	case flow.PhaseResults:
		switch msg.String() {
		case "r":
			if err := m.machine.Reset(); err != nil {
				return m, nil
			}
			m.cursor = 0
			m.notice = ""
			m.results.SetContent("")
			return m, nil
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	// Loading accepts nothing but ctrl+c.
	return m, nil
}

func (m appModel) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "left", "shift+tab":
		m.cursor = (m.cursor + len(domain.Stages) - 1) % len(domain.Stages)
	case "down", "right", "tab":
		m.cursor = (m.cursor + 1) % len(domain.Stages)
	case "1", "2":
		m.cursor = int(msg.Runes[0] - '1')
		return m.selectStage(domain.Stages[m.cursor])
	case "enter":
		return m.selectStage(domain.Stages[m.cursor])
	case "k":
		return m.openKeyModal()
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) selectStage(stage domain.Stage) (tea.Model, tea.Cmd) {
	if err := m.machine.SelectStage(stage); err != nil {
		return m, nil
	}
	m.notice = ""
	return m, m.buildProfileForm()
}

// buildProfileForm creates the form for the current Input state, pre-filled
// from its draft, and returns its Init command.
func (m *appModel) buildProfileForm() tea.Cmd {
	in, ok := m.machine.State().(flow.Input)
	if !ok {
		return nil
	}
	m.fields = fieldsFromProfile(in.Draft)
	m.form = profileForm(in.Stage, m.fields)
	if m.width > 0 {
		m.form = m.form.WithWidth(min(m.width, 80))
	}
	return m.form.Init()
}

func (m appModel) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m.submitProfile()
	}
	return m, cmd
}

func (m appModel) submitProfile() (tea.Model, tea.Cmd) {
	in, ok := m.machine.State().(flow.Input)
	if !ok {
		return m, nil
	}
	profile, err := m.fields.profile(in.Stage)
	if err != nil {
		m.notice = formatter.ErrorBanner(err.Error())
		return m, m.buildProfileForm()
	}
	if err := m.machine.Submit(profile); err != nil {
		return m, nil
	}
	m.form = nil
	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, requestPlanCmd(m.ctx, m.app.Planner, profile))
}

func requestPlanCmd(ctx context.Context, svc planner.PlanService, p domain.Profile) tea.Cmd {
	return func() tea.Msg {
		plan, err := svc.RequestPlan(ctx, p)
		return planResultMsg{plan: plan, err: err}
	}
}

func (m appModel) handlePlanResult(msg planResultMsg) (tea.Model, tea.Cmd) {
	if m.machine.Phase() != flow.PhaseLoading {
		return m, nil
	}

	if msg.err != nil {
		if err := m.machine.Fail(msg.err); err != nil {
			return m, nil
		}
		cmd := m.buildProfileForm()
		if planner.NeedsCredential(msg.err) {
			next, keyCmd := m.openKeyModal()
			return next, tea.Batch(cmd, keyCmd)
		}
		return m, cmd
	}

	if err := m.machine.Succeed(*msg.plan); err != nil {
		return m, nil
	}
	res := m.machine.State().(flow.Results)
	m.results.Width = m.width
	m.results.Height = m.contentHeight()
	m.results.SetContent(m.renderPlan(res))
	m.results.GotoTop()
	return m, nil
}

func (m appModel) openKeyModal() (tea.Model, tea.Cmd) {
	m.keyValue = new(string)
	m.keyForm = keyForm(m.keyValue)
	if m.width > 0 {
		m.keyForm = m.keyForm.WithWidth(min(m.width, 70))
	}
	return m, m.keyForm.Init()
}

func (m appModel) updateKeyForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.keyForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.keyForm = f
	}
	if m.keyForm.State == huh.StateCompleted {
		raw := *m.keyValue
		m.keyForm = nil
		m.keyValue = nil
		return m, saveKeyCmd(m.ctx, m.app, raw)
	}
	return m, cmd
}

func saveKeyCmd(ctx context.Context, app *App, raw string) tea.Cmd {
	return func() tea.Msg {
		return keySavedMsg{err: app.Keeper.Save(ctx, raw)}
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if m.notice != "" {
		sections = append(sections, m.notice)
	}

	if m.keyForm != nil {
		sections = append(sections, formatter.RenderBox("Update API Key", m.keyForm.View()))
	} else {
		sections = append(sections, m.renderContent())
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m appModel) renderContent() string {
	switch s := m.machine.State().(type) {
	case flow.Welcome:
		return formatter.FormatWelcome(m.cursor)
	case flow.Input:
		var b strings.Builder
		if s.Failed() {
			b.WriteString(formatter.ErrorBanner(s.Err))
			b.WriteString("\n\n")
		}
		if m.form != nil {
			b.WriteString(m.form.View())
		}
		return b.String()
	case flow.Loading:
		return formatter.FormatLoading(s.Profile.Name, m.spinner.View())
	case flow.Results:
		return m.results.View()
	}
	return ""
}

func (m appModel) renderPlan(res flow.Results) string {
	w := m.width
	if w <= 0 {
		w = planWidth
	}
	return formatter.FormatPlan(res.Profile, res.Plan, w-2, true)
}

func (m appModel) renderHeader() string {
	title := formatter.StylePurple.Render("pathwise")

	var crumb string
	switch s := m.machine.State().(type) {
	case flow.Input:
		crumb = formatter.StageBadge(s.Stage)
	case flow.Loading:
		crumb = formatter.Dim(s.Profile.Name)
	case flow.Results:
		crumb = formatter.Dim(s.Profile.Name + " › roadmap")
	}
	if crumb != "" {
		title += " " + formatter.Dim("›") + " " + crumb
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + "\n" + sep
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.shortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if m.machine.Phase() == flow.PhaseResults && m.results.TotalLineCount() > m.results.Height {
		hints = append([]string{scrollIndicator(m.results)}, hints...)
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func (m appModel) shortHelp() []key.Binding {
	if m.keyForm != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	switch m.machine.Phase() {
	case flow.PhaseWelcome:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
			key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "update API key")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	case flow.PhaseInput:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
			key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		}
	case flow.PhaseLoading:
		return []key.Binding{
			key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		}
	case flow.PhaseResults:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑↓ pgup/pgdn", "scroll")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		}
	}
	return nil
}

// contentHeight is the space between the header (title + separator) and
// the status bar (separator + hints).
func (m appModel) contentHeight() int {
	return max(m.height-4, 1)
}

// outputViewportKeyMap returns a restricted keymap for the results viewport.
// Only arrow/page keys scroll; letter keys stay free for shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// scrollIndicator returns a compact position label such as [TOP], [42%] or [END].
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}
