package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rpgo/wealth-planner/internal/domain"
	pkgdec "github.com/rpgo/wealth-planner/pkg/decimal"
)

// goalChoice is an option of the goal type step.
type goalChoice struct {
	Type        domain.GoalType
	Title       string
	Description string
}

var goalChoices = []goalChoice{
	{domain.GoalTypeAsset, "Asset growth", "Reach a target portfolio value"},
	{domain.GoalTypeDividend, "Dividend income", "Reach a target monthly dividend"},
	{domain.GoalTypeHybrid, "Hybrid", "Grow assets and dividends together"},
}

// field is one text input of the personal info or goal setting step.
type field struct {
	label string
	input textinput.Model
}

// Model is the bubbletea front-end of a Wizard.
type Model struct {
	wiz    *Wizard
	keys   KeyMap
	styles styles

	cursor   int
	fields   []field
	focus    int
	err      string
	analysis *Analysis

	confirmed bool
	quitting  bool
}

// NewModel wraps w for an interactive terminal session.
func NewModel(w *Wizard) Model {
	m := Model{wiz: w, keys: DefaultKeyMap(), styles: defaultStyles()}
	m.loadStep()
	return m
}

// Wizard returns the underlying wizard.
func (m Model) Wizard() *Wizard { return m.wiz }

// Confirmed reports whether the user accepted the analysis.
func (m Model) Confirmed() bool { return m.confirmed }

// Analysis returns the last computed analysis, if any.
func (m Model) Analysis() *Analysis { return m.analysis }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Reset):
		m.wiz.Reset()
		m.cursor = 0
		m.loadStep()
		return m, nil
	case key.Matches(keyMsg, m.keys.Back):
		m.err = ""
		if m.wiz.Prev() {
			m.loadStep()
		}
		return m, nil
	}

	switch m.wiz.Step() {
	case StepGoalType:
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(keyMsg, m.keys.Down):
			if m.cursor < len(goalChoices)-1 {
				m.cursor++
			}
		case key.Matches(keyMsg, m.keys.Enter):
			m.wiz.GoalType = goalChoices[m.cursor].Type
			return m.advance()
		}
		return m, nil

	case StepAnalysis:
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Enter):
			m.confirmed = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextField):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(keyMsg, m.keys.PrevField):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(keyMsg, m.keys.Enter):
		if m.focus < len(m.fields)-1 {
			return m, m.setFocus(m.focus + 1)
		}
		if err := m.applyFields(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m.advance()
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.wiz.Next(); err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	m.loadStep()
	if m.wiz.Step() == StepAnalysis {
		a, err := m.wiz.Analyze()
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.analysis = &a
	}
	return m, textinput.Blink
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	if i < 0 {
		i = len(m.fields) - 1
	}
	m.focus = i % len(m.fields)
	for j := range m.fields {
		m.fields[j].input.Blur()
	}
	return m.fields[m.focus].input.Focus()
}

func newField(label, placeholder, value string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 24
	ti.SetValue(value)
	return field{label: label, input: ti}
}

func decimalValue(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func intValue(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}

// loadStep builds the inputs of the current step from the wizard answers.
func (m *Model) loadStep() {
	m.fields = nil
	m.focus = 0
	if m.wiz.Step() != StepAnalysis {
		m.analysis = nil
	}
	switch m.wiz.Step() {
	case StepPersonalInfo:
		p := m.wiz.Personal
		m.fields = []field{
			newField("Age", "35", intValue(p.Age)),
			newField("Monthly income", "5000000", decimalValue(p.MonthlyIncome)),
			newField("Monthly investment", "800000", decimalValue(p.MonthlyInvestment)),
			newField("Experience", strings.Join(ExperienceLevels, "/"), p.Experience),
			newField("Risk tolerance", "conservative/balanced/aggressive", string(p.RiskTolerance)),
		}
	case StepGoalSetting:
		s := m.wiz.Settings
		m.fields = []field{
			newField(targetLabel(m.wiz.GoalType), "500000000", decimalValue(s.TargetAmount)),
			newField("Time horizon (years)", "10", intValue(s.TimeHorizonYears)),
			newField("Expected return (%)", "10", decimalValue(s.ExpectedReturnPercent)),
			newField("Priority", "high/medium/low", string(s.Priority)),
		}
	}
	if len(m.fields) > 0 {
		m.setFocus(0)
	}
}

func targetLabel(t domain.GoalType) string {
	if t == domain.GoalTypeDividend {
		return "Target monthly dividend"
	}
	return "Target amount"
}

func parseAmount(label, s string) (decimal.Decimal, error) {
	d, err := pkgdec.ParseAmount(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", strings.ToLower(label), err)
	}
	return d, nil
}

func parseInt(label, s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", strings.ToLower(label), s)
	}
	return i, nil
}

func (m Model) value(i int) string { return strings.TrimSpace(m.fields[i].input.Value()) }

// applyFields copies the inputs into the wizard.
func (m Model) applyFields() error {
	switch m.wiz.Step() {
	case StepPersonalInfo:
		age, err := parseInt(m.fields[0].label, m.value(0))
		if err != nil {
			return err
		}
		income, err := parseAmount(m.fields[1].label, m.value(1))
		if err != nil {
			return err
		}
		invest, err := parseAmount(m.fields[2].label, m.value(2))
		if err != nil {
			return err
		}
		experience := strings.ToLower(m.value(3))
		if !contains(ExperienceLevels, experience) {
			return fmt.Errorf("experience must be one of %s", strings.Join(ExperienceLevels, ", "))
		}
		risk := domain.RiskProfile(strings.ToLower(m.value(4)))
		if !risk.Valid() {
			return fmt.Errorf("risk tolerance must be conservative, balanced or aggressive")
		}
		m.wiz.Personal = PersonalInfo{Age: age, MonthlyIncome: income, MonthlyInvestment: invest, Experience: experience, RiskTolerance: risk}

	case StepGoalSetting:
		target, err := parseAmount(m.fields[0].label, m.value(0))
		if err != nil {
			return err
		}
		years, err := parseInt(m.fields[1].label, m.value(1))
		if err != nil {
			return err
		}
		ret, err := parseAmount(m.fields[2].label, m.value(2))
		if err != nil {
			return err
		}
		priority := domain.Priority(strings.ToLower(m.value(3)))
		if priority == "" {
			priority = domain.PriorityHigh
		}
		switch priority {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		default:
			return fmt.Errorf("priority must be high, medium or low")
		}
		m.wiz.Settings = GoalSettings{TargetAmount: target, TimeHorizonYears: years, ExpectedReturnPercent: ret, Priority: priority}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Goal Wizard"))
	b.WriteString("\n")
	b.WriteString(m.stepBar())
	b.WriteString("\n\n")

	switch m.wiz.Step() {
	case StepGoalType:
		b.WriteString("What do you want to achieve?\n\n")
		for i, c := range goalChoices {
			line := fmt.Sprintf("%s  %s", c.Title, c.Description)
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render("▶ " + line))
			} else {
				b.WriteString(m.styles.Option.Render("  " + line))
			}
			b.WriteString("\n")
		}
	case StepPersonalInfo, StepGoalSetting:
		for _, f := range m.fields {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render(f.label), f.input.View()))
			b.WriteString("\n")
		}
	case StepAnalysis:
		b.WriteString(m.analysisView())
	}

	if m.err != "" {
		b.WriteString(m.styles.Error.Render("✗ " + m.err))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) stepBar() string {
	parts := make([]string, StepCount)
	for i := 0; i < StepCount; i++ {
		label := fmt.Sprintf("%d %s", i+1, Step(i))
		switch {
		case Step(i) < m.wiz.Step():
			parts[i] = m.styles.StepDone.Render(label)
		case Step(i) == m.wiz.Step():
			parts[i] = m.styles.StepActive.Render(label)
		default:
			parts[i] = m.styles.StepTodo.Render(label)
		}
	}
	return strings.Join(parts, " › ")
}

func (m Model) helpLine() string {
	switch m.wiz.Step() {
	case StepGoalType:
		return "↑/↓ choose • enter next • q quit"
	case StepAnalysis:
		return "enter save goal • esc back • ctrl+r start over • q quit"
	default:
		return "tab next field • enter next • esc back • ctrl+r start over • ctrl+c quit"
	}
}

func (m Model) analysisView() string {
	a := m.analysis
	if a == nil {
		return ""
	}
	var b strings.Builder
	if a.Achievable() {
		b.WriteString(m.styles.Good.Render("✓ The goal is achievable with the current plan"))
	} else {
		b.WriteString(m.styles.Warn.Render("! The goal needs a stronger plan"))
	}
	b.WriteString("\n\n")

	var box strings.Builder
	if r := a.Asset; r != nil {
		fmt.Fprintf(&box, "Projected asset:        %s\n", pkgdec.Format(r.ProjectedAsset))
		fmt.Fprintf(&box, "Achievability:          %s%%\n", r.AchievabilityRate.StringFixed(1))
		if !r.Achievable {
			fmt.Fprintf(&box, "Required monthly:       %s\n", pkgdec.Format(r.RequiredMonthlyContribution))
		}
	}
	if r := a.Dividend; r != nil {
		fmt.Fprintf(&box, "Projected dividend:     %s/month\n", pkgdec.Format(r.ProjectedMonthlyDividend))
		fmt.Fprintf(&box, "Achievability:          %s%%\n", r.AchievabilityRate.StringFixed(1))
		if !r.Achievable {
			fmt.Fprintf(&box, "Additional asset needed: %s\n", pkgdec.Format(r.AdditionalAssetNeeded))
		}
	}
	fmt.Fprintf(&box, "Suggested return:       %s%% (%s%%-%s%%)\n",
		a.ReturnRange.Recommended.String(), a.ReturnRange.Min.String(), a.ReturnRange.Max.String())
	rec := a.Recommendation
	fmt.Fprintf(&box, "For your age (%s):     %s assets, %s/month dividends in %d years",
		rec.AgeGroup, pkgdec.Format(rec.AssetGoal), pkgdec.Format(rec.MonthlyDividendGoal), rec.TimeHorizonYears)
	b.WriteString(m.styles.Box.Render(box.String()))
	b.WriteString("\n")

	for _, s := range a.Strengths {
		b.WriteString(m.styles.Good.Render("+ ") + s + "\n")
	}
	for _, s := range a.Improvements {
		b.WriteString(m.styles.Warn.Render("- ") + s + "\n")
	}
	return b.String()
}
