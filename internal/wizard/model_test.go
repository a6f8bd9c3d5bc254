package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/wealth-planner/internal/domain"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func typed(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// fill types each value into the focused input and presses enter.
func fill(t *testing.T, m Model, values ...string) Model {
	t.Helper()
	for _, v := range values {
		if v != "" {
			m = press(t, m, typed(v))
		}
		m = press(t, m, enter)
	}
	return m
}

func TestModel_FullFlow(t *testing.T) {
	m := NewModel(New(holdings()))
	assert.Contains(t, m.View(), "What do you want to achieve?")

	m = press(t, m, enter)
	require.Equal(t, StepPersonalInfo, m.Wizard().Step())
	assert.Equal(t, domain.GoalTypeAsset, m.Wizard().GoalType)

	m = fill(t, m, "35", "5,000,000", "800000", "intermediate", "balanced")
	require.Equal(t, StepGoalSetting, m.Wizard().Step(), m.err)
	assert.Equal(t, "5000000", m.Wizard().Personal.MonthlyIncome.String())

	// horizon, return and priority keep their defaults
	m = fill(t, m, "500000000", "", "", "")
	require.Equal(t, StepAnalysis, m.Wizard().Step(), m.err)
	require.NotNil(t, m.Analysis())
	assert.Equal(t, "93.4", m.Analysis().Asset.AchievabilityRate.String())
	assert.Contains(t, m.View(), "Projected asset")

	next, cmd := m.Update(enter)
	m = next.(Model)
	assert.True(t, m.Confirmed())
	assert.NotNil(t, cmd)
}

func TestModel_SelectDividendGoal(t *testing.T) {
	m := NewModel(New(holdings()))
	m = press(t, m, down, enter)
	assert.Equal(t, domain.GoalTypeDividend, m.Wizard().GoalType)
}

func TestModel_InvalidInputShowsError(t *testing.T) {
	m := NewModel(New(holdings()))
	m = press(t, m, enter)
	m = fill(t, m, "thirty", "5000000", "800000", "intermediate", "balanced")

	assert.Equal(t, StepPersonalInfo, m.Wizard().Step())
	assert.Contains(t, m.View(), "is not a whole number")
}

func TestModel_BackKeepsAnswers(t *testing.T) {
	m := NewModel(New(holdings()))
	m = press(t, m, enter)
	m = fill(t, m, "35", "5000000", "800000", "beginner", "aggressive")
	require.Equal(t, StepGoalSetting, m.Wizard().Step())

	m = press(t, m, esc)
	require.Equal(t, StepPersonalInfo, m.Wizard().Step())
	assert.Equal(t, "35", m.fields[0].input.Value())
	assert.Equal(t, "aggressive", m.fields[4].input.Value())
}

func TestModel_ResetAndQuit(t *testing.T) {
	m := NewModel(New(holdings()))
	m = press(t, m, down, enter)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, StepGoalType, m.Wizard().Step())
	assert.Equal(t, 0, m.cursor)

	next, cmd := m.Update(typed("q"))
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.False(t, m.Confirmed())
	assert.Equal(t, "", m.View())
}

func TestModel_StepBar(t *testing.T) {
	m := NewModel(New(holdings()))
	bar := m.stepBar()
	for i := 0; i < StepCount; i++ {
		assert.True(t, strings.Contains(bar, Step(i).String()))
	}
}
