package checkout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/threecourse/internal/menu"
)

func buildMenu(t *testing.T) *menu.Menu {
	t.Helper()
	m := menu.New()
	m.UpdateField(menu.FieldName, "Soup")
	m.UpdateField(menu.FieldDescription, "Hot")
	m.UpdateField(menu.FieldPrice, "5.50")
	_, err := m.Commit(menu.Starter)
	require.NoError(t, err)
	m.ToggleCourse(menu.Starter)

	m.UpdateField(menu.FieldName, "Steak")
	m.UpdateField(menu.FieldPrice, "20")
	_, err = m.Commit(menu.Main)
	require.NoError(t, err)
	m.ToggleCourse(menu.Main)
	return m
}

func TestSummaryFromMenu(t *testing.T) {
	m := buildMenu(t)
	s := New(ParamsFrom(m))

	require.False(t, s.Empty())
	require.Equal(t, []Line{
		{Name: "Soup", Description: "Hot", Price: "R5.50"},
		{Name: "Steak", Description: "", Price: "R20.00"},
	}, s.Lines("R"))
	require.Equal(t, "Total: $25.50", s.TotalLine("$"))
}

func TestSummaryIgnoresLaterMenuEdits(t *testing.T) {
	m := buildMenu(t)
	s := New(ParamsFrom(m))

	m.ToggleCourse(menu.Starter)
	m.UpdateField(menu.FieldName, "Cake")
	m.UpdateField(menu.FieldPrice, "7")
	_, err := m.Commit(menu.Dessert)
	require.NoError(t, err)
	m.ToggleCourse(menu.Dessert)

	require.Len(t, s.Items(), 2)
	require.Equal(t, 25.5, s.Total())
}

func TestSummaryItemsIsACopy(t *testing.T) {
	s := New(Params{SelectedItems: []menu.MenuItem{{ID: "a", Name: "Soup"}}})
	items := s.Items()
	items[0].Name = "changed"
	require.Equal(t, "Soup", s.Items()[0].Name)
}

func TestEmptySummary(t *testing.T) {
	s := New(Params{})
	require.True(t, s.Empty())
	require.Empty(t, s.Lines("R"))
	require.Equal(t, "Total: $0.00", s.TotalLine("$"))
}

func TestNaNTotalIsShownAsIs(t *testing.T) {
	s := New(Params{SelectedItems: []menu.MenuItem{{Name: "Soup", Price: math.NaN()}}, TotalPrice: math.NaN()})
	require.Equal(t, "RNaN", s.Lines("R")[0].Price)
	require.Equal(t, "Total: $NaN", s.TotalLine("$"))
}

func TestConfirmOnlyAcknowledges(t *testing.T) {
	m := buildMenu(t)
	s := New(ParamsFrom(m))
	ack := s.Confirm()
	require.Equal(t, ConfirmationMessage, ack.Message)
	require.Len(t, s.Items(), 2)
	require.Equal(t, 25.5, s.Total())
}
