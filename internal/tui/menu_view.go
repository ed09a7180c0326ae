package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/threecourse/internal/menu"
)

// target is one stop on the menu screen's focus ring.
type target int

const (
	targetName target = iota
	targetDescription
	targetPrice
	targetAddStarter
	targetAddMain
	targetAddDessert
	targetToggleStarter
	targetToggleMain
	targetToggleDessert
	targetCheckout
	targetHistory
)

func (t target) isInput() bool { return t <= targetPrice }

func (t target) field() menu.Field {
	switch t {
	case targetDescription:
		return menu.FieldDescription
	case targetPrice:
		return menu.FieldPrice
	default:
		return menu.FieldName
	}
}

var (
	addTargets    = map[menu.Course]target{menu.Starter: targetAddStarter, menu.Main: targetAddMain, menu.Dessert: targetAddDessert}
	toggleTargets = map[menu.Course]target{menu.Starter: targetToggleStarter, menu.Main: targetToggleMain, menu.Dessert: targetToggleDessert}
)

func courseFor(t target) (menu.Course, bool) {
	for c, at := range addTargets {
		if at == t {
			return c, true
		}
	}
	for c, tt := range toggleTargets {
		if tt == t {
			return c, true
		}
	}
	return 0, false
}

// targets lists the focus ring. History only exists with a journal.
func (a *App) targets() []target {
	out := []target{
		targetName, targetDescription, targetPrice,
		targetAddStarter, targetAddMain, targetAddDessert,
		targetToggleStarter, targetToggleMain, targetToggleDessert,
		targetCheckout,
	}
	if a.orders.Journaling() {
		out = append(out, targetHistory)
	}
	return out
}

func (a *App) focused() target {
	ts := a.targets()
	if a.focus < 0 || a.focus >= len(ts) {
		return targetName
	}
	return ts[a.focus]
}

func (a *App) moveFocus(delta int) tea.Cmd {
	ts := a.targets()
	if cur := a.focused(); cur.isInput() {
		a.inputs[cur].Blur()
	}
	a.focus = (a.focus + delta + len(ts)) % len(ts)
	if next := a.focused(); next.isInput() {
		return a.inputs[next].Focus()
	}
	return nil
}

func (a *App) focusOn(t target) tea.Cmd {
	for i, candidate := range a.targets() {
		if candidate == t {
			return a.moveFocus(i - a.focus)
		}
	}
	return nil
}

func (a *App) updateMenu(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Next):
		return a, a.moveFocus(1)
	case key.Matches(m, a.keys.Prev):
		return a, a.moveFocus(-1)
	case key.Matches(m, a.keys.Press):
		t := a.focused()
		if t.isInput() {
			return a, a.moveFocus(1)
		}
		return a, a.press(t)
	}
	if a.focused().isInput() {
		return a, a.updateFocusedInput(m)
	}
	if key.Matches(m, a.keys.Quit) {
		return a, tea.Quit
	}
	return a, nil
}

// updateFocusedInput feeds msg to the focused text field and reports the
// field's new text to the menu.
func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	t := a.focused()
	if !t.isInput() {
		return nil
	}
	var cmd tea.Cmd
	a.inputs[t], cmd = a.inputs[t].Update(msg)
	a.menu.UpdateField(t.field(), a.inputs[t].Value())
	return cmd
}

func (a *App) syncInputs() {
	in := a.menu.Input()
	a.inputs[targetName].SetValue(in.Name)
	a.inputs[targetDescription].SetValue(in.Description)
	a.inputs[targetPrice].SetValue(in.Price)
}

func (a *App) press(t target) tea.Cmd {
	switch t {
	case targetAddStarter, targetAddMain, targetAddDessert:
		c, _ := courseFor(t)
		a.commit(c)
	case targetToggleStarter, targetToggleMain, targetToggleDessert:
		c, _ := courseFor(t)
		a.menu.ToggleCourse(c)
		selected := a.menu.CourseSelected(c)
		if selected {
			a.setStatus(c.String() + " added to menu")
		} else {
			a.setStatus(c.String() + " removed from menu")
		}
		a.log.Debug().Stringer("course", c).Bool("selected", selected).Int("selection", len(a.menu.Selected())).Msg("toggle")
	case targetCheckout:
		a.goToCheckout()
	case targetHistory:
		return a.goToHistory()
	}
	return nil
}

func (a *App) commit(c menu.Course) {
	item, err := a.menu.Commit(c)
	if err != nil {
		a.setError(err)
		a.log.Warn().Err(err).Stringer("course", c).Msg("commit rejected")
		return
	}
	a.syncInputs()
	a.setStatus(c.String() + " saved")
	a.log.Info().Stringer("course", c).Str("id", item.ID).Bool("nan_price", math.IsNaN(item.Price)).Msg("commit")
}

func slotLine(item menu.MenuItem, symbol string) string {
	if !item.Added() {
		return "Not added yet"
	}
	return fmt.Sprintf("%s - %s", item.Name, menu.Money(symbol, item.Price))
}

func descriptionLine(item menu.MenuItem) string {
	if item.Description == "" {
		return "No description"
	}
	return item.Description
}

func (a *App) button(t target, label string, selected bool) string {
	style := buttonStyle
	if selected {
		style = selectedButtonStyle
	}
	marker := "  "
	if a.nav.Top().route == routeMenu && a.focused() == t {
		marker = focusedMarkerStyle.Render("▶ ")
	}
	return marker + style.Render("[ "+label+" ]")
}

func (a *App) renderMenu() string {
	sym := a.cfg.UI.CurrencySymbol
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.cfg.UI.Title))
	b.WriteString("\n\n")
	for _, in := range a.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, c := range menu.Courses {
		b.WriteString(a.button(addTargets[c], "Add "+c.String(), false))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Menu"))
	b.WriteString("\n")
	for _, c := range menu.Courses {
		item := a.menu.Slot(c)
		selected := a.menu.CourseSelected(c)
		label := "Add to Menu"
		if selected {
			label = "Remove from Menu"
		}
		b.WriteString(courseStyle.Render(c.String() + ":"))
		b.WriteString("\n  " + slotLine(item, sym))
		b.WriteString("\n  " + mutedStyle.Render(descriptionLine(item)))
		b.WriteString("\n" + a.button(toggleTargets[c], label, selected))
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render("Total: " + menu.Money(sym, a.menu.Total())))
	b.WriteString("\n\n")
	b.WriteString(a.button(targetCheckout, "Go to Checkout", false))
	if a.orders.Journaling() {
		b.WriteString("\n" + a.button(targetHistory, "Order History", false))
	}
	return b.String()
}
