package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/threecourse/internal/checkout"
)

func (a *App) updateCheckout(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.back()
	case key.Matches(m, a.keys.Confirm):
		return a, a.confirmCmd(a.nav.Top().summary)
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) renderCheckout() string {
	sum := a.nav.Top().summary
	var b strings.Builder
	b.WriteString(titleStyle.Render("Checkout"))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Selected Items"))
	b.WriteString("\n")
	if sum.Empty() {
		b.WriteString(checkout.EmptyMessage)
		b.WriteString("\n")
	}
	for _, l := range sum.Lines(a.cfg.UI.CheckoutItemSymbol) {
		b.WriteString(courseStyle.Render(l.Name))
		b.WriteString("\n  " + mutedStyle.Render(l.Description))
		b.WriteString("\n  " + l.Price)
		b.WriteString("\n")
	}
	b.WriteString(totalStyle.Render(sum.TotalLine(a.cfg.UI.CurrencySymbol)))
	b.WriteString("\n\n")
	b.WriteString(focusedMarkerStyle.Render("▶ ") + buttonStyle.Render("[ Confirm Order ]"))
	return b.String()
}
