package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/threecourse/internal/menu"
)

func (a *App) updateHistory(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.back()
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order History"))
	b.WriteString("\n")
	if len(a.history) == 0 {
		b.WriteString("No confirmed orders yet.")
		return b.String()
	}
	for _, o := range a.history {
		fmt.Fprintf(&b, "\n%s  %d items  Total: %s",
			o.CreatedAt.Local().Format("2006-01-02 15:04"), len(o.Lines), menu.Money(a.cfg.UI.CurrencySymbol, o.Total))
		for _, l := range o.Lines {
			fmt.Fprintf(&b, "\n  %-24s %s", l.Name, menu.Money(a.cfg.UI.CheckoutItemSymbol, l.Price))
		}
	}
	return b.String()
}
