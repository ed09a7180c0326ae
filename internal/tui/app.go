package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/jask/threecourse/internal/checkout"
	"github.com/jask/threecourse/internal/config"
	"github.com/jask/threecourse/internal/database/repository"
	"github.com/jask/threecourse/internal/menu"
	"github.com/jask/threecourse/internal/service"
)

const historyLimit = 20

// App ties together the menu, checkout and history screens.
type App struct {
	ctx       context.Context
	cfg       config.Config
	menu      *menu.Menu
	orders    *service.OrderService
	log       zerolog.Logger
	nav       navStack
	inputs    []textinput.Model
	focus     int
	keys      keyMap
	help      help.Model
	width     int
	status    string
	statusErr bool
	alert     string
	history   []repository.Order
}

// Deps are the collaborators App drives.
type Deps struct {
	Menu   *menu.Menu
	Orders *service.OrderService
	Log    zerolog.Logger
}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	if deps.Menu == nil {
		deps.Menu = menu.New()
	}
	if deps.Orders == nil {
		deps.Orders = &service.OrderService{Log: deps.Log}
	}
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		menu:   deps.Menu,
		orders: deps.Orders,
		log:    deps.Log,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	a.nav.Push(navEntry{route: routeMenu})

	labels := []string{"Dish Name", "Description", "Price"}
	a.inputs = make([]textinput.Model, 0, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = fmt.Sprintf("%-12s ", label+":")
		in.Placeholder = label
		if i == 0 {
			in.Focus()
		}
		a.inputs = append(a.inputs, in)
	}
	a.syncInputs()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case confirmedMsg:
		a.alert = m.receipt.Message
		switch {
		case m.err != nil:
			a.setError(m.err)
		case m.receipt.Journaled:
			a.setStatus("order saved to journal")
		default:
			a.setStatus("")
		}
		return a, nil
	case historyMsg:
		if m.err != nil {
			a.setError(fmt.Errorf("load history: %w", m.err))
			return a, nil
		}
		a.history = m.orders
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.alert != "" {
			a.alert = ""
			return a, nil
		}
		switch a.nav.Top().route {
		case routeCheckout:
			return a.updateCheckout(m)
		case routeHistory:
			return a.updateHistory(m)
		default:
			return a.updateMenu(m)
		}
	}
	if a.nav.Top().route == routeMenu {
		return a, a.updateFocusedInput(msg)
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	var keys help.KeyMap
	switch a.nav.Top().route {
	case routeCheckout:
		body, keys = a.renderCheckout(), checkoutKeyMap{a.keys}
	case routeHistory:
		body, keys = a.renderHistory(), historyKeyMap{a.keys}
	default:
		body, keys = a.renderMenu(), menuKeyMap{a.keys}
	}
	if a.alert != "" {
		body += "\n\n" + alertStyle.Render(a.alert+"\n"+mutedStyle.Render("[any key] OK"))
	}
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = statusErrStyle
		}
		body += "\n" + style.Render(a.status)
	}
	body += "\n" + a.help.View(keys)
	return a.fit(body)
}

// navigation

func (a *App) goToCheckout() {
	params := checkout.ParamsFrom(a.menu)
	a.nav.Push(navEntry{route: routeCheckout, summary: checkout.New(params)})
	a.setStatus("")
	a.log.Info().Int("items", len(params.SelectedItems)).Float64("total", params.TotalPrice).Msg("navigate checkout")
}

func (a *App) goToHistory() tea.Cmd {
	a.nav.Push(navEntry{route: routeHistory})
	a.setStatus("")
	return a.loadHistoryCmd()
}

func (a *App) back() {
	a.nav.Pop()
	a.setStatus("")
}

// commands

func (a *App) confirmCmd(sum checkout.Summary) tea.Cmd {
	ctx, orders := a.ctx, a.orders
	return func() tea.Msg {
		receipt, err := orders.Confirm(ctx, sum)
		return confirmedMsg{receipt: receipt, err: err}
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	ctx, orders := a.ctx, a.orders
	return func() tea.Msg {
		list, err := orders.Recent(ctx, historyLimit)
		return historyMsg{orders: list, err: err}
	}
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = "error: " + err.Error()
	a.statusErr = true
}

func (a *App) fit(s string) string {
	if a.width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, a.width, "…")
	}
	return strings.Join(lines, "\n")
}
