// Package checkout is the read-only projection shown after the menu screen
// hands over its selection.
package checkout

import (
	"slices"

	"github.com/jask/threecourse/internal/menu"
)

// ConfirmationMessage is the acknowledgement shown for every confirmed order.
const ConfirmationMessage = "Order Confirmed"

// EmptyMessage is rendered in place of item lines when nothing was selected.
const EmptyMessage = "No items selected"

// Params is what the menu screen passes when navigating to checkout.
type Params struct {
	SelectedItems []menu.MenuItem
	TotalPrice    float64
}

// ParamsFrom snapshots the menu's current selection and total.
func ParamsFrom(m *menu.Menu) Params {
	return Params{SelectedItems: m.Selected(), TotalPrice: m.Total()}
}

// Summary holds the handed-over params. It never changes after New.
type Summary struct {
	items []menu.MenuItem
	total float64
}

// New copies p so later menu edits cannot reach the summary.
func New(p Params) Summary {
	return Summary{items: slices.Clone(p.SelectedItems), total: p.TotalPrice}
}

func (s Summary) Items() []menu.MenuItem { return slices.Clone(s.items) }
func (s Summary) Total() float64         { return s.total }
func (s Summary) Empty() bool            { return len(s.items) == 0 }

// Line is one rendered item.
type Line struct {
	Name        string
	Description string
	Price       string
}

// Lines renders each item with its price prefixed by itemSymbol.
func (s Summary) Lines(itemSymbol string) []Line {
	out := make([]Line, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, Line{
			Name:        it.Name,
			Description: it.Description,
			Price:       menu.Money(itemSymbol, it.Price),
		})
	}
	return out
}

// TotalLine renders the total as shown under the item list.
func (s Summary) TotalLine(symbol string) string {
	return "Total: " + menu.Money(symbol, s.total)
}

// Acknowledgement is the result of confirming an order.
type Acknowledgement struct {
	Message string
}

// Confirm acknowledges the order. It has no other effect.
func (s Summary) Confirm() Acknowledgement {
	return Acknowledgement{Message: ConfirmationMessage}
}
