// Package menu holds the three-course menu state: the course slots, the
// pending input buffer and the selection that feeds checkout.
//
// All transitions are synchronous methods on Menu. Nothing here blocks or
// spawns goroutines; callers own the only copy of the state.
package menu

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidPrice is returned by Commit in strict mode when the pending price
// does not parse to a finite, non-negative number.
var ErrInvalidPrice = errors.New("invalid price")

// Course names one of the three slots.
type Course int

const (
	Starter Course = iota
	Main
	Dessert
)

const courseCount = 3

// Courses lists the slots in display order.
var Courses = []Course{Starter, Main, Dessert}

func (c Course) String() string {
	switch c {
	case Starter:
		return "Starter"
	case Main:
		return "Main Course"
	case Dessert:
		return "Dessert"
	default:
		return fmt.Sprintf("Course(%d)", int(c))
	}
}

func (c Course) valid() bool { return c >= Starter && c <= Dessert }

// Field names one field of the pending input buffer.
type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldPrice
)

// MenuItem is one committed dish. ID is assigned when the item is created and
// is what selection membership compares.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// Added reports whether the slot holding this item has been filled in.
func (i MenuItem) Added() bool { return i.Name != "" }

// Input is the pending, uncommitted form state. Price stays raw text until
// Commit parses it.
type Input struct {
	Name        string
	Description string
	Price       string
}

// Option configures a Menu.
type Option func(*Menu)

// WithSelectionKey chooses how selection membership is decided.
func WithSelectionKey(k SelectionKey) Option {
	return func(m *Menu) { m.keying = k }
}

// WithStrictPrices makes Commit reject prices that are NaN, infinite or
// negative instead of storing them.
func WithStrictPrices(strict bool) Option {
	return func(m *Menu) { m.strict = strict }
}

// WithIDFunc overrides the item ID generator.
func WithIDFunc(fn func() string) Option {
	return func(m *Menu) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// Menu is the single state record behind the menu screen.
type Menu struct {
	slots     [courseCount]MenuItem
	input     Input
	selection []entry
	keying    SelectionKey
	strict    bool
	newID     func() string
}

// New returns a Menu whose three slots hold empty default items.
func New(opts ...Option) *Menu {
	m := &Menu{keying: KeyByIdentity, newID: uuid.NewString}
	for _, opt := range opts {
		opt(m)
	}
	for _, c := range Courses {
		m.slots[c] = MenuItem{ID: m.newID()}
	}
	return m
}

// SelectionKey reports the configured keying mode.
func (m *Menu) SelectionKey() SelectionKey { return m.keying }

// Input returns the pending buffer.
func (m *Menu) Input() Input { return m.input }

// UpdateField replaces one field of the pending buffer.
func (m *Menu) UpdateField(f Field, text string) {
	switch f {
	case FieldName:
		m.input.Name = text
	case FieldDescription:
		m.input.Description = text
	case FieldPrice:
		m.input.Price = text
	}
}

// Slot returns the current item in a course slot.
func (m *Menu) Slot(c Course) MenuItem {
	if !c.valid() {
		return MenuItem{}
	}
	return m.slots[c]
}

// Commit turns the pending buffer into a new item, stores it in the course
// slot and clears the buffer. Unparseable prices become NaN unless strict mode
// is on, in which case the buffer is left untouched and ErrInvalidPrice is
// returned.
func (m *Menu) Commit(c Course) (MenuItem, error) {
	if !c.valid() {
		return MenuItem{}, fmt.Errorf("commit: unknown course %d", int(c))
	}
	price := ParsePrice(m.input.Price)
	if m.strict && (math.IsNaN(price) || math.IsInf(price, 0) || price < 0) {
		return MenuItem{}, fmt.Errorf("%w: %q", ErrInvalidPrice, m.input.Price)
	}
	item := MenuItem{
		ID:          m.newID(),
		Name:        m.input.Name,
		Description: m.input.Description,
		Price:       price,
	}
	m.slots[c] = item
	m.input = Input{}
	return item, nil
}
