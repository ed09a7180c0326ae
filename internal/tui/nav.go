package tui

import "github.com/jask/threecourse/internal/checkout"

type route string

const (
	routeMenu     route = "MainScreen"
	routeCheckout route = "Checkout"
	routeHistory  route = "History"
)

// navEntry is one screen on the stack. summary is only set for checkout.
type navEntry struct {
	route   route
	summary checkout.Summary
}

type navStack struct {
	items []navEntry
}

func (s *navStack) Push(e navEntry) {
	s.items = append(s.items, e)
}

// Pop never removes the root screen.
func (s *navStack) Pop() {
	if len(s.items) <= 1 {
		return
	}
	s.items = s.items[:len(s.items)-1]
}

func (s navStack) Top() navEntry {
	if len(s.items) == 0 {
		return navEntry{route: routeMenu}
	}
	return s.items[len(s.items)-1]
}

func (s navStack) Len() int {
	return len(s.items)
}
