package tui

import (
	"github.com/jask/threecourse/internal/database/repository"
	"github.com/jask/threecourse/internal/service"
)

type confirmedMsg struct {
	receipt service.Receipt
	err     error
}

type historyMsg struct {
	orders []repository.Order
	err    error
}
