package ui

import (
	"context"
	"errors"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// Title is the heading of the campaign page.
const Title = "Campaign Manager"

// ErrModalClosed is returned when the form is submitted while the modal is
// not open.
var ErrModalClosed = errors.New("add campaign modal is not open")

// Shell wires the form, the store and the table together and owns the
// visibility of the add-campaign modal. The form only exists while the
// modal is open.
type Shell struct {
	store     port.CampaignUseCase
	table     *Table
	modalOpen bool
	form      *Form
}

// NewShell returns a shell over store with the modal closed.
func NewShell(store port.CampaignUseCase) *Shell {
	return &Shell{store: store, table: NewTable()}
}

// OpenModal shows the modal and mounts a fresh form. Opening an already
// open modal keeps the current form.
func (s *Shell) OpenModal() {
	if s.modalOpen {
		return
	}
	s.modalOpen = true
	s.form = NewForm()
}

// CloseModal hides the modal and discards the form.
func (s *Shell) CloseModal() {
	s.modalOpen = false
	s.form = nil
}

// ModalOpen reports whether the modal is visible.
func (s *Shell) ModalOpen() bool {
	return s.modalOpen
}

// Form returns the mounted form, or nil while the modal is closed.
func (s *Shell) Form() *Form {
	return s.form
}

// Table returns the campaign table.
func (s *Shell) Table() *Table {
	return s.table
}

// Submit submits the mounted form and, when it produces a campaign, hands
// it to OnFormAdd. Validation failures come back as *domain.ValidationError
// with the modal still open.
func (s *Shell) Submit(ctx context.Context) (domain.Campaign, error) {
	if !s.modalOpen || s.form == nil {
		return domain.Campaign{}, ErrModalClosed
	}
	c, err := s.form.Submit()
	if err != nil {
		return domain.Campaign{}, err
	}
	if err = s.OnFormAdd(ctx, c); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// OnFormAdd appends c to the store and closes the modal.
func (s *Shell) OnFormAdd(ctx context.Context, c domain.Campaign) error {
	if err := s.store.Add(ctx, c); err != nil {
		return err
	}
	s.CloseModal()
	return nil
}

// OnTableDelete removes the campaign with the given id from the store.
func (s *Shell) OnTableDelete(ctx context.Context, id string) bool {
	return s.store.Delete(ctx, id)
}

// PageView is the render model of the whole page.
type PageView struct {
	Title     string
	ModalOpen bool
	Form      *FormView
	Table     TableView
}

// View renders the current store contents.
func (s *Shell) View(ctx context.Context) PageView {
	v := PageView{
		Title:     Title,
		ModalOpen: s.modalOpen,
		Table:     s.table.View(s.store.List(ctx)),
	}
	if s.modalOpen && s.form != nil {
		fv := s.form.View()
		v.Form = &fv
	}
	return v
}
