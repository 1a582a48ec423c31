package ui

import (
	"strings"

	"github.com/google/uuid"

	"campaign-manager/internal/core/domain"
)

// Form holds the text of the six campaign inputs and the last validation
// error. It is a small state machine: Set edits a field and clears the
// error, Submit validates and either records an error or produces a new
// campaign and resets itself.
type Form struct {
	values map[domain.Field]string
	err    *domain.ValidationError
	newID  func() string
}

// NewForm returns an empty form generating random UUIDs for new campaigns.
func NewForm() *Form {
	return &Form{
		values: make(map[domain.Field]string, len(domain.Fields())),
		newID:  uuid.NewString,
	}
}

// Set replaces the text of field and clears any error message. Unknown
// fields are ignored and reported with false.
func (f *Form) Set(field domain.Field, value string) bool {
	if !field.Valid() {
		return false
	}
	f.values[field] = value
	f.err = nil
	return true
}

// Value returns the current text of field.
func (f *Form) Value(field domain.Field) string {
	return f.values[field]
}

// Err returns the error recorded by the last Submit, if any.
func (f *Form) Err() *domain.ValidationError {
	return f.err
}

// Validate returns an error for the first field, in declared order, whose
// trimmed text is empty.
func (f *Form) Validate() *domain.ValidationError {
	for _, field := range domain.Fields() {
		if strings.TrimSpace(f.values[field]) == "" {
			return &domain.ValidationError{Field: field, Reason: domain.ReasonMissing}
		}
	}
	return nil
}

// Submit validates the form. On failure the error is recorded, returned
// as a *domain.ValidationError and the entered text is kept. On success a
// campaign with a fresh id is returned and the form is cleared.
func (f *Form) Submit() (domain.Campaign, error) {
	if verr := f.Validate(); verr != nil {
		f.err = verr
		return domain.Campaign{}, verr
	}

	clicks, ok := ParseIntPrefix(f.values[domain.FieldClicks])
	if !ok {
		return domain.Campaign{}, f.fail(domain.FieldClicks)
	}
	cost, ok := ParseFloatPrefix(f.values[domain.FieldCost])
	if !ok {
		return domain.Campaign{}, f.fail(domain.FieldCost)
	}
	revenue, ok := ParseFloatPrefix(f.values[domain.FieldRevenue])
	if !ok {
		return domain.Campaign{}, f.fail(domain.FieldRevenue)
	}

	c := domain.Campaign{
		ID:        f.newID(),
		Name:      f.values[domain.FieldName],
		StartDate: f.values[domain.FieldStartDate],
		EndDate:   f.values[domain.FieldEndDate],
		Clicks:    clicks,
		Cost:      cost,
		Revenue:   revenue,
	}
	f.Reset()
	return c, nil
}

// Reset clears every field and the error message.
func (f *Form) Reset() {
	clear(f.values)
	f.err = nil
}

func (f *Form) fail(field domain.Field) *domain.ValidationError {
	f.err = &domain.ValidationError{Field: field, Reason: domain.ReasonNotANumber}
	return f.err
}

// FieldView describes one rendered input.
type FieldView struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
}

// FormView is the render model of the form.
type FormView struct {
	Fields []FieldView
	Error  string
}

// View builds the render model. Inputs keep their declared order.
func (f *Form) View() FormView {
	v := FormView{Fields: make([]FieldView, 0, len(domain.Fields()))}
	for _, field := range domain.Fields() {
		fv := FieldView{
			Name:  string(field),
			Label: field.Label(),
			Type:  "text",
			Value: f.values[field],
		}
		switch {
		case field == domain.FieldStartDate || field == domain.FieldEndDate:
			fv.Type = "date"
		case field.Numeric():
			fv.Type = "number"
			fv.Placeholder = field.Label()
		default:
			fv.Placeholder = field.Label()
		}
		v.Fields = append(v.Fields, fv)
	}
	if f.err != nil {
		v.Error = f.err.Error()
	}
	return v
}
