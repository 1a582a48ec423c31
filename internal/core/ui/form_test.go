package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/core/domain"
)

func fillForm(f *Form, values map[domain.Field]string) {
	for field, v := range values {
		f.Set(field, v)
	}
}

func springSale() map[domain.Field]string {
	return map[domain.Field]string{
		domain.FieldName:      "Spring Sale",
		domain.FieldStartDate: "2024-03-01",
		domain.FieldEndDate:   "2024-03-31",
		domain.FieldClicks:    "120",
		domain.FieldCost:      "300",
		domain.FieldRevenue:   "450",
	}
}

func TestFormSubmitCreatesCampaign(t *testing.T) {
	f := NewForm()
	f.newID = func() string { return "fixed-id" }
	fillForm(f, springSale())

	c, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, domain.Campaign{
		ID:        "fixed-id",
		Name:      "Spring Sale",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Clicks:    120,
		Cost:      300,
		Revenue:   450,
	}, c)

	for _, field := range domain.Fields() {
		assert.Empty(t, f.Value(field), "field %s must be cleared", field)
	}
	assert.Nil(t, f.Err())
}

func TestFormGeneratesUUIDs(t *testing.T) {
	f := NewForm()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		fillForm(f, springSale())
		c, err := f.Submit()
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		require.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}

// TestFormReportsFirstMissingField checks the declared field order decides
// which missing field is reported.
func TestFormReportsFirstMissingField(t *testing.T) {
	f := NewForm()
	values := springSale()
	values[domain.FieldName] = ""
	values[domain.FieldCost] = "   "
	fillForm(f, values)

	_, err := f.Submit()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.FieldName, verr.Field)
	assert.Equal(t, `Please fill in the "name" field.`, err.Error())
	assert.Equal(t, `Please fill in the "name" field.`, f.View().Error)

	// entered values survive the failed submit
	assert.Equal(t, "2024-03-01", f.Value(domain.FieldStartDate))
	assert.Equal(t, "   ", f.Value(domain.FieldCost))
}

func TestFormEmptySubmit(t *testing.T) {
	f := NewForm()
	_, err := f.Submit()
	require.Error(t, err)
	assert.Equal(t, domain.FieldName, f.Err().Field)
}

func TestFormSetClearsError(t *testing.T) {
	f := NewForm()
	_, err := f.Submit()
	require.Error(t, err)
	require.NotNil(t, f.Err())

	f.Set(domain.FieldName, "x")
	assert.Nil(t, f.Err())
	assert.Empty(t, f.View().Error)
}

func TestFormSetUnknownField(t *testing.T) {
	f := NewForm()
	assert.False(t, f.Set("budget", "10"))
	assert.Empty(t, f.Value("budget"))
}

func TestFormNumericPrefixParsing(t *testing.T) {
	f := NewForm()
	values := springSale()
	values[domain.FieldClicks] = "12.9"
	values[domain.FieldCost] = "10.5 usd"
	fillForm(f, values)

	c, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(12), c.Clicks)
	assert.Equal(t, 10.5, c.Cost)
}

func TestFormRejectsNonNumeric(t *testing.T) {
	f := NewForm()
	values := springSale()
	values[domain.FieldRevenue] = "lots"
	fillForm(f, values)

	_, err := f.Submit()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldRevenue, verr.Field)
	assert.Equal(t, domain.ReasonNotANumber, verr.Reason)
	assert.Equal(t, "lots", f.Value(domain.FieldRevenue))
}

func TestFormNameKeptVerbatim(t *testing.T) {
	f := NewForm()
	values := springSale()
	values[domain.FieldName] = "  padded  "
	fillForm(f, values)

	c, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", c.Name)
}

func TestFormView(t *testing.T) {
	f := NewForm()
	f.Set(domain.FieldClicks, "5")
	v := f.View()

	require.Len(t, v.Fields, 6)
	names := make([]string, 0, len(v.Fields))
	for _, fv := range v.Fields {
		names = append(names, fv.Name)
	}
	assert.Equal(t, []string{"name", "startDate", "endDate", "clicks", "cost", "revenue"}, names)
	assert.Equal(t, "date", v.Fields[1].Type)
	assert.Equal(t, "number", v.Fields[3].Type)
	assert.Equal(t, "5", v.Fields[3].Value)
	assert.Equal(t, "Campaign Name", v.Fields[0].Placeholder)
}
