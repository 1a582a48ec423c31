package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/core/domain"
)

func profits(campaigns []domain.Campaign) []float64 {
	out := make([]float64, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.Profit())
	}
	return out
}

func ids(campaigns []domain.Campaign) []string {
	out := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.ID)
	}
	return out
}

func TestSortStateToggle(t *testing.T) {
	s := DefaultSortState()
	assert.Equal(t, SortState{Key: SortByStartDate, Order: SortAsc}, s)

	s = s.Toggle(SortByProfit)
	assert.Equal(t, SortState{Key: SortByProfit, Order: SortAsc}, s)
	s = s.Toggle(SortByProfit)
	assert.Equal(t, SortState{Key: SortByProfit, Order: SortDesc}, s)
	s = s.Toggle(SortByProfit)
	assert.Equal(t, SortState{Key: SortByProfit, Order: SortAsc}, s)

	s = s.Toggle(SortByProfit).Toggle(SortByName)
	assert.Equal(t, SortState{Key: SortByName, Order: SortAsc}, s)
}

// TestTableProfitSortToggle covers profits [-5, 10, 0]: ascending, then a
// repeated click for descending, then another key resets to ascending.
func TestTableProfitSortToggle(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "a", Name: "b", StartDate: "2024-01-03", Cost: 10, Revenue: 5},
		{ID: "b", Name: "c", StartDate: "2024-01-01", Cost: 0, Revenue: 10},
		{ID: "c", Name: "a", StartDate: "2024-01-02", Cost: 7, Revenue: 7},
	}
	table := NewTable()

	table.ToggleSort(SortByProfit)
	assert.Equal(t, []float64{-5, 0, 10}, profits(Sorted(campaigns, table.SortState())))

	table.ToggleSort(SortByProfit)
	assert.Equal(t, []float64{10, 0, -5}, profits(Sorted(campaigns, table.SortState())))

	table.ToggleSort(SortByName)
	assert.Equal(t, SortAsc, table.SortState().Order)
	assert.Equal(t, []string{"c", "a", "b"}, ids(Sorted(campaigns, table.SortState())))
}

func TestSortedDoesNotMutateInput(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "1", StartDate: "2024-05-01"},
		{ID: "2", StartDate: "2024-01-01"},
	}
	sorted := Sorted(campaigns, DefaultSortState())
	assert.Equal(t, []string{"2", "1"}, ids(sorted))
	assert.Equal(t, []string{"1", "2"}, ids(campaigns))
}

func TestSortedNameCaseInsensitive(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "1", Name: "banana"},
		{ID: "2", Name: "Apple"},
		{ID: "3", Name: "cherry"},
	}
	got := Sorted(campaigns, SortState{Key: SortByName, Order: SortAsc})
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))
}

func TestSortedDatesChronological(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "1", EndDate: "2024-12-01"},
		{ID: "2", EndDate: "02/01/2024"},
		{ID: "3", EndDate: "bogus"},
		{ID: "4", EndDate: "2024-06-15"},
	}
	got := Sorted(campaigns, SortState{Key: SortByEndDate, Order: SortAsc})
	assert.Equal(t, []string{"3", "2", "4", "1"}, ids(got))

	got = Sorted(campaigns, SortState{Key: SortByEndDate, Order: SortDesc})
	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(got))
}

func TestSortedStableTies(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "1", Cost: 1, Revenue: 2},
		{ID: "2", Cost: 5, Revenue: 6},
		{ID: "3", Cost: 0, Revenue: 0},
		{ID: "4", Cost: 9, Revenue: 10},
	}
	asc := Sorted(campaigns, SortState{Key: SortByProfit, Order: SortAsc})
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(asc))

	desc := Sorted(campaigns, SortState{Key: SortByProfit, Order: SortDesc})
	assert.Equal(t, []string{"1", "2", "4", "3"}, ids(desc))
}

func TestParseSortState(t *testing.T) {
	assert.Equal(t, SortState{Key: SortByProfit, Order: SortDesc}, ParseSortState("profit", "desc"))
	assert.Equal(t, SortState{Key: SortByName, Order: SortAsc}, ParseSortState("name", "sideways"))
	assert.Equal(t, DefaultSortState(), ParseSortState("clicks", "desc"))
	assert.Equal(t, DefaultSortState(), ParseSortState("", ""))
}

func TestTableViewEmpty(t *testing.T) {
	v := NewTable().View(nil)
	assert.True(t, v.Empty)
	assert.Equal(t, "No campaigns found.", v.EmptyMessage)
	assert.Empty(t, v.Rows)
	assert.Empty(t, v.Columns)
}

func TestTableViewRows(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "loss", Name: "Loss", StartDate: "2024-02-01", EndDate: "2024-02-02", Clicks: 3, Cost: 150, Revenue: 100},
		{ID: "win", Name: "Win", StartDate: "2024-01-01", EndDate: "oops", Clicks: 7, Cost: 100, Revenue: 150},
	}
	v := NewTable().View(campaigns)
	require.False(t, v.Empty)
	require.Len(t, v.Rows, 2)

	win := v.Rows[0]
	assert.Equal(t, "win", win.ID)
	assert.Equal(t, "$50.00", win.Profit)
	assert.Equal(t, ProfitPositive, win.ProfitStyle)
	assert.Equal(t, "Invalid Date", win.EndDate)
	assert.Equal(t, "01/01/2024", win.StartDate)

	loss := v.Rows[1]
	assert.Equal(t, "$-50.00", loss.Profit)
	assert.Equal(t, -50.0, loss.ProfitValue)
	assert.Equal(t, ProfitNegative, loss.ProfitStyle)
	assert.Equal(t, "3", loss.Clicks)
	assert.Equal(t, "$150.00", loss.Cost)
}

func TestTableViewColumns(t *testing.T) {
	table := NewTable()
	table.ToggleSort(SortByProfit)
	v := table.View([]domain.Campaign{{ID: "1"}})

	labels := []string{}
	for _, c := range v.Columns {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"Name", "Start Date", "End Date", "Clicks", "Cost", "Revenue", "Profit", "Actions"}, labels)

	profit := v.Columns[6]
	assert.True(t, profit.Active)
	assert.Equal(t, SortAsc, profit.Order)
	assert.Equal(t, SortState{Key: SortByProfit, Order: SortDesc}, profit.Next)

	name := v.Columns[0]
	assert.False(t, name.Active)
	assert.Equal(t, SortState{Key: SortByName, Order: SortAsc}, name.Next)

	assert.False(t, v.Columns[3].Sortable)
}
