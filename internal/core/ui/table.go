package ui

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"campaign-manager/internal/core/domain"
)

// SortKey selects the column the table is ordered by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByStartDate SortKey = "startDate"
	SortByEndDate   SortKey = "endDate"
	SortByProfit    SortKey = "profit"
)

// ParseSortKey validates a sort key coming from user input.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortByName, SortByStartDate, SortByEndDate, SortByProfit:
		return k, true
	}
	return "", false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortState is the table's UI-local ordering.
type SortState struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSortState orders by start date, ascending.
func DefaultSortState() SortState {
	return SortState{Key: SortByStartDate, Order: SortAsc}
}

// ParseSortState builds a state from raw query values. An unknown key
// falls back to the default state; an unknown order falls back to asc.
func ParseSortState(key, order string) SortState {
	k, ok := ParseSortKey(key)
	if !ok {
		return DefaultSortState()
	}
	o := SortAsc
	if SortOrder(order) == SortDesc {
		o = SortDesc
	}
	return SortState{Key: k, Order: o}
}

// Toggle returns the state after clicking the header of key: the same key
// flips the direction, a different key starts ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if key == s.Key {
		if s.Order == SortAsc {
			return SortState{Key: key, Order: SortDesc}
		}
		return SortState{Key: key, Order: SortAsc}
	}
	return SortState{Key: key, Order: SortAsc}
}

// Sorted returns a sorted copy of campaigns; the input is left untouched.
// Equal elements keep their input order in both directions.
func Sorted(campaigns []domain.Campaign, state SortState) []domain.Campaign {
	out := slices.Clone(campaigns)
	compare := comparator(state.Key)
	slices.SortStableFunc(out, func(a, b domain.Campaign) int {
		if state.Order == SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func comparator(key SortKey) func(a, b domain.Campaign) int {
	switch key {
	case SortByName:
		return func(a, b domain.Campaign) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortByEndDate:
		return func(a, b domain.Campaign) int { return compareDates(a.EndDate, b.EndDate) }
	case SortByProfit:
		return func(a, b domain.Campaign) int { return cmp.Compare(a.Profit(), b.Profit()) }
	default:
		return func(a, b domain.Campaign) int { return compareDates(a.StartDate, b.StartDate) }
	}
}

// compareDates orders chronologically; unparseable dates come first.
func compareDates(a, b string) int {
	ta, okA := domain.ParseDate(a)
	tb, okB := domain.ParseDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return ta.Compare(tb)
}

// Table keeps the sort state of the campaign table and renders rows.
type Table struct {
	sort SortState
}

// NewTable returns a table in the default sort state.
func NewTable() *Table {
	return &Table{sort: DefaultSortState()}
}

// SortState returns the current ordering.
func (t *Table) SortState() SortState {
	return t.sort
}

// SetSortState replaces the current ordering.
func (t *Table) SetSortState(s SortState) {
	t.sort = s
}

// ToggleSort applies a header click on key.
func (t *Table) ToggleSort(key SortKey) {
	t.sort = t.sort.Toggle(key)
}

// EmptyMessage is rendered instead of a table when there are no campaigns.
const EmptyMessage = "No campaigns found."

// Column is one table header. Sortable columns carry the state a click on
// them leads to.
type Column struct {
	Label    string
	Key      SortKey
	Sortable bool
	Active   bool
	Order    SortOrder
	Next     SortState
}

// Row is one rendered campaign with display-ready values.
type Row struct {
	ID          string
	Name        string
	StartDate   string
	EndDate     string
	Clicks      string
	Cost        string
	Revenue     string
	Profit      string
	ProfitValue float64
	ProfitStyle ProfitStyle
}

// TableView is the render model of the table.
type TableView struct {
	Empty        bool
	EmptyMessage string
	Sort         SortState
	Columns      []Column
	Rows         []Row
}

// View renders campaigns in the current sort order. Profit is computed
// for every row.
func (t *Table) View(campaigns []domain.Campaign) TableView {
	v := TableView{Sort: t.sort}
	if len(campaigns) == 0 {
		v.Empty = true
		v.EmptyMessage = EmptyMessage
		return v
	}

	v.Columns = []Column{
		t.column("Name", SortByName),
		t.column("Start Date", SortByStartDate),
		t.column("End Date", SortByEndDate),
		{Label: "Clicks"},
		{Label: "Cost"},
		{Label: "Revenue"},
		t.column("Profit", SortByProfit),
		{Label: "Actions"},
	}

	sorted := Sorted(campaigns, t.sort)
	v.Rows = make([]Row, 0, len(sorted))
	for _, c := range sorted {
		profit := c.Profit()
		v.Rows = append(v.Rows, Row{
			ID:          c.ID,
			Name:        c.Name,
			StartDate:   FormatDate(c.StartDate),
			EndDate:     FormatDate(c.EndDate),
			Clicks:      strconv.FormatInt(c.Clicks, 10),
			Cost:        FormatMoney(c.Cost),
			Revenue:     FormatMoney(c.Revenue),
			Profit:      FormatMoney(profit),
			ProfitValue: profit,
			ProfitStyle: StyleForProfit(profit),
		})
	}
	return v
}

func (t *Table) column(label string, key SortKey) Column {
	c := Column{Label: label, Key: key, Sortable: true, Next: t.sort.Toggle(key)}
	if t.sort.Key == key {
		c.Active = true
		c.Order = t.sort.Order
	}
	return c
}
