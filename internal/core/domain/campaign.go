package domain

// Campaign represents a marketing campaign. The JSON names are the persisted
// slot layout; changing them breaks previously stored data.
type Campaign struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Clicks    int64   `json:"clicks"`
	Cost      float64 `json:"cost"`
	Revenue   float64 `json:"revenue"`
}

// Profit is revenue minus cost. It is derived on demand and never stored.
func (c Campaign) Profit() float64 {
	return c.Revenue - c.Cost
}
