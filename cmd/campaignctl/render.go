package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"campaign-manager/internal/core/port"
	"campaign-manager/internal/core/ui"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	positiveStyle = cellStyle.Foreground(lipgloss.Color("2"))
	negativeStyle = cellStyle.Foreground(lipgloss.Color("1"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Faint(true)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(10)
)

const (
	sortAscMark  = " ▲"
	sortDescMark = " ▼"
)

// profitColumn is the index of the profit cell in each rendered row.
const profitColumn = 7

// renderTable draws v with lipgloss. The id column replaces the web
// page's delete button so rows can be passed to "campaignctl delete".
func renderTable(v ui.TableView) string {
	if v.Empty {
		return emptyStyle.Render(v.EmptyMessage)
	}

	headers := []string{"ID"}
	for _, c := range v.Columns {
		if c.Label == "Actions" {
			continue
		}
		label := c.Label
		if c.Active {
			if c.Order == ui.SortDesc {
				label += sortDescMark
			} else {
				label += sortAscMark
			}
		}
		headers = append(headers, label)
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{r.ID, r.Name, r.StartDate, r.EndDate, r.Clicks, r.Cost, r.Revenue, r.Profit})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == profitColumn && v.Rows[row].ProfitStyle == ui.ProfitNegative:
				return negativeStyle
			case col == profitColumn:
				return positiveStyle
			}
			return cellStyle
		})
	return t.Render()
}

func renderStats(s port.StatsResp) string {
	profit := lipgloss.NewStyle().Foreground(positiveStyle.GetForeground())
	if ui.StyleForProfit(s.Profit) == ui.ProfitNegative {
		profit = profit.Foreground(negativeStyle.GetForeground())
	}
	lines := []string{
		labelStyle.Render("Campaigns") + strconv.Itoa(s.Campaigns),
		labelStyle.Render("Clicks") + strconv.FormatInt(s.Clicks, 10),
		labelStyle.Render("Cost") + ui.FormatMoney(s.Cost),
		labelStyle.Render("Revenue") + ui.FormatMoney(s.Revenue),
		labelStyle.Render("Profit") + profit.Render(ui.FormatMoney(s.Profit)),
	}
	return strings.Join(lines, "\n")
}
