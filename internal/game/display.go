package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacktable/internal/deck"
)

// DisplayStyles contains styling for table display
type DisplayStyles struct {
	Header    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Total     lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	Cash      lipgloss.Style
	Dim       lipgloss.Style
}

// NewDisplayStyles creates the default style set
func NewDisplayStyles() *DisplayStyles {
	return &DisplayStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 2).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")).
			Bold(true),
		Total: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Cash: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// TableDisplay renders seats, hands and results for console front-ends
type TableDisplay struct {
	styles *DisplayStyles
}

// NewTableDisplay creates a table display
func NewTableDisplay() *TableDisplay {
	return &TableDisplay{styles: NewDisplayStyles()}
}

// RenderCard renders a single card with suit coloring
func (d *TableDisplay) RenderCard(c deck.Card) string {
	if c.Suit.IsRed() {
		return d.styles.CardRed.Render(c.String())
	}
	return d.styles.CardBlack.Render(c.String())
}

// RenderCards renders a card sequence in insertion order
func (d *TableDisplay) RenderCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, d.RenderCard(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// RenderTotals renders a hand total in the "17/7" hard/soft form used at
// the table; sentinels render as words
func (d *TableDisplay) RenderTotals(hard, soft int) string {
	switch hard {
	case BustTotal:
		return d.styles.Loser.Render("bust")
	case BlackjackTotal:
		return d.styles.Winner.Render("blackjack")
	}
	if hard != soft {
		return d.styles.Total.Render(fmt.Sprintf("%d/%d", hard, soft))
	}
	return d.styles.Total.Render(fmt.Sprintf("%d", hard))
}

// RenderSeat renders one seat's cards, totals and balance
func (d *TableDisplay) RenderSeat(view SeatView) string {
	return fmt.Sprintf("%s %s %s %s",
		view.Name,
		d.RenderCards(view.Cards),
		d.RenderTotals(view.HardTotal, view.SoftTotal),
		d.styles.Cash.Render(fmt.Sprintf("$%d", view.Cash)))
}

// RenderHeader renders the round banner
func (d *TableDisplay) RenderHeader(round int, upcard deck.Card) string {
	return d.styles.Header.Render(fmt.Sprintf("ROUND %d", round)) +
		" dealer showing " + d.RenderCard(upcard)
}

// RenderSettlement renders a settled seat's outcome line. Sentinel totals
// render as words, not numbers.
func (d *TableDisplay) RenderSettlement(ev SettlementEvent) string {
	outcome := d.styles.Loser.Render("dealer wins")
	switch {
	case ev.Pot == 0:
		outcome = d.styles.Dim.Render("no wager")
	case ev.PlayerProfit == ev.Pot:
		outcome = d.styles.Winner.Render(fmt.Sprintf("%s wins $%d", ev.Seat, ev.PlayerProfit))
	case ev.PlayerProfit > 0:
		outcome = d.styles.Dim.Render("push")
	}
	return fmt.Sprintf("%s: %s vs dealer %s, %s", ev.Seat,
		d.RenderTotals(ev.SeatTotal, ev.SeatTotal),
		d.RenderTotals(ev.DealerTotal, ev.DealerTotal),
		outcome)
}
