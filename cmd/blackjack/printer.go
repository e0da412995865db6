package main

import (
	"github.com/pterm/pterm"

	"github.com/lox/blackjacktable/internal/game"
)

// consolePrinter subscribes to round events and renders them for the
// interactive table
type consolePrinter struct {
	display *game.TableDisplay
	round   int
}

func newConsolePrinter() *consolePrinter {
	return &consolePrinter{display: game.NewTableDisplay()}
}

func (p *consolePrinter) HandleGameEvent(event game.GameEvent) {
	switch ev := event.(type) {
	case game.RoundStartEvent:
		pterm.Println(p.display.RenderHeader(p.round, ev.DealerUpcard))

	case game.PlayerActionEvent:
		switch {
		case ev.Busted:
			pterm.Printfln("%s %s and busts", ev.Seat, ev.Action)
		case ev.Action == game.Split:
			pterm.Printfln("%s splits the pair", ev.Seat)
		default:
			pterm.Printfln("%s %ss (%s)", ev.Seat, ev.Action,
				p.display.RenderTotals(ev.HardTotal, ev.SoftTotal))
		}

	case game.DealerActionEvent:
		if ev.Busted {
			pterm.Printfln("dealer %s busts", p.display.RenderCards(ev.Cards))
			return
		}
		pterm.Printfln("dealer %s %ss (%s)", p.display.RenderCards(ev.Cards), ev.Action,
			p.display.RenderTotals(ev.HardTotal, ev.SoftTotal))

	case game.SettlementEvent:
		pterm.Println(p.display.RenderSettlement(ev))

	case game.RoundEndEvent:
		if ev.Reshuffled {
			pterm.Info.Printfln("scrap recycled, shoe reshuffled to %d cards", ev.ShoeCards)
		}
	}
}
