package game

import "fmt"

// HumanAgent bridges a seat to an interactive front-end through prompt
// functions. The engine stays free of terminal I/O; prompt errors fall back
// to safe choices rather than aborting the round.
type HumanAgent struct {
	betFunc    func(seat SeatView) (int, error)
	actionFunc func(view TableView, valid []Action) (Action, error)
}

// NewHumanAgent creates a human agent with the given prompt functions
func NewHumanAgent(
	betFunc func(seat SeatView) (int, error),
	actionFunc func(view TableView, valid []Action) (Action, error),
) *HumanAgent {
	return &HumanAgent{betFunc: betFunc, actionFunc: actionFunc}
}

// BetAmount prompts for a wager, falling back to zero on error
func (h *HumanAgent) BetAmount(seat SeatView) int {
	if h.betFunc == nil {
		return 0
	}
	amount, err := h.betFunc(seat)
	if err != nil {
		return 0
	}
	return amount
}

// Decide prompts for an action, falling back to Stand on error
func (h *HumanAgent) Decide(view TableView, valid []Action) Decision {
	if h.actionFunc == nil {
		return Decision{Action: Stand, Reasoning: "no user interface available"}
	}
	action, err := h.actionFunc(view, valid)
	if err != nil {
		return Decision{Action: Stand, Reasoning: fmt.Sprintf("input error: %v", err)}
	}
	return Decision{Action: action, Reasoning: "player choice"}
}
