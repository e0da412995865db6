package game

// ScriptedAgent plays a fixed sequence of actions with a fixed bet, for
// deterministic tests. Once the script is exhausted it stands.
type ScriptedAgent struct {
	Bet     int
	Actions []Action
	next    int
}

// NewScriptedAgent creates an agent that bets bet each round and plays the
// given actions in order
func NewScriptedAgent(bet int, actions ...Action) *ScriptedAgent {
	return &ScriptedAgent{Bet: bet, Actions: actions}
}

func (a *ScriptedAgent) BetAmount(seat SeatView) int {
	return a.Bet
}

func (a *ScriptedAgent) Decide(view TableView, valid []Action) Decision {
	if a.next >= len(a.Actions) {
		return Decision{Action: Stand, Reasoning: "script exhausted"}
	}
	action := a.Actions[a.next]
	a.next++
	return Decision{Action: action, Reasoning: "scripted"}
}

// standAgent always stands and bets a flat amount; useful when the test
// only cares about settlement
type standAgent struct{ bet int }

func (a standAgent) BetAmount(seat SeatView) int { return a.bet }
func (a standAgent) Decide(view TableView, valid []Action) Decision {
	return Decision{Action: Stand, Reasoning: "always stand"}
}
