package entity

type OutcomeState uint8

const (
	StateInProgress OutcomeState = iota
	StateWin
	StateDraw
)

// Outcome - result of a position. Winner is set only for StateWin.
type Outcome struct {
	State  OutcomeState
	Winner Cell
}

func InProgress() Outcome {
	return Outcome{State: StateInProgress}
}

func Win(mark Cell) Outcome {
	return Outcome{State: StateWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{State: StateDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.State != StateInProgress
}

func (that Outcome) String() string {
	switch that.State {
	case StateWin:
		return that.Winner.String() + " wins"
	case StateDraw:
		return "draw"
	default:
		return "in progress"
	}
}
