package game

// Phase is the single shared state value driving a round. The table's
// phase tracks the next shared mutation to perform (deal, flop, turn,
// river, score); each player's local phase additionally walks through
// the betting states and gates the readiness barrier.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseTable

	PhaseDeal
	PhaseBetHand
	PhaseFlop
	PhaseBetFlop
	PhaseTurn
	PhaseBetTurn
	PhaseRiver
	PhaseBetRiver

	PhaseFold
	PhaseScore
	PhaseQuit
)

var phaseNames = map[Phase]string{
	PhaseLobby:    "LOBBY",
	PhaseTable:    "TABLE",
	PhaseDeal:     "DEAL",
	PhaseBetHand:  "BET_HAND",
	PhaseFlop:     "FLOP",
	PhaseBetFlop:  "BET_FLOP",
	PhaseTurn:     "TURN",
	PhaseBetTurn:  "BET_TURN",
	PhaseRiver:    "RIVER",
	PhaseBetRiver: "BET_RIVER",
	PhaseFold:     "FOLD",
	PhaseScore:    "SCORE",
	PhaseQuit:     "QUIT",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// betSuccessor maps each betting phase to the phase a calling player
// advances to. PhaseFold is the side exit taken instead on a fold.
var betSuccessor = map[Phase]Phase{
	PhaseBetHand:  PhaseFlop,
	PhaseBetFlop:  PhaseTurn,
	PhaseBetTurn:  PhaseRiver,
	PhaseBetRiver: PhaseScore,
}
