package game

import (
	"context"
	"sync"
	"time"

	"github.com/pbui/pokerd/logging"
	"github.com/pbui/pokerd/poker"
)

var tableLogger = logging.GetZeroLogger("game::table", nil)

// Table is the shared state every player actor operates on: the current
// phase, the seating roster, the community cards, and the deck. A
// single mutex guards every read-modify-write; the changed channel is
// closed and replaced on each mutation so that waiting actors recheck
// their barrier predicates without polling shared state on a timer.
//
// A round walks the phase through DEAL -> FLOP -> TURN -> RIVER ->
// SCORE, performing each shared mutation exactly once: the first actor
// to reach a deal method while the table is in the matching phase
// performs it, everyone else finds the phase already advanced.
type Table struct {
	mu        sync.Mutex
	phase     Phase
	players   []*PlayerActor
	community []poker.Card
	deck      *poker.Deck
	changed   chan struct{}
	round     uint64

	minPlayers int
	waitTick   time.Duration
}

// NewTable seats an empty lobby with a freshly shuffled deck.
func NewTable(config Config) *Table {
	return &Table{
		phase:      PhaseLobby,
		deck:       poker.NewDeck(nil),
		changed:    make(chan struct{}),
		minPlayers: config.MinPlayers,
		waitTick:   config.WaitTick(),
	}
}

// broadcastLocked wakes every actor waiting on table state. Callers
// must hold t.mu.
func (t *Table) broadcastLocked() {
	close(t.changed)
	t.changed = make(chan struct{})
}

// AddPlayer seats a player and reports whether seating succeeded. A
// player cannot join once a round has started, even if its own lobby
// gate passed a moment earlier; the caller sends it back to the lobby
// for the next round. While the roster is below the minimum the table
// stays in the waiting phase; the moment it reaches the minimum every
// seated player's hand is cleared, the deck is reshuffled, and a new
// round starts.
func (t *Table) AddPlayer(player *PlayerActor) bool {
	t.mu.Lock()
	if t.phase != PhaseLobby && t.phase != PhaseTable {
		t.mu.Unlock()
		return false
	}
	seated := false
	for _, p := range t.players {
		if p == player {
			seated = true
			break
		}
	}
	if !seated {
		t.players = append(t.players, player)
	}
	count := len(t.players)
	if count < t.minPlayers {
		t.phase = PhaseTable
	} else {
		t.phase = PhaseDeal
		t.round++
		for _, p := range t.players {
			p.hand = nil
			p.round = t.round
		}
		t.deck.Shuffle()
	}
	phase := t.phase
	t.broadcastLocked()
	t.mu.Unlock()

	tableLogger.Info().Int(logging.PlayersKey, count).Str(logging.PhaseKey, phase.String()).Msg("Player seated")
	return true
}

// RemovePlayer drops a player from the roster, whether by fold or by
// disconnection. If the roster empties, the table resets to the lobby.
// The broadcast unwedges any actor whose barrier was waiting on the
// removed player.
func (t *Table) RemovePlayer(player *PlayerActor) {
	t.mu.Lock()
	for i, p := range t.players {
		if p == player {
			t.players = append(t.players[:i], t.players[i+1:]...)
			break
		}
	}
	count := len(t.players)
	if count == 0 {
		t.resetLocked()
	}
	t.broadcastLocked()
	t.mu.Unlock()

	tableLogger.Info().Int(logging.PlayersKey, count).Msg("Player removed")
}

// DealHands deals two cards to each seated player, interleaved one at
// a time, then advances the table to the flop.
func (t *Table) DealHands() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhaseDeal {
		return nil
	}
	t.phase = PhaseFlop
	for i := 0; i < 2; i++ {
		for _, p := range t.players {
			card, err := t.deck.Deal()
			if err != nil {
				return err
			}
			p.hand = append(p.hand, card)
		}
	}
	t.broadcastLocked()
	return nil
}

// DealFlop burns one card, then reveals three community cards.
func (t *Table) DealFlop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhaseFlop {
		return nil
	}
	t.phase = PhaseTurn
	if _, err := t.deck.Deal(); err != nil { // burn
		return err
	}
	t.community = make([]poker.Card, 0, 5)
	for i := 0; i < 3; i++ {
		card, err := t.deck.Deal()
		if err != nil {
			return err
		}
		t.community = append(t.community, card)
	}
	t.broadcastLocked()
	return nil
}

// DealTurn burns one card, then reveals the fourth community card.
func (t *Table) DealTurn() error {
	return t.dealOne(PhaseTurn, PhaseRiver)
}

// DealRiver burns one card, then reveals the fifth community card.
func (t *Table) DealRiver() error {
	return t.dealOne(PhaseRiver, PhaseScore)
}

func (t *Table) dealOne(from Phase, to Phase) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != from {
		return nil
	}
	t.phase = to
	if _, err := t.deck.Deal(); err != nil { // burn
		return err
	}
	card, err := t.deck.Deal()
	if err != nil {
		return err
	}
	t.community = append(t.community, card)
	t.broadcastLocked()
	return nil
}

// FinishRound returns the table to the lobby after the given round,
// clearing the roster and the community cards. Wins counters live on
// the actors and survive; everyone re-seats through the lobby. The
// round argument makes the reset idempotent: a straggler finishing an
// old round cannot wipe a round that already started after the reset.
func (t *Table) FinishRound(round uint64) {
	t.mu.Lock()
	if t.round == round && t.phase != PhaseLobby && t.phase != PhaseTable {
		t.resetLocked()
		t.broadcastLocked()
	}
	t.mu.Unlock()
}

func (t *Table) resetLocked() {
	if t.phase == PhaseLobby {
		return
	}
	t.phase = PhaseLobby
	t.players = nil
	t.community = nil
}

// Phase returns the table's current phase.
func (t *Table) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// ActivePlayers returns the number of seated players that have neither
// folded nor disconnected this round.
func (t *Table) ActivePlayers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.players)
}

// allReachedLocked is the readiness barrier predicate: every seated
// player's local phase equals the given phase. Callers must hold t.mu.
func (t *Table) allReachedLocked(phase Phase) bool {
	for _, p := range t.players {
		if p.localPhase != phase {
			return false
		}
	}
	return true
}

// waitUntil blocks until the predicate holds. The predicate is always
// evaluated with the table lock held and re-evaluated after every
// broadcast; the lock is never held while suspended.
func (t *Table) waitUntil(ctx context.Context, pred func() bool) error {
	for {
		t.mu.Lock()
		ok := pred()
		changed := t.changed
		t.mu.Unlock()
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

// PlayerScore pairs a seated player's showdown facts for display.
type PlayerScore struct {
	Name  string
	Cards []poker.Card
	Score int
}

// Showdown snapshots the community cards and every remaining player's
// hand and score in seating order.
func (t *Table) Showdown() ([]poker.Card, []PlayerScore) {
	t.mu.Lock()
	defer t.mu.Unlock()
	community := make([]poker.Card, len(t.community))
	copy(community, t.community)
	scores := make([]PlayerScore, 0, len(t.players))
	for _, p := range t.players {
		cards := make([]poker.Card, len(p.hand))
		copy(cards, p.hand)
		scores = append(scores, PlayerScore{
			Name:  p.name,
			Cards: cards,
			Score: poker.Score(p.hand, t.community),
		})
	}
	return community, scores
}

// Community returns a copy of the revealed community cards.
func (t *Table) Community() []poker.Card {
	t.mu.Lock()
	defer t.mu.Unlock()
	community := make([]poker.Card, len(t.community))
	copy(community, t.community)
	return community
}

// Status is a read-only snapshot for the admin surface.
type Status struct {
	Phase          string `json:"phase"`
	Players        int    `json:"players"`
	CommunityCards int    `json:"communityCards"`
	CardsRemaining int    `json:"cardsRemaining"`
}

// Status reports the table's current shape.
func (t *Table) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{
		Phase:          t.phase.String(),
		Players:        len(t.players),
		CommunityCards: len(t.community),
		CardsRemaining: t.deck.Remaining(),
	}
}

// PlayerInfo is a read-only roster entry for the admin surface.
type PlayerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phase   string `json:"phase"`
	Wins    int    `json:"wins"`
}

// PlayerList reports every seated player.
func (t *Table) PlayerList() []PlayerInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	infos := make([]PlayerInfo, 0, len(t.players))
	for _, p := range t.players {
		infos = append(infos, PlayerInfo{
			ID:      p.id.String(),
			Name:    p.name,
			Address: p.address,
			Phase:   p.localPhase.String(),
			Wins:    p.wins,
		})
	}
	return infos
}
