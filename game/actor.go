package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pbui/pokerd/logging"
	"github.com/pbui/pokerd/poker"
)

var actorLogger = logging.GetZeroLogger("game::actor", nil)

// Version is the protocol banner version.
const Version = "0.0.1"

// Banner greets every connection.
var Banner = strings.Join([]string{
	"Welcome to Poker Daemon " + Version,
	"                 _                _",
	"     _ __   ___ | | _____ _ __ __| |",
	"    | '_ \\ / _ \\| |/ / _ \\ '__/ _` |",
	"    | |_) | (_) |   <  __/ | | (_| |",
	"    | .__/ \\___/|_|\\_\\___|_|  \\__,_|",
	"    |_|",
	"    ",
}, "\n")

// PlayerActor drives one connection through the shared round. It owns
// the player's private hand, a local phase cursor, and the win counter;
// the table's mutex guards the fields other actors read during barrier
// checks and showdown display.
type PlayerActor struct {
	id      uuid.UUID
	address string

	table *Table
	conn  Conn

	// Guarded by table.mu.
	name       string
	hand       []poker.Card
	localPhase Phase
	wins       int
	round      uint64
}

// NewPlayerActor creates the actor for a fresh connection. The player
// is named after its address until the name prompt is answered.
func NewPlayerActor(table *Table, conn Conn) *PlayerActor {
	address := conn.RemoteAddr()
	return &PlayerActor{
		id:         uuid.New(),
		address:    address,
		table:      table,
		conn:       conn,
		name:       "Player " + address,
		localPhase: PhaseLobby,
	}
}

// phaseHandler performs the action assigned to one local phase and
// advances the actor's phase cursor. The dispatch loop is a lookup,
// not a conditional chain.
type phaseHandler func(*PlayerActor, context.Context) error

var phaseHandlers = map[Phase]phaseHandler{
	PhaseLobby:    (*PlayerActor).waitInLobby,
	PhaseTable:    (*PlayerActor).waitAtTable,
	PhaseDeal:     (*PlayerActor).waitForHand,
	PhaseBetHand:  (*PlayerActor).solicitBet,
	PhaseFlop:     (*PlayerActor).waitForFlop,
	PhaseBetFlop:  (*PlayerActor).solicitBet,
	PhaseTurn:     (*PlayerActor).waitForTurn,
	PhaseBetTurn:  (*PlayerActor).solicitBet,
	PhaseRiver:    (*PlayerActor).waitForRiver,
	PhaseBetRiver: (*PlayerActor).solicitBet,
	PhaseFold:     (*PlayerActor).leaveRound,
	PhaseScore:    (*PlayerActor).scoreHands,
}

// Run is the per-connection protocol loop. It returns when the player
// disconnects or the context is canceled; the deferred removal keeps a
// dead connection from wedging anyone waiting on it.
func (a *PlayerActor) Run(ctx context.Context) error {
	defer a.table.RemovePlayer(a)

	if err := a.write(Banner); err != nil {
		return err
	}
	name, err := a.readResponse("What is your name")
	if err != nil {
		return err
	}
	a.setName(name)
	actorLogger.Info().Str(logging.PlayerNameKey, name).Str(logging.AddressKey, a.address).Msg("Player named")

	for {
		phase := a.phase()
		if phase == PhaseQuit {
			return nil
		}
		handler, ok := phaseHandlers[phase]
		if !ok {
			return fmt.Errorf("no handler for phase %s", phase)
		}
		if err := handler(a, ctx); err != nil {
			return err
		}
	}
}

// ID returns the actor's connection identity.
func (a *PlayerActor) ID() uuid.UUID {
	return a.id
}

// Name returns the player's display name.
func (a *PlayerActor) Name() string {
	a.table.mu.Lock()
	defer a.table.mu.Unlock()
	return a.name
}

// Wins returns the player's win counter. It persists across rounds for
// the lifetime of the connection.
func (a *PlayerActor) Wins() int {
	a.table.mu.Lock()
	defer a.table.mu.Unlock()
	return a.wins
}

// Hand returns a copy of the player's private cards.
func (a *PlayerActor) Hand() []poker.Card {
	a.table.mu.Lock()
	defer a.table.mu.Unlock()
	hand := make([]poker.Card, len(a.hand))
	copy(hand, a.hand)
	return hand
}

// LocalPhase returns the actor's phase cursor.
func (a *PlayerActor) LocalPhase() Phase {
	a.table.mu.Lock()
	defer a.table.mu.Unlock()
	return a.localPhase
}

func (a *PlayerActor) setName(name string) {
	a.table.mu.Lock()
	a.name = name
	a.table.mu.Unlock()
}

func (a *PlayerActor) setLocalPhase(phase Phase) {
	a.table.mu.Lock()
	a.localPhase = phase
	a.table.broadcastLocked()
	a.table.mu.Unlock()
}

func (a *PlayerActor) currentRound() uint64 {
	a.table.mu.Lock()
	defer a.table.mu.Unlock()
	return a.round
}

// write delivers text to the player, mapping transport failures to a
// disconnection.
func (a *PlayerActor) write(text string) error {
	if err := a.conn.WriteLines(text, false); err != nil {
		return &PeerDisconnectedError{Player: a.Name(), Err: err}
	}
	return nil
}

// readResponse prompts until a non-empty line arrives. Malformed
// (empty) lines re-prompt and are never treated as a fold.
func (a *PlayerActor) readResponse(prompt string) (string, error) {
	for {
		if err := a.write("\n" + prompt + "? "); err != nil {
			return "", err
		}
		response, err := a.conn.ReadLine()
		if err == nil {
			return response, nil
		}
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			continue
		}
		return "", &PeerDisconnectedError{Player: a.Name(), Err: err}
	}
}

// waitWithCounter blocks until the predicate holds, redrawing an
// in-place "...Ns" counter each tick. The predicate runs with the
// table lock held; the lock is never held while suspended.
func (a *PlayerActor) waitWithCounter(ctx context.Context, message string, pred func() bool) error {
	t := a.table
	ticker := time.NewTicker(t.waitTick)
	defer ticker.Stop()

	seconds := 0
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
		case <-ticker.C:
			seconds++
			line := fmt.Sprintf("%s %ds", message, seconds)
			if err := a.conn.WriteLines(line, true); err != nil {
				return &PeerDisconnectedError{Player: a.Name(), Err: err}
			}
		}
	}
}

// waitInLobby parks the actor until no round is in progress.
func (a *PlayerActor) waitInLobby(ctx context.Context) error {
	if err := a.write("\nWaiting in lobby for next round..."); err != nil {
		return err
	}
	err := a.waitWithCounter(ctx, "Waiting in lobby for next round...", func() bool {
		return a.table.phase == PhaseLobby || a.table.phase == PhaseTable
	})
	if err != nil {
		return err
	}
	a.setLocalPhase(PhaseTable)
	return nil
}

// waitAtTable seats the actor and waits for the round to start, then
// joins the pre-deal barrier and shows the wins board.
func (a *PlayerActor) waitAtTable(ctx context.Context) error {
	if err := a.write("\nWaiting at table for players..."); err != nil {
		return err
	}
	if !a.table.AddPlayer(a) {
		// A round got underway between the lobby gate and here; go
		// back and wait for the next one.
		a.setLocalPhase(PhaseLobby)
		return nil
	}
	err := a.waitWithCounter(ctx, "Waiting at table for players...", func() bool {
		return a.table.phase != PhaseTable
	})
	if err != nil {
		return err
	}

	a.setLocalPhase(PhaseDeal)
	err = a.table.waitUntil(ctx, func() bool {
		return a.table.allReachedLocked(PhaseDeal)
	})
	if err != nil {
		return err
	}

	t := a.table
	t.mu.Lock()
	count := len(t.players)
	board := make([]string, 0, count)
	for _, p := range t.players {
		board = append(board, fmt.Sprintf("%18s: %d wins", p.name, p.wins))
	}
	t.mu.Unlock()

	if err := a.write(fmt.Sprintf("\nTable has %d players\n", count)); err != nil {
		return err
	}
	for _, line := range board {
		if err := a.write(line); err != nil {
			return err
		}
	}
	return nil
}

// waitForHand triggers the hole-card deal, joins the post-deal
// barrier, and shows the player's cards.
func (a *PlayerActor) waitForHand(ctx context.Context) error {
	if err := a.write("\nDealing hand..."); err != nil {
		return err
	}
	if err := a.table.DealHands(); err != nil {
		return err
	}
	a.setLocalPhase(PhaseBetHand)
	err := a.table.waitUntil(ctx, func() bool {
		return a.table.allReachedLocked(PhaseBetHand)
	})
	if err != nil {
		return err
	}
	return a.write(fmt.Sprintf("\n        Your cards: %s", poker.CardsToString(a.Hand())))
}

// waitForFlop triggers the flop, joins the barrier, and shows the
// community cards.
func (a *PlayerActor) waitForFlop(ctx context.Context) error {
	if err := a.write("\nDealing flop..."); err != nil {
		return err
	}
	if err := a.table.DealFlop(); err != nil {
		return err
	}
	a.setLocalPhase(PhaseBetFlop)
	err := a.table.waitUntil(ctx, func() bool {
		return a.table.allReachedLocked(PhaseBetFlop)
	})
	if err != nil {
		return err
	}
	if err := a.write(fmt.Sprintf("\n        Flop cards: %s", poker.CardsToString(a.table.Community()))); err != nil {
		return err
	}
	return a.write(fmt.Sprintf("        Your cards: %s", poker.CardsToString(a.Hand())))
}

// waitForTurn triggers the turn, joins the barrier, and shows the
// community cards.
func (a *PlayerActor) waitForTurn(ctx context.Context) error {
	if err := a.write("\nDealing turn..."); err != nil {
		return err
	}
	if err := a.table.DealTurn(); err != nil {
		return err
	}
	a.setLocalPhase(PhaseBetTurn)
	err := a.table.waitUntil(ctx, func() bool {
		return a.table.allReachedLocked(PhaseBetTurn)
	})
	if err != nil {
		return err
	}
	if err := a.write(fmt.Sprintf("\n        Turn cards: %s", poker.CardsToString(a.table.Community()))); err != nil {
		return err
	}
	return a.write(fmt.Sprintf("        Your cards: %s", poker.CardsToString(a.Hand())))
}

// waitForRiver triggers the river, joins the barrier, and shows the
// community cards.
func (a *PlayerActor) waitForRiver(ctx context.Context) error {
	if err := a.write("\nDealing river..."); err != nil {
		return err
	}
	if err := a.table.DealRiver(); err != nil {
		return err
	}
	a.setLocalPhase(PhaseBetRiver)
	err := a.table.waitUntil(ctx, func() bool {
		return a.table.allReachedLocked(PhaseBetRiver)
	})
	if err != nil {
		return err
	}
	if err := a.write(fmt.Sprintf("\n       River cards: %s", poker.CardsToString(a.table.Community()))); err != nil {
		return err
	}
	return a.write(fmt.Sprintf("        Your cards: %s", poker.CardsToString(a.Hand())))
}

// solicitBet asks for fold-or-call at a betting phase. "f" folds and
// side-exits the round; anything else calls and joins the barrier for
// the next phase. If folds leave one active player, that player jumps
// straight to the score phase.
func (a *PlayerActor) solicitBet(ctx context.Context) error {
	next := betSuccessor[a.phase()]

	response, err := a.readResponse("Choose an action: (F)old or (C)all")
	if err != nil {
		return err
	}
	if response == "f" {
		actorLogger.Info().Str(logging.PlayerNameKey, a.Name()).Msg("Player folded")
		a.setLocalPhase(PhaseFold)
		a.table.RemovePlayer(a)
		return a.write("\nYou lost...")
	}

	a.setLocalPhase(next)
	if err := a.write("Waiting for other players..."); err != nil {
		return err
	}
	err = a.waitWithCounter(ctx, "Waiting for other players...", func() bool {
		return a.table.allReachedLocked(next)
	})
	if err != nil {
		return err
	}

	if a.table.ActivePlayers() == 1 {
		a.setLocalPhase(PhaseScore)
	}
	return nil
}

// leaveRound returns a folded actor to the lobby.
func (a *PlayerActor) leaveRound(ctx context.Context) error {
	a.setLocalPhase(PhaseLobby)
	return nil
}

// scoreHands shows the showdown, credits a strict winner, and joins
// the final barrier before the table resets to the lobby.
func (a *PlayerActor) scoreHands(ctx context.Context) error {
	round := a.currentRound()
	community, scores := a.table.Showdown()

	if err := a.write(fmt.Sprintf("\n       Table cards: %s", poker.CardsToString(community))); err != nil {
		return err
	}
	winnerScore := 0
	winners := 0
	for _, ps := range scores {
		if ps.Score > winnerScore {
			winnerScore = ps.Score
			winners = 1
		} else if ps.Score == winnerScore {
			winners++
		}
	}
	for _, ps := range scores {
		line := fmt.Sprintf("%10s's cards: %s (Score: %d)", ps.Name, poker.CardsToString(ps.Cards), ps.Score)
		if err := a.write(line); err != nil {
			return err
		}
	}

	// A tied showdown credits nobody; the win requires the strictly
	// maximum score.
	ownScore := poker.Score(a.Hand(), community)
	if ownScore == winnerScore && winners == 1 {
		a.creditWin()
		actorLogger.Info().Str(logging.PlayerNameKey, a.Name()).Int("score", ownScore).Msg("Round won")
		if err := a.write("\nYou are the winner!"); err != nil {
			return err
		}
	} else {
		if err := a.write("\nYou lost..."); err != nil {
			return err
		}
	}

	if err := a.write("\nWaiting for other players..."); err != nil {
		return err
	}
	a.setLocalPhase(PhaseLobby)
	err := a.waitWithCounter(ctx, "Waiting for other players...", func() bool {
		return a.table.allReachedLocked(PhaseLobby)
	})
	if err != nil {
		return err
	}
	a.table.FinishRound(round)
	return nil
}

func (a *PlayerActor) phase() Phase {
	a.table.mu.Lock()
	defer a.table.mu.Unlock()
	return a.localPhase
}

func (a *PlayerActor) creditWin() {
	a.table.mu.Lock()
	a.wins++
	a.table.mu.Unlock()
}
