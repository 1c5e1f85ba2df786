package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbui/pokerd/poker"
)

func testConfig() Config {
	config := DefaultConfig()
	config.WaitTickMillis = 10
	return config
}

// seededTable returns a table whose deck order is reproducible.
func seededTable(seed int64) *Table {
	table := NewTable(testConfig())
	table.deck = poker.NewDeck(rand.NewSource(seed))
	return table
}

func TestSeatingBelowMinimumStaysAtTable(t *testing.T) {
	table := seededTable(1)
	p1 := NewPlayerActor(table, newScriptConn())

	require.True(t, table.AddPlayer(p1))
	require.Equal(t, PhaseTable, table.Phase())
	require.Equal(t, 1, table.ActivePlayers())
}

func TestSeatingSecondPlayerStartsRound(t *testing.T) {
	table := seededTable(1)
	p1 := NewPlayerActor(table, newScriptConn())
	p2 := NewPlayerActor(table, newScriptConn())

	require.True(t, table.AddPlayer(p1))
	p1.hand = []poker.Card{{Rank: 2, Suit: poker.Hearts}} // stale cards from a prior round

	require.True(t, table.AddPlayer(p2))
	assert.Equal(t, PhaseDeal, table.Phase())
	assert.Empty(t, p1.Hand(), "hands must be cleared when the round starts")
	assert.Equal(t, 52, table.deck.Remaining(), "deck must be reshuffled when the round starts")
}

func TestDealHandsInterleavesTwoCardsEach(t *testing.T) {
	table := seededTable(42)
	p1 := NewPlayerActor(table, newScriptConn())
	p2 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p1)
	table.AddPlayer(p2)

	// Replay the same deal order from an identically seeded deck. The
	// table deck was shuffled once at seating, so advance the replica
	// the same way.
	replica := poker.NewDeck(rand.NewSource(42))
	replica.Shuffle()
	expected := make([]poker.Card, 4)
	for i := range expected {
		card, err := replica.Deal()
		require.NoError(t, err)
		expected[i] = card
	}

	require.NoError(t, table.DealHands())
	assert.Equal(t, PhaseFlop, table.Phase())
	assert.Equal(t, 48, table.deck.Remaining())
	assert.Equal(t, []poker.Card{expected[0], expected[2]}, p1.Hand())
	assert.Equal(t, []poker.Card{expected[1], expected[3]}, p2.Hand())

	// A second call must not deal again.
	require.NoError(t, table.DealHands())
	assert.Equal(t, 48, table.deck.Remaining())
}

func TestCommunityCardProgression(t *testing.T) {
	table := seededTable(7)
	p1 := NewPlayerActor(table, newScriptConn())
	p2 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p1)
	table.AddPlayer(p2)

	require.NoError(t, table.DealHands())
	assert.Empty(t, table.Community())

	require.NoError(t, table.DealFlop())
	assert.Len(t, table.Community(), 3)
	assert.Equal(t, 44, table.deck.Remaining(), "flop burns one and reveals three")
	assert.Equal(t, PhaseTurn, table.Phase())

	require.NoError(t, table.DealTurn())
	assert.Len(t, table.Community(), 4)
	assert.Equal(t, 42, table.deck.Remaining(), "turn burns one and reveals one")
	assert.Equal(t, PhaseRiver, table.Phase())

	require.NoError(t, table.DealRiver())
	assert.Len(t, table.Community(), 5)
	assert.Equal(t, 40, table.deck.Remaining(), "river burns one and reveals one")
	assert.Equal(t, PhaseScore, table.Phase())

	// Out-of-phase deal calls are no-ops.
	require.NoError(t, table.DealFlop())
	require.NoError(t, table.DealTurn())
	require.NoError(t, table.DealRiver())
	assert.Len(t, table.Community(), 5)
	assert.Equal(t, 40, table.deck.Remaining())
}

func TestSeatingRejectedOnceRoundStarted(t *testing.T) {
	table := seededTable(1)
	p1 := NewPlayerActor(table, newScriptConn())
	p2 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p1)
	table.AddPlayer(p2)

	// The round is underway the moment it fires, before any cards go
	// out; a late joiner waits for the next one.
	p3 := NewPlayerActor(table, newScriptConn())
	assert.False(t, table.AddPlayer(p3))
	assert.Equal(t, 2, table.ActivePlayers())

	require.NoError(t, table.DealHands())
	assert.False(t, table.AddPlayer(p3))
	assert.Equal(t, 2, table.ActivePlayers())
}

func TestRemovingLastPlayerResetsToLobby(t *testing.T) {
	table := seededTable(1)
	p1 := NewPlayerActor(table, newScriptConn())
	p2 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p1)
	table.AddPlayer(p2)
	require.NoError(t, table.DealHands())
	require.NoError(t, table.DealFlop())

	table.RemovePlayer(p1)
	assert.Equal(t, 1, table.ActivePlayers())
	assert.Len(t, table.Community(), 3)

	table.RemovePlayer(p2)
	assert.Equal(t, 0, table.ActivePlayers())
	assert.Equal(t, PhaseLobby, table.Phase())
	assert.Empty(t, table.Community())
}

func TestFinishRoundIsIdempotentPerRound(t *testing.T) {
	table := seededTable(1)
	p1 := NewPlayerActor(table, newScriptConn())
	p2 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p1)
	table.AddPlayer(p2)
	round := p1.currentRound()

	table.FinishRound(round)
	assert.Equal(t, PhaseLobby, table.Phase())
	assert.Equal(t, 0, table.ActivePlayers())

	// A player from the finished round cannot wipe the next one.
	p3 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p3)
	table.FinishRound(round)
	assert.Equal(t, PhaseTable, table.Phase())
	assert.Equal(t, 1, table.ActivePlayers())
}

func TestStatusSnapshot(t *testing.T) {
	table := seededTable(1)
	p1 := NewPlayerActor(table, newScriptConn())
	table.AddPlayer(p1)

	status := table.Status()
	assert.Equal(t, "TABLE", status.Phase)
	assert.Equal(t, 1, status.Players)
	assert.Equal(t, 0, status.CommunityCards)
	assert.Equal(t, 52, status.CardsRemaining)

	infos := table.PlayerList()
	require.Len(t, infos, 1)
	assert.Equal(t, p1.Name(), infos[0].Name)
	assert.Equal(t, 0, infos[0].Wins)
}
