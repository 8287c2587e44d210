package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/messages"
)

func attackFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.game.Insert(&model.Player{Identifier: testPlayerID})
	f.game.Insert(&model.Unit{Identifier: "unit:att", Owner: testPlayerID, Location: "tile:1"})
	f.game.Insert(&model.Unit{Identifier: "unit:def", Owner: "player:2", Location: "tile:2"})
	f.game.Insert(&model.Tile{Identifier: "tile:1"})
	f.game.Insert(&model.Tile{Identifier: "tile:2"})
	return f
}

func attackMessage() *messages.Message {
	return messages.New(messages.TagAnimateAttack,
		"attacker", "unit:att",
		"defender", "unit:def",
		"attackerTile", "tile:1",
		"defenderTile", "tile:2",
		"success", "true",
	)
}

func TestAnimateAttack(t *testing.T) {
	f := attackFixture(t)
	f.gui.speed = 3

	reply, err := f.h.Handle(attackMessage())
	require.NoError(t, err)
	assert.Nil(t, reply)

	// PostAndWait means the animation already ran by the time the
	// handler returned.
	require.Len(t, f.gui.attacks, 1)
	call := f.gui.attacks[0]
	assert.Equal(t, "unit:att", call.attacker.ID())
	assert.Equal(t, "unit:def", call.defender.ID())
	assert.Equal(t, "tile:1", call.attackerTile.ID())
	assert.Equal(t, "tile:2", call.defenderTile.ID())
	assert.True(t, call.success)
	assert.Equal(t, 1, f.gui.refreshes)
}

func TestAnimateAttackDisabled(t *testing.T) {
	f := newFixture(t)
	f.game.Insert(&model.Player{Identifier: testPlayerID})
	f.game.Insert(&model.Unit{Identifier: "unit:att", Owner: testPlayerID, Location: "tile:1"})
	f.gui.speed = 0

	// With animation off the remaining references are never resolved,
	// so their absence cannot fail the handler.
	msg := messages.New(messages.TagAnimateAttack,
		"attacker", "unit:att",
		"defender", "unit:gone",
		"attackerTile", "tile:gone",
		"defenderTile", "tile:gone",
	)
	reply, err := f.h.Handle(msg)
	require.NoError(t, err)
	assert.Nil(t, reply)
	f.flush()
	assert.Empty(t, f.gui.attacks)
}

func TestAnimateAttackMissingReferenceIsFatal(t *testing.T) {
	f := attackFixture(t)
	f.gui.speed = 3

	tests := []struct {
		name  string
		strip string
	}{
		{name: "no attacker", strip: "attacker"},
		{name: "no defender", strip: "defender"},
		{name: "no attacker tile", strip: "attackerTile"},
		{name: "no defender tile", strip: "defenderTile"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := attackMessage()
			msg.SetAttr(tc.strip, "")
			_, err := f.h.Handle(msg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.strip)
		})
	}
}

func TestAnimateMove(t *testing.T) {
	f := attackFixture(t)
	f.gui.speed = 3

	msg := messages.New(messages.TagAnimateMove,
		"unit", "unit:att",
		"oldTile", "tile:1",
		"newTile", "tile:2",
	)
	reply, err := f.h.Handle(msg)
	require.NoError(t, err)
	assert.Nil(t, reply)

	require.Len(t, f.gui.moves, 1)
	call := f.gui.moves[0]
	assert.Equal(t, "unit:att", call.unit.ID())
	assert.Equal(t, "tile:1", call.oldTile.ID())
	assert.Equal(t, "tile:2", call.newTile.ID())
	// The unit's position is untouched: that change arrives in its own
	// update message.
	assert.Equal(t, "tile:1", f.game.GetUnit("unit:att").Location)
}

func TestAnimateMoveMaterializesUnit(t *testing.T) {
	f := newFixture(t)
	f.game.Insert(&model.Player{Identifier: testPlayerID})
	f.game.Insert(&model.Tile{Identifier: "tile:1"})
	f.game.Insert(&model.Tile{Identifier: "tile:2"})
	f.gui.speed = 3

	msg := messages.New(messages.TagAnimateMove,
		"unit", "unit:enemy",
		"oldTile", "tile:1",
		"newTile", "tile:2",
	)
	msg.Add(messages.New("unit", "id", "unit:enemy", "owner", "player:2", "location", "tile:1"))

	reply, err := f.h.Handle(msg)
	require.NoError(t, err)
	assert.Nil(t, reply)

	// The embedded payload was materialized into the store.
	u := f.game.GetUnit("unit:enemy")
	require.NotNil(t, u)
	assert.Equal(t, "tile:1", u.Location)
	require.Len(t, f.gui.moves, 1)
	assert.Same(t, u, f.gui.moves[0].unit)
}

func TestAnimateMoveMaterializedUnitNeedsLocation(t *testing.T) {
	f := newFixture(t)
	f.game.Insert(&model.Player{Identifier: testPlayerID})
	f.gui.speed = 3

	msg := messages.New(messages.TagAnimateMove,
		"unit", "unit:enemy",
		"oldTile", "tile:1",
		"newTile", "tile:2",
	)
	msg.Add(messages.New("unit", "id", "unit:enemy", "owner", "player:2"))

	_, err := f.h.Handle(msg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null location")
	assert.Nil(t, f.game.Get("unit:enemy"))
}
