package model

import (
	"testing"

	"github.com/castlegate/frontier/pkg/messages"
	"github.com/stretchr/testify/assert"
)

func TestUnit_ApplyPayloadPartial(t *testing.T) {
	u := &Unit{Identifier: "unit:1", Type: "model.unit.scout", Owner: "player:1", Location: "tile:1", Moves: 4}

	// a payload carrying only a location leaves everything else alone
	err := u.ApplyPayload(messages.New("unit", "id", "unit:1", "location", "tile:2"))
	assert.NoError(t, err)
	assert.Equal(t, "tile:2", u.Location)
	assert.Equal(t, "model.unit.scout", u.Type)
	assert.Equal(t, "player:1", u.Owner)
	assert.Equal(t, 4, u.Moves)
}

func TestNewUnitFromPayload_MissingID(t *testing.T) {
	_, err := NewUnitFromPayload(messages.New("unit", "owner", "player:1"))
	assert.Error(t, err)
}

func TestPlayer_Owns(t *testing.T) {
	p := &Player{Identifier: "player:1"}

	assert.True(t, p.Owns(&Unit{Identifier: "unit:1", Owner: "player:1"}))
	assert.False(t, p.Owns(&Unit{Identifier: "unit:2", Owner: "player:2"}))
	assert.False(t, p.Owns(nil))
}

func TestPlayer_DivertModelMessages(t *testing.T) {
	p := &Player{Identifier: "player:1"}
	p.AddModelMessage(ModelMessage{SourceID: "unit:1", Template: "model.unit.lost"})
	p.AddModelMessage(ModelMessage{SourceID: "colony:1", Template: "model.colony.grown"})

	p.DivertModelMessages("unit:1", "tile:9")

	assert.Equal(t, "tile:9", p.Messages[0].SourceID)
	assert.Equal(t, "colony:1", p.Messages[1].SourceID)
}

func TestTile_ApplyPayloadReplacesVisibleUnits(t *testing.T) {
	tile := &Tile{Identifier: "tile:1", Units: []string{"unit:1", "unit:2"}}

	payload := messages.New("tile", "id", "tile:1", "owner", "player:2").Add(
		messages.New("unit", "id", "unit:3"),
	)
	assert.NoError(t, tile.ApplyPayload(payload))
	assert.Equal(t, "player:2", tile.Owner)
	assert.Equal(t, []string{"unit:3"}, tile.Units)
}

func TestFeatures(t *testing.T) {
	c := &Colony{Identifier: "colony:1"}
	c.AddAbility("model.ability.export")
	c.AddModifier("model.modifier.defence")
	assert.True(t, c.Abilities["model.ability.export"])
	assert.True(t, c.Modifiers["model.modifier.defence"])

	c.RemoveAbility("model.ability.export")
	assert.False(t, c.Abilities["model.ability.export"])
}

func TestParseStance(t *testing.T) {
	s, err := ParseStance("war")
	assert.NoError(t, err)
	assert.Equal(t, StanceWar, s)

	_, err = ParseStance("grumpy")
	assert.Error(t, err)
}

func TestNewFromPayload(t *testing.T) {
	o, err := NewFromPayload(messages.New("colony", "id", "colony:1", "owner", "player:1", "tile", "tile:4"))
	assert.NoError(t, err)
	assert.Equal(t, KindColony, o.Kind())

	_, err = NewFromPayload(messages.New("meteor", "id", "meteor:1"))
	assert.Error(t, err)
}
