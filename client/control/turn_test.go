package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/messages"
)

func TestChat(t *testing.T) {
	f := newFixture(t)
	sender := f.addPlayer("player:2", false)

	_, err := f.h.Handle(messages.New(messages.TagChat,
		"player", "player:2", "message", "good game", "private", "false"))
	require.NoError(t, err)

	// A chat line from a player the client has not met yet still shows.
	_, err = f.h.Handle(messages.New(messages.TagChat,
		"player", "player:404", "message", "hello?"))
	require.NoError(t, err)

	f.flush()
	require.Len(t, f.gui.chatMessages, 2)
	assert.Same(t, sender, f.gui.chatPlayers[0])
	assert.Nil(t, f.gui.chatPlayers[1])
	assert.Equal(t, "good game", f.gui.chatMessages[0])
}

func TestErrorMessage(t *testing.T) {
	f := newFixture(t)
	_, err := f.h.Handle(messages.New(messages.TagError,
		"messageID", "server.timeout", "message", "request timed out"))
	require.NoError(t, err)
	f.flush()
	assert.Equal(t, []string{"server.timeout"}, f.gui.errorIDs)
}

func TestGameEnded(t *testing.T) {
	f := newFixture(t)
	f.addPlayer(testPlayerID, false)
	f.addPlayer("player:2", false)

	// Someone else won: nothing to show.
	_, err := f.h.Handle(messages.New(messages.TagGameEnded, "winner", "player:2"))
	require.NoError(t, err)
	f.flush()
	assert.False(t, f.gui.victoryShown)
	assert.Equal(t, 0, f.ctl.highScores)

	_, err = f.h.Handle(messages.New(messages.TagGameEnded,
		"winner", testPlayerID, "highScore", "true"))
	require.NoError(t, err)
	f.flush()
	assert.True(t, f.gui.victoryShown)
	assert.Equal(t, 1, f.ctl.highScores)
}

func TestCloseMenus(t *testing.T) {
	f := newFixture(t)
	reply, err := f.h.Handle(messages.New(messages.TagCloseMenus))
	require.NoError(t, err)
	assert.Nil(t, reply)
	// PostAndWait: already done when the handler returned.
	assert.Equal(t, 1, f.gui.menuCloses)
}

func TestNewTurn(t *testing.T) {
	f := newFixture(t)
	f.sess.SetCurrentPlayer(testPlayerID)

	reply, err := f.h.Handle(messages.New(messages.TagNewTurn, "turn", "17"))
	require.NoError(t, err)
	assert.Nil(t, reply)

	// The current player clears before the handler returns so queued
	// messages never see the previous turn's value.
	assert.Equal(t, "", f.sess.CurrentPlayerID())

	f.flush()
	assert.Equal(t, []int{17}, f.ctl.turns)
	assert.Equal(t, 1, f.gui.refreshes)
	assert.Equal(t, 1, f.gui.menuUpdates)
}

func TestSetCurrentPlayer(t *testing.T) {
	f := newFixture(t)
	f.addPlayer(testPlayerID, false)

	_, err := f.h.Handle(messages.New(messages.TagSetCurrentPlayer, "player", testPlayerID))
	require.NoError(t, err)
	assert.True(t, f.sess.CurrentPlayerIsMyPlayer())

	f.flush()
	assert.Equal(t, 1, f.gui.refreshes)
	assert.Equal(t, 1, f.gui.focusRequests)

	// An unknown player clears the pointer rather than recording a
	// dangling identifier.
	_, err = f.h.Handle(messages.New(messages.TagSetCurrentPlayer, "player", "player:404"))
	require.NoError(t, err)
	assert.Equal(t, "", f.sess.CurrentPlayerID())
}

func TestSetDead(t *testing.T) {
	f := newFixture(t)
	victim := f.addPlayer("player:2", false)

	reply, err := f.h.Handle(messages.New(messages.TagSetDead, "player", "player:2"))
	require.NoError(t, err)
	assert.Nil(t, reply)
	assert.True(t, victim.Dead)

	f.flush()
	require.Len(t, f.ctl.deadPlayers, 1)
	assert.Same(t, victim, f.ctl.deadPlayers[0])
	assert.True(t, f.ctl.deadPlayers[0].Dead)
}

func TestSetDeadUnknownPlayerIsRecoverable(t *testing.T) {
	f := newFixture(t)
	reply, err := f.h.Handle(messages.New(messages.TagSetDead, "player", "player:404"))
	require.NoError(t, err)
	assert.Nil(t, reply)
}

func TestSetStance(t *testing.T) {
	f := newFixture(t)
	first := f.addPlayer(testPlayerID, false)
	second := f.addPlayer("player:2", false)

	reply, err := f.h.Handle(messages.New(messages.TagSetStance,
		"stance", "war", "first", testPlayerID, "second", "player:2"))
	require.NoError(t, err)
	assert.Nil(t, reply)

	// Both sides record the new stance.
	assert.Equal(t, model.StanceWar, first.Stances["player:2"])
	assert.Equal(t, model.StanceWar, second.Stances[testPlayerID])

	f.flush()
	assert.Equal(t, []model.Stance{model.StanceWar}, f.ctl.stances)
}

func TestSetStanceBadInputIsFatal(t *testing.T) {
	f := newFixture(t)
	f.addPlayer(testPlayerID, false)
	f.addPlayer("player:2", false)

	tests := []struct {
		name  string
		attrs []string
	}{
		{name: "unknown stance", attrs: []string{"stance", "grumpy", "first", testPlayerID, "second", "player:2"}},
		{name: "unknown first", attrs: []string{"stance", "war", "first", "player:404", "second", "player:2"}},
		{name: "unknown second", attrs: []string{"stance", "war", "first", testPlayerID, "second", "player:404"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.h.Handle(messages.New(messages.TagSetStance, tc.attrs...))
			require.Error(t, err)
		})
	}
}

func TestReconnectAndDisconnect(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.Handle(messages.New(messages.TagReconnect))
	require.NoError(t, err)
	_, err = f.h.Handle(messages.New(messages.TagDisconnect))
	require.NoError(t, err)

	f.flush()
	assert.Equal(t, 1, f.ctl.reconnects)
	assert.Equal(t, 1, f.ctl.disconnects)
}
