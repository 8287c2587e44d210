package control

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/messages"
)

// chat shows an incoming chat line. The sending player may be unknown
// when the line arrives before the player list; the display copes.
func (h *InGameHandler) chat(msg *messages.Message) (*messages.Message, error) {
	player := h.game.GetPlayer(msg.Attr("player"))
	text := msg.Attr("message")
	private := msg.BoolAttr("private")
	h.ui.Post(func() {
		h.gui.DisplayChat(player, text, private)
	})
	return nil, nil
}

// errorMessage surfaces a server-reported error to the user.
func (h *InGameHandler) errorMessage(msg *messages.Message) (*messages.Message, error) {
	messageID := msg.Attr("messageID")
	text := msg.Attr("message")
	h.ui.Post(func() {
		h.gui.ShowErrorMessage(messageID, text)
	})
	return nil, nil
}

// gameEnded announces the end of the game. Scores and the victory
// dialog are only shown to the winner.
func (h *InGameHandler) gameEnded(msg *messages.Message) (*messages.Message, error) {
	winner := h.game.GetPlayer(msg.Attr("winner"))
	if winner == nil {
		log.Warn("gameEnded with unknown winner: %s", msg.Attr("winner"))
		return nil, nil
	}
	if winner.ID() != h.session.MyPlayerID() {
		return nil, nil
	}
	highScore := msg.BoolAttr("highScore")
	h.ui.Post(func() {
		h.ctl.DisplayHighScores(highScore)
	})
	h.ui.Post(h.gui.ShowVictoryDialog)
	return nil, nil
}

// closeMenus dismisses open menus and prompts. The server sends this
// ahead of work that must not wait on an idle player, so the handler
// blocks until the dismissal has actually happened.
func (h *InGameHandler) closeMenus(msg *messages.Message) (*messages.Message, error) {
	h.ui.PostAndWait(h.gui.CloseMenus)
	return nil, nil
}

// newTurn advances the turn counter. The current player is cleared
// before the handler returns so that a setCurrentPlayer queued behind
// this message never observes the previous turn's value.
func (h *InGameHandler) newTurn(msg *messages.Message) (*messages.Message, error) {
	turn := msg.IntAttr("turn")
	if turn == messages.MinInt {
		log.Warn("newTurn with bad turn attribute: %s", msg.Attr("turn"))
	}
	h.session.ClearCurrentPlayer()
	h.ui.Post(func() {
		h.ctl.NewTurn(turn)
	})
	h.ui.Post(h.gui.Refresh)
	h.ui.Post(h.gui.UpdateMenuBar)
	return nil, nil
}

// reconnect asks the client to drop and re-establish the connection.
func (h *InGameHandler) reconnect(msg *messages.Message) (*messages.Message, error) {
	log.Trace("Reconnect requested by server")
	h.ui.Post(h.ctl.Reconnect)
	return nil, nil
}

// disconnect reacts to the server closing the session.
func (h *InGameHandler) disconnect(msg *messages.Message) (*messages.Message, error) {
	log.Info("Server closed the session")
	h.ui.Post(h.ctl.Disconnect)
	return nil, nil
}

// setCurrentPlayer records whose turn it is. A missing player clears
// the current player, matching the between-turns state.
func (h *InGameHandler) setCurrentPlayer(msg *messages.Message) (*messages.Message, error) {
	id := msg.Attr("player")
	if h.game.GetPlayer(id) == nil {
		id = ""
	}
	h.session.SetCurrentPlayer(id)
	h.ui.Post(h.gui.Refresh)
	h.ui.Post(h.gui.RequestFocus)
	return nil, nil
}

// setDead marks a player as eliminated, then lets the controller
// react. The store mutation happens here, on the delivery goroutine;
// the posted notification only presents.
func (h *InGameHandler) setDead(msg *messages.Message) (*messages.Message, error) {
	player := h.game.GetPlayer(msg.Attr("player"))
	if player == nil {
		log.Warn("setDead with unknown player: %s", msg.Attr("player"))
		return nil, nil
	}
	player.Dead = true
	h.ui.Post(func() {
		h.ctl.SetDead(player)
	})
	return nil, nil
}

// setStance records a stance change between two players. Either side
// being unknown means the two sides have diverged and is fatal.
func (h *InGameHandler) setStance(msg *messages.Message) (*messages.Message, error) {
	stance, err := model.ParseStance(msg.Attr("stance"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse stance: %v", err)
	}
	first := h.game.GetPlayer(msg.Attr("first"))
	if first == nil {
		return nil, fmt.Errorf("setStance for unknown first player: %s", msg.Attr("first"))
	}
	second := h.game.GetPlayer(msg.Attr("second"))
	if second == nil {
		return nil, fmt.Errorf("setStance for unknown second player: %s", msg.Attr("second"))
	}

	first.SetStance(second.ID(), stance)
	second.SetStance(first.ID(), stance)
	h.ui.Post(func() {
		h.ctl.SetStance(stance, first, second)
	})
	return nil, nil
}
