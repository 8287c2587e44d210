// Package control routes server-pushed messages to their handlers,
// applying state changes to the local object store and obtaining user
// decisions where a reply requires one.
//
// Handlers run on the connection's delivery goroutine, one message at
// a time. Anything that touches user-facing state is handed to the
// interactive runner: Post for fire-and-forget work, PostAndWait when
// the handler must not return before the work completes (animations
// that later messages depend on, and decisions whose reply carries
// the outcome).
package control

import (
	"fmt"

	"github.com/castlegate/frontier/client/gui"
	"github.com/castlegate/frontier/pkg/game/store"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/messages"
	"github.com/castlegate/frontier/pkg/session"
	"github.com/castlegate/frontier/pkg/uithread"
)

type handlerFunc func(msg *messages.Message) (*messages.Message, error)

// InGameHandler dispatches inbound messages by tag.
type InGameHandler struct {
	game    *store.Store
	session *session.Session
	ui      *uithread.Runner
	gui     gui.GUI
	ctl     Controller
	table   map[string]handlerFunc
}

type NewInGameHandlerOptions struct {
	Store      *store.Store
	Session    *session.Session
	UI         *uithread.Runner
	GUI        gui.GUI
	Controller Controller
}

// NewInGameHandler creates a handler wired to the given collaborators.
func NewInGameHandler(opts NewInGameHandlerOptions) *InGameHandler {
	h := &InGameHandler{
		game:    opts.Store,
		session: opts.Session,
		ui:      opts.UI,
		gui:     opts.GUI,
		ctl:     opts.Controller,
	}
	h.table = map[string]handlerFunc{
		messages.TagDisconnect:           h.disconnect,
		messages.TagAddObject:            h.addObject,
		messages.TagAddPlayer:            h.addPlayer,
		messages.TagAnimateAttack:        h.animateAttack,
		messages.TagAnimateMove:          h.animateMove,
		messages.TagChat:                 h.chat,
		messages.TagChooseFoundingFather: h.chooseFoundingFather,
		messages.TagCloseMenus:           h.closeMenus,
		messages.TagDiplomacy:            h.diplomacy,
		messages.TagError:                h.errorMessage,
		messages.TagFeatureChange:        h.featureChange,
		messages.TagFirstContact:         h.firstContact,
		messages.TagFountainOfYouth:      h.fountainOfYouth,
		messages.TagGameEnded:            h.gameEnded,
		messages.TagIndianDemand:         h.indianDemand,
		messages.TagLootCargo:            h.lootCargo,
		messages.TagMonarchAction:        h.monarchAction,
		messages.TagMultiple:             h.multiple,
		messages.TagNewLandName:          h.newLandName,
		messages.TagNewRegionName:        h.newRegionName,
		messages.TagNewTurn:              h.newTurn,
		messages.TagReconnect:            h.reconnect,
		messages.TagRemove:               h.remove,
		messages.TagSetAI:                h.setAI,
		messages.TagSetCurrentPlayer:     h.setCurrentPlayer,
		messages.TagSetDead:              h.setDead,
		messages.TagSetStance:            h.setStance,
		messages.TagSpyResult:            h.spyResult,
		messages.TagUpdate:               h.update,
	}
	return h
}

// Handle dispatches a message to its handler and returns the reply,
// or nil when none is required. A nil message is a transport-layer
// bug and fails outright; an unknown tag is logged and ignored so
// that newer servers do not crash older clients.
func (h *InGameHandler) Handle(msg *messages.Message) (*messages.Message, error) {
	if msg == nil {
		return nil, fmt.Errorf("received empty message")
	}

	handler, ok := h.table[msg.Tag]
	if !ok {
		log.Warn("Unsupported message type: %s", msg.Tag)
		return nil, nil
	}

	log.Trace("Received message: %s", msg.Tag)
	reply, err := handler(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to handle %s message: %v", msg.Tag, err)
	}
	replyTag := "none"
	if reply != nil {
		replyTag = reply.Tag
	}
	log.Trace("Handled message: %s replying with: %s", msg.Tag, replyTag)

	// A flush attribute encourages the client to show any queued
	// notifications, but only while it is the local player's turn.
	if msg.BoolAttr("flush") && h.session.CurrentPlayerIsMyPlayer() {
		h.ui.Post(h.ctl.DisplayModelMessages)
	}
	return reply, nil
}

// multiple handles every child of a composite message. This is the
// one fault-isolation boundary: a child that fails or panics is
// logged and skipped, its siblings still run, and the surviving
// replies collapse into a single envelope in order.
func (h *InGameHandler) multiple(msg *messages.Message) (*messages.Message, error) {
	var replies []*messages.Message
	for i, child := range msg.Children {
		reply, err := h.handleIsolated(child)
		if err != nil {
			log.Warn("Caught crash in multiple item %d, continuing: %v", i, err)
			continue
		}
		if reply != nil {
			replies = append(replies, reply)
		}
	}
	return messages.Collapse(replies), nil
}

func (h *InGameHandler) handleIsolated(msg *messages.Message) (reply *messages.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h.Handle(msg)
}
