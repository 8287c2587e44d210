package control

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/messages"
)

// addObject attaches the child payloads to their owning players:
// founding fathers, history events, last sales, model messages and
// trade routes. Unknown child tags are logged and skipped so that
// additive protocol extensions stay harmless.
func (h *InGameHandler) addObject(msg *messages.Message) (*messages.Message, error) {
	visibilityChange := false
	for _, child := range msg.Children {
		owner := child.Attr("owner")
		player := h.game.GetPlayer(owner)
		if player == nil {
			log.Warn("addObject with broken owner: %s", owner)
			continue
		}

		switch child.Tag {
		case "foundingFather":
			player.AddFather(child.ID())
			// A new father can extend line of sight.
			if h.touchesVisibility(player) {
				visibilityChange = true
			}
		case "historyEvent":
			player.AddHistory(child.Attr("template"))
		case "lastSale":
			player.AddLastSale(child.ID())
		case "modelMessage":
			player.AddModelMessage(model.ModelMessage{
				SourceID: child.Attr("source"),
				Template: child.Attr("template"),
			})
		case "tradeRoute":
			player.AddTradeRoute(child.ID())
		default:
			log.Warn("addObject unrecognized: %s", child.Tag)
		}
	}
	if visibilityChange {
		h.invalidateVisibility()
	}
	return nil, nil
}

// addPlayer inserts new players or updates known ones in place.
func (h *InGameHandler) addPlayer(msg *messages.Message) (*messages.Message, error) {
	visibilityChange := false
	for _, child := range msg.Children {
		id := child.ID()
		if p := h.game.GetPlayer(id); p != nil {
			if err := p.ApplyPayload(child); err != nil {
				return nil, fmt.Errorf("failed to update player %s: %v", id, err)
			}
		} else {
			p, err := model.NewPlayerFromPayload(child)
			if err != nil {
				return nil, fmt.Errorf("failed to construct player: %v", err)
			}
			h.game.Insert(p)
		}
		if id == h.session.MyPlayerID() {
			visibilityChange = true
		}
	}
	if visibilityChange {
		h.invalidateVisibility()
	}
	return nil, nil
}

// update applies in-place updates to known objects. Objects the
// client has never seen are logged and skipped; the server introduces
// objects through addObject/addPlayer or inline payloads, not here.
func (h *InGameHandler) update(msg *messages.Message) (*messages.Message, error) {
	visibilityChange := false
	for _, child := range msg.Children {
		id := child.ID()
		obj := h.game.Get(id)
		if obj == nil {
			log.Warn("Update object not present in client: %s", id)
			continue
		}
		if err := obj.ApplyPayload(child); err != nil {
			return nil, fmt.Errorf("failed to apply update to %s: %v", id, err)
		}
		if h.touchesVisibility(obj) {
			visibilityChange = true
		}
	}
	if visibilityChange {
		h.invalidateVisibility()
	}
	h.ui.Post(h.gui.Refresh)
	return nil, nil
}

// remove disposes the referenced objects. A missing object is skipped
// silently: an update dropping the last pointer to a unit followed by
// client-side cleanup can legitimately race this message.
func (h *InGameHandler) remove(msg *messages.Message) (*messages.Message, error) {
	divertID := msg.Attr("divert")
	divert := h.game.Get(divertID)
	player := h.game.GetPlayer(h.session.MyPlayerID())
	visibilityChange := false

	for _, child := range msg.Children {
		id := child.ID()
		obj := h.game.Get(id)
		if obj == nil {
			continue
		}
		if divert != nil && player != nil {
			player.DivertModelMessages(id, divertID)
		}
		switch obj.(type) {
		case *model.Colony:
			visibilityChange = true
		case *model.Unit:
			if h.gui.ActiveUnitID() == id {
				h.ui.PostAndWait(h.gui.DeselectActiveUnit)
			}
			visibilityChange = true
		}
		h.game.Dispose(id)
	}
	if visibilityChange {
		h.invalidateVisibility()
	}
	h.ui.Post(h.gui.Refresh)
	return nil, nil
}

// featureChange adds or removes abilities and modifiers on an object.
func (h *InGameHandler) featureChange(msg *messages.Message) (*messages.Message, error) {
	add := msg.BoolAttr("add")
	id := msg.ID()
	obj := h.game.Get(id)
	if obj == nil {
		log.Warn("featureChange with null object: %s", id)
		return nil, nil
	}
	carrier, ok := obj.(model.FeatureCarrier)
	if !ok {
		log.Warn("featureChange on object without features: %s", id)
		return nil, nil
	}

	for _, child := range msg.Children {
		switch child.Tag {
		case "ability":
			if add {
				carrier.AddAbility(child.ID())
			} else {
				carrier.RemoveAbility(child.ID())
			}
		case "modifier":
			if add {
				carrier.AddModifier(child.ID())
			} else {
				carrier.RemoveModifier(child.ID())
			}
		default:
			log.Warn("featureChange unrecognized: %s", child.Tag)
		}
	}
	if h.touchesVisibility(obj) {
		h.invalidateVisibility()
	}
	return nil, nil
}

// setAI flips a player's AI flag.
func (h *InGameHandler) setAI(msg *messages.Message) (*messages.Message, error) {
	player := h.game.GetPlayer(msg.Attr("player"))
	if player == nil {
		return nil, fmt.Errorf("setAI for unknown player: %s", msg.Attr("player"))
	}
	player.AI = msg.BoolAttr("ai")
	return nil, nil
}

// spyResult carries exactly two views of the spied-upon tile: the
// privileged view first, the view the player is normally entitled to
// second. The privileged view is applied immediately and displayed;
// dismissing the display restores the restricted view. The override
// is scoped to the panel's lifetime, not a permanent mutation.
func (h *InGameHandler) spyResult(msg *messages.Message) (*messages.Message, error) {
	if len(msg.Children) != 2 {
		return nil, fmt.Errorf("spyResult expects 2 children, got %d", len(msg.Children))
	}
	tileID := msg.Attr("tile")
	tile := h.game.GetTile(tileID)
	if tile == nil {
		log.Warn("spyResult bad tile: %s", tileID)
		return nil, nil
	}

	full, restricted := msg.Children[0], msg.Children[1]
	if err := tile.ApplyPayload(full); err != nil {
		return nil, fmt.Errorf("failed to apply privileged view to %s: %v", tileID, err)
	}
	h.ui.Post(func() {
		h.gui.ShowSpyColonyPanel(tile, func() {
			if err := tile.ApplyPayload(restricted); err != nil {
				log.Error("Failed to restore view of %s: %v", tileID, err)
			}
		})
	})
	return nil, nil
}
