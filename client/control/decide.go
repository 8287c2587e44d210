package control

import (
	"fmt"
	"strconv"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/messages"
)

// diplomacy asks the user about a proposed trade agreement. The
// server waits on this exact reply, so the handler blocks until the
// interactive context produces a decision.
func (h *InGameHandler) diplomacy(msg *messages.Message) (*messages.Message, error) {
	our := h.game.Get(msg.Attr("our"))
	if our == nil {
		log.Warn("Our object omitted from diplomacy message.")
		return nil, nil
	}
	other := h.game.Get(msg.Attr("other"))
	if other == nil {
		log.Warn("Other object omitted from diplomacy message.")
		return nil, nil
	}
	var agreement *messages.Message
	for _, child := range msg.Children {
		if child.Tag == "agreement" {
			agreement = child
			break
		}
	}
	if agreement == nil {
		log.Warn("Agreement omitted from diplomacy message.")
		return nil, nil
	}

	var result *messages.Message
	h.ui.PostAndWait(func() {
		result = h.ctl.Diplomacy(our, other, agreement)
	})
	h.ui.Post(h.gui.UpdateMenuBar)

	if result == nil {
		return nil, nil
	}
	reply := msg.Copy()
	reply.Children = []*messages.Message{result}
	return reply, nil
}

// indianDemand asks the user to accept or refuse a native demand. The
// acting unit's turn cannot complete until the server sees the
// decision, so the reply always carries a definite result.
func (h *InGameHandler) indianDemand(msg *messages.Message) (*messages.Message, error) {
	unit := h.game.GetUnit(msg.Attr("unit"))
	if unit == nil {
		log.Warn("indianDemand with null unit: %s", msg.Attr("unit"))
		return nil, nil
	}
	colony := h.game.GetColony(msg.Attr("colony"))
	if colony == nil {
		log.Warn("indianDemand with null colony: %s", msg.Attr("colony"))
		return nil, nil
	}
	player := h.game.GetPlayer(h.session.MyPlayerID())
	if player == nil || !player.Owns(colony) {
		return nil, fmt.Errorf("demand to anothers colony: %s", colony.ID())
	}
	goodsType := msg.Attr("type")
	amount := msg.IntAttr("amount")

	var accepted bool
	h.ui.PostAndWait(func() {
		accepted = h.ctl.IndianDemand(unit, colony, goodsType, amount)
	})

	reply := msg.Copy()
	reply.SetAttr("result", strconv.FormatBool(accepted))
	return reply, nil
}

// lootCargo asks the user to choose goods to loot. The choice goes
// back to the server as a separate outbound message.
func (h *InGameHandler) lootCargo(msg *messages.Message) (*messages.Message, error) {
	unit, err := h.resolveUnit(msg, msg.Attr("unit"))
	if err != nil {
		return nil, err
	}
	var goods []model.Goods
	for _, child := range msg.Children {
		if child.Tag != "goods" {
			continue
		}
		g, err := model.GoodsFromPayload(child)
		if err != nil {
			log.Warn("lootCargo with broken goods payload: %v", err)
			continue
		}
		goods = append(goods, g)
	}
	if unit == nil || goods == nil {
		return nil, nil
	}
	defenderID := msg.Attr("defender")

	h.ui.Post(func() {
		h.gui.ShowCaptureGoodsDialog(unit, goods, defenderID)
	})
	return nil, nil
}

// chooseFoundingFather asks the user to elect a founding father. The
// choice is returned asynchronously.
func (h *InGameHandler) chooseFoundingFather(msg *messages.Message) (*messages.Message, error) {
	var fatherIDs []string
	for _, child := range msg.Children {
		if child.Tag == "foundingFather" && child.ID() != "" {
			fatherIDs = append(fatherIDs, child.ID())
		}
	}
	h.ui.Post(func() {
		h.gui.ShowChooseFoundingFatherDialog(fatherIDs)
	})
	return nil, nil
}

// monarchAction displays a monarch demand or gift. The response, when
// one is needed, is returned asynchronously.
func (h *InGameHandler) monarchAction(msg *messages.Message) (*messages.Message, error) {
	action := msg.Attr("action")
	template := msg.Attr("template")
	monarchKey := msg.Attr("monarch")
	h.ui.Post(func() {
		h.gui.ShowMonarchDialog(action, template, monarchKey)
	})
	return nil, nil
}

// newLandName asks the user to name the new land. The name is
// returned asynchronously.
func (h *InGameHandler) newLandName(msg *messages.Message) (*messages.Message, error) {
	defaultName := msg.Attr("newLandName")
	unit := h.game.GetUnit(msg.Attr("unit"))
	if unit == nil || unit.Owner != h.session.MyPlayerID() ||
		defaultName == "" || unit.Location == "" {
		return nil, nil
	}
	h.ui.Post(func() {
		h.ctl.NewLandName(defaultName, unit)
	})
	return nil, nil
}

// newRegionName asks the user to name a newly discovered region. The
// name is returned asynchronously.
func (h *InGameHandler) newRegionName(msg *messages.Message) (*messages.Message, error) {
	region := h.game.GetRegion(msg.Attr("region"))
	defaultName := msg.Attr("newRegionName")
	if region == nil || defaultName == "" {
		return nil, nil
	}
	tile := h.game.GetTile(msg.Attr("tile"))
	unit := h.game.GetUnit(msg.Attr("unit"))
	h.ui.Post(func() {
		h.ctl.NewRegionName(region, defaultName, tile, unit)
	})
	return nil, nil
}

// firstContact announces the first meeting with a native nation.
func (h *InGameHandler) firstContact(msg *messages.Message) (*messages.Message, error) {
	player := h.game.GetPlayer(msg.Attr("player"))
	if player == nil || player.ID() != h.session.MyPlayerID() {
		log.Warn("firstContact with bad player: %s", msg.Attr("player"))
		return nil, nil
	}
	other := h.game.GetPlayer(msg.Attr("other"))
	if other == nil || other == player || !other.Native {
		log.Warn("firstContact with bad other player: %s", msg.Attr("other"))
		return nil, nil
	}
	tile := h.game.GetTile(msg.Attr("tile"))
	if tile != nil && tile.Owner != other.ID() {
		log.Warn("firstContact with bad tile: %s", msg.Attr("tile"))
		return nil, nil
	}
	camps := msg.IntAttr("camps")

	h.ui.Post(func() {
		h.gui.ShowFirstContactDialog(player, other, tile, camps)
	})
	return nil, nil
}

// fountainOfYouth asks the user to choose migrants. A non-positive or
// unparsable count safely signals a no-op.
func (h *InGameHandler) fountainOfYouth(msg *messages.Message) (*messages.Message, error) {
	n := msg.IntAttr("migrants")
	if n <= 0 {
		log.Warn("Invalid migrants attribute: %s", msg.Attr("migrants"))
		return nil, nil
	}
	h.ui.Post(func() {
		h.ctl.FountainOfYouth(n)
	})
	return nil, nil
}
