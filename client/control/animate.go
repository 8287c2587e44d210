package control

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/messages"
)

// animateAttack drives the attack animation. It changes no game
// state; the outcome arrives separately in an update. The payload is
// load-bearing for the visual only, so a missing or unresolvable
// reference means the two sides have diverged and is fatal.
func (h *InGameHandler) animateAttack(msg *messages.Message) (*messages.Message, error) {
	attacker, err := h.requireAnimationUnit(msg, "attacker")
	if err != nil {
		return nil, err
	}
	// With animation off, display nothing and skip the remaining
	// resolution so the other player's moves go by as fast as possible.
	if h.gui.AnimationSpeed(attacker) <= 0 {
		return nil, nil
	}

	defender, err := h.requireAnimationUnit(msg, "defender")
	if err != nil {
		return nil, err
	}
	attackerTile, err := h.requireAnimationTile(msg, "attackerTile")
	if err != nil {
		return nil, err
	}
	defenderTile, err := h.requireAnimationTile(msg, "defenderTile")
	if err != nil {
		return nil, err
	}
	success := msg.BoolAttr("success")

	// The result of the attack may already be queued behind this
	// message; the animation must finish before it is processed.
	h.ui.PostAndWait(func() {
		h.gui.AnimateUnitAttack(attacker, defender, attackerTile, defenderTile, success)
		h.gui.Refresh()
	})
	return nil, nil
}

// animateMove drives the movement animation. The position change
// itself arrives in a separate update.
func (h *InGameHandler) animateMove(msg *messages.Message) (*messages.Message, error) {
	unit, err := h.requireAnimationUnit(msg, "unit")
	if err != nil {
		return nil, err
	}
	if h.gui.AnimationSpeed(unit) <= 0 {
		return nil, nil
	}

	oldTile, err := h.requireAnimationTile(msg, "oldTile")
	if err != nil {
		return nil, err
	}
	newTile, err := h.requireAnimationTile(msg, "newTile")
	if err != nil {
		return nil, err
	}

	h.ui.PostAndWait(func() {
		h.gui.AnimateUnitMove(unit, oldTile, newTile)
		h.gui.Refresh()
	})
	return nil, nil
}

func (h *InGameHandler) requireAnimationUnit(msg *messages.Message, attr string) (*model.Unit, error) {
	id := msg.Attr(attr)
	if id == "" {
		return nil, fmt.Errorf("animation missing %s attribute", attr)
	}
	unit, err := h.resolveUnit(msg, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("animation omitted %s: %s", attr, id)
	}
	return unit, nil
}

func (h *InGameHandler) requireAnimationTile(msg *messages.Message, attr string) (*model.Tile, error) {
	id := msg.Attr(attr)
	if id == "" {
		return nil, fmt.Errorf("animation missing %s attribute", attr)
	}
	tile := h.game.GetTile(id)
	if tile == nil {
		return nil, fmt.Errorf("animation omitted %s: %s", attr, id)
	}
	return tile, nil
}
