package control

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/messages"
)

// resolveUnit looks a unit up in the object store, materializing it
// from an inline child payload when the server references a unit the
// client has not seen yet. Returns nil when the unit is neither known
// nor embedded. A materialized unit without a location is a
// server/client desync and fails loudly rather than entering the
// store half-built.
func (h *InGameHandler) resolveUnit(msg *messages.Message, id string) (*model.Unit, error) {
	// An absent reference resolves to nothing; without this an empty id
	// would match the first id-less child below.
	if id == "" {
		return nil, nil
	}
	if u := h.game.GetUnit(id); u != nil {
		return u, nil
	}
	child := msg.ChildByID(id)
	if child == nil {
		return nil, nil
	}
	obj, err := model.NewFromPayload(child)
	if err != nil {
		return nil, fmt.Errorf("failed to construct unit %s: %v", id, err)
	}
	u, ok := obj.(*model.Unit)
	if !ok {
		return nil, fmt.Errorf("embedded payload for %s is not a unit: %s", id, child.Tag)
	}
	if u.Location == "" {
		return nil, fmt.Errorf("null location for constructed unit: %s", id)
	}
	h.game.Insert(u)
	return u, nil
}

// touchesVisibility reports whether a change to the given object can
// alter which tiles and units the local player observes.
func (h *InGameHandler) touchesVisibility(obj model.Object) bool {
	myID := h.session.MyPlayerID()
	switch o := obj.(type) {
	case *model.Player:
		return o.ID() == myID
	case *model.Unit:
		return o.Owner == myID
	case *model.Colony:
		return o.Owner == myID
	}
	return false
}

// invalidateVisibility marks the local player's observable-tile cache
// stale and tells the presentation layer to recompute it. Callers
// invoke it at most once per top-level message.
func (h *InGameHandler) invalidateVisibility() {
	if p := h.game.GetPlayer(h.session.MyPlayerID()); p != nil {
		p.InvalidateCanSeeTiles()
	}
	h.gui.InvalidateObservableTiles()
}
