// Package gui declares the presentation-layer surface the message
// handlers drive. Implementations own all rendering state; their
// methods are only ever invoked from the interactive context, with
// the exception of AnimationSpeed and ActiveUnitID which are pure
// reads of client options and selection state.
package gui

import (
	"github.com/castlegate/frontier/pkg/game/model"
)

// GUI is the presentation layer consumed by the message handlers.
type GUI interface {
	// AnimationSpeed returns the configured animation speed for the
	// given unit. Zero or less disables animation entirely.
	AnimationSpeed(unit *model.Unit) int
	// AnimateUnitMove plays a unit movement animation and returns
	// when it completes.
	AnimateUnitMove(unit *model.Unit, oldTile, newTile *model.Tile)
	// AnimateUnitAttack plays an attack animation and returns when it
	// completes.
	AnimateUnitAttack(attacker, defender *model.Unit, attackerTile, defenderTile *model.Tile, success bool)

	// Refresh repaints the main canvas.
	Refresh()
	// RequestFocus moves input focus to the main canvas.
	RequestFocus()
	// UpdateMenuBar re-evaluates menu enablement.
	UpdateMenuBar()
	// CloseMenus dismisses any open menu or pending prompt.
	CloseMenus()
	// InvalidateObservableTiles discards the cached set of tiles and
	// units the local player can currently observe.
	InvalidateObservableTiles()

	// ActiveUnitID returns the identifier of the currently selected
	// unit, or "".
	ActiveUnitID() string
	// DeselectActiveUnit clears the unit selection.
	DeselectActiveUnit()

	DisplayChat(player *model.Player, message string, private bool)
	ShowErrorMessage(messageID, message string)
	ShowChooseFoundingFatherDialog(fatherIDs []string)
	ShowFirstContactDialog(player, other *model.Player, tile *model.Tile, settlementCount int)
	ShowCaptureGoodsDialog(unit *model.Unit, goods []model.Goods, defenderID string)
	ShowMonarchDialog(action, template, monarchKey string)
	ShowVictoryDialog()
	// ShowSpyColonyPanel displays the privileged view of a tile and
	// invokes restore when the panel is dismissed.
	ShowSpyColonyPanel(tile *model.Tile, restore func())
}
