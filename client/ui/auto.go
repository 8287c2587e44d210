// Package ui provides frontends for the message handlers. The
// AutoFrontend answers every prompt from a fixed policy, which is
// enough to keep a session alive headless and to soak-test the
// protocol against a live server.
package ui

import (
	"github.com/castlegate/frontier/client/control"
	"github.com/castlegate/frontier/client/gui"
	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/messages"
)

// Policy holds the canned decisions of an AutoFrontend.
type Policy struct {
	// AnimationSpeed is reported for every unit. Zero skips animations.
	AnimationSpeed int
	// AcceptDemands accepts native demands instead of refusing them.
	AcceptDemands bool
	// AcceptAgreements accepts diplomatic proposals as offered.
	AcceptAgreements bool
}

// AutoFrontend is a headless presentation layer and controller.
type AutoFrontend struct {
	policy Policy

	activeUnitID string
}

var _ gui.GUI = (*AutoFrontend)(nil)
var _ control.Controller = (*AutoFrontend)(nil)

// NewAutoFrontend creates a frontend answering prompts per the policy.
func NewAutoFrontend(policy Policy) *AutoFrontend {
	return &AutoFrontend{policy: policy}
}

func (f *AutoFrontend) AnimationSpeed(unit *model.Unit) int {
	return f.policy.AnimationSpeed
}

func (f *AutoFrontend) AnimateUnitMove(unit *model.Unit, oldTile, newTile *model.Tile) {
	log.Debug("Unit %s moves %s -> %s", unit.ID(), oldTile.ID(), newTile.ID())
}

func (f *AutoFrontend) AnimateUnitAttack(attacker, defender *model.Unit, attackerTile, defenderTile *model.Tile, success bool) {
	log.Debug("Unit %s attacks %s, success=%t", attacker.ID(), defender.ID(), success)
}

func (f *AutoFrontend) Refresh()       {}
func (f *AutoFrontend) RequestFocus()  {}
func (f *AutoFrontend) UpdateMenuBar() {}
func (f *AutoFrontend) CloseMenus()    {}

func (f *AutoFrontend) InvalidateObservableTiles() {
	log.Trace("Observable tiles invalidated")
}

func (f *AutoFrontend) ActiveUnitID() string {
	return f.activeUnitID
}

func (f *AutoFrontend) DeselectActiveUnit() {
	f.activeUnitID = ""
}

func (f *AutoFrontend) DisplayChat(player *model.Player, message string, private bool) {
	sender := "unknown"
	if player != nil {
		sender = player.Name
	}
	log.Info("Chat from %s: %s", sender, message)
}

func (f *AutoFrontend) ShowErrorMessage(messageID, message string) {
	log.Warn("Server error %s: %s", messageID, message)
}

func (f *AutoFrontend) ShowChooseFoundingFatherDialog(fatherIDs []string) {
	if len(fatherIDs) == 0 {
		return
	}
	log.Info("Electing founding father %s", fatherIDs[0])
}

func (f *AutoFrontend) ShowFirstContactDialog(player, other *model.Player, tile *model.Tile, settlementCount int) {
	log.Info("First contact with %s (%d settlements)", other.Nation, settlementCount)
}

func (f *AutoFrontend) ShowCaptureGoodsDialog(unit *model.Unit, goods []model.Goods, defenderID string) {
	for _, g := range goods {
		log.Info("Looting %d %s with %s", g.Amount, g.Type, unit.ID())
	}
}

func (f *AutoFrontend) ShowMonarchDialog(action, template, monarchKey string) {
	log.Info("Monarch action %s", action)
}

func (f *AutoFrontend) ShowVictoryDialog() {
	log.Info("Victory")
}

func (f *AutoFrontend) ShowSpyColonyPanel(tile *model.Tile, restore func()) {
	log.Info("Spy report for tile %s: %d units", tile.ID(), len(tile.Units))
	restore()
}

func (f *AutoFrontend) DisplayModelMessages() {}

func (f *AutoFrontend) Reconnect() {
	log.Info("Server requested reconnect")
}

func (f *AutoFrontend) Disconnect() {
	log.Info("Disconnected by server")
}

func (f *AutoFrontend) NewTurn(turn int) {
	log.Info("Turn %d", turn)
}

func (f *AutoFrontend) SetDead(player *model.Player) {
	log.Info("Player %s eliminated", player.ID())
}

func (f *AutoFrontend) SetStance(stance model.Stance, first, second *model.Player) {
	log.Info("Stance between %s and %s is now %s", first.ID(), second.ID(), stance)
}

func (f *AutoFrontend) DisplayHighScores(highScore bool) {
	log.Info("Game over, high score: %t", highScore)
}

func (f *AutoFrontend) FountainOfYouth(migrants int) {
	log.Info("Fountain of youth: %d migrants", migrants)
}

func (f *AutoFrontend) NewLandName(defaultName string, unit *model.Unit) {
	log.Info("Naming new land %s", defaultName)
}

func (f *AutoFrontend) NewRegionName(region *model.Region, defaultName string, tile *model.Tile, unit *model.Unit) {
	log.Info("Naming region %s", defaultName)
}

func (f *AutoFrontend) IndianDemand(unit *model.Unit, colony *model.Colony, goodsType string, amount int) bool {
	log.Info("Demand of %d %s against %s: accepted=%t", amount, goodsType, colony.ID(), f.policy.AcceptDemands)
	return f.policy.AcceptDemands
}

func (f *AutoFrontend) Diplomacy(our, other model.Object, agreement *messages.Message) *messages.Message {
	if !f.policy.AcceptAgreements {
		log.Info("Refusing agreement with %s", other.ID())
		return nil
	}
	log.Info("Accepting agreement with %s", other.ID())
	accepted := agreement.Copy()
	accepted.SetAttr("status", "accept")
	return accepted
}
