package control

import (
	"github.com/castlegate/frontier/pkg/game/model"
	"github.com/castlegate/frontier/pkg/messages"
)

// Controller is the in-game controller the handlers delegate to for
// user decisions and presentation-side session transitions. Decision
// methods block until the user (or a stand-in policy) has chosen;
// they are always invoked from the interactive context.
type Controller interface {
	// DisplayModelMessages shows any queued notifications.
	DisplayModelMessages()
	// Reconnect re-establishes the server connection.
	Reconnect()
	// Disconnect reacts to the server closing the session.
	Disconnect()

	// NewTurn reacts to the turn counter advancing.
	NewTurn(turn int)
	// SetDead reacts to a player being eliminated. The player's state
	// has already been updated when this is called.
	SetDead(player *model.Player)
	// SetStance reacts to a stance change between two players. The
	// players' state has already been updated when this is called.
	SetStance(stance model.Stance, first, second *model.Player)
	// DisplayHighScores shows the end-of-game score list.
	DisplayHighScores(highScore bool)

	// FountainOfYouth asks the user to choose migrants; the choice is
	// sent to the server as a separate outbound message.
	FountainOfYouth(migrants int)
	// NewLandName asks the user to name the new land; the name is
	// sent to the server as a separate outbound message.
	NewLandName(defaultName string, unit *model.Unit)
	// NewRegionName asks the user to name a region; the name is sent
	// to the server as a separate outbound message.
	NewRegionName(region *model.Region, defaultName string, tile *model.Tile, unit *model.Unit)

	// IndianDemand asks the user to accept or refuse a native demand
	// against one of their colonies and returns the decision.
	IndianDemand(unit *model.Unit, colony *model.Colony, goodsType string, amount int) bool
	// Diplomacy asks the user about a proposed trade agreement and
	// returns the accepted agreement payload, or nil when refused.
	Diplomacy(our, other model.Object, agreement *messages.Message) *messages.Message
}
