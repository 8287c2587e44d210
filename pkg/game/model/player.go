package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// ModelMessage is a queued notification attached to a player,
// sourced from some game object.
type ModelMessage struct {
	SourceID string
	Template string
}

// Player is the client replica of a player in the game.
type Player struct {
	Features

	Identifier string
	Name       string
	Nation     string
	Native     bool
	AI         bool
	Dead       bool

	Fathers     []string
	Stances     map[string]Stance
	History     []string
	LastSales   []string
	TradeRoutes []string
	Messages    []ModelMessage

	// canSeeTilesValid is false when the player's observable-tile
	// cache needs recomputing before the next render.
	canSeeTilesValid bool
}

// NewPlayerFromPayload constructs a player from a wire payload.
func NewPlayerFromPayload(payload *messages.Message) (*Player, error) {
	id := payload.ID()
	if id == "" {
		return nil, fmt.Errorf("player payload missing id")
	}
	p := &Player{Identifier: id, Stances: make(map[string]Stance)}
	if err := p.ApplyPayload(payload); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) ID() string { return p.Identifier }

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) ApplyPayload(payload *messages.Message) error {
	if v := payload.Attr("username"); v != "" {
		p.Name = v
	}
	if v := payload.Attr("nation"); v != "" {
		p.Nation = v
	}
	if v := payload.Attr("native"); v != "" {
		p.Native = v == "true"
	}
	if v := payload.Attr("ai"); v != "" {
		p.AI = v == "true"
	}
	if v := payload.Attr("dead"); v != "" {
		p.Dead = v == "true"
	}
	return nil
}

// Owns reports whether the player owns the given object.
func (p *Player) Owns(o Ownable) bool {
	return o != nil && o.OwnerID() == p.Identifier
}

// InvalidateCanSeeTiles marks the observable-tile cache stale. The
// recomputation itself happens lazily before the next render.
func (p *Player) InvalidateCanSeeTiles() {
	p.canSeeTilesValid = false
}

// RevalidateCanSeeTiles marks the cache fresh after a recomputation.
func (p *Player) RevalidateCanSeeTiles() {
	p.canSeeTilesValid = true
}

// CanSeeTilesValid reports whether the observable-tile cache is fresh.
func (p *Player) CanSeeTilesValid() bool {
	return p.canSeeTilesValid
}

func (p *Player) AddFather(id string) {
	p.Fathers = append(p.Fathers, id)
}

func (p *Player) AddHistory(event string) {
	p.History = append(p.History, event)
}

func (p *Player) AddLastSale(sale string) {
	p.LastSales = append(p.LastSales, sale)
}

func (p *Player) AddTradeRoute(route string) {
	p.TradeRoutes = append(p.TradeRoutes, route)
}

func (p *Player) AddModelMessage(m ModelMessage) {
	p.Messages = append(p.Messages, m)
}

// DivertModelMessages redirects queued messages sourced from one
// object to another, used when the source object is removed.
func (p *Player) DivertModelMessages(fromID, toID string) {
	for i := range p.Messages {
		if p.Messages[i].SourceID == fromID {
			p.Messages[i].SourceID = toID
		}
	}
}

// SetStance records the stance towards another player.
func (p *Player) SetStance(otherID string, stance Stance) {
	if p.Stances == nil {
		p.Stances = make(map[string]Stance)
	}
	p.Stances[otherID] = stance
}
