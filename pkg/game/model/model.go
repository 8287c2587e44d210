package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// Kind identifies the concrete type of a game object.
type Kind string

const (
	KindPlayer Kind = "player"
	KindUnit   Kind = "unit"
	KindTile   Kind = "tile"
	KindColony Kind = "colony"
	KindRegion Kind = "region"
)

// Object is a client-side replica of a server-authoritative game
// object, keyed by identifier.
type Object interface {
	ID() string
	Kind() Kind
	// ApplyPayload updates the object in place from a wire payload.
	// Attributes absent from the payload leave the current value.
	ApplyPayload(payload *messages.Message) error
}

// Ownable is an object with an owning player.
type Ownable interface {
	OwnerID() string
}

// Features is the ability/modifier set carried by most game objects.
type Features struct {
	Abilities map[string]bool
	Modifiers map[string]bool
}

func (f *Features) AddAbility(id string) {
	if f.Abilities == nil {
		f.Abilities = make(map[string]bool)
	}
	f.Abilities[id] = true
}

func (f *Features) RemoveAbility(id string) {
	delete(f.Abilities, id)
}

func (f *Features) AddModifier(id string) {
	if f.Modifiers == nil {
		f.Modifiers = make(map[string]bool)
	}
	f.Modifiers[id] = true
}

func (f *Features) RemoveModifier(id string) {
	delete(f.Modifiers, id)
}

// FeatureCarrier is implemented by objects that can gain and lose
// abilities and modifiers at runtime.
type FeatureCarrier interface {
	AddAbility(id string)
	RemoveAbility(id string)
	AddModifier(id string)
	RemoveModifier(id string)
}

// Goods is a quantity of a tradeable goods type.
type Goods struct {
	Type   string
	Amount int
}

// GoodsFromPayload reads a goods payload.
func GoodsFromPayload(payload *messages.Message) (Goods, error) {
	goodsType := payload.Attr("type")
	if goodsType == "" {
		return Goods{}, fmt.Errorf("goods payload missing type")
	}
	amount := payload.IntAttr("amount")
	if amount == messages.MinInt {
		amount = 0
	}
	return Goods{Type: goodsType, Amount: amount}, nil
}

// Stance is the diplomatic stance between two players.
type Stance string

const (
	StanceUncontacted Stance = "uncontacted"
	StancePeace       Stance = "peace"
	StanceAlliance    Stance = "alliance"
	StanceWar         Stance = "war"
	StanceCeaseFire   Stance = "ceaseFire"
)

// ParseStance parses a stance attribute value.
func ParseStance(s string) (Stance, error) {
	switch Stance(s) {
	case StanceUncontacted, StancePeace, StanceAlliance, StanceWar, StanceCeaseFire:
		return Stance(s), nil
	default:
		return "", fmt.Errorf("unknown stance: %s", s)
	}
}
