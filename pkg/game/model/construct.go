package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// NewFromPayload constructs a game object from an inline payload,
// dispatching on the payload tag.
func NewFromPayload(payload *messages.Message) (Object, error) {
	switch Kind(payload.Tag) {
	case KindPlayer:
		return NewPlayerFromPayload(payload)
	case KindUnit:
		return NewUnitFromPayload(payload)
	case KindTile:
		return NewTileFromPayload(payload)
	case KindColony:
		return NewColonyFromPayload(payload)
	case KindRegion:
		return NewRegionFromPayload(payload)
	default:
		return nil, fmt.Errorf("unknown object payload tag: %s", payload.Tag)
	}
}
