package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// Tile is the client replica of a map tile. A tile payload may carry
// either the restricted view the player is normally entitled to or a
// privileged view (spy results), both applied the same way.
type Tile struct {
	Features

	Identifier string
	Type       string
	Owner      string
	Region     string
	Colony     string
	// Units are the identifiers of units the current view shows on
	// the tile.
	Units []string
}

// NewTileFromPayload constructs a tile from a wire payload.
func NewTileFromPayload(payload *messages.Message) (*Tile, error) {
	id := payload.ID()
	if id == "" {
		return nil, fmt.Errorf("tile payload missing id")
	}
	t := &Tile{Identifier: id}
	if err := t.ApplyPayload(payload); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tile) ID() string { return t.Identifier }

func (t *Tile) Kind() Kind { return KindTile }

func (t *Tile) ApplyPayload(payload *messages.Message) error {
	if v := payload.Attr("type"); v != "" {
		t.Type = v
	}
	if v := payload.Attr("owner"); v != "" {
		t.Owner = v
	}
	if v := payload.Attr("region"); v != "" {
		t.Region = v
	}
	if v := payload.Attr("colony"); v != "" {
		t.Colony = v
	}
	// A payload that lists units replaces the visible unit set: the
	// view is authoritative for what the player may see.
	if len(payload.Children) > 0 {
		units := make([]string, 0, len(payload.Children))
		for _, child := range payload.Children {
			if child.Tag == "unit" && child.ID() != "" {
				units = append(units, child.ID())
			}
		}
		t.Units = units
	}
	return nil
}

func (t *Tile) OwnerID() string { return t.Owner }
