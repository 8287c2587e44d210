package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// Colony is the client replica of a settlement.
type Colony struct {
	Features

	Identifier string
	Name       string
	Owner      string
	Tile       string
	Population int
}

// NewColonyFromPayload constructs a colony from a wire payload.
func NewColonyFromPayload(payload *messages.Message) (*Colony, error) {
	id := payload.ID()
	if id == "" {
		return nil, fmt.Errorf("colony payload missing id")
	}
	c := &Colony{Identifier: id}
	if err := c.ApplyPayload(payload); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Colony) ID() string { return c.Identifier }

func (c *Colony) Kind() Kind { return KindColony }

func (c *Colony) ApplyPayload(payload *messages.Message) error {
	if v := payload.Attr("name"); v != "" {
		c.Name = v
	}
	if v := payload.Attr("owner"); v != "" {
		c.Owner = v
	}
	if v := payload.Attr("tile"); v != "" {
		c.Tile = v
	}
	if n := payload.IntAttr("population"); n != messages.MinInt {
		c.Population = n
	}
	return nil
}

func (c *Colony) OwnerID() string { return c.Owner }

// LocationID is the identifier of the tile the colony sits on.
func (c *Colony) LocationID() string { return c.Tile }
