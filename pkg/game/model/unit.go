package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// Unit is the client replica of a mobile unit.
type Unit struct {
	Features

	Identifier string
	Type       string
	Owner      string
	Location   string
	Moves      int
}

// NewUnitFromPayload constructs a unit from a wire payload.
func NewUnitFromPayload(payload *messages.Message) (*Unit, error) {
	id := payload.ID()
	if id == "" {
		return nil, fmt.Errorf("unit payload missing id")
	}
	u := &Unit{Identifier: id}
	if err := u.ApplyPayload(payload); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Unit) ID() string { return u.Identifier }

func (u *Unit) Kind() Kind { return KindUnit }

func (u *Unit) ApplyPayload(payload *messages.Message) error {
	if v := payload.Attr("type"); v != "" {
		u.Type = v
	}
	if v := payload.Attr("owner"); v != "" {
		u.Owner = v
	}
	if v := payload.Attr("location"); v != "" {
		u.Location = v
	}
	if n := payload.IntAttr("moves"); n != messages.MinInt {
		u.Moves = n
	}
	return nil
}

func (u *Unit) OwnerID() string { return u.Owner }

// LocationID is the identifier of the tile or carrier holding the unit.
func (u *Unit) LocationID() string { return u.Location }
