package model

import (
	"fmt"

	"github.com/castlegate/frontier/pkg/messages"
)

// Region is the client replica of a named map region.
type Region struct {
	Identifier string
	Name       string
	Type       string
}

// NewRegionFromPayload constructs a region from a wire payload.
func NewRegionFromPayload(payload *messages.Message) (*Region, error) {
	id := payload.ID()
	if id == "" {
		return nil, fmt.Errorf("region payload missing id")
	}
	r := &Region{Identifier: id}
	if err := r.ApplyPayload(payload); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Region) ID() string { return r.Identifier }

func (r *Region) Kind() Kind { return KindRegion }

func (r *Region) ApplyPayload(payload *messages.Message) error {
	if v := payload.Attr("name"); v != "" {
		r.Name = v
	}
	if v := payload.Attr("type"); v != "" {
		r.Type = v
	}
	return nil
}
