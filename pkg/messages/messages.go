package messages

import (
	"strconv"
)

const (
	// MessageBufferSize represents the maximum size of a message frame
	MessageBufferSize = 65536
)

// Inbound message tags
const (
	TagDisconnect           = "disconnect"
	TagAddObject            = "addObject"
	TagAddPlayer            = "addPlayer"
	TagAnimateAttack        = "animateAttack"
	TagAnimateMove          = "animateMove"
	TagChat                 = "chat"
	TagChooseFoundingFather = "chooseFoundingFather"
	TagCloseMenus           = "closeMenus"
	TagDiplomacy            = "diplomacy"
	TagError                = "error"
	TagFeatureChange        = "featureChange"
	TagFirstContact         = "firstContact"
	TagFountainOfYouth      = "fountainOfYouth"
	TagGameEnded            = "gameEnded"
	TagIndianDemand         = "indianDemand"
	TagLootCargo            = "lootCargo"
	TagMonarchAction        = "monarchAction"
	TagMultiple             = "multiple"
	TagNewLandName          = "newLandName"
	TagNewRegionName        = "newRegionName"
	TagNewTurn              = "newTurn"
	TagReconnect            = "reconnect"
	TagRemove               = "remove"
	TagSetAI                = "setAI"
	TagSetCurrentPlayer     = "setCurrentPlayer"
	TagSetDead              = "setDead"
	TagSetStance            = "setStance"
	TagSpyResult            = "spyResult"
	TagUpdate               = "update"
)

// MinInt is the sentinel returned by IntAttr for missing or
// unparsable numeric attributes.
const MinInt = -int(^uint(0)>>1) - 1

// Message is a wire envelope: a tag, named string attributes and an
// ordered sequence of child messages. It is not modified after it is
// received; handlers that need to reply with a variant of an inbound
// message build a copy.
type Message struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Message        `json:"children,omitempty"`
}

// New creates a message with the given tag and alternating
// attribute key/value pairs.
func New(tag string, attrPairs ...string) *Message {
	m := &Message{
		Tag:   tag,
		Attrs: make(map[string]string),
	}
	for i := 0; i+1 < len(attrPairs); i += 2 {
		m.Attrs[attrPairs[i]] = attrPairs[i+1]
	}
	return m
}

// Add appends child messages and returns the receiver.
func (m *Message) Add(children ...*Message) *Message {
	m.Children = append(m.Children, children...)
	return m
}

// Attr returns the named attribute, or "" when absent.
func (m *Message) Attr(name string) string {
	if m.Attrs == nil {
		return ""
	}
	return m.Attrs[name]
}

// SetAttr sets an attribute value.
func (m *Message) SetAttr(name, value string) {
	if m.Attrs == nil {
		m.Attrs = make(map[string]string)
	}
	m.Attrs[name] = value
}

// IntAttr returns the integer value of an attribute, or MinInt when
// the attribute is missing or unparsable.
func (m *Message) IntAttr(name string) int {
	n, err := strconv.Atoi(m.Attr(name))
	if err != nil {
		return MinInt
	}
	return n
}

// BoolAttr returns true when the attribute is the string "true".
func (m *Message) BoolAttr(name string) bool {
	return m.Attr(name) == "true"
}

// ID returns the object identifier attribute of the message.
func (m *Message) ID() string {
	return m.Attr("id")
}

// ChildByID returns the first child carrying the given object
// identifier, or nil when none matches.
func (m *Message) ChildByID(id string) *Message {
	for _, child := range m.Children {
		if child.ID() == id {
			return child
		}
	}
	return nil
}

// Copy returns a shallow copy of the message with its own attribute
// map. Children are shared; they are never mutated.
func (m *Message) Copy() *Message {
	c := &Message{
		Tag:      m.Tag,
		Attrs:    make(map[string]string, len(m.Attrs)),
		Children: m.Children,
	}
	for k, v := range m.Attrs {
		c.Attrs[k] = v
	}
	return c
}

// Collapse folds a sequence of replies into a single envelope. Nil
// entries are dropped. An empty result collapses to nil, a single
// reply is returned as-is, anything more is wrapped in a "multiple"
// message preserving order.
func Collapse(replies []*Message) *Message {
	kept := make([]*Message, 0, len(replies))
	for _, r := range replies {
		if r != nil {
			kept = append(kept, r)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return &Message{Tag: TagMultiple, Children: kept}
	}
}
