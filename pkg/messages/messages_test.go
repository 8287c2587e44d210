package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Attrs(t *testing.T) {
	m := New(TagAnimateMove, "unit", "unit:1", "turn", "12", "flush", "true")

	assert.Equal(t, "unit:1", m.Attr("unit"))
	assert.Equal(t, "", m.Attr("missing"))
	assert.Equal(t, 12, m.IntAttr("turn"))
	assert.Equal(t, MinInt, m.IntAttr("unit"))
	assert.Equal(t, MinInt, m.IntAttr("missing"))
	assert.True(t, m.BoolAttr("flush"))
	assert.False(t, m.BoolAttr("turn"))
}

func TestMessage_ChildByID(t *testing.T) {
	m := New(TagUpdate).Add(
		New("unit", "id", "unit:1"),
		New("tile", "id", "tile:4"),
	)

	child := m.ChildByID("tile:4")
	assert.NotNil(t, child)
	assert.Equal(t, "tile", child.Tag)
	assert.Nil(t, m.ChildByID("tile:9"))
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name    string
		replies []*Message
		want    func(t *testing.T, got *Message)
	}{
		{
			name:    "empty",
			replies: nil,
			want: func(t *testing.T, got *Message) {
				assert.Nil(t, got)
			},
		},
		{
			name:    "all nil entries dropped",
			replies: []*Message{nil, nil},
			want: func(t *testing.T, got *Message) {
				assert.Nil(t, got)
			},
		},
		{
			name:    "single reply returned as-is",
			replies: []*Message{nil, New(TagIndianDemand, "result", "true")},
			want: func(t *testing.T, got *Message) {
				assert.Equal(t, TagIndianDemand, got.Tag)
				assert.Equal(t, "true", got.Attr("result"))
			},
		},
		{
			name: "multiple replies preserve order, nils dropped",
			replies: []*Message{
				New(TagIndianDemand, "result", "false"),
				nil,
				New(TagDiplomacy),
			},
			want: func(t *testing.T, got *Message) {
				assert.Equal(t, TagMultiple, got.Tag)
				assert.Len(t, got.Children, 2)
				assert.Equal(t, TagIndianDemand, got.Children[0].Tag)
				assert.Equal(t, TagDiplomacy, got.Children[1].Tag)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Collapse(tt.replies))
		})
	}
}

func TestMessage_Copy(t *testing.T) {
	m := New(TagIndianDemand, "unit", "unit:1", "colony", "colony:2")
	c := m.Copy()
	c.SetAttr("result", "true")

	assert.Equal(t, "", m.Attr("result"))
	assert.Equal(t, "true", c.Attr("result"))
	assert.Equal(t, m.Attr("unit"), c.Attr("unit"))
}

func TestSerializeMessage_RoundTrip(t *testing.T) {
	m := New(TagIndianDemand,
		"unit", "unit:1",
		"colony", "colony:2",
		"type", "goods.food",
		"amount", "25",
		"result", "true",
	).Add(New("goods", "id", "goods:9"))

	b, err := SerializeMessage(m)
	assert.NoError(t, err)

	got, err := DeserializeMessage(b)
	assert.NoError(t, err)
	assert.Equal(t, m.Tag, got.Tag)
	assert.Equal(t, m.Attrs, got.Attrs)
	assert.Len(t, got.Children, 1)
	assert.Equal(t, "goods:9", got.Children[0].ID())
}

func TestDeserializeMessage_Garbage(t *testing.T) {
	_, err := DeserializeMessage([]byte("not a frame"))
	assert.Error(t, err)
}
