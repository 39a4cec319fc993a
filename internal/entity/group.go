package entity

import (
	"github.com/google/uuid"

	"chosenoffset.com/gridshot/internal/render"
)

type member struct {
	id     uuid.UUID
	sprite Sprite
}

// Group is an ordered collection of sprites. Draw order is insertion order.
type Group struct {
	members []member
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{}
}

// Add appends a sprite and returns its handle
func (g *Group) Add(s Sprite) uuid.UUID {
	id := uuid.New()
	g.members = append(g.members, member{id: id, sprite: s})
	return id
}

// Update advances every sprite, then drops those that died during this tick.
// It returns the handles of the dropped sprites in insertion order.
func (g *Group) Update() []uuid.UUID {
	for _, m := range g.members {
		m.sprite.Update()
	}

	var pruned []uuid.UUID
	live := g.members[:0]
	for _, m := range g.members {
		if m.sprite.Alive() {
			live = append(live, m)
		} else {
			pruned = append(pruned, m.id)
		}
	}
	// Release references held past the new length
	for i := len(live); i < len(g.members); i++ {
		g.members[i] = member{}
	}
	g.members = live
	return pruned
}

// Draw renders every sprite in insertion order.
func (g *Group) Draw(dst render.Image) {
	for _, m := range g.members {
		m.sprite.Draw(dst)
	}
}

// Len returns the number of sprites in the group
func (g *Group) Len() int {
	return len(g.members)
}
