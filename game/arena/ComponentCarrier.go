package arena

import "github.com/bytearena/ecs"

type Carrier struct {
	capacity int
	items    []ecs.EntityID
}

func NewCarrier(capacity int) *Carrier {
	return &Carrier{
		capacity: capacity,
		items:    make([]ecs.EntityID, 0, capacity),
	}
}

func (game ArenaGame) CastCarrier(data interface{}) *Carrier {
	return data.(*Carrier)
}

func (c Carrier) GetCarried() int {
	return len(c.items)
}

func (c Carrier) GetCapacity() int {
	return c.capacity
}

func (c Carrier) IsFull() bool {
	return len(c.items) >= c.capacity
}

func (c *Carrier) take(item ecs.EntityID) {
	c.items = append(c.items, item)
}

func (c *Carrier) release() []ecs.EntityID {
	items := c.items
	c.items = make([]ecs.EntityID, 0, c.capacity)
	return items
}
