package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

type fakeBody struct {
	id          string
	position    vector.Vector2
	velocity    vector.Vector2
	orientation float64
	mass        float64
	active      bool
	impulses    []vector.Vector2
}

func (b *fakeBody) GetPosition() vector.Vector2 { return b.position }
func (b *fakeBody) SetPosition(p vector.Vector2) { b.position = p }
func (b *fakeBody) GetVelocity() vector.Vector2 { return b.velocity }
func (b *fakeBody) SetVelocity(v vector.Vector2) { b.velocity = v }
func (b *fakeBody) GetOrientation() float64 { return b.orientation }
func (b *fakeBody) SetOrientation(orientation float64) { b.orientation = orientation }
func (b *fakeBody) SetActive(active bool) { b.active = active }

func (b *fakeBody) ApplyImpulse(impulse vector.Vector2) {
	b.impulses = append(b.impulses, impulse)
	b.velocity = b.velocity.Add(impulse.DivScalar(b.mass))
}

// fakeWorld moves active bodies along their velocity, without collisions.
type fakeWorld struct {
	bodies    map[string]*fakeBody
	destroyed int
	steps     int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		bodies: make(map[string]*fakeBody),
	}
}

func (w *fakeWorld) NewAgentBody(id string, position vector.Vector2, orientation float64, radius float64) Body {
	body := &fakeBody{id: id, position: position, orientation: orientation, mass: 1, active: true}
	w.bodies[id] = body
	return body
}

func (w *fakeWorld) NewObstacleBody(id string, position vector.Vector2, halfSize float64, mass float64) Body {
	body := &fakeBody{id: id, position: position, mass: mass, active: true}
	w.bodies[id] = body
	return body
}

func (w *fakeWorld) DestroyBody(body Body) {
	delete(w.bodies, body.(*fakeBody).id)
	w.destroyed++
}

func (w *fakeWorld) Step(dt float64) {
	w.steps++
	for _, body := range w.bodies {
		if body.active {
			body.position = body.position.Add(body.velocity.MultScalar(dt))
		}
	}
}
