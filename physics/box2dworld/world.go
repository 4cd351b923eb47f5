package box2dworld

import (
	"github.com/ByteArena/box2d"
	"github.com/jasontodev/NoxusIoniaRL/common/types"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

const (
	velocityIterations = 8
	positionIterations = 3
)

type Options struct {
	AgentDensity    float64
	AgentFriction   float64
	ObstacleDamping float64 // linear damping applied to pushed obstacles
	Bounds          *arena.Bounds
}

func DefaultOptions() Options {
	return Options{
		AgentDensity:    1,
		AgentFriction:   0,
		ObstacleDamping: 2,
	}
}

// World is a top-down, zero gravity box2d world; it implements arena.PhysicalWorld.
type World struct {
	world   *box2d.B2World
	options Options
	ground  *box2d.B2Body
	bodies  int // agents and obstacles, ground excluded
}

func NewWorld(options Options) *World {
	gravity := box2d.MakeB2Vec2(0.0, 0.0) // gravity 0: the simulation is seen from the top
	world := box2d.MakeB2World(gravity)

	w := &World{
		world:   &world,
		options: options,
	}

	if options.Bounds != nil {
		w.ground = w.newGround(*options.Bounds)
	}

	return w
}

func (w *World) GetB2World() *box2d.B2World {
	return w.world
}

func (w *World) BodyCount() int {
	return w.bodies
}

func (w *World) newGround(bounds arena.Bounds) *box2d.B2Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := w.world.CreateBody(&bodydef)

	vertices := []box2d.B2Vec2{
		box2d.MakeB2Vec2(bounds.Min.X, bounds.Min.Z),
		box2d.MakeB2Vec2(bounds.Max.X, bounds.Min.Z),
		box2d.MakeB2Vec2(bounds.Max.X, bounds.Max.Z),
		box2d.MakeB2Vec2(bounds.Min.X, bounds.Max.Z),
	}

	utils.Assert(bounds.Max.X > bounds.Min.X && bounds.Max.Z > bounds.Min.Z, "arena bounds are empty")

	shape := box2d.MakeB2ChainShape()
	shape.CreateLoop(vertices, len(vertices))
	body.CreateFixture(&shape, 0.0)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.Ground,
		"ground",
	))

	return body
}

func (w *World) NewAgentBody(id string, position vector.Vector2, orientation float64, radius float64) arena.Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Angle = orientation
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := w.world.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = w.options.AgentDensity
	fixturedef.Friction = w.options.AgentFriction
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.Agent,
		id,
	))
	body.SetBullet(false)
	w.bodies++

	return &Body{body: body}
}

func (w *World) NewObstacleBody(id string, position vector.Vector2, halfSize float64, mass float64) arena.Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = true
	bodydef.FixedRotation = true

	body := w.world.CreateBody(&bodydef)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(halfSize, halfSize)

	// density chosen so the box weighs mass kilograms
	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Density = mass / (4 * halfSize * halfSize)
	body.CreateFixtureFromDef(&fixturedef)
	body.SetLinearDamping(w.options.ObstacleDamping)
	body.SetUserData(types.MakePhysicalBodyDescriptor(
		types.PhysicalBodyDescriptorType.Obstacle,
		id,
	))
	w.bodies++

	return &Body{body: body}
}

func (w *World) DestroyBody(body arena.Body) {
	b, ok := body.(*Body)
	if !ok || b.body == nil {
		return
	}

	w.world.DestroyBody(b.body)
	b.body = nil
	w.bodies--
}

func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	w.world.Step(dt, velocityIterations, positionIterations)
}
