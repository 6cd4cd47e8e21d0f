package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dinosaur/config"
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeReporter
)

// PhysicsSystem owns the Chipmunk space. Each update it creates bodies for
// new entities, steps the space once, copies body positions back into
// transforms and hands the step's contact events to the world.
type PhysicsSystem struct {
	space         *cp.Space
	timestep      float64
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	pending  []ecs.ContactEvent
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem(cfg config.PhysicsConfig) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = uint(max(cfg.Iterations, 1))
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	timestep := cfg.Timestep
	if timestep <= 0 {
		timestep = 1.0 / 60.0
	}
	return &PhysicsSystem{
		space:    space,
		timestep: timestep,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.pending = ps.pending[:0]
	ps.space.Step(ps.timestep)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewWildcardCollisionHandler(collisionTypeReporter)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordContact(arb, true)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordContact(arb, false)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) recordContact(arb *cp.Arbiter, started bool) {
	shapeA, shapeB := arb.Shapes()
	ps.pending = append(ps.pending, ecs.ContactEvent{
		A:       shapeEntity(shapeA),
		B:       shapeEntity(shapeB),
		Started: started,
	})
}

func shapeEntity(shape *cp.Shape) ecs.Entity {
	if shape == nil {
		return 0
	}
	if e, ok := shape.UserData.(ecs.Entity); ok {
		return e
	}
	return 0
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	queue := w.Contacts()
	for _, ev := range ps.pending {
		queue.Push(ev)
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		gravityScale := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			gravityScale = gs.Scale
		}

		info := ps.createBodyInfo(e, transform, bodyComp, gravityScale)
		if info == nil {
			continue
		}
		ps.entities[e] = info
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody, gravityScale float64) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	collisionType := collisionTypeSolid
	if bodyComp.ReportContacts {
		collisionType = collisionTypeReporter
	}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionType)
		shape.UserData = e
		ps.space.AddShape(shape)

		bodyComp.Body = ps.space.StaticBody
		bodyComp.Shape = shape
		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.LockRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.UserData = e

	if gravityScale != 1 {
		scale := gravityScale
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(scale), damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionType)
	shape.UserData = e

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	bodyComp.Body = body
	bodyComp.Shape = shape
	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		for _, shape := range info.shapes {
			if shape != nil {
				ps.space.RemoveShape(shape)
			}
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
