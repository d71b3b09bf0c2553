// Package physics wraps a Chipmunk2D space behind opaque collider handles
// and turns its collision callbacks into a per-frame contact queue.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/blocksmash/parameter"
)

// ColliderHandle names one collider and the body that owns it
// Handles are issued in increasing order and never reused within a space
type ColliderHandle uint64

// InvalidCollider is the zero handle, never issued
const InvalidCollider ColliderHandle = 0

// BodyKind selects how a body moves
type BodyKind uint8

const (
	BodyStatic    BodyKind = iota // Never moves
	BodyKinematic                 // Moved by SetNextKinematicPosition, unaffected by forces
	BodyDynamic                   // Integrated from gravity, velocity and contacts
)

// ShapeKind selects collider geometry
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// collisionReporter is the collision type of colliders whose contacts are queued
const collisionReporter cp.CollisionType = 1

// BodyDesc describes a rigid body to create
type BodyDesc struct {
	Kind         BodyKind
	X, Y         float64
	VelX, VelY   float64
	Mass         float64 // Dynamic only, defaults to 1
	GravityScale float64 // Dynamic only, multiplies world gravity, 0 disables gravity
	LockRotation bool
	MaxSpeed     float64 // Dynamic only, 0 = unlimited
}

// ColliderDesc describes the collider attached to a body
type ColliderDesc struct {
	Shape       ShapeKind
	HalfWidth   float64 // Box
	HalfHeight  float64 // Box
	Radius      float64 // Circle
	Friction    float64
	Restitution float64
	// ReportContacts queues every contact this collider takes part in,
	// ordered with this collider first in the pair
	ReportContacts bool
}

type collider struct {
	kind      BodyKind
	body      *cp.Body
	shape     *cp.Shape
	hasTarget bool
	targetX   float64
	targetY   float64
}

// Space owns the physics world
// Not safe for concurrent use; the frame loop is its only caller
type Space struct {
	space      *cp.Space
	colliders  map[ColliderHandle]*collider
	nextHandle ColliderHandle
	contacts   []ContactEvent
}

// NewSpace creates an empty space with the given gravity
func NewSpace(gravityX, gravityY float64, iterations int) *Space {
	s := &Space{
		space:      cp.NewSpace(),
		colliders:  make(map[ColliderHandle]*collider),
		nextHandle: 1,
		contacts:   make([]ContactEvent, 0, parameter.ContactQueueSize),
	}
	s.space.SetGravity(cp.Vector{X: gravityX, Y: gravityY})
	if iterations > 0 {
		s.space.Iterations = uint(iterations)
	}

	handler := s.space.NewWildcardCollisionHandler(collisionReporter)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Shapes()
		s.record(a, b, ContactStarted)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		a, b := arb.Shapes()
		s.record(a, b, ContactStopped)
	}

	return s
}

// Add creates a body with one collider and returns the collider handle
func (s *Space) Add(bd BodyDesc, cd ColliderDesc) ColliderHandle {
	var body *cp.Body
	switch bd.Kind {
	case BodyStatic:
		body = cp.NewStaticBody()
	case BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		mass := bd.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := math.Inf(1)
		if !bd.LockRotation {
			switch cd.Shape {
			case ShapeCircle:
				moment = cp.MomentForCircle(mass, 0, cd.Radius, cp.Vector{})
			default:
				moment = cp.MomentForBox(mass, cd.HalfWidth*2, cd.HalfHeight*2)
			}
		}
		body = cp.NewBody(mass, moment)
		body.SetVelocityUpdateFunc(velocityFunc(bd.GravityScale, bd.MaxSpeed))
	}

	body.SetPosition(cp.Vector{X: bd.X, Y: bd.Y})
	if bd.Kind != BodyStatic {
		body.SetVelocity(bd.VelX, bd.VelY)
	}
	s.space.AddBody(body)

	var shape *cp.Shape
	switch cd.Shape {
	case ShapeCircle:
		shape = cp.NewCircle(body, cd.Radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, cd.HalfWidth*2, cd.HalfHeight*2, 0)
	}
	shape.SetFriction(cd.Friction)
	shape.SetElasticity(cd.Restitution)
	if cd.ReportContacts {
		shape.SetCollisionType(collisionReporter)
	}

	h := s.nextHandle
	s.nextHandle++
	shape.UserData = h
	body.UserData = h
	s.space.AddShape(shape)

	s.colliders[h] = &collider{kind: bd.Kind, body: body, shape: shape}
	return h
}

// velocityFunc applies per-body gravity scaling and an optional speed cap
func velocityFunc(gravityScale, maxSpeed float64) func(*cp.Body, cp.Vector, float64, float64) {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(gravityScale), damping, dt)
		if maxSpeed > 0 {
			v := body.Velocity()
			if v.Length() > maxSpeed {
				body.SetVelocityVector(v.Clamp(maxSpeed))
			}
		}
	}
}

// Remove deletes the collider and its body, returns false for unknown handles
// Contacts the collider was part of are reported as stopped on the next drain
func (s *Space) Remove(h ColliderHandle) bool {
	c, ok := s.colliders[h]
	if !ok {
		return false
	}
	delete(s.colliders, h)
	s.space.RemoveShape(c.shape)
	s.space.RemoveBody(c.body)
	return true
}

// Contains reports whether the handle names a live collider
func (s *Space) Contains(h ColliderHandle) bool {
	_, ok := s.colliders[h]
	return ok
}

// Count returns the number of live colliders
func (s *Space) Count() int {
	return len(s.colliders)
}

// Position returns the body position of a collider
func (s *Space) Position(h ColliderHandle) (x, y float64, ok bool) {
	c, ok := s.colliders[h]
	if !ok {
		return 0, 0, false
	}
	p := c.body.Position()
	return p.X, p.Y, true
}

// Velocity returns the body velocity of a collider
func (s *Space) Velocity(h ColliderHandle) (vx, vy float64, ok bool) {
	c, ok := s.colliders[h]
	if !ok {
		return 0, 0, false
	}
	v := c.body.Velocity()
	return v.X, v.Y, true
}

// SetNextKinematicPosition schedules a kinematic body to arrive at (x, y) after the next Step
// The body carries the implied velocity during that step so contacts see its motion
// Returns false for unknown or non-kinematic handles
func (s *Space) SetNextKinematicPosition(h ColliderHandle, x, y float64) bool {
	c, ok := s.colliders[h]
	if !ok || c.kind != BodyKinematic {
		return false
	}
	c.hasTarget = true
	c.targetX, c.targetY = x, y
	return true
}

// Step advances the simulation by dt seconds
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, c := range s.colliders {
		if !c.hasTarget {
			continue
		}
		p := c.body.Position()
		c.body.SetVelocity((c.targetX-p.X)/dt, (c.targetY-p.Y)/dt)
	}

	s.space.Step(dt)

	for _, c := range s.colliders {
		if !c.hasTarget {
			continue
		}
		c.body.SetPosition(cp.Vector{X: c.targetX, Y: c.targetY})
		c.body.SetVelocity(0, 0)
		c.hasTarget = false
	}
}
