package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system on first sync.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
	Mass   float64

	Friction   float64
	Elasticity float64

	Static bool
	// LockRotation gives the body an infinite moment so contacts never spin it.
	LockRotation bool
	// ReportContacts opts the entity into contact begin/separate events.
	ReportContacts bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// GravityScale scales world gravity for a dynamic physics body.
// 1.0 = normal gravity, 0.0 = no gravity.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
