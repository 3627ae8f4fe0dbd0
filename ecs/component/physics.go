package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system on first sight.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	// VX/VY are the requested velocity in pixels per frame. The physics system
	// pushes them into the body before stepping and reads them back after.
	VX float64
	VY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
