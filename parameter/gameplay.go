package parameter

// Logical window, world units, origin at center, y up
const (
	GameWidth  = 800
	GameHeight = 700
)

// Paddle
const (
	PaddleStep       = 8
	PaddleX          = 0.0
	PaddleY          = -300.0
	PaddleHalfWidth  = 35.0
	PaddleHalfHeight = 5.0
	PaddleBound      = 335.0
)

// Ball, velocity ranges are inclusive integer bounds
const (
	BallStartX       = 0.0
	BallStartY       = 300.0
	BallRadius       = 10.0
	BallMass         = 1.0
	BallRestitution  = 2.01
	BallGravityScale = 9.81
	BallVelXMin      = -100
	BallVelXMax      = 100
	BallVelYMin      = -30
	BallVelYMax      = -5
	BallMaxSpeed     = 900.0
)

// Boundaries
const (
	TopWallX           = 0.0
	TopWallY           = 300.0
	TopWallHalfWidth   = 400.0
	TopWallHalfHeight  = 35.0
	SideWallX          = 400.0
	SideWallY          = 0.0
	SideWallHalfWidth  = 35.0
	SideWallHalfHeight = 400.0
)

// Brick grid, indices run from -Half to +Half inclusive
const (
	BrickHalfColumns = 3
	BrickHalfRows    = 2
	BrickSpacingX    = 100.0
	BrickSpacingY    = 65.0
	BrickOriginX     = 0.0
	BrickOriginY     = 50.0
	BrickHalfWidth   = 25.0
	BrickHalfHeight  = 5.0
	BrickHitPoints   = 3
)

// Surface material
// Chipmunk multiplies the elasticity of both shapes, so solid surfaces carry 0.5
// and the ball's 2.01 restitution yields an effective 1.005 bounce
const (
	SurfaceFriction   = 0.0
	SurfaceElasticity = 0.5
)

// World physics
const (
	WorldGravityY     = -9.81
	PhysicsIterations = 10
)
