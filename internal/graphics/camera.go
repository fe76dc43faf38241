package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultFOV is the vertical field of view of the default camera in degrees
const DefaultFOV = 60.0

// CameraDistance is how far the default camera sits from the z=0 plane so
// that a canvas of the given height exactly fills the default field of view.
func CameraDistance(height int) float32 {
	return float32(float64(height) / 2 / math.Tan(math.Pi*30/180))
}

// Camera handles the projection matrix
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera builds the default perspective camera for a canvas size
func NewCamera(width, height int) *Camera {
	dist := CameraDistance(height)
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         DefaultFOV,
		NearPlane:   dist * 0.1,
		FarPlane:    dist * 10,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// CameraMode tells where the current projection came from
type CameraMode int

const (
	CameraUnset CameraMode = iota
	CameraDefault
	CameraUser
)

func (m CameraMode) String() string {
	switch m {
	case CameraDefault:
		return "default"
	case CameraUser:
		return "user"
	}
	return "unset"
}

// CameraState owns the projection matrix and its origin
type CameraState struct {
	mode       CameraMode
	projection mgl32.Mat4
}

// NewCameraState returns an unset camera with an identity projection
func NewCameraState() *CameraState {
	return &CameraState{projection: mgl32.Ident4()}
}

func (s *CameraState) Mode() CameraMode { return s.mode }

func (s *CameraState) Projection() mgl32.Mat4 { return s.projection }

// EnsureDefault installs the default perspective if no camera is set.
// It reports whether the projection changed.
func (s *CameraState) EnsureDefault(width, height int) bool {
	if s.mode != CameraUnset || width <= 0 || height <= 0 {
		return false
	}
	s.projection = NewCamera(width, height).GetProjectionMatrix()
	s.mode = CameraDefault
	return true
}

// Resize recomputes a default camera for the new size. User cameras are left alone.
func (s *CameraState) Resize(width, height int) {
	if s.mode != CameraDefault {
		return
	}
	s.mode = CameraUnset
	s.EnsureDefault(width, height)
}

// SetUser installs a caller-supplied projection
func (s *CameraState) SetUser(projection mgl32.Mat4) {
	s.projection = projection
	s.mode = CameraUser
}

// Reset forgets any camera
func (s *CameraState) Reset() {
	s.mode = CameraUnset
	s.projection = mgl32.Ident4()
}
