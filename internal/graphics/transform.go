package graphics

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnbalancedStack is returned by Pop when no matrix has been pushed.
var ErrUnbalancedStack = errors.New("unbalanced matrix stack: pop without matching push")

// TransformStack holds the model-view matrix and its saved copies.
// Matrices are values, so every push stores an independent copy.
type TransformStack struct {
	ModelView mgl32.Mat4
	saved     []mgl32.Mat4
}

// NewTransformStack returns a stack with an identity model-view matrix
func NewTransformStack() *TransformStack {
	return &TransformStack{ModelView: mgl32.Ident4()}
}

// Push saves a copy of the current model-view matrix
func (s *TransformStack) Push() {
	s.saved = append(s.saved, s.ModelView)
}

// Pop restores the most recently pushed matrix
func (s *TransformStack) Pop() error {
	if len(s.saved) == 0 {
		return ErrUnbalancedStack
	}
	s.ModelView = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	return nil
}

// Depth returns the number of saved matrices
func (s *TransformStack) Depth() int { return len(s.saved) }

// Clear drops every saved matrix
func (s *TransformStack) Clear() { s.saved = s.saved[:0] }

// Translate moves the origin. The y component is negated so positive y
// points down the screen like the 2D renderer.
func (s *TransformStack) Translate(x, y, z float32) {
	s.ModelView = s.ModelView.Mul4(mgl32.Translate3D(x, -y, z))
}

// Scale scales along each axis
func (s *TransformStack) Scale(x, y, z float32) {
	s.ModelView = s.ModelView.Mul4(mgl32.Scale3D(x, y, z))
}

// Rotate rotates by angle radians around axis. A zero axis is ignored.
func (s *TransformStack) Rotate(angle float32, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	s.ModelView = s.ModelView.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
}

func (s *TransformStack) RotateX(angle float32) { s.Rotate(angle, mgl32.Vec3{1, 0, 0}) }
func (s *TransformStack) RotateY(angle float32) { s.Rotate(angle, mgl32.Vec3{0, 1, 0}) }
func (s *TransformStack) RotateZ(angle float32) { s.Rotate(angle, mgl32.Vec3{0, 0, 1}) }

// Reset loads identity then backs the camera off by distance along -z
func (s *TransformStack) Reset(distance float32) {
	s.ModelView = mgl32.Ident4()
	s.Translate(0, 0, -distance)
}

// NormalMatrix is the inverse-transpose of the model-view upper 3x3 block.
// A singular model-view yields the zero matrix.
func (s *TransformStack) NormalMatrix() mgl32.Mat3 {
	return s.ModelView.Mat3().Inv().Transpose()
}
