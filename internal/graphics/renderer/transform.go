package renderer

import "github.com/go-gl/mathgl/mgl32"

// ResetMatrixDistance is how far ResetMatrix backs the model-view off along -z
const ResetMatrixDistance = 800

func (r *RendererGL) Translate(x, y, z float32) { r.transforms.Translate(x, y, z) }
func (r *RendererGL) Scale(x, y, z float32)     { r.transforms.Scale(x, y, z) }

// Rotate rotates around an arbitrary axis, angle in radians
func (r *RendererGL) Rotate(angle float32, axis mgl32.Vec3) { r.transforms.Rotate(angle, axis) }

func (r *RendererGL) RotateX(angle float32) { r.transforms.RotateX(angle) }
func (r *RendererGL) RotateY(angle float32) { r.transforms.RotateY(angle) }
func (r *RendererGL) RotateZ(angle float32) { r.transforms.RotateZ(angle) }

// Push saves a copy of the model-view matrix
func (r *RendererGL) Push() { r.transforms.Push() }

// Pop restores the last saved model-view matrix. It returns
// graphics.ErrUnbalancedStack when nothing was pushed; the current draw
// cycle should be abandoned.
func (r *RendererGL) Pop() error { return r.transforms.Pop() }

// ResetMatrix loads identity and backs off by ResetMatrixDistance
func (r *RendererGL) ResetMatrix() { r.transforms.Reset(ResetMatrixDistance) }

// ModelView returns the current model-view matrix
func (r *RendererGL) ModelView() mgl32.Mat4 { return r.transforms.ModelView }

// NormalMatrix returns the normal matrix derived from the model-view
func (r *RendererGL) NormalMatrix() mgl32.Mat3 { return r.transforms.NormalMatrix() }

// StackDepth returns the number of pushed matrices
func (r *RendererGL) StackDepth() int { return r.transforms.Depth() }
