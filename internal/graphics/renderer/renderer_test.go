package renderer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"sketchgl/internal/color"
	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
	"sketchgl/internal/graphics/gltest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, width, height int) (*RendererGL, *gltest.Factory) {
	t.Helper()
	f := &gltest.Factory{}
	r, err := New(Options{
		Width:      width,
		Height:     height,
		Attributes: config.DefaultAttributes(),
		Factory:    f.New,
	})
	require.NoError(t, err)
	return r, f
}

func program(t *testing.T, r *RendererGL, pair graphics.ShaderPair) *graphics.Program {
	t.Helper()
	p, ok, err := r.Context().Shaders.Lookup(pair.Key())
	require.True(t, ok, "program %s not resolved", pair.Key())
	require.NoError(t, err)
	return p
}

func materialColor(t *testing.T, d *gltest.Driver, p *graphics.Program) [4]float32 {
	t.Helper()
	v, ok := d.Vec4(p.ID, graphics.UniformMaterialColor)
	require.True(t, ok, "no material color uploaded")
	return v
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v\n got %v", want, got)
}

func TestNewRequiresContext(t *testing.T) {
	f := &gltest.Factory{Fail: true}
	_, err := New(Options{Width: 10, Height: 10, Attributes: config.DefaultAttributes(), Factory: f.New})

	var ctxErr *graphics.ContextCreationError
	assert.True(t, errors.As(err, &ctxErr))

	_, err = New(Options{Width: 0, Height: 10, Factory: f.New})
	assert.Error(t, err)
}

func TestFillTranslateDraw(t *testing.T) {
	r, f := newTestRenderer(t, 200, 100)
	d := f.Last().D

	r.Fill(r.Colors().ValuesAlpha(255, 0, 0, 255))
	r.Translate(0, 0, -10)
	p, err := r.PrepareDraw()
	require.NoError(t, err)

	assert.Equal(t, graphics.UniformColorShader.Key(), p.Key)
	assert.Equal(t, p.ID, d.CurrentProgram)
	mv, ok := d.Mat4(p.ID, graphics.UniformModelViewMatrix)
	require.True(t, ok)
	assertMat4(t, mgl32.Translate3D(0, 0, -10), mv)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, materialColor(t, d, p))
	assert.Empty(t, d.Errors)
}

func TestFillStrokeFillKeepsFillColor(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.Fill(color.RGBA(0, 1, 0, 1))
	r.Stroke(color.RGBA(0, 0, 1, 1))
	r.Fill(color.RGBA(1, 1, 0, 1))

	assert.Equal(t, graphics.DrawFill, r.Material().Mode)
	p := program(t, r, graphics.UniformColorShader)
	assert.Equal(t, [4]float32{1, 1, 0, 1}, materialColor(t, d, p))
	assert.Equal(t, 1, d.LinkCalls)
}

func TestNoFillUploadsStroke(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.Stroke(r.Colors().ValuesAlpha(51, 102, 153, 255))
	r.NoFill()

	assert.Equal(t, graphics.DrawWireframe, r.Material().Mode)
	p := program(t, r, graphics.UniformColorShader)
	got := materialColor(t, d, p)
	assert.InDeltaSlice(t, []float32{0.2, 0.4, 0.6, 1}, got[:], 1e-6)

	assert.True(t, d.Enabled[graphics.CapBlend])
	assert.Equal(t, [2]graphics.BlendFactor{graphics.BlendSrcAlpha, graphics.BlendOneMinusSrcAlpha}, d.Blend)
}

func TestNoFillUsesDefaultStroke(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.NoFill()
	p := program(t, r, graphics.UniformColorShader)
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 1}, materialColor(t, d, p))
}

func TestStrokeInWireframeReuploads(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.NoFill()
	r.Stroke(color.RGBA(1, 0, 1, 1))
	p := program(t, r, graphics.UniformColorShader)
	assert.Equal(t, [4]float32{1, 0, 1, 1}, materialColor(t, d, p))
	assert.Empty(t, d.Errors)
}

func TestStrokeWhileFilledLeavesMaterial(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.Fill(color.RGBA(0, 0, 1, 1))
	r.Stroke(color.RGBA(1, 0, 0, 1))
	p := program(t, r, graphics.UniformColorShader)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, materialColor(t, d, p))
	assert.Equal(t, color.RGBA(1, 0, 0, 1), r.Material().Stroke)
}

func TestStrokeBeforeAnyShader(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	r.Stroke(color.RGBA(1, 0, 0, 1))

	assert.Equal(t, 0, r.Context().Shaders.Len())
	assert.Empty(t, f.Last().D.Errors)
}

func TestStrokeWeight(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D
	assert.Equal(t, float32(graphics.DefaultPointSize), r.Material().PointSize)

	uses := d.UseCalls
	r.StrokeWeight(12)
	assert.Equal(t, uses, d.UseCalls)

	p, err := r.PrepareDraw()
	require.NoError(t, err)
	v, ok := d.Uniform(p.ID, graphics.UniformPointSize)
	require.True(t, ok)
	assert.Equal(t, float32(12), v)
}

func TestDefaultShaderFallback(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	key := r.CurrentShaderID()
	assert.Equal(t, graphics.NormalMaterialShader.Key(), key)
	assert.True(t, r.NewShader())
	for i := 0; i < 5; i++ {
		assert.Equal(t, key, r.CurrentShaderID())
	}
	assert.Equal(t, 1, d.LinkCalls)
	assert.Equal(t, 1, r.Context().Shaders.Compiles())
}

func TestStrokeAfterFallbackLeavesNormalProgram(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	key := r.CurrentShaderID()
	p, ok, err := r.Context().Shaders.Lookup(key)
	require.NoError(t, err)
	require.True(t, ok)

	uses := d.UseCalls
	r.Stroke(color.RGBA(1, 0, 0, 1))
	assert.Equal(t, uses, d.UseCalls)
	_, uploaded := d.Vec4(p.ID, graphics.UniformMaterialColor)
	assert.False(t, uploaded)
	assert.Equal(t, color.RGBA(1, 0, 0, 1), r.Material().Stroke)
}

func TestFallbackDoesNotOverrideNoFill(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)
	r.NoFill()
	assert.Equal(t, graphics.UniformColorShader.Key(), r.CurrentShaderID())
}

func TestImmediateFill(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.SetImmediateMode(true)
	r.Fill(color.RGBA(1, 0, 0, 1))
	assert.Equal(t, graphics.VertexColorShader.Key(), r.CurrentShaderID())

	p := program(t, r, graphics.VertexColorShader)
	assert.True(t, p.Immediate)
	_, uploaded := d.Uniform(p.ID, graphics.UniformMaterialColor)
	assert.False(t, uploaded)

	p2, err := r.PrepareDraw()
	require.NoError(t, err)
	assert.Same(t, p, p2)
	_, hasNormal := d.Uniform(p.ID, graphics.UniformNormalMatrix)
	assert.False(t, hasNormal)
	assert.Equal(t, 1, d.LinkCalls)
}

func TestLeavingImmediateModeOnNextFill(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)
	r.SetImmediateMode(true)
	r.Fill(color.RGBA(1, 0, 0, 1))
	r.SetImmediateMode(false)
	r.Fill(color.RGBA(0, 1, 0, 1))
	assert.Equal(t, graphics.UniformColorShader.Key(), r.CurrentShaderID())
}

func TestColorBlend(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D

	r.Fill(color.RGBA(1, 0, 0, 0.5))
	assert.True(t, d.Enabled[graphics.CapBlend])
	assert.False(t, d.DepthWrite)
	assert.True(t, d.BlendAdd)
	assert.Equal(t, [2]graphics.BlendFactor{graphics.BlendSrcAlpha, graphics.BlendOneMinusSrcAlpha}, d.Blend)

	r.Fill(color.RGBA(1, 0, 0, 1))
	assert.False(t, d.Enabled[graphics.CapBlend])
	assert.True(t, d.DepthWrite)
}

func TestShaderFailureIsRecoverable(t *testing.T) {
	f := &gltest.Factory{Configure: func(d *gltest.Driver) {
		d.FailCompile = func(stage graphics.ShaderStage, src string) string {
			if strings.Contains(src, "uMaterialColor") {
				return "ERROR: 0:9: unsupported sampler"
			}
			return ""
		}
	}}
	r, err := New(Options{Width: 50, Height: 50, Attributes: config.DefaultAttributes(), Factory: f.New})
	require.NoError(t, err)
	d := f.Last().D

	r.Fill(color.RGBA(1, 0, 0, 1))
	assert.Equal(t, graphics.DrawFill, r.Material().Mode)

	_, err = r.PrepareDraw()
	var compileErr *graphics.ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Contains(t, compileErr.Log, "unsupported sampler")

	calls := d.CompileCalls
	r.Fill(color.RGBA(0, 1, 0, 1))
	r.NoFill()
	r.Stroke(color.RGBA(0, 0, 1, 1))
	assert.Equal(t, calls, d.CompileCalls)
	assert.Empty(t, d.Errors)
}

func TestPushPopScenario(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)

	r.Push()
	r.RotateX(math.Pi / 2)
	require.NoError(t, r.Pop())
	r.Translate(1, 0, 0)

	assertMat4(t, mgl32.Translate3D(1, 0, 0), r.ModelView())
	assert.Equal(t, 0, r.StackDepth())
}

func TestPopEmptyStack(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)
	err := r.Pop()
	assert.True(t, errors.Is(err, graphics.ErrUnbalancedStack))
}

func TestTransformsAreRendererOwned(t *testing.T) {
	a, _ := newTestRenderer(t, 100, 100)
	b, _ := newTestRenderer(t, 100, 100)

	a.Push()
	assert.Equal(t, 1, a.StackDepth())
	assert.Equal(t, 0, b.StackDepth())
	assert.Error(t, b.Pop())
}

func TestTranslateNegatesY(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)
	r.Translate(0, 5, 0)
	assertMat4(t, mgl32.Translate3D(0, -5, 0), r.ModelView())
}

func TestResetMatrix(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)
	r.Scale(3, 3, 3)
	r.ResetMatrix()
	assertMat4(t, mgl32.Translate3D(0, 0, -ResetMatrixDistance), r.ModelView())
}

func TestBeginFrame(t *testing.T) {
	r, _ := newTestRenderer(t, 300, 200)
	r.AmbientLight(color.RGBA(1, 1, 1, 1))
	r.PointLight(color.RGBA(1, 1, 1, 1), mgl32.Vec3{0, 10, 0})
	r.DirectionalLight(color.RGBA(1, 1, 1, 1), mgl32.Vec3{0, 0, -4})
	r.DirectionalLight(color.RGBA(1, 1, 1, 1), mgl32.Vec3{})
	assert.Equal(t, LightCounts{Ambient: 1, Directional: 1, Point: 1}, r.LightCounts())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, r.Lights()[2].Vector)

	r.RotateY(1)
	r.BeginFrame()

	assertMat4(t, mgl32.Translate3D(0, 0, -graphics.CameraDistance(200)), r.ModelView())
	assert.Equal(t, LightCounts{}, r.LightCounts())
	assert.Empty(t, r.Lights())
	assert.Equal(t, graphics.CameraDefault, r.CameraMode())
	assertMat4(t, graphics.NewCamera(300, 200).GetProjectionMatrix(), r.Projection())
}

func TestResizeWithDefaultCamera(t *testing.T) {
	r, f := newTestRenderer(t, 400, 400)
	r.BeginFrame()

	r.Resize(800, 400)
	p := r.Projection()
	assert.InDelta(t, 2.0, p[5]/p[0], 1e-4)
	assert.Equal(t, [4]int{0, 0, 800, 400}, f.Last().D.ViewportRect)
	assert.Equal(t, 800, r.Width())
}

func TestResizeWithUserCamera(t *testing.T) {
	r, _ := newTestRenderer(t, 400, 400)
	r.BeginFrame()
	r.Perspective(1, 1, 0.5, 50)
	before := r.Projection()

	r.Resize(1000, 200)
	r.BeginFrame()
	assert.Equal(t, before, r.Projection())
	assert.Equal(t, graphics.CameraUser, r.CameraMode())

	r.Ortho(-1, 1, -1, 1, 0, 10)
	assertMat4(t, mgl32.Ortho(-1, 1, -1, 1, 0, 10), r.Projection())
}

func TestPrepareDrawUploadsMatrices(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D
	r.BeginFrame()
	r.Fill(color.RGBA(1, 1, 1, 1))
	r.Scale(2, 2, 2)

	p, err := r.PrepareDraw()
	require.NoError(t, err)

	proj, ok := d.Mat4(p.ID, graphics.UniformProjectionMatrix)
	require.True(t, ok)
	assert.Equal(t, r.Projection(), proj)

	n, ok := d.Uniform(p.ID, graphics.UniformNormalMatrix)
	require.True(t, ok)
	assert.True(t, r.NormalMatrix().ApproxEqualThreshold(n.(mgl32.Mat3), 1e-6))

	sampler, ok := d.Uniform(p.ID, graphics.UniformSampler)
	require.True(t, ok)
	assert.Equal(t, int32(0), sampler)
	assert.Equal(t, r.Context().EmptyTexture(), d.BoundTexture)
	assert.False(t, r.NewShader())
	assert.Empty(t, d.Errors)
}

func TestSetUniform1f(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	d := f.Last().D
	r.Fill(color.RGBA(1, 1, 1, 1))
	r.CurrentShaderID()

	key := graphics.UniformColorShader.Key()
	require.NoError(t, r.SetUniform1f(key, "uShininess", 32))
	p := program(t, r, graphics.UniformColorShader)
	v, ok := d.Uniform(p.ID, "uShininess")
	require.True(t, ok)
	assert.Equal(t, float32(32), v)

	assert.Error(t, r.SetUniform1f("missing|shader", "uShininess", 1))
}

func TestBackgroundAndClear(t *testing.T) {
	r, f := newTestRenderer(t, 10, 10)
	d := f.Last().D

	r.Background(r.Colors().Values(255, 0, 0))
	assert.Equal(t, [4]float32{1, 0, 0, 1}, d.ClearRGBA)
	require.Len(t, d.Clears, 1)
	assert.Equal(t, graphics.ClearColorBuffer|graphics.ClearDepthBuffer, d.Clears[0])

	r.Clear(0, 0, 0, 0)
	assert.Equal(t, [4]float32{}, d.ClearRGBA)
}

func TestDispose(t *testing.T) {
	r, f := newTestRenderer(t, 10, 10)
	r.Dispose()
	assert.True(t, f.Last().Destroyed)
	assert.Nil(t, r.Context())

	_, err := r.PrepareDraw()
	assert.True(t, errors.Is(err, ErrNoContext))
}
