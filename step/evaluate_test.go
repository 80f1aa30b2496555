package step

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loags/stepheight/phys"
)

// fakeSource scripts collision query answers for evaluator and executor tests.
type fakeSource struct {
	pointInside bool
	rayHit      phys.RayHit
	rayOk       bool
	ceiling     []phys.SphereHit
}

func (f *fakeSource) OverlapSphere(mgl32.Vec3, float32, phys.Layer) []phys.Overlap {
	return nil
}

func (f *fakeSource) RaycastDown(mgl32.Vec3, float32, phys.Layer) (phys.RayHit, bool) {
	return f.rayHit, f.rayOk
}

func (f *fakeSource) CapsuleCastDown(mgl32.Vec3, mgl32.Vec3, float32, float32, phys.Layer) (mgl32.Vec3, bool) {
	return mgl32.Vec3{}, false
}

func (f *fakeSource) SphereCastUp(mgl32.Vec3, float32, float32, phys.Layer) []phys.SphereHit {
	return f.ceiling
}

func (f *fakeSource) PointInside(mgl32.Vec3, float32, phys.Layer) bool {
	return f.pointInside
}

func (f *fakeSource) NearbyBoxes(cube.BBox, phys.Layer) []cube.BBox {
	return nil
}

func characterShapes() stubShapes {
	return stubShapes{{Box: cube.Box(-0.3, 0, -0.3, 0.3, 1.8, 0.3), Enabled: true}}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.StepHeight = 0.5
	return cfg
}

func newTestEvaluator(src phys.Source, cfg Config) *Evaluator {
	log := testLogger()
	return NewEvaluator(src, NewProfile(characterShapes(), log), cfg, log)
}

var (
	forward = mgl32.Vec3{0, 0, 1}
	// aheadContact sits directly ahead of the character in the movement
	// direction. Its height of -0.05 puts the scan origin at exactly zero,
	// keeping the height arithmetic below exact in float32.
	aheadContact = ContactPoint{Point: mgl32.Vec3{0, -0.05, 0.3}, Surface: phys.Handle(7)}
)

// hitAt scripts the vertical probe to find a surface at the given height.
func hitAt(y float32) phys.RayHit {
	return phys.RayHit{Point: mgl32.Vec3{0.1, y, 0.4}}
}

func TestTryFindStepNoContacts(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.5)}, testConfig())
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, nil); ok {
		t.Fatal("expected no step without contacts")
	}
}

func TestTryFindStepAngleFilter(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.5)}, testConfig())

	// Contact is 90° off the movement direction, past the 65° threshold.
	side := ContactPoint{Point: mgl32.Vec3{0.3, -0.05, 0}, Surface: phys.Handle(7)}
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{side}); ok {
		t.Fatal("expected no step for a contact outside the angle threshold")
	}
}

func TestTryFindStepAtExactHeight(t *testing.T) {
	// The scan origin sits at contact.y + 0.05 = 0; a hit at 0.5 is a height
	// difference of exactly the configured step height.
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.5)}, testConfig())

	result, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact})
	if !ok {
		t.Fatal("expected step at exactly the configured height")
	}
	if result.Target != (mgl32.Vec3{0, 0.5, 0}) {
		t.Fatalf("unexpected target %v", result.Target)
	}
	if result.AlignedTarget != (mgl32.Vec3{0, 0.5, 1}) {
		t.Fatalf("expected target nudged forward, got %v", result.AlignedTarget)
	}
	if result.Contact.Surface != aheadContact.Surface {
		t.Fatalf("unexpected chosen contact %v", result.Contact)
	}
}

func TestTryFindStepAboveMaxHeight(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.51)}, testConfig())
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact}); ok {
		t.Fatal("expected no step above the configured height")
	}
}

func TestTryFindStepFlushGround(t *testing.T) {
	// A surface level with the scan origin is not a step.
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0)}, testConfig())
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact}); ok {
		t.Fatal("expected no step onto flush ground")
	}
}

func TestTryFindStepProbeInsideSolid(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.5), pointInside: true}, testConfig())
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact}); ok {
		t.Fatal("expected no step when the probe origin is inside geometry")
	}
}

func TestTryFindStepNoProbeHit(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: false}, testConfig())
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact}); ok {
		t.Fatal("expected no step without a probe hit")
	}
}

func TestTryFindStepCeilingBlocked(t *testing.T) {
	// Character radius is 0.3: obstructions closer than 0.6 block the step.
	src := &fakeSource{rayOk: true, rayHit: hitAt(0.5), ceiling: []phys.SphereHit{{Handle: 9, Distance: 0.45}}}
	e := newTestEvaluator(src, testConfig())
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact}); ok {
		t.Fatal("expected no step under a low ceiling")
	}

	src.ceiling = []phys.SphereHit{{Handle: 9, Distance: 0.7}}
	if _, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{aheadContact}); !ok {
		t.Fatal("expected step under a sufficiently high ceiling")
	}
}

func TestTryFindStepIdempotent(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.4)}, testConfig())
	contacts := []ContactPoint{aheadContact}

	first, ok1 := e.TryFindStep(mgl32.Vec3{}, forward, contacts)
	second, ok2 := e.TryFindStep(mgl32.Vec3{}, forward, contacts)
	if ok1 != ok2 || first != second {
		t.Fatalf("evaluation is not idempotent: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}

func TestTryFindStepTieBreakKeepsFirst(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.4)}, testConfig())

	// Both contacts are equally aligned with the movement direction; the
	// first scanned contact must win.
	left := ContactPoint{Point: mgl32.Vec3{-0.2, -0.05, 0.4}, Surface: phys.Handle(1)}
	right := ContactPoint{Point: mgl32.Vec3{0.2, -0.05, 0.4}, Surface: phys.Handle(2)}

	result, ok := e.TryFindStep(mgl32.Vec3{}, forward, []ContactPoint{left, right})
	if !ok {
		t.Fatal("expected a step")
	}
	if result.Contact.Surface != left.Surface {
		t.Fatalf("expected first contact to win the tie, got %v", result.Contact)
	}
}

func TestTryFindStepDegenerateDirection(t *testing.T) {
	e := newTestEvaluator(&fakeSource{rayOk: true, rayHit: hitAt(0.4)}, testConfig())

	// A zero movement direction cannot be compared against any contact; every
	// contact is skipped with a warning, not an error.
	if _, ok := e.TryFindStep(mgl32.Vec3{}, mgl32.Vec3{}, []ContactPoint{aheadContact}); ok {
		t.Fatal("expected no step for a zero movement direction")
	}
}

func TestIsCloseEnough(t *testing.T) {
	e := newTestEvaluator(&fakeSource{}, testConfig())
	target := mgl32.Vec3{0, 0.4, 0}

	near := ContactPoint{Point: mgl32.Vec3{0.35, 0.01, 0}}
	far := ContactPoint{Point: mgl32.Vec3{0.45, 0.01, 0}}

	if !e.IsCloseEnough(near, target) {
		t.Fatal("contact within radius+slack must be admitted")
	}
	if e.IsCloseEnough(far, target) {
		t.Fatal("contact beyond radius+slack must be deferred")
	}
}
