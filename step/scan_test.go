package step

import (
	"fmt"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
)

func TestScanProducesSnappedContacts(t *testing.T) {
	w := phys.NewWorld()
	curb := w.Add(phys.NewCollider("curb", cube.Box(0.5, 0, -1, 2, 0.4, 1), phys.LayerDefault))

	s := NewScanner(w, 0)
	contacts := s.Scan(mgl32.Vec3{0, 0, 0})
	defer s.Release(contacts)

	if len(contacts) != 1 {
		t.Fatalf("expected one contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.Surface != curb.Handle() {
		t.Fatalf("contact carries wrong surface handle")
	}
	if c.Point.X() != 0.5 || c.Point.Z() != 0 {
		t.Fatalf("expected closest surface point, got %v", c.Point)
	}
	if c.Point.Y() != game.ContactHeightSnap {
		t.Fatalf("expected vertical snap to %v, got %v", game.ContactHeightSnap, c.Point.Y())
	}
}

func TestScanExcludesTriggers(t *testing.T) {
	w := phys.NewWorld()
	w.Add(phys.NewCollider("zone", cube.Box(-1, 0, -1, 1, 1, 1), phys.LayerDefault).SetTrigger(true))

	s := NewScanner(w, 0)
	contacts := s.Scan(mgl32.Vec3{0, 0.5, 0})
	defer s.Release(contacts)

	if len(contacts) != 0 {
		t.Fatalf("trigger volume produced a contact")
	}
}

func TestScanIsBounded(t *testing.T) {
	w := phys.NewWorld()
	for i := 0; i < game.MaxTrackedContacts+5; i++ {
		base := float32(i) * 0.01
		w.Add(phys.NewCollider(fmt.Sprintf("slab_%d", i), cube.Box(-1, base, -1, 1, base+0.005, 1), phys.LayerDefault))
	}

	s := NewScanner(w, 0)
	contacts := s.Scan(mgl32.Vec3{0, 0.05, 0})
	defer s.Release(contacts)

	if len(contacts) != game.MaxTrackedContacts {
		t.Fatalf("expected scan capped at %d contacts, got %d", game.MaxTrackedContacts, len(contacts))
	}
}
