package step

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/internal"
	"github.com/loags/stepheight/phys"
)

// ContactPoint is a single representative surface point on a nearby collider,
// used as a step candidate. Contacts are produced fresh each scan and never
// persisted; identity is by surface handle.
type ContactPoint struct {
	Point   mgl32.Vec3
	Surface phys.Handle
}

var contactPool = internal.NewSlicePool[ContactPoint](game.MaxTrackedContacts)

// Scanner reduces nearby world geometry to a bounded set of contact points
// around the character.
type Scanner struct {
	source phys.Source
	ignore phys.Layer
}

func NewScanner(source phys.Source, ignore phys.Layer) *Scanner {
	return &Scanner{source: source, ignore: ignore | phys.LayerCharacter}
}

// Scan returns one contact per collider near center, capped at
// MaxTrackedContacts. Each contact is the collider's closest surface point to
// center, with its vertical coordinate snapped just above center to suppress
// noise from the overlap query. The returned slice must be handed back via
// Release once consumed.
func (s *Scanner) Scan(center mgl32.Vec3) []ContactPoint {
	contacts := contactPool.Get()
	for _, overlap := range s.source.OverlapSphere(center, game.ContactScanRadius, s.ignore) {
		if len(contacts) >= game.MaxTrackedContacts {
			break
		}
		if overlap.Handle == phys.NoHandle {
			continue
		}
		point := game.ClosestPointOnAABB(overlap.Box, center)
		point[1] = center.Y() + game.ContactHeightSnap
		contacts = append(contacts, ContactPoint{Point: point, Surface: overlap.Handle})
	}
	return contacts
}

// Release returns a scanned contact slice to the pool.
func (s *Scanner) Release(contacts []ContactPoint) {
	contactPool.Put(contacts)
}
