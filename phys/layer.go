package phys

// Layer is a bitmask grouping colliders so that queries can exclude whole
// categories of world geometry at once.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerCharacter
	LayerDebris
	LayerEnvironment
)

// Contains reports whether any bit of other is set in l.
func (l Layer) Contains(other Layer) bool {
	return l&other != 0
}
