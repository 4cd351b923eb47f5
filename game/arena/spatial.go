package arena

import (
	"sort"

	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
)

type EntityKind int

const (
	KindAgent EntityKind = iota
	KindObstacle
	KindMana
)

// Neighbor is one result of a spatial query.
type Neighbor struct {
	ID       ecs.EntityID
	Kind     EntityKind
	Position vector.Vector2
	Distance float64
}

type spatialEntry struct {
	Neighbor
	rect rtreego.Rect
}

func (e *spatialEntry) Bounds() rtreego.Rect {
	return e.rect
}

// SpatialIndex answers radius queries over a point set rebuilt from the registry.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		tree: rtreego.NewTree(2, 25, 50),
	}
}

func (s *SpatialIndex) Rebuild(items []Neighbor) {
	spatials := make([]rtreego.Spatial, 0, len(items))

	for _, item := range items {
		px, py := item.Position.Get()
		rect, err := rtreego.NewRect(rtreego.Point{px - 0.005, py - 0.005}, []float64{0.01, 0.01})
		if err != nil {
			continue
		}

		spatials = append(spatials, &spatialEntry{
			Neighbor: item,
			rect:     rect,
		})
	}

	s.tree = rtreego.NewTree(2, 25, 50, spatials...)
}

func (s *SpatialIndex) Size() int {
	return s.tree.Size()
}

// Nearby returns the entities of kind strictly within radius of position,
// nearest first; equal distances keep registry order (entity id).
func (s *SpatialIndex) Nearby(position vector.Vector2, radius float64, kind EntityKind, accept func(n Neighbor) bool) []Neighbor {
	res := make([]Neighbor, 0)

	if !(radius > 0) {
		return res
	}

	px, py := position.Get()
	bb, err := rtreego.NewRect(rtreego.Point{px - radius, py - radius}, []float64{2 * radius, 2 * radius})
	if err != nil {
		return res
	}

	matches := s.tree.SearchIntersect(bb, func(results []rtreego.Spatial, object rtreego.Spatial) (refuse, abort bool) {
		return object.(*spatialEntry).Kind != kind, false
	})

	for _, match := range matches {
		entry := match.(*spatialEntry)

		distance := position.DistanceTo(entry.Position)
		if distance >= radius {
			continue
		}

		neighbor := entry.Neighbor
		neighbor.Distance = distance

		if accept != nil && !accept(neighbor) {
			continue
		}

		res = append(res, neighbor)
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Distance != res[j].Distance {
			return res[i].Distance < res[j].Distance
		}

		return res[i].ID < res[j].ID
	})

	return res
}
