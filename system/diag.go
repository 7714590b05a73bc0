package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/parameter"
)

// DiagSystem samples ECS telemetry into the status registry for the debug overlay
type DiagSystem struct {
	engine.SystemBase

	frameCounter int64

	// Store counts
	statPositionCount   *atomic.Int64
	statHeadCount       *atomic.Int64
	statSegmentCount    *atomic.Int64
	statFoodCount       *atomic.Int64
	statDespawningCount *atomic.Int64
	statGlyphCount      *atomic.Int64

	// Grid metrics
	statGridCellsTotal    *atomic.Int64
	statGridCellsOccupied *atomic.Int64
	statGridMaxOccupancy  *atomic.Int64

	// Consistency checks
	statOrphanGlyph   *atomic.Int64
	statOrphanSegment *atomic.Int64

	// Entity lifecycle
	statEntityCreated   *atomic.Int64
	statEntityDestroyed *atomic.Int64
	statEntityLive      *atomic.Int64
}

// NewDiagSystem creates a new diagnostics system
func NewDiagSystem(world *engine.World) engine.System {
	reg := world.Resources.Status

	return &DiagSystem{
		SystemBase: engine.NewSystemBase(world),

		statPositionCount:   reg.Ints.Get("store.position.count"),
		statHeadCount:       reg.Ints.Get("store.head.count"),
		statSegmentCount:    reg.Ints.Get("store.segment.count"),
		statFoodCount:       reg.Ints.Get("store.food.count"),
		statDespawningCount: reg.Ints.Get("store.despawning.count"),
		statGlyphCount:      reg.Ints.Get("store.glyph.count"),

		statGridCellsTotal:    reg.Ints.Get("grid.cells_total"),
		statGridCellsOccupied: reg.Ints.Get("grid.cells_occupied"),
		statGridMaxOccupancy:  reg.Ints.Get("grid.max_occupancy"),

		statOrphanGlyph:   reg.Ints.Get("consistency.glyph_without_position"),
		statOrphanSegment: reg.Ints.Get("consistency.segment_without_head"),

		statEntityCreated:   reg.Ints.Get("entity.created_total"),
		statEntityDestroyed: reg.Ints.Get("entity.destroyed_total"),
		statEntityLive:      reg.Ints.Get("entity.live_estimate"),
	}
}

// Name returns system's name
func (s *DiagSystem) Name() string {
	return "diagnostics"
}

func (s *DiagSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagSystem) Cadence() engine.Cadence {
	return engine.CadenceFrame
}

func (s *DiagSystem) Update() {
	s.frameCounter++

	// Sample expensive operations
	if s.frameCounter%parameter.DiagnosticsSampleInterval != 1 {
		return
	}

	s.collectStoreCounts()
	s.collectGridMetrics()
	s.collectConsistencyChecks()
	s.collectLifecycleMetrics()
}

func (s *DiagSystem) collectStoreCounts() {
	s.statPositionCount.Store(int64(s.Positions.Count()))
	s.statHeadCount.Store(int64(s.Component.Head.Count()))
	s.statSegmentCount.Store(int64(s.Component.Segment.Count()))
	s.statFoodCount.Store(int64(s.Component.Food.Count()))
	s.statDespawningCount.Store(int64(s.Component.Despawning.Count()))
	s.statGlyphCount.Store(int64(s.Component.Glyph.Count()))
}

func (s *DiagSystem) collectGridMetrics() {
	cfg := s.Resource.Config
	s.statGridCellsTotal.Store(int64(cfg.Width * cfg.Height))

	occupied := s.Positions.OccupiedCells()
	s.statGridCellsOccupied.Store(int64(occupied.Size()))

	maxOccupancy := 0
	occupied.Each(func(p core.Point) {
		maxOccupancy = max(maxOccupancy, len(s.Positions.EntitiesAt(p)))
	})
	s.statGridMaxOccupancy.Store(int64(maxOccupancy))
}

func (s *DiagSystem) collectConsistencyChecks() {
	var orphanGlyph, orphanSegment int64

	// Glyph without position
	for _, e := range s.Component.Glyph.All() {
		if !s.Positions.Has(e) {
			orphanGlyph++
		}
	}

	// Live segment whose head is gone
	for _, e := range s.Component.Segment.All() {
		seg, ok := s.Component.Segment.Get(e)
		if !ok {
			continue
		}
		if !s.Component.Head.Has(seg.Head) {
			orphanSegment++
		}
	}

	s.statOrphanGlyph.Store(orphanGlyph)
	s.statOrphanSegment.Store(orphanSegment)
}

func (s *DiagSystem) collectLifecycleMetrics() {
	created := s.World.CreatedCount()
	destroyed := s.World.DestroyedCount()

	s.statEntityCreated.Store(created)
	s.statEntityDestroyed.Store(destroyed)
	s.statEntityLive.Store(created - destroyed)
}
