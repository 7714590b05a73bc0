package system

import (
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/parameter"
)

// MovementSystem applies buffered input and advances every live snake one cell
type MovementSystem struct {
	engine.SystemBase
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Cadence() engine.Cadence {
	return engine.CadenceTick
}

func (s *MovementSystem) Update() {
	pending := s.Resource.Input.Drain()

	for _, e := range s.Component.Head.All() {
		h, ok := s.Component.Head.Get(e)
		if !ok {
			continue
		}
		pos, ok := s.Positions.Get(e)
		if !ok {
			continue
		}

		// Latest input wins; each is checked against the heading before this tick
		for _, d := range pending {
			h.Steer(d)
		}
		h.Direction = h.NextDirection

		// Follow the leader: each segment takes the cell the one ahead held
		prev := pos.Point()
		for _, seg := range h.Segments {
			segPos, ok := s.Positions.Get(seg)
			if !ok {
				continue
			}
			s.Positions.Move(seg, prev)
			prev = segPos.Point()
		}

		s.Positions.Move(e, pos.Point().Add(h.Direction.Vector()))
		s.Component.Head.Set(e, h)
	}
}
