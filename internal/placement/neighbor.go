package placement

import (
	"math/rand"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
)

// moveStep bounds the per-axis random translate offset tried by the
// translate move.
const moveStep = 2

// neighbor proposes one of translate, rotate, or swap, retrying up to
// cfg.RejectionBudget times on collision before giving up and returning p
// unchanged. Instances whose occupied region extends outside
// cfg.BoundingCube after a move are rejected too, keeping every accepted
// state inside the search volume.
func neighbor(nl *netlist.Netlist, p layout.Placement, cfg Config, rng *rand.Rand) layout.Placement {
	ids := p.InstanceIDs()
	if len(ids) == 0 {
		return p
	}

	for attempt := 0; attempt < cfg.RejectionBudget; attempt++ {
		var candidate layout.Placement
		switch rng.Intn(3) {
		case 0:
			candidate = translateMove(nl, p, ids, cfg, rng)
		case 1:
			candidate = rotateMove(nl, p, ids, rng)
		default:
			candidate = swapMove(p, ids, rng)
		}
		if validPlacement(nl, candidate, cfg) {
			return candidate
		}
	}
	return p
}

func translateMove(nl *netlist.Netlist, p layout.Placement, ids []netlist.InstanceID, cfg Config, rng *rand.Rand) layout.Placement {
	id := ids[rng.Intn(len(ids))]
	pose, _ := p.Pose(id)
	delta := geom.Pos{
		X: int32(rng.Intn(2*moveStep+1)) - moveStep,
		Y: int32(rng.Intn(2*moveStep+1)) - moveStep,
		Z: int32(rng.Intn(2*moveStep+1)) - moveStep,
	}
	pose.Pos = pose.Pos.Translate(delta)
	return p.With(id, pose)
}

func rotateMove(nl *netlist.Netlist, p layout.Placement, ids []netlist.InstanceID, rng *rand.Rand) layout.Placement {
	id := ids[rng.Intn(len(ids))]
	pose, _ := p.Pose(id)
	pose.Rotation = pose.Rotation.Compose(geom.RotationY90)
	return p.With(id, pose)
}

func swapMove(p layout.Placement, ids []netlist.InstanceID, rng *rand.Rand) layout.Placement {
	if len(ids) < 2 {
		return p
	}
	i := rng.Intn(len(ids))
	j := rng.Intn(len(ids) - 1)
	if j >= i {
		j++
	}
	idA, idB := ids[i], ids[j]
	poseA, _ := p.Pose(idA)
	poseB, _ := p.Pose(idB)
	return p.With(idA, poseB).With(idB, poseA)
}

// validPlacement reports whether every instance's occupied region in p
// both stays within cfg.BoundingCube and is disjoint from every other
// instance's occupied region.
func validPlacement(nl *netlist.Netlist, p layout.Placement, cfg Config) bool {
	ids := p.InstanceIDs()
	regions := make([]geom.Region, 0, len(ids))
	for _, id := range ids {
		inst, ok := nl.Instance(id)
		if !ok {
			continue
		}
		pose, _ := p.Pose(id)
		region := layout.WorldOccupied(inst, pose)
		if !geom.BBoxOf(region).Within(cfg.BoundingCube) {
			return false
		}
		regions = append(regions, region)
	}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if geom.Intersects(regions[i], regions[j]) {
				return false
			}
		}
	}
	return true
}
