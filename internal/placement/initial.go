package placement

import (
	"math/rand"
	"sort"

	"github.com/andrewsmike/redhdl/internal/geom"
	"github.com/andrewsmike/redhdl/internal/layout"
	"github.com/andrewsmike/redhdl/internal/netlist"
	"github.com/andrewsmike/redhdl/internal/rherrors"
)

// seedOrder returns nl's instances in descending occupied-volume order,
// ties broken by ascending InstanceID for determinism.
func seedOrder(nl *netlist.Netlist) []netlist.Instance {
	instances := nl.Instances()
	sort.SliceStable(instances, func(i, j int) bool {
		vi, vj := geom.RegionVolume(instances[i].Occupied), geom.RegionVolume(instances[j].Occupied)
		if vi != vj {
			return vi > vj
		}
		return instances[i].ID < instances[j].ID
	})
	return instances
}

func randAxis(rng *rand.Rand, lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	return lo + int32(rng.Intn(int(hi-lo+1)))
}

func randPoseInCube(rng *rand.Rand, cube geom.Box) layout.Pose {
	pos := geom.Pos{
		X: randAxis(rng, cube.Min.X, cube.Max.X),
		Y: randAxis(rng, cube.Min.Y, cube.Max.Y),
		Z: randAxis(rng, cube.Min.Z, cube.Max.Z),
	}
	return layout.Pose{Pos: pos, Rotation: geom.RotationByID(rng.Intn(geom.RotationCount()))}
}

// buildInitialPlacement seeds a valid starting placement by placing each
// instance, in descending occupied-volume order, at a random pose drawn
// repeatedly from cfg.BoundingCube until one doesn't collide with an
// already-placed instance. Exhausting cfg.RejectionBudget attempts for
// any one instance fails the whole run with an *rherrors.InfeasibleError
// naming that instance.
func buildInitialPlacement(nl *netlist.Netlist, cfg Config, rng *rand.Rand) (layout.Placement, error) {
	poses := make(map[netlist.InstanceID]layout.Pose, nl.InstanceCount())
	placedRegions := make([]geom.Region, 0, nl.InstanceCount())

	for _, inst := range seedOrder(nl) {
		placed := false
		for attempt := 0; attempt < cfg.RejectionBudget; attempt++ {
			pose := randPoseInCube(rng, cfg.BoundingCube)
			candidate := layout.WorldOccupied(inst, pose)

			collides := false
			for _, region := range placedRegions {
				if geom.Intersects(candidate, region) {
					collides = true
					break
				}
			}
			if collides {
				continue
			}

			poses[inst.ID] = pose
			placedRegions = append(placedRegions, candidate)
			placed = true
			break
		}
		if !placed {
			return layout.Placement{}, &rherrors.InfeasibleError{InstanceID: string(inst.ID)}
		}
	}

	return layout.NewPlacement(poses), nil
}
