package coordsys

import (
	"fmt"

	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/airbusgeo/geokernel/internal/transfo"
	"go.uber.org/zap"
)

// ancestors returns cs, its reference, the reference of its reference... up to the root
func (cs *CoordSys) ancestors() []*CoordSys {
	var res []*CoordSys
	for c := cs; c != nil; c = c.Reference() {
		res = append(res, c)
	}
	return res
}

// PathTo returns the transform chain mapping coordinates of cs into dst.
// The chain goes up to the closest common ancestor then down to dst. When cs and dst
// have distinct roots, both roots must be tied to a CRS: a reprojection relates them.
// Paths are cached per destination.
func (cs *CoordSys) PathTo(dst *CoordSys) (transfo.Chain, error) {
	if cs == dst {
		return nil, nil
	}
	cs.pathsLock.Lock()
	chain, ok := cs.paths[dst.id]
	cs.pathsLock.Unlock()
	if ok {
		return chain, nil
	}

	chain, err := cs.computePath(dst)
	if err != nil {
		return nil, err
	}

	cs.pathsLock.Lock()
	cs.paths[dst.id] = chain
	cs.pathsLock.Unlock()
	return chain, nil
}

func (cs *CoordSys) computePath(dst *CoordSys) (transfo.Chain, error) {
	up, down := cs.ancestors(), dst.ancestors()

	// Closest common ancestor
	index := make(map[*CoordSys]int, len(up))
	for i, c := range up {
		index[c] = i
	}
	iUp, iDown := len(up)-1, len(down)-1
	common := false
	for j, c := range down {
		if i, ok := index[c]; ok {
			iUp, iDown, common = i, j, true
			break
		}
	}

	var models []transfo.Model
	for _, c := range up[:iUp] {
		models = append(models, c.ToReference())
	}
	if !common {
		rootUp, rootDown := up[len(up)-1], down[len(down)-1]
		if rootUp.CRS() == nil || rootDown.CRS() == nil {
			return nil, geokernel.NewNoTransformPath(cs.name, dst.name)
		}
		rep, err := transfo.NewReprojection(rootUp.CRS(), rootDown.CRS())
		if err != nil {
			return nil, fmt.Errorf("PathTo.%w", err)
		}
		log.Default().Debug("coordsys: reprojection between roots",
			zap.String("from", rootUp.name), zap.String("to", rootDown.name), zap.Stringer("kind", rep.Kind()))
		models = append(models, rep)
	}
	for i := iDown - 1; i >= 0; i-- {
		inv, err := down[i].ToReference().Inverse()
		if err != nil {
			return nil, fmt.Errorf("PathTo(%s).%w", down[i].name, err)
		}
		models = append(models, inv)
	}
	return transfo.Compose(transfo.DefaultSimplifyTolerance, models...)
}
