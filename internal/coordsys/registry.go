package coordsys

import (
	"context"
	"sync"

	"github.com/airbusgeo/geokernel/internal/geokernel"
	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry interns coordinate systems by name, so that independent components
// resolving the same name share the same CoordSys
type Registry struct {
	lock   sync.Mutex
	byName map[string]*CoordSys
	byID   map[uuid.UUID]*CoordSys
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*CoordSys{}, byID: map[uuid.UUID]*CoordSys{}}
}

// Register adds cs to the registry.
// It returns the coordinate system already registered with this name, if any.
func (r *Registry) Register(ctx context.Context, cs *CoordSys) *CoordSys {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.register(ctx, cs)
}

func (r *Registry) register(ctx context.Context, cs *CoordSys) *CoordSys {
	if existing, ok := r.byName[cs.name]; ok {
		return existing
	}
	r.byName[cs.name] = cs
	r.byID[cs.id] = cs
	log.Logger(ctx).Debug("coordsys: registered", zap.String("name", cs.name), zap.Stringer("id", cs.id))
	return cs
}

// Intern returns the coordinate system registered with this name, or registers the one built by create
func (r *Registry) Intern(ctx context.Context, name string, create func() (*CoordSys, error)) (*CoordSys, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if cs, ok := r.byName[name]; ok {
		return cs, nil
	}
	cs, err := create()
	if err != nil {
		return nil, err
	}
	if cs.name != name {
		return nil, geokernel.NewPreconditionViolation("Intern(%s): created coordinate system is named %s", name, cs.name)
	}
	return r.register(ctx, cs), nil
}

// Lookup returns the coordinate system registered with this name
func (r *Registry) Lookup(name string) (*CoordSys, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if cs, ok := r.byName[name]; ok {
		return cs, nil
	}
	return nil, geokernel.NewUnknownCoordSys(name)
}

// ByID returns the coordinate system registered with this id
func (r *Registry) ByID(id uuid.UUID) (*CoordSys, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if cs, ok := r.byID[id]; ok {
		return cs, nil
	}
	return nil, geokernel.NewUnknownCoordSys(id.String())
}
