package scene

import (
	"fmt"
	"log"
	"sort"

	"github.com/younwookim/monosamples/internal/application/state"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// Registry holds named scenes and dispatches frames to the active one.
// One registry is built at start-up and handed to the frame driver.
type Registry struct {
	scenes      map[string]Scene
	states      map[string]state.SceneState
	current     Scene
	currentName string

	// OnActivate, if set, is called after a scene becomes active
	// (loaded or degraded).
	OnActivate func(name string)
}

// NewRegistry creates an empty registry with no active scene
func NewRegistry() *Registry {
	return &Registry{
		scenes: make(map[string]Scene),
		states: make(map[string]state.SceneState),
	}
}

// Register stores s under name. Registering an existing name replaces the
// stored scene; if the replaced scene is active it keeps running until the
// next Activate.
func (r *Registry) Register(name string, s Scene) {
	r.scenes[name] = s
	if name != r.currentName || r.current == nil {
		r.states[name] = state.StateRegistered
	}
}

// Activate makes the named scene current: the previous scene is unloaded,
// then the new one is initialized and loaded, in that order.
//
// An unknown name leaves the current scene untouched and returns
// ErrSceneNotFound. A scene whose Load fails still becomes active and a
// *LoadError is returned.
func (r *Registry) Activate(name string) error {
	next, ok := r.scenes[name]
	if !ok {
		log.Printf("[SceneRegistry] Ignoring unknown scene %q", name)
		return fmt.Errorf("activate %q: %w", name, ErrSceneNotFound)
	}

	if r.current != nil {
		r.current.Unload()
		r.states[r.currentName] = state.StateUnloaded
	}

	r.current = next
	r.currentName = name

	next.Initialize()
	r.states[name] = state.StateInitialized

	if err := next.Load(); err != nil {
		r.states[name] = state.StateDegraded
		log.Printf("[SceneRegistry] Scene %q active without content: %v", name, err)
		r.notify(name)
		return &LoadError{Scene: name, Err: err}
	}

	r.states[name] = state.StateLoaded
	log.Printf("[SceneRegistry] Switched to scene %q", name)
	r.notify(name)
	return nil
}

func (r *Registry) notify(name string) {
	if r.OnActivate != nil {
		r.OnActivate(name)
	}
}

// Tick forwards dt to the active scene, if any
func (r *Registry) Tick(dt float64) {
	if r.current != nil {
		r.current.Update(dt)
	}
}

// Render forwards the renderer to the active scene, if any
func (r *Registry) Render(rd entity.Renderer) {
	if r.current != nil {
		r.current.Draw(rd)
	}
}

// Active returns the name of the active scene
func (r *Registry) Active() (string, bool) {
	return r.currentName, r.current != nil && r.states[r.currentName].Active()
}

// State returns the lifecycle state of a registered scene
func (r *Registry) State(name string) (state.SceneState, bool) {
	s, ok := r.states[name]
	return s, ok
}

// Names returns the registered scene names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close unloads the active scene. The registry can be reactivated afterwards.
func (r *Registry) Close() {
	if r.current == nil {
		return
	}
	r.current.Unload()
	r.states[r.currentName] = state.StateUnloaded
	r.current = nil
	r.currentName = ""
}
