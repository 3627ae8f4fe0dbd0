package ecs

import (
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// World owns entity lifecycles and one sparse store per component kind.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	count       int

	stores map[component.ComponentID]componentStore
	events EventQueue
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

func CreateEntity(w *World) Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.generations))
	}
	w.alive[id-1] = true
	w.count++
	return makeEntity(id, w.generations[id-1])
}

// DestroyEntity removes every component of e and recycles its id with a new
// generation. It reports false for handles that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, store := range w.stores {
		store.removeEntity(e)
	}
	id := e.id()
	w.alive[id-1] = false
	w.generations[id-1]++
	w.free = append(w.free, id)
	w.count--
	return true
}

func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if id == 0 || int(id) > len(w.generations) {
		return false
	}
	return w.alive[id-1] && w.generations[id-1] == e.generation()
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.count)
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.generations[i]))
		}
	}
	return out
}

// Events returns the per-world gameplay event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func storeFor[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	raw, ok := w.stores[kind.ID()]
	if !ok {
		return nil
	}
	store, _ := raw.(*sparseSet[T])
	return store
}

func ensureStore[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if store := storeFor(w, kind); store != nil {
		return store
	}
	store := newSparseSet[T]()
	w.stores[kind.ID()] = store
	return store
}

// Add attaches (or replaces) a component on a live entity.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	ensureStore(w, kind).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	store := storeFor(w, kind)
	if store == nil {
		return nil, false
	}
	return store.get(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	store := storeFor(w, kind)
	return store != nil && store.has(e)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	store := storeFor(w, kind)
	if store == nil {
		return false
	}
	return store.remove(e)
}

// Count reports how many live entities carry the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	store := storeFor(w, kind)
	if store == nil {
		return 0
	}
	return store.len()
}
