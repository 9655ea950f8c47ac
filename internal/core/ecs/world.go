package ecs

// World owns the entity pool and the deferred destruction queue. Entities
// marked during a frame stay resolvable until the cleanup phase flushes them,
// which is what lets "dying" be observed separately from "gone".
type World struct {
	pool         *EntityPool
	destroyQueue []EntityID
	queued       map[EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		destroyQueue: make([]EntityID, 0, 64),
		queued:       make(map[EntityID]struct{}, 64),
	}
}

func (w *World) Pool() *EntityPool { return w.pool }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// MarkForDestruction queues an entity for end-of-frame cleanup. Marking the
// same entity twice is harmless.
func (w *World) MarkForDestruction(id EntityID) {
	if _, dup := w.queued[id]; dup || !w.pool.Alive(id) {
		return
	}
	w.queued[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// Pending reports how many entities wait for the next flush.
func (w *World) Pending() int { return len(w.destroyQueue) }

// FlushDestroyQueue calls onDestroy for each queued entity (while its id is
// still alive) and then frees the slot. Returns the number destroyed.
func (w *World) FlushDestroyQueue(onDestroy func(EntityID)) int {
	n := 0
	for _, id := range w.destroyQueue {
		if onDestroy != nil {
			onDestroy(id)
		}
		if w.pool.Destroy(id) {
			n++
		}
		delete(w.queued, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}
