package scene

import "winterhouse/internal/core"

// Interactor is a moving agent that can initiate interactions.
type Interactor struct {
	ID  string
	Box core.Box
}

// Interactable is a static target that can be interacted with.
type Interactable struct {
	ID  string
	Box core.Box
}

// Tracker maintains the in-range relation between interactors and
// interactables. An interactor has at most one relation at a time; the
// first overlapping interactable in enumeration order wins.
type Tracker struct {
	relations map[string]string
}

// NewTracker creates an empty proximity tracker.
func NewTracker() *Tracker {
	return &Tracker{relations: make(map[string]string)}
}

// Update re-evaluates every interactor against all interactables once per
// tick. The relation transition is one of: unchanged, created, retargeted,
// or removed. Removal is silent; only the relation's existence makes a later
// activation possible.
func (t *Tracker) Update(interactors []Interactor, interactables []Interactable) {
	for _, actor := range interactors {
		var found string
		for _, target := range interactables {
			if actor.Box.Overlaps(target.Box) {
				found = target.ID
				break
			}
		}

		current, had := t.relations[actor.ID]
		switch {
		case !had && found != "":
			t.relations[actor.ID] = found
		case had && found != "" && current != found:
			t.relations[actor.ID] = found
		case had && found == "":
			delete(t.relations, actor.ID)
		}
	}
}

// Target returns the interactable currently in range of the given
// interactor, if any.
func (t *Tracker) Target(interactorID string) (string, bool) {
	id, ok := t.relations[interactorID]
	return id, ok
}

// Reset drops all relations.
func (t *Tracker) Reset() {
	t.relations = make(map[string]string)
}
