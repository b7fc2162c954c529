package types

import "sort"

// State is a sealed view over the full account state at a single slot, as
// produced by snapshot decoding or ledger replay. The concrete
// implementation lives with the account store; the bootstrap pipeline only
// ever inspects its identity and hands it on.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/state_mock.go -package mocks github.com/ozonechain/ozone/types State
type State interface {
	// Slot the state is rooted at.
	Slot() Slot
	// AccountsHash is the digest over the full account state at Slot.
	AccountsHash() Hash
	// SetShrinkPaths associates compaction directories with the state for
	// a later maintenance phase. No immediate effect on correctness.
	SetShrinkPaths(paths []string)
	// RecalculateAccountsHash walks the entire account index and
	// recomputes the hash from scratch.
	RecalculateAccountsHash() Hash
}

// Forks is the in-memory multi-fork ledger state container handed to the
// caller once bootstrap completes. The root is the deepest state every
// fork descends from.
type Forks struct {
	root   State
	states map[Slot]State
}

func NewForks(root State) *Forks {
	return &Forks{
		root: root,
		states: map[Slot]State{
			root.Slot(): root,
		},
	}
}

// Root returns the state every fork descends from.
func (f *Forks) Root() State {
	return f.root
}

// Insert adds a state for a slot newer than the root.
func (f *Forks) Insert(s State) {
	f.states[s.Slot()] = s
}

// Get returns the state at the given slot, if any fork holds one.
func (f *Forks) Get(slot Slot) (State, bool) {
	s, ok := f.states[slot]
	return s, ok
}

// Slots returns all slots with a state, ascending.
func (f *Forks) Slots() []Slot {
	slots := make([]Slot, 0, len(f.states))
	for s := range f.states {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// LeaderSchedule maps slots to the validator expected to lead them,
// derived from the bootstrapped state.
type LeaderSchedule struct {
	leaders map[Slot]PublicKey
}

func NewLeaderSchedule(leaders map[Slot]PublicKey) *LeaderSchedule {
	if leaders == nil {
		leaders = map[Slot]PublicKey{}
	}
	return &LeaderSchedule{leaders: leaders}
}

// Leader returns the scheduled leader for the slot.
func (l *LeaderSchedule) Leader(slot Slot) (PublicKey, bool) {
	k, ok := l.leaders[slot]
	return k, ok
}

// LoadedState is the sole output of the bootstrap pipeline, constructed
// exactly once per successful call and owned by the caller for the
// remainder of the node's run.
type LoadedState struct {
	Forks          *Forks
	LeaderSchedule *LeaderSchedule
	// VerifiedAnchor is set when the state was restored from a snapshot
	// whose decoded content reproduced its claimed identity. It is nil
	// after a replay from genesis, which is its own source of truth.
	VerifiedAnchor *Anchor
}
