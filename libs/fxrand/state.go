package fxrand

import (
	"github.com/beatoz/fxcore/libs/jsonx"
)

// State is a snapshot of a Rand. Restoring it continues the exact sequence
// the snapshot was taken from, e.g. to replay or to synchronize peers.
type State struct {
	Seed   int32  `json:"seed"`
	State  int32  `json:"state"`
	Buffer uint64 `json:"buffer,string"`
}

func (r *Rand) State() State {
	return State{
		Seed:   r.seed,
		State:  r.state,
		Buffer: r.buffer,
	}
}

func Restore(s State) *Rand {
	return &Rand{
		seed:   s.Seed,
		state:  s.State,
		buffer: s.Buffer,
	}
}

func (s State) MarshalJSON() ([]byte, error) {
	type state State
	return jsonx.Marshal(state(s))
}

func (s *State) UnmarshalJSON(bz []byte) error {
	type state State
	return jsonx.Unmarshal(bz, (*state)(s))
}
