package gp

import (
	"encoding/json"
	"io"
)

// State is a snapshot of a model's parameters: name to values, one
// value per batch index.
type State map[string][]float64

// State returns a deep copy of the current parameters.
func (m *Regression) State() State {
	s := make(State, len(m.params))
	for _, p := range m.params {
		s[p.name] = append([]float64(nil), p.values...)
	}
	return s
}

// LoadState replaces the model's parameters with the snapshot. In
// strict mode every entry's leading dimension must equal the model's
// current batch size; in relaxed mode the model adopts the snapshot's
// batch size. All entries of the snapshot must agree with each other
// in either mode.
func (m *Regression) LoadState(s State, strict bool) error {
	return m.load(s, strict)
}

// WriteJSON encodes the snapshot to w.
func (s State) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// ReadJSON decodes a snapshot from r.
func ReadJSON(r io.Reader) (State, error) {
	var s State
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return s, nil
}
