package morphed

// State is the flat key/value mapping a view renders from.
//
// A view never mutates a State in place: SetState and ReplaceState build a
// new map, so a State handed to an update function stays stable for the
// duration of the call.
type State map[string]any

// Clone returns a shallow copy of s. Values are not copied. The result is
// never nil.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new State holding every key of s, with the keys of patch
// overwriting. Neither input is modified.
func (s State) Merge(patch State) State {
	out := make(State, len(s)+len(patch))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Get returns the value for key and whether it is present.
func (s State) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// String returns the value for key if it is a string, or "".
func (s State) String(key string) string {
	v, _ := s[key].(string)
	return v
}
