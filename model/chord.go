package model

// Snapshot is the payload broadcast from a presenter to every audience.
// A nil field was not sent; a pointer to "" was sent empty. Only these three
// fields travel.
type Snapshot struct {
	Degree *string `json:"degree,omitempty"`
	Chord  *string `json:"chord,omitempty"`
	Key    *string `json:"key,omitempty"`
}

func str(s string) *string {
	return &s
}

// SelectionSnapshot carries an active (or cleared, when degree and chord are
// empty) selection along with the key.
func SelectionSnapshot(degree, chord, key string) Snapshot {
	return Snapshot{Degree: str(degree), Chord: str(chord), Key: str(key)}
}

// KeySnapshot carries only a key change.
func KeySnapshot(key string) Snapshot {
	return Snapshot{Key: str(key)}
}

func (s Snapshot) HasKey() bool {
	return s.Key != nil
}

// Active reports whether both degree and chord are present and non-empty.
func (s Snapshot) Active() bool {
	return s.Degree != nil && *s.Degree != "" && s.Chord != nil && *s.Chord != ""
}

// Cleared reports whether the snapshot carries the empty selection.
func (s Snapshot) Cleared() bool {
	return s.Degree != nil && s.Chord != nil && *s.Degree == "" && *s.Chord == ""
}

func (s Snapshot) DegreeValue() string {
	return deref(s.Degree)
}

func (s Snapshot) ChordValue() string {
	return deref(s.Chord)
}

func (s Snapshot) KeyValue() string {
	return deref(s.Key)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
