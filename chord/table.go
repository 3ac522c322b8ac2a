package chord

// Symbol is a chord name: a root from Keys followed by a quality suffix
// ("" major, "m" minor, "dim" diminished).
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

const NumDegrees = 7

// diatonic chords of each major key, degrees I..VII. Roots are sharp-spelled,
// so F# major's leading tone chord is Fdim rather than E#dim.
var table = map[Key][NumDegrees]Symbol{
	"C":  {"C", "Dm", "Em", "F", "G", "Am", "Bdim"},
	"C#": {"C#", "D#m", "Fm", "F#", "G#", "A#m", "Cdim"},
	"D":  {"D", "Em", "F#m", "G", "A", "Bm", "C#dim"},
	"D#": {"D#", "Fm", "Gm", "G#", "A#", "Cm", "Ddim"},
	"E":  {"E", "F#m", "G#m", "A", "B", "C#m", "D#dim"},
	"F":  {"F", "Gm", "Am", "A#", "C", "Dm", "Edim"},
	"F#": {"F#", "G#m", "A#m", "B", "C#", "D#m", "Fdim"},
	"G":  {"G", "Am", "Bm", "C", "D", "Em", "F#dim"},
	"G#": {"G#", "A#m", "Cm", "C#", "D#", "Fm", "Gdim"},
	"A":  {"A", "Bm", "C#m", "D", "E", "F#m", "G#dim"},
	"A#": {"A#", "Cm", "Dm", "D#", "F", "Gm", "Adim"},
	"B":  {"B", "C#m", "D#m", "E", "F#", "G#m", "A#dim"},
}

// Lookup returns the diatonic chord for degree (1-7) in key. Callers must
// check the degree range; an unknown key or degree yields "".
func Lookup(key Key, degree int) Symbol {
	row, ok := table[key]
	if !ok || degree < 1 || degree > NumDegrees {
		return ""
	}
	return row[degree-1]
}

// Table returns the seven chords of key in degree order.
func Table(key Key) ([]Symbol, bool) {
	row, ok := table[key]
	if !ok {
		return nil, false
	}
	return append([]Symbol(nil), row[:]...), true
}
