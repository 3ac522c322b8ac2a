package chord

import "github.com/jsphweid/chordcast/util"

// Parse splits a chord into its root and the rest of the symbol. The root is
// a letter A-G, optionally followed by '#', and must be one of Keys.
func Parse(s Symbol) (Key, string, bool) {
	str := string(s)
	if len(str) == 0 || str[0] < 'A' || str[0] > 'G' {
		return "", "", false
	}
	n := 1
	if len(str) > 1 && str[1] == '#' {
		n = 2
	}
	root := Key(str[:n])
	if !root.Valid() {
		return "", "", false
	}
	return root, str[n:], true
}

// Transpose shifts the root of s by semitones, keeping the suffix as is.
// Symbols without a parsable root come back unchanged. Results are always
// sharp-spelled.
func Transpose(s Symbol, semitones int) Symbol {
	root, suffix, ok := Parse(s)
	if !ok {
		return s
	}
	i := util.FloorMod(root.Index()+semitones, len(Keys))
	return Symbol(string(Keys[i]) + suffix)
}
