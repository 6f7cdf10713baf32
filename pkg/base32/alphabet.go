package base32

const invalidIndex = 0xFF

const (
	stdSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hexSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

// padChar is never a member of an alphabet.
const padChar = '='

// Alphabet is an ordered set of 32 symbols mapping 5-bit values to characters.
type Alphabet struct {
	name   string
	encode [32]byte
	decode [256]byte
}

var (
	// StdAlphabet is the RFC 4648 standard alphabet.
	StdAlphabet = newAlphabet("base32", stdSymbols)
	// HexAlphabet is the RFC 4648 "extended hex" alphabet.
	HexAlphabet = newAlphabet("base32hex", hexSymbols)
)

func newAlphabet(name, symbols string) *Alphabet {
	if len(symbols) != 32 {
		panic("base32: alphabet must have 32 symbols")
	}
	a := &Alphabet{name: name}
	for i := range a.decode {
		a.decode[i] = invalidIndex
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == padChar || a.decode[c] != invalidIndex {
			panic("base32: invalid alphabet symbol " + string(rune(c)))
		}
		a.encode[i] = c
		a.decode[c] = byte(i)
	}
	return a
}

// AlphabetFor returns HexAlphabet when useHex is set, StdAlphabet otherwise.
func AlphabetFor(useHex bool) *Alphabet {
	if useHex {
		return HexAlphabet
	}
	return StdAlphabet
}

// Name is the RFC 4648 name of the encoding.
func (a *Alphabet) Name() string {
	return a.name
}

// Symbol returns the character for a 5-bit value. It panics if v > 31.
func (a *Alphabet) Symbol(v byte) byte {
	return a.encode[v]
}

// Index returns the 5-bit value of r and whether r belongs to the alphabet.
// Lookup is exact; callers uppercase first.
func (a *Alphabet) Index(r rune) (byte, bool) {
	if r < 0 || r >= rune(len(a.decode)) {
		return 0, false
	}
	v := a.decode[r]
	return v, v != invalidIndex
}

func (a *Alphabet) String() string {
	return string(a.encode[:])
}
