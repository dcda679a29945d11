package cdkeygen

import (
	"github.com/unkn0wn-root/cdkeygen/seenstore"
)

const (
	// DefaultLength is the key length used by callers that don't care.
	DefaultLength = 25

	// DefaultSeparator joins groups when Config.Separator is empty.
	DefaultSeparator = "-"

	// PatternPlaceholder marks a position in Config.Pattern that is filled
	// with one random alphabet character. Every other pattern character is
	// copied into the key literally.
	PatternPlaceholder = 'X'

	// DefaultAlphabet is uppercase letters and digits minus 0 O 1 I L.
	DefaultAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// FullAlphabet is all uppercase letters and digits.
	FullAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Config describes one generation run. It is read once by New and never
// mutated afterwards.
type Config struct {
	// Count is how many keys to produce. Must be positive.
	Count int

	// Length is the number of sampled characters per key when Pattern is
	// empty. Must be positive in that case.
	Length int

	// Pattern, when non-empty, shapes every key: PatternPlaceholder runes
	// are sampled from the alphabet, everything else is copied literally.
	// Must contain at least one placeholder. Grouping is ignored in pattern
	// mode; separators belong in the template itself.
	Pattern string

	// Alphabet is the sampling source. Empty selects DefaultAlphabet or
	// FullAlphabet depending on AvoidAmbiguous. See BuildAlphabet for the
	// normalization rules.
	Alphabet string

	// AvoidAmbiguous strips 0 O 1 I L from the alphabet, custom or not.
	AvoidAmbiguous bool

	// Unique requires all keys of the run to be pairwise distinct.
	Unique bool

	// GroupSize chunks fixed-length output every GroupSize characters,
	// joined by Separator. Zero disables grouping.
	GroupSize int

	// Separator joins groups. Empty means DefaultSeparator.
	Separator string

	// Uppercase upper-cases every key after assembly.
	Uppercase bool
}

// Options tune a Generator beyond the run configuration itself.
// Only Config is required.
type Options struct {
	Config Config

	Logger Logger // if nil, NopLogger is used

	// Seen tracks already-produced keys in unique mode. nil => a fresh
	// in-process map store per run. Swap in seenstore.NewBigCache for
	// multi-million key runs. A provided store is owned by the caller:
	// the generator never closes it, and reusing one across runs extends
	// uniqueness across them.
	Seen seenstore.Store
}

// New validates opts and returns a ready Generator. Configuration problems
// surface here, not in Generate: ErrInvalidConfig for a bad count/length/
// pattern, ErrInvalidAlphabet when the alphabet normalizes to fewer than two
// characters.
func New(opts Options) (*Generator, error) {
	return newGenerator(opts)
}

// Generate is the one-call convenience for a single run with default
// options. Progress and advisories are discarded; pass a Logger through New
// to receive them.
func Generate(cfg Config) ([]string, error) {
	g, err := New(Options{Config: cfg})
	if err != nil {
		return nil, err
	}
	return g.Generate()
}
