// Package cdkeygen generates pseudo-random alphanumeric license codes ("CD
// keys") from a fixed length or a pattern template, with optional uniqueness,
// group separators and upper-casing. Randomness always comes from
// crypto/rand; keys are not reproducible from a seed or the clock.
//
// Components:
//   - Alphabet: deduplicated, whitespace-free sampling set. Built-in defaults
//     with or without the visually ambiguous characters 0 O 1 I L.
//   - Generator: single-pass batch loop. Unique mode resamples on duplicate,
//     tracked by a pluggable seenstore.Store.
//   - Logger: optional sink for progress and advisory messages. Adapters for
//     zap, logrus, slog and zerolog live under log/.
//   - output: encoders for text, csv and json files (plus msgpack/cbor).
//
// Pattern templates use 'X' as the placeholder:
//
//	keys, err := cdkeygen.Generate(cdkeygen.Config{
//	    Count:          50,
//	    Pattern:        "XXXXX-XXXXX-XXXXX",
//	    AvoidAmbiguous: true,
//	    Unique:         true,
//	})
package cdkeygen
