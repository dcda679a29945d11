package cdkeygen

import (
	"errors"
	"strings"
	"testing"
)

func newTestGenerator(t *testing.T, opts Options) *Generator {
	t.Helper()
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// captureLogger records messages per level.
type captureLogger struct {
	debugs, infos, warns, errs []string
}

func (l *captureLogger) Debug(msg string, _ Fields) { l.debugs = append(l.debugs, msg) }
func (l *captureLogger) Info(msg string, _ Fields)  { l.infos = append(l.infos, msg) }
func (l *captureLogger) Warn(msg string, _ Fields)  { l.warns = append(l.warns, msg) }
func (l *captureLogger) Error(msg string, _ Fields) { l.errs = append(l.errs, msg) }

// scriptedPick replays a fixed index sequence, then falls back to its call
// counter so generation always completes.
type scriptedPick struct {
	seq []int
	i   int
}

func (s *scriptedPick) pick(n int) (int, error) {
	v := s.i
	if s.i < len(s.seq) {
		v = s.seq[s.i]
	}
	s.i++
	return v % n, nil
}

func TestGenerateCountAndUniqueness(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:          5,
		Length:         10,
		AvoidAmbiguous: true,
		Unique:         true,
	}})

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(keys) != 5 {
		t.Fatalf("got %d keys, want 5", len(keys))
	}

	seen := make(map[string]struct{})
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = struct{}{}

		if len(k) != 10 {
			t.Fatalf("key %q has length %d, want 10", k, len(k))
		}
		for _, r := range k {
			if !strings.ContainsRune(DefaultAlphabet, r) {
				t.Fatalf("key %q contains %q outside alphabet", k, r)
			}
		}
	}
}

func TestGeneratePatternShape(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:          20,
		Pattern:        "XX-XX",
		AvoidAmbiguous: true,
		Unique:         true,
	}})

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, k := range keys {
		if len(k) != 5 || k[2] != '-' {
			t.Fatalf("key %q does not match ??-?? shape", k)
		}
		for _, i := range []int{0, 1, 3, 4} {
			if !strings.ContainsRune(DefaultAlphabet, rune(k[i])) {
				t.Fatalf("key %q position %d outside alphabet", k, i)
			}
		}
	}
}

func TestGeneratePatternKeepsLiterals(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:   3,
		Pattern: "KEY-X/X",
		Unique:  false,
	}})

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, "KEY-") || k[5] != '/' {
			t.Fatalf("literals not preserved in %q", k)
		}
	}
}

func TestGenerateGrouping(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:     10,
		Length:    10,
		GroupSize: 3,
		Separator: "-",
		Unique:    true,
	}})

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, k := range keys {
		if len(k) != 13 { // 10 chars + 3 separators
			t.Fatalf("key %q has length %d, want 13", k, len(k))
		}
		stripped := strings.ReplaceAll(k, "-", "")
		if len(stripped) != 10 {
			t.Fatalf("key %q has %d non-separator chars, want 10", k, len(stripped))
		}
		for _, r := range stripped {
			if !strings.ContainsRune(FullAlphabet, r) {
				t.Fatalf("key %q contains %q outside alphabet", k, r)
			}
		}
	}
}

func TestGenerateGroupingIgnoredInPatternMode(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:     5,
		Pattern:   "XXXX",
		GroupSize: 2,
		Separator: "-",
		Unique:    true,
	}})

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, k := range keys {
		if len(k) != 4 {
			t.Fatalf("pattern output %q was grouped", k)
		}
	}
}

func TestGenerateUppercase(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:     8,
		Length:    12,
		Alphabet:  "abcdefgh",
		Uppercase: true,
	}})

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, k := range keys {
		if k != strings.ToUpper(k) {
			t.Fatalf("key %q not upper-cased", k)
		}
	}
}

func TestGenerateDuplicatesAllowed(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:    50,
		Length:   1,
		Alphabet: "AB",
		Unique:   false,
	}})

	// keyspace of 2 cannot hold 50 distinct keys, but non-unique runs
	// never consult capacity
	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(keys) != 50 {
		t.Fatalf("got %d keys, want 50", len(keys))
	}
	for _, k := range keys {
		if k != "A" && k != "B" {
			t.Fatalf("unexpected key %q", k)
		}
	}
}

func TestGenerateCapacityExceeded(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:    3,
		Length:   1,
		Alphabet: "AB",
		Unique:   true,
	}})

	_, err := g.Generate()
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("Generate = %v, want *CapacityError", err)
	}
	if capErr.Requested != 3 || capErr.Capacity != 2 {
		t.Fatalf("CapacityError = %+v, want requested 3 capacity 2", capErr)
	}
}

func TestGenerateAtCeilingNeverRejected(t *testing.T) {
	// 32^25 sails past the ceiling; the pre-check must disable itself.
	g := newTestGenerator(t, Options{Config: Config{
		Count:          3,
		Length:         25,
		AvoidAmbiguous: true,
		Unique:         true,
	}})
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestCollisionAdvisoryFiresOnce(t *testing.T) {
	log := &captureLogger{}
	g := newTestGenerator(t, Options{
		Config: Config{
			Count:    3,
			Length:   1,
			Alphabet: "ABCDEFGH", // 8 runes: small enough for the advisory
			Unique:   true,
		},
		Logger: log,
	})

	// accept one key, then stall on duplicates well past count*50 attempts
	// before the fallback counter supplies fresh values
	script := make([]int, 0, 201)
	for i := 0; i < 201; i++ {
		script = append(script, 0)
	}
	sp := &scriptedPick{seq: script}
	g.pick = sp.pick

	keys, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("got %d keys, want 3: advisory must not abort generation", len(keys))
	}
	if len(log.warns) != 1 {
		t.Fatalf("got %d warnings, want exactly 1: %v", len(log.warns), log.warns)
	}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero count", Config{Count: 0, Length: 10}, ErrInvalidConfig},
		{"negative count", Config{Count: -1, Length: 10}, ErrInvalidConfig},
		{"zero length no pattern", Config{Count: 1, Length: 0}, ErrInvalidConfig},
		{"pattern without placeholder", Config{Count: 1, Pattern: "ABC-DEF"}, ErrInvalidConfig},
		{"alphabet collapses", Config{Count: 1, Length: 5, Alphabet: "0O1IL", AvoidAmbiguous: true}, ErrInvalidAlphabet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(Options{Config: tc.cfg}); !errors.Is(err, tc.want) {
				t.Fatalf("New = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGenerateConvenience(t *testing.T) {
	keys, err := Generate(Config{Count: 4, Length: 6, Unique: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(keys) != 4 {
		t.Fatalf("got %d keys, want 4", len(keys))
	}
}

func TestGeneratorAlphabet(t *testing.T) {
	g := newTestGenerator(t, Options{Config: Config{
		Count:          1,
		Length:         1,
		Alphabet:       "AAB0C",
		AvoidAmbiguous: true,
	}})
	if got := g.Alphabet(); got != "ABC" {
		t.Fatalf("Alphabet() = %q, want %q", got, "ABC")
	}
}
