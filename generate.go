package cdkeygen

import (
	"strings"
	"time"

	"github.com/unkn0wn-root/cdkeygen/internal/randsrc"
	"github.com/unkn0wn-root/cdkeygen/seenstore"
)

const (
	// progressThreshold is the batch size from which progress is reported.
	progressThreshold = 5000
	// progressEvery is the acceptance interval between progress lines.
	progressEvery = 1000

	// collisionFactor * Count attempts with a sub-smallAlphabet alphabet
	// triggers the one-time collision advisory.
	collisionFactor = 50
	smallAlphabet   = 10
)

// Generator produces one batch of keys per Generate call. Construct with
// New; the zero value is not usable. A Generator holds no state across
// calls other than its configuration.
type Generator struct {
	cfg      Config
	alphabet []rune
	sep      string
	log      Logger

	// seen is the caller-provided store, if any. When nil, each Generate
	// call owns a fresh map-backed store and discards it afterwards.
	seen seenstore.Store

	// pick draws a uniform index in [0, n). Swapped in tests.
	pick func(n int) (int, error)
}

func newGenerator(opts Options) (*Generator, error) {
	cfg := opts.Config
	if cfg.Count <= 0 {
		return nil, errInvalidConfigf("count must be positive, got %d", cfg.Count)
	}
	if cfg.Pattern == "" && cfg.Length <= 0 {
		return nil, errInvalidConfigf("length must be positive, got %d", cfg.Length)
	}
	if cfg.Pattern != "" && !strings.ContainsRune(cfg.Pattern, PatternPlaceholder) {
		return nil, errInvalidConfigf("pattern %q has no %q placeholder", cfg.Pattern, PatternPlaceholder)
	}

	alphabet, err := BuildAlphabet(cfg.Alphabet, cfg.AvoidAmbiguous)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		alphabet: []rune(alphabet),
		sep:      coalesce(cfg.Separator, DefaultSeparator),
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		seen:     opts.Seen,
		pick:     randsrc.Pick,
	}
	return g, nil
}

// Alphabet returns the normalized sampling alphabet.
func (g *Generator) Alphabet() string { return string(g.alphabet) }

// Generate runs the batch loop and returns exactly Count keys in acceptance
// order. In unique mode it fails fast with *CapacityError when the estimated
// keyspace cannot hold Count distinct keys; duplicates encountered during
// the run are silently resampled. Apart from that pre-check the loop never
// aborts: frequent collisions on a tiny alphabet only produce a one-time
// Warn through the configured Logger.
func (g *Generator) Generate() ([]string, error) {
	if g.cfg.Unique {
		est := EstimateCapacity(len(g.alphabet), g.keyspaceLen())
		if est < CapacityCeiling && uint64(g.cfg.Count) > est {
			return nil, &CapacityError{Requested: g.cfg.Count, Capacity: est}
		}
	}

	var seen seenstore.Store
	if g.cfg.Unique {
		if g.seen != nil {
			seen = g.seen
		} else {
			local := seenstore.NewLocal(g.cfg.Count)
			defer local.Close()
			seen = local
		}
	}

	keys := make([]string, 0, g.cfg.Count)
	start := time.Now()
	attempts := 0
	warned := false

	for len(keys) < g.cfg.Count {
		k, err := g.generateOne()
		if err != nil {
			return nil, err
		}
		attempts++

		if g.cfg.Unique {
			added, err := seen.Add(k)
			if err != nil {
				return nil, err
			}
			if !added {
				continue
			}
		}
		keys = append(keys, k)

		if g.cfg.Count >= progressThreshold && len(keys)%progressEvery == 0 {
			g.log.Info("generation progress", Fields{
				"generated": len(keys),
				"total":     g.cfg.Count,
				"elapsed":   time.Since(start).Round(100 * time.Millisecond).String(),
			})
		}

		if g.cfg.Unique && !warned && attempts > g.cfg.Count*collisionFactor && len(g.alphabet) < smallAlphabet {
			g.log.Warn("frequent collisions; consider a longer key or larger alphabet", Fields{
				"attempts": attempts,
				"accepted": len(keys),
				"alphabet": len(g.alphabet),
			})
			warned = true
		}
	}
	return keys, nil
}

func (g *Generator) generateOne() (string, error) {
	var key string
	if g.cfg.Pattern != "" {
		var b strings.Builder
		b.Grow(len(g.cfg.Pattern))
		for _, r := range g.cfg.Pattern {
			if r == PatternPlaceholder {
				i, err := g.pick(len(g.alphabet))
				if err != nil {
					return "", err
				}
				b.WriteRune(g.alphabet[i])
			} else {
				b.WriteRune(r)
			}
		}
		key = b.String()
	} else {
		runes := make([]rune, g.cfg.Length)
		for i := range runes {
			j, err := g.pick(len(g.alphabet))
			if err != nil {
				return "", err
			}
			runes[i] = g.alphabet[j]
		}
		key = ApplyGrouping(string(runes), g.cfg.GroupSize, g.sep)
	}
	if g.cfg.Uppercase {
		key = strings.ToUpper(key)
	}
	return key, nil
}

// keyspaceLen is the number of sampled positions per key: placeholder count
// in pattern mode, Length otherwise.
func (g *Generator) keyspaceLen() int {
	if g.cfg.Pattern == "" {
		return g.cfg.Length
	}
	n := 0
	for _, r := range g.cfg.Pattern {
		if r == PatternPlaceholder {
			n++
		}
	}
	return n
}
