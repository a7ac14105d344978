package analysis

import (
	"io"
	"sort"

	"padbreak/core"

	"github.com/sirupsen/logrus"
)

// space is the plaintext byte the engine looks for.
const space = 0x20

// Recoverer runs the key recovery engine and reports its progress.
type Recoverer struct {
	log *logrus.Logger
}

// NewRecoverer creates a recoverer logging to logger. A nil logger discards
// all output.
func NewRecoverer(logger *logrus.Logger) *Recoverer {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Recoverer{log: logger}
}

// RecoverKey recovers as much of the shared key as possible using a
// discarding logger.
func RecoverKey(ciphertexts []core.Ciphertext) core.Key {
	return NewRecoverer(nil).Recover(ciphertexts)
}

// Recover builds the key one column at a time. Each iteration analyses the
// part of the remaining ciphertexts that lies past the previously removed
// shortest one, so later key bytes are inferred from fewer ciphertexts.
// The caller's slice is not modified.
func (r *Recoverer) Recover(ciphertexts []core.Ciphertext) core.Key {
	key := core.Key{}

	remaining := make([]core.Ciphertext, len(ciphertexts))
	copy(remaining, ciphertexts)
	sort.SliceStable(remaining, func(i, j int) bool {
		return len(remaining[i]) < len(remaining[j])
	})

	depth := 0
	for len(remaining) > 1 {
		partial := recoverPartialKey(remaining)
		key = append(key, partial...)

		r.log.WithFields(logrus.Fields{
			"depth":       depth,
			"ciphertexts": len(remaining),
			"width":       len(partial),
			"recovered":   partial.KnownCount(),
		}).Debug("recovered partial key")

		// Drop the shortest and skip the already analysed prefix of the rest
		consumed := len(remaining[0])
		remaining = remaining[1:]
		for i := range remaining {
			remaining[i] = remaining[i][consumed:]
		}
		depth++
	}

	known, total := Coverage(key)
	r.log.WithFields(logrus.Fields{
		"ciphertexts": len(ciphertexts),
		"length":      total,
		"known":       known,
	}).Info("key recovery finished")

	return key
}

// recoverPartialKey analyses a set of ciphertexts sorted by length and
// returns a key as long as the shortest one. A position is recovered from a
// main ciphertext when it looks like a space against every other ciphertext.
func recoverPartialKey(ciphertexts []core.Ciphertext) core.Key {
	if len(ciphertexts) == 0 {
		return core.Key{}
	}
	key := core.NewKey(len(ciphertexts[0]))
	if len(key) == 0 {
		return key
	}

	counts := make([]int, len(key))
	for m, main := range ciphertexts {
		clear(counts)
		for s, secondary := range ciphertexts {
			if s == m {
				continue
			}
			for _, pos := range ProbableSpaces(main, secondary) {
				if pos >= len(key) {
					break
				}
				counts[pos]++
			}
		}

		// Seen as a space against everyone else, so the space was in main.
		// A later main overwrites an earlier one.
		for pos, count := range counts {
			if count == len(ciphertexts)-1 {
				key[pos] = core.Known(space ^ main[pos])
			}
		}
	}
	return key
}

// Coverage returns the number of known slots and the key length.
func Coverage(key core.Key) (known, total int) {
	return key.KnownCount(), len(key)
}
