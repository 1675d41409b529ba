package scheduler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/nihongo.git/internal/models"
)

// EncodeSeed joins batch indices with commas.
func EncodeSeed(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// DecodeSeed parses a seed against a collection of n items. The collection
// must not have changed since the seed was produced.
func DecodeSeed(seed string, n int) ([]int, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, fmt.Errorf("%w: empty seed", models.ErrBadSeed)
	}

	parts := strings.Split(seed, ",")
	indices := make([]int, 0, len(parts))
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: %q", models.ErrBadSeed, p)
		}
		if idx >= n {
			return nil, fmt.Errorf("%w: index %d, collection has %d words", models.ErrSeedOutOfRange, idx, n)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d repeated", models.ErrBadSeed, idx)
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices, nil
}
