package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// weighted picks items[i] with probability weights[i]/sum(weights).
func weighted[T any](rng *rand.Rand, items []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return items[i]
		}
		r -= w
	}
	return items[len(items)-1]
}

// between returns an int in [min, max] inclusive.
func between(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

func uniformMoney(rng *rand.Rand, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rng.Float64()*(max-min)).Round(2)
}

func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// math/rand never fails a read
		panic(err)
	}
	return id.String()
}

const day = 24 * time.Hour

// randomDate is up to maxDays before now, with hour and minute jitter.
func randomDate(rng *rand.Rand, now time.Time, maxDays int) time.Time {
	offset := time.Duration(between(rng, 0, maxDays))*day +
		time.Duration(between(rng, 0, 23))*time.Hour +
		time.Duration(between(rng, 0, 59))*time.Minute
	return now.Add(-offset)
}
