package dataset

import (
	"math/rand/v2"
	"time"
)

// SampleSize is the maximum number of questions sent to the model in one run
const SampleSize = 100

// Eligible returns the questions whose sentence label is "in_topic", in dataset order.
func Eligible(questions []Question) []Question {
	var eligible []Question
	for _, q := range questions {
		if q.SentenceLabel == LabelInTopic {
			eligible = append(eligible, q)
		}
	}
	return eligible
}

// SelectSample filters the eligible questions and, when there are more than SampleSize of them,
// draws SampleSize questions uniformly at random without replacement.
// The order of a drawn sample follows the draw order, not the dataset order.
func SelectSample(questions []Question, rng *rand.Rand) []Question {
	eligible := Eligible(questions)
	if len(eligible) <= SampleSize {
		return eligible
	}

	// partial Fisher-Yates shuffle on a copy
	pool := make([]Question, len(eligible))
	copy(pool, eligible)
	for i := 0; i < SampleSize; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:SampleSize]
}

// NewRand returns a random source for SelectSample.
// A zero seed uses the current time, so every run draws a different sample.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
