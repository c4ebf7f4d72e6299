package app

import (
	"math/rand"
	"time"
)

var decemberGreetings = []string{
	"Ho ho ho!",
	"Merry Christmas!",
	"🎅🎅🎅",
	"🎄🎄🎄",
}

const festiveBaseProbability = 0.25

// festiveProbability rises linearly from the base on 1 December to 1.0 on
// the 25th, and is zero the rest of the year.
func festiveProbability(d time.Time) float64 {
	if d.Month() != time.December || d.Day() > 25 {
		return 0
	}
	x := float64(d.Day()-1) / 24
	return (1-festiveBaseProbability)*x + festiveBaseProbability
}

// festiveGreeting returns a seasonal greeting with date-dependent
// probability, or the empty string.
func festiveGreeting(d time.Time, rng *rand.Rand) string {
	if rng.Float64() < festiveProbability(d) {
		return decemberGreetings[rng.Intn(len(decemberGreetings))]
	}
	return ""
}
