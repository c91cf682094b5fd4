// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandSource is the only randomness particle code needs. PRNGService satisfies it;
// tests can pass a fixed sequence.
type RandSource interface {
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually used, so a layout can be reproduced from logs.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatSpread returns a value uniform in [-width/2, width/2).
func FloatSpread(r RandSource, width float64) float64 {
	return (r.Float64() - 0.5) * width
}
