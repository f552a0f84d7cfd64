// SPDX-License-Identifier: MIT

package rng

import "math"

// Choice returns a uniformly chosen element of items.
// ok is false when items is empty; no random number is consumed in that case.
func Choice[T any](s *Source, items []T) (v T, ok bool) {
	if len(items) == 0 {
		return v, false
	}
	return items[s.Intn(len(items))], true
}

// ShuffleSlice shuffles items in place.
func ShuffleSlice[T any](s *Source, items []T) {
	s.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Weights returns the bias weights for n ordered candidates:
//
//	w[k] = 1 + relativeWeight·|bias|·pos(k)
//
// where pos(k) counts from the first candidate when bias > 0 and from the
// last candidate when bias < 0. bias == 0 yields uniform weights.
func Weights(n int, bias, relativeWeight float64) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	mag := relativeWeight * math.Abs(bias)
	for k := 0; k < n; k++ {
		pos := k
		if bias < 0 {
			pos = n - 1 - k
		}
		w[k] = 1 + mag*float64(pos)
		if w[k] < 0 {
			w[k] = 0
		}
	}
	return w
}

// WeightedIndex draws an index in [0,n) according to Weights(n, bias,
// relativeWeight). It returns -1 when n <= 0.
// With bias == 0 it consumes exactly one Intn draw, like Choice.
func (s *Source) WeightedIndex(n int, bias, relativeWeight float64) int {
	if n <= 0 {
		return -1
	}
	if bias == 0 || relativeWeight == 0 || n == 1 {
		return s.Intn(n)
	}
	w := Weights(n, bias, relativeWeight)
	var total float64
	for _, x := range w {
		total += x
	}
	if total <= 0 {
		return s.Intn(n)
	}
	target := s.Float64() * total
	for k, x := range w {
		if target < x {
			return k
		}
		target -= x
	}
	return n - 1
}

// WeightedChoice is WeightedIndex applied to items.
func WeightedChoice[T any](s *Source, items []T, bias, relativeWeight float64) (v T, ok bool) {
	k := s.WeightedIndex(len(items), bias, relativeWeight)
	if k < 0 {
		return v, false
	}
	return items[k], true
}

// Chance reports true with probability p (clamped to [0,1]).
func (s *Source) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return s.Float64() < p
}
