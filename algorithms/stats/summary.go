package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
)

var (
	ErrEmptyInput     = errors.New("no observations")
	ErrLengthMismatch = errors.New("vectors and labels differ in length")
)

// LabelCount is the number of observations carrying a label
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary describes a set of labeled pitch-class count vectors
type Summary struct {
	Observations int          `json:"observations"`
	TotalNotes   float64      `json:"total_notes"`
	Labels       []LabelCount `json:"labels"`        // sorted by count, then label
	LabelEntropy float64      `json:"label_entropy"` // bits

	// Per pitch class, canonical A..G# order
	Mean   []float64 `json:"mean"`
	StdDev []float64 `json:"std_dev"`

	// Mean DFT magnitude of each vector, bins 0..6
	MeanIntervalSpectrum []float64 `json:"mean_interval_spectrum"`
}

// Summarize computes column statistics, the label distribution and the
// mean interval spectrum. labels[i] belongs to vectors[i].
func Summarize(vectors []chroma.Vector, labels []string) (*Summary, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d vectors, %d labels", ErrLengthMismatch, n, len(labels))
	}

	s := &Summary{
		Observations:         n,
		Mean:                 make([]float64, chroma.NumPitchClasses),
		StdDev:               make([]float64, chroma.NumPitchClasses),
		MeanIntervalSpectrum: make([]float64, chroma.SpectrumBins),
	}

	column := make([]float64, n)
	for pc := 0; pc < chroma.NumPitchClasses; pc++ {
		for i, v := range vectors {
			column[i] = float64(v[pc])
		}
		if n == 1 {
			s.Mean[pc] = column[0]
			continue
		}
		s.Mean[pc], s.StdDev[pc] = stat.MeanStdDev(column, nil)
	}

	for _, v := range vectors {
		s.TotalNotes += floats.Sum(v.Floats())
		floats.Add(s.MeanIntervalSpectrum, chroma.IntervalSpectrum(v))
	}
	floats.Scale(1/float64(n), s.MeanIntervalSpectrum)

	s.Labels = countLabels(labels)
	s.LabelEntropy = labelEntropy(s.Labels, n)

	return s, nil
}

func countLabels(labels []string) []LabelCount {
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}

	out := make([]LabelCount, 0, len(counts))
	for label, c := range counts {
		out = append(out, LabelCount{Label: label, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// labelEntropy is the Shannon entropy of the label distribution in bits
func labelEntropy(counts []LabelCount, total int) float64 {
	p := make([]float64, len(counts))
	for i, lc := range counts {
		p[i] = float64(lc.Count) / float64(total)
	}
	return stat.Entropy(p) / math.Ln2
}
