package services

import (
	"math"

	"github.com/motix/motix/internal/dtos"
)

// Predictor decides whether a motorcycle should be moved, given recent
// activity features. Implementations must be safe for concurrent use after
// construction.
type Predictor interface {
	Predict(features dtos.MovementFeatures) dtos.MovementPrediction
}

// trainingExample pairs the three activity features with a should-move label.
type trainingExample struct {
	movements     float64
	sectorChanges float64
	hoursSince    float64
	label         bool
}

// Synthetic labeled set: frequently moved motorcycles that changed sector
// recently should keep moving; idle ones should not.
func trainingSet() []trainingExample {
	return []trainingExample{
		{0, 0, 200, false},
		{2, 0, 80, false},
		{5, 1, 24, true},
		{10, 3, 5, true},
		{8, 2, 10, true},
		{1, 0, 120, false},
	}
}

// mlPredictionService is a logistic-regression classifier over min-max
// normalized features, fit once at construction by gradient descent.
// After training it holds only immutable weights, so concurrent Predict
// calls need no synchronization.
type mlPredictionService struct {
	featMin [3]float64
	featMax [3]float64
	weights [3]float64
	bias    float64
}

func NewMLPredictionService() Predictor {
	s := &mlPredictionService{}
	s.fit(trainingSet())
	return s
}

func (s *mlPredictionService) Predict(features dtos.MovementFeatures) dtos.MovementPrediction {
	x := s.normalize([3]float64{
		features.MovementsCount,
		features.SectorChangesLast7Days,
		features.HoursSinceLastMove,
	})

	score := s.bias
	for i := range x {
		score += s.weights[i] * x[i]
	}
	probability := sigmoid(score)

	return dtos.MovementPrediction{
		ShouldMove:  score > 0,
		Score:       score,
		Probability: probability,
	}
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

const (
	trainEpochs       = 5000
	trainLearningRate = 0.5
)

func (s *mlPredictionService) fit(examples []trainingExample) {
	raw := make([][3]float64, len(examples))
	for i, ex := range examples {
		raw[i] = [3]float64{ex.movements, ex.sectorChanges, ex.hoursSince}
	}

	for f := 0; f < 3; f++ {
		s.featMin[f] = raw[0][f]
		s.featMax[f] = raw[0][f]
		for _, row := range raw {
			s.featMin[f] = math.Min(s.featMin[f], row[f])
			s.featMax[f] = math.Max(s.featMax[f], row[f])
		}
	}

	inputs := make([][3]float64, len(raw))
	for i, row := range raw {
		inputs[i] = s.normalize(row)
	}

	// batch gradient descent on the log loss; the tiny separable set
	// converges well before the epoch budget
	n := float64(len(examples))
	for epoch := 0; epoch < trainEpochs; epoch++ {
		var gradW [3]float64
		var gradB float64
		for i, ex := range examples {
			z := s.bias
			for f := range inputs[i] {
				z += s.weights[f] * inputs[i][f]
			}
			y := 0.0
			if ex.label {
				y = 1.0
			}
			diff := sigmoid(z) - y
			for f := range inputs[i] {
				gradW[f] += diff * inputs[i][f]
			}
			gradB += diff
		}
		for f := range s.weights {
			s.weights[f] -= trainLearningRate * gradW[f] / n
		}
		s.bias -= trainLearningRate * gradB / n
	}
}

func (s *mlPredictionService) normalize(row [3]float64) [3]float64 {
	var out [3]float64
	for f := range row {
		span := s.featMax[f] - s.featMin[f]
		if span == 0 {
			continue
		}
		out[f] = (row[f] - s.featMin[f]) / span
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
