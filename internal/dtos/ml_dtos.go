package dtos

// MovementFeatures are the three numeric inputs of the should-move
// classifier.
type MovementFeatures struct {
	MovementsCount         float64 `json:"movementsCount"`
	SectorChangesLast7Days float64 `json:"sectorChangesLast7Days"`
	HoursSinceLastMove     float64 `json:"hoursSinceLastMove"`
}

type MovementPrediction struct {
	ShouldMove  bool    `json:"shouldMove"`
	Score       float64 `json:"score"`
	Probability float64 `json:"probability"`
}
