package services

import (
	"github.com/ajharbinger/line-survival-mock/internal/scoring"
	"github.com/ajharbinger/line-survival-mock/pkg/config"
)

// Services contains all application services
type Services struct {
	Prediction PredictionService
}

// PredictionService defines the interface for line survival predictions
type PredictionService interface {
	// Predict returns one probability per line, in input order
	Predict(lines []string) []float64
}

// NewServices creates a new Services instance with all dependencies
func NewServices(cfg *config.Config) *Services {
	return &Services{
		Prediction: NewPredictionService(cfg.Seed),
	}
}

// NewPredictionService creates the heuristic prediction service
func NewPredictionService(seed int64) PredictionService {
	return scoring.NewEngine(seed)
}
