package service

import (
	"context"
	"sync"

	"catalogbot/internal/model"

	"go.uber.org/zap"
)

// Scorer rates the semantic similarity of two strings on [0,1].
type Scorer interface {
	Score(ctx context.Context, first, second string) float64
}

// Classifier scores a user query against the fixed scenario registry and
// picks the best match.
type Classifier struct {
	scorer    Scorer
	scenarios []model.ScenarioDefinition
	log       *zap.SugaredLogger
}

// NewClassifier creates a classifier over the given scenario registry.
func NewClassifier(scorer Scorer, scenarios []model.ScenarioDefinition, log *zap.SugaredLogger) *Classifier {
	return &Classifier{
		scorer:    scorer,
		scenarios: scenarios,
		log:       log,
	}
}

// Classify scores the query against every scenario template concurrently,
// then reduces the scores in registry order with a strict-greater-than
// comparison, so a later scenario tying an earlier maximum never wins.
// When every comparison yields 0.0 the result carries no scenario.
func (c *Classifier) Classify(ctx context.Context, query string) model.ClassificationResult {
	scores := make([]float64, len(c.scenarios))

	var wg sync.WaitGroup
	for i := range c.scenarios {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scores[i] = c.scorer.Score(ctx, query, c.scenarios[i].Template)
		}(i)
	}
	wg.Wait()

	best := -1
	bestScore := 0.0
	for i, score := range scores {
		c.log.Infow("scenario similarity", "scenario", c.scenarios[i].Name, "score", score)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 {
		return model.ClassificationResult{Confidence: 0.0}
	}

	c.log.Infow("scenario selected", "scenario", c.scenarios[best].Name, "confidence", bestScore)
	return model.ClassificationResult{
		Scenario:   &c.scenarios[best],
		Confidence: bestScore,
	}
}
