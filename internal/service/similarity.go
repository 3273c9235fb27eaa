package service

import (
	"context"
	"fmt"

	"catalogbot/internal/utils"

	"go.uber.org/zap"
)

// SimilarityOracle wraps the generation model as a semantic-similarity
// scorer. The model is asked for a single number; the reply is parsed
// defensively since it may carry extra prose.
type SimilarityOracle struct {
	oracle Oracle
	log    *zap.SugaredLogger
}

// NewSimilarityOracle creates a similarity oracle on top of an LLM handle.
func NewSimilarityOracle(oracle Oracle, log *zap.SugaredLogger) *SimilarityOracle {
	return &SimilarityOracle{oracle: oracle, log: log}
}

const similarityPrompt = `Đánh giá độ tương đồng ngữ nghĩa giữa hai câu dưới đây trên thang điểm từ 0 đến 1,
trong đó 0 là hoàn toàn khác nhau và 1 là hoàn toàn giống nhau về ý nghĩa.
Chỉ trả về một số duy nhất.

Câu 1: "%s"
Câu 2: "%s"`

// Score rates the semantic similarity of two sentences on [0,1]. Any model
// failure or unparseable reply degrades to 0.0; the caller is never failed.
func (s *SimilarityOracle) Score(ctx context.Context, first, second string) float64 {
	prompt := fmt.Sprintf(similarityPrompt, first, second)

	reply, err := s.oracle.Complete(ctx, []ChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		s.log.Errorw("similarity call failed", "error", err)
		return 0.0
	}

	score, ok := utils.ParseScore(reply)
	if !ok {
		s.log.Warnw("could not extract a score from model reply", "reply", reply)
		return 0.0
	}
	return score
}
