package care

import (
	"pet-care-insights/internal/platform/logger"
	"pet-care-insights/internal/platform/metrics"
)

// Analyze ejecuta el pipeline completo: sub-scores, aiScore,
// recomendaciones y plan de alimentación. No falla nunca.
func Analyze(p PetRecord) Report {
	scores := ScoreAttributes(p)
	analysis := Analysis{
		Scores:          scores,
		AIScore:         CompositeScore(scores),
		Recommendations: GenerateRecommendations(p, scores),
	}

	return Report{
		Scores:          analysis.Scores,
		AIScore:         analysis.AIScore,
		Recommendations: analysis.Recommendations,
		FeedingPlan:     GenerateFeedingPlan(p, analysis),
	}
}

// Analyzer envuelve Analyze con logging y métricas. No guarda estado por mascota.
type Analyzer struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewAnalyzer(log logger.Logger, m *metrics.Metrics) *Analyzer {
	if log == nil {
		log = logger.Nop()
	}
	return &Analyzer{log: log, metrics: m}
}

func (a *Analyzer) Analyze(p PetRecord) Report {
	rep := Analyze(p)

	a.metrics.ObserveAnalysisScore(rep.AIScore)
	a.log.Debug("care analysis computed", map[string]any{
		"pet_id":          p.ID,
		"category":        p.Category,
		"ai_score":        rep.AIScore,
		"recommendations": len(rep.Recommendations),
	})
	return rep
}
