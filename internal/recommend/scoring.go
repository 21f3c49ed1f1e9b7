package recommend

import (
	"fmt"
	"strings"

	"beautips-backend/internal/catalog"
)

// ReviewStats are the keyword-heuristic sentiment counts over a product's
// reviews. A review matching both keyword sets counts as positive only.
type ReviewStats struct {
	Positive int
	Negative int
	Total    int
}

// CountReviewSentiment classifies each review by first-match-wins keyword
// containment: positive keywords are checked before negative ones.
func CountReviewSentiment(reviews []catalog.Review) ReviewStats {
	stats := ReviewStats{Total: len(reviews)}
	for _, review := range reviews {
		text := strings.ToLower(review.Text)
		if text == "" {
			continue
		}
		switch {
		case containsAny(text, positiveReviewKeywords):
			stats.Positive++
		case containsAny(text, negativeReviewKeywords):
			stats.Negative++
		}
	}
	return stats
}

// attributeScore is the attribute-overlap pass: skin-type affinity, condition
// keywords found in the product's functions text, review sentiment, and
// budget fit. It produces the reason strings shown to the user.
func attributeScore(p catalog.Product, profile Profile) (float64, []string) {
	var score float64
	var reasons []string

	if MatchesSkinType(p, profile) {
		score += 10
		reasons = append(reasons, fmt.Sprintf("Suits %s skin", profile.SkinType))
	}

	if p.Functions != "" && len(profile.Conditions) > 0 {
		functions := strings.ToLower(p.Functions)
		var matched []string
		for _, condition := range profile.Conditions {
			if condition == "" {
				continue
			}
			if strings.Contains(functions, strings.ToLower(condition)) {
				score += 10
				matched = append(matched, condition)
			}
		}
		if len(matched) > 0 {
			reasons = append(reasons, fmt.Sprintf("Addresses: %s", strings.Join(matched, ", ")))
		}
	}

	if stats := CountReviewSentiment(p.Reviews); stats.Positive > 0 {
		bonus := float64(stats.Positive * 5)
		if bonus > 20 {
			bonus = 20
		}
		score += bonus
		reasons = append(reasons, fmt.Sprintf("%d positive reviews", stats.Positive))
	}

	if budget, ok := profile.BudgetLimit(); ok && p.PriceMax > 0 && p.PriceMax <= budget {
		score += 10
		reasons = append(reasons, "Within budget")
	}

	return score, reasons
}

// ScoreCandidate computes the composite score for an index-ranked candidate:
// similarity scaled to 50 points, flat skin/budget bonuses, plus the full
// attribute-overlap score on top. The skin and budget signals are counted in
// both passes on purpose; similarity alone under-weights hard attribute fit,
// and the observed ranking depends on the additive combination.
func ScoreCandidate(p catalog.Product, profile Profile, similarity float64) ScoredCandidate {
	score := similarity * 50

	if budget, ok := profile.BudgetLimit(); ok && p.PriceMax > 0 && p.PriceMax <= budget {
		score += 10
	}
	if MatchesSkinType(p, profile) {
		score += 10
	}

	attrScore, reasons := attributeScore(p, profile)
	score += attrScore

	return ScoredCandidate{
		Product:    p,
		Score:      score,
		Reasons:    reasons,
		Similarity: similarity,
	}
}

// ScoreFallbackCandidate scores a product pulled in by the budget-bounded
// fallback, which bypassed semantic ranking: a fixed baseline of 30 points
// stands in for the similarity contribution and the similarity field is set
// to a moderate 0.3 placeholder.
func ScoreFallbackCandidate(p catalog.Product, profile Profile) ScoredCandidate {
	attrScore, reasons := attributeScore(p, profile)
	return ScoredCandidate{
		Product:    p,
		Score:      30 + attrScore,
		Reasons:    reasons,
		Similarity: 0.3,
	}
}
