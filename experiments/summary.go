package experiments

import (
	"github.com/samber/lo"
)

// Summary aggregates the records of one strategy.
type Summary struct {
	Strategy       string
	Games          int
	MeanNodes      float64
	MeanTerminals  float64
	MeanHeuristics float64
	MeanPrunes     float64
	Agreement      float64 // Share of games choosing minimax's action
}

// Summarize aggregates records per strategy, in the order of Strategies.
func Summarize(records []Record) []Summary {
	byStrategy := lo.GroupBy(records, func(r Record) string {
		return r.Strategy
	})

	summaries := []Summary{}
	for _, strategy := range Strategies {
		group, ok := byStrategy[strategy]
		if !ok {
			continue
		}
		n := float64(len(group))
		summaries = append(summaries, Summary{
			Strategy:       strategy,
			Games:          len(group),
			MeanNodes:      float64(lo.SumBy(group, func(r Record) int64 { return r.Nodes })) / n,
			MeanTerminals:  float64(lo.SumBy(group, func(r Record) int64 { return r.Terminals })) / n,
			MeanHeuristics: float64(lo.SumBy(group, func(r Record) int64 { return r.Heuristics })) / n,
			MeanPrunes:     float64(lo.SumBy(group, func(r Record) int64 { return r.Prunes })) / n,
			Agreement:      float64(lo.CountBy(group, func(r Record) bool { return r.Agrees })) / n,
		})
	}
	return summaries
}
