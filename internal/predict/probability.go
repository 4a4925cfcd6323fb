package predict

import (
	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

const (
	h2hWeight    = 0.7
	recentWeight = 0.3
)

// HeadToHeadProbability estimates a's chance of beating b on a 0-100 scale
// from the head-to-head win rate and a's win rate over its last five matches
// in source order. A team with no matches gets a neutral recent rate of 50.
func HeadToHeadProbability(ds *loader.Dataset, a, b string) (model.H2HProbability, error) {
	h, err := aggregator.HeadToHead(ds, a, b, aggregator.Filter{})
	if err != nil {
		return model.H2HProbability{}, err
	}

	p := model.H2HProbability{Record: h}
	p.H2HWinRate = float64(h.WinsA) / float64(h.Matches) * 100

	var involving []*model.Match
	matches := ds.Matches()
	for i := range matches {
		if matches[i].Involves(a) {
			involving = append(involving, &matches[i])
		}
	}
	if len(involving) > FormWindow {
		involving = involving[len(involving)-FormWindow:]
	}
	p.RecentWinRate = 50
	if len(involving) > 0 {
		wins := 0
		for _, m := range involving {
			if m.Winner == a {
				wins++
			}
		}
		p.RecentWinRate = float64(wins) / FormWindow * 100
	}

	p.ProbabilityA = model.Round2(h2hWeight*p.H2HWinRate + recentWeight*p.RecentWinRate)
	p.ProbabilityB = model.Round2(100 - p.ProbabilityA)
	return p, nil
}
