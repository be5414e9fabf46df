package searcher

// Option configures a single search call.
type Option func(c *config)

type config struct {
	metrics   Collector
	opponents OpponentModel
}

// OpponentModel decides how GeneralMinimax values nodes where a player other
// than the root player moves.
type OpponentModel int

const (
	// MaxN assumes every player maximizes their own reward.
	MaxN OpponentModel = iota
	// Paranoid assumes every other player minimizes the root player's reward.
	Paranoid
)

func (m OpponentModel) String() string {
	switch m {
	case MaxN:
		return "max-n"
	case Paranoid:
		return "paranoid"
	default:
		return "unknown"
	}
}

// WithMetrics counts the work done by the search into collector.
func WithMetrics(collector Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithOpponentModel selects the opponent model of GeneralMinimax. Other
// strategies ignore it.
func WithOpponentModel(model OpponentModel) Option {
	return func(c *config) {
		c.opponents = model
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		metrics:   NewDummyCollector(),
		opponents: MaxN,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
