package rank

// Mode selects a ranking strategy
type Mode int

const (
	// Recency is the default and the fallback for unrecognized mode
	// strings: the most recent launches, newest first, duplicates kept
	Recency Mode = iota

	// Frequency orders by all-time launch count
	Frequency

	// Frecency blends launch count and recency of last use over a
	// bounded window of recent launches
	Frecency

	// Adaptive orders by launch count within the last 36 hours; no
	// backfill from outside the window
	Adaptive
)

// ParseMode maps a configuration string to a Mode. Anything
// unrecognized falls back to Recency, matching historical behavior.
func ParseMode(s string) Mode {
	switch s {
	case "frequency":
		return Frequency
	case "frecency":
		return Frecency
	case "adaptive":
		return Adaptive
	default:
		return Recency
	}
}

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case Frequency:
		return "frequency"
	case Frecency:
		return "frecency"
	case Adaptive:
		return "adaptive"
	default:
		return "recency"
	}
}
