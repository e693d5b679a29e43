package calc

import "math"

// Trend classifies the direction of a metric over time.
type Trend int

const (
	// TrendMixed covers conflicting window signals and series too sparse
	// to classify.
	TrendMixed Trend = iota
	TrendUp
	TrendDown
	TrendFlat
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendFlat:
		return "flat"
	default:
		return "mixed"
	}
}

// MarshalText serializes a trend by its name so encoded views carry
// "up"/"down"/"flat"/"mixed" rather than enum ordinals.
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// direction compares two values under a fractional flatness threshold.
// A zero base falls back to an absolute comparison so a flat zero series
// stays flat.
func direction(first, last, flatThreshold float64) Trend {
	var change float64
	if first != 0 {
		change = (last - first) / math.Abs(first)
	} else {
		change = last - first
	}
	if math.Abs(change) < flatThreshold {
		return TrendFlat
	}
	if change > 0 {
		return TrendUp
	}
	return TrendDown
}

// ShortTermTrend partitions an oldest-first series into consecutive windows
// of the given length and labels each window by the change from its first
// to its last usable value. When ignoreNone is set, missing values are
// skipped and the window shrinks; otherwise a missing value poisons the
// window into TrendMixed. Windows left with fewer than two usable values
// produce no signal.
func ShortTermTrend(values []*float64, length int, ignoreNone bool, flatThreshold float64) []Trend {
	if length <= 0 {
		return nil
	}
	var trends []Trend
	for start := 0; start < len(values); start += length {
		end := start + length
		if end > len(values) {
			end = len(values)
		}
		window := values[start:end]

		var usable []float64
		poisoned := false
		for _, v := range window {
			if v == nil {
				if !ignoreNone {
					poisoned = true
					break
				}
				continue
			}
			usable = append(usable, *v)
		}
		if poisoned {
			trends = append(trends, TrendMixed)
			continue
		}
		if len(usable) < 2 {
			continue
		}
		trends = append(trends, direction(usable[0], usable[len(usable)-1], flatThreshold))
	}
	return trends
}

// ConcatTrend collapses per-window directions into one label. The result is
// only confidently directional when at least countThreshold windows agree
// and the opposite direction does not tie; an all-flat list is flat;
// anything else is mixed.
func ConcatTrend(trends []Trend, countThreshold int) Trend {
	if len(trends) == 0 {
		return TrendMixed
	}
	var up, down, flat int
	for _, t := range trends {
		switch t {
		case TrendUp:
			up++
		case TrendDown:
			down++
		case TrendFlat:
			flat++
		}
	}
	switch {
	case up >= countThreshold && up > down:
		return TrendUp
	case down >= countThreshold && down > up:
		return TrendDown
	case flat == len(trends):
		return TrendFlat
	default:
		return TrendMixed
	}
}

// LongTermTrend compares the earliest to the latest available value of an
// oldest-first series. With ignoreNone set, missing values are skipped;
// otherwise any missing value makes the series unclassifiable. A series
// without two usable values is TrendMixed.
func LongTermTrend(values []*float64, ignoreNone bool, flatThreshold float64) Trend {
	var usable []float64
	for _, v := range values {
		if v == nil {
			if !ignoreNone {
				return TrendMixed
			}
			continue
		}
		usable = append(usable, *v)
	}
	if len(usable) < 2 {
		return TrendMixed
	}
	return direction(usable[0], usable[len(usable)-1], flatThreshold)
}
