package prompt

import "fmt"

// WellContext is the file-level metadata included with every prompt.
type WellContext struct {
	WellName   string
	FieldName  string
	Company    string
	DepthUnit  string
	StartDepth float64
	EndDepth   float64
}

// CurveEvidence is the deterministic per-curve summary that grounds the
// generation call: statistics over non-missing values plus a handful of
// spot samples.
type CurveEvidence struct {
	Name        string
	Unit        string
	SampleCount int // non-missing values in the window
	Min         float64
	Max         float64
	Mean        float64
	HasData     bool
	SpotSamples []string // "depth: value" pairs, evenly spaced
}

const maxSpotSamples = 5

// ComputeEvidence summarizes one extracted curve window. Values equal to
// nullValue are treated as missing and excluded from the statistics; spot
// samples likewise skip missing readings.
func ComputeEvidence(name, unit string, depths, values []float64, nullValue float64) CurveEvidence {
	ev := CurveEvidence{Name: name, Unit: unit}

	var sum float64
	for _, v := range values {
		if v == nullValue {
			continue
		}
		if !ev.HasData {
			ev.Min, ev.Max = v, v
			ev.HasData = true
		} else {
			if v < ev.Min {
				ev.Min = v
			}
			if v > ev.Max {
				ev.Max = v
			}
		}
		sum += v
		ev.SampleCount++
	}
	if ev.SampleCount > 0 {
		ev.Mean = sum / float64(ev.SampleCount)
	}

	ev.SpotSamples = spotSamples(depths, values, nullValue)
	return ev
}

// spotSamples picks up to maxSpotSamples evenly spaced non-missing readings.
func spotSamples(depths, values []float64, nullValue float64) []string {
	type pair struct{ depth, value float64 }
	var present []pair
	for i, v := range values {
		if v == nullValue {
			continue
		}
		present = append(present, pair{depths[i], v})
	}
	if len(present) == 0 {
		return nil
	}

	n := maxSpotSamples
	if len(present) < n {
		n = len(present)
	}
	samples := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p := present[i*len(present)/n]
		samples = append(samples, fmt.Sprintf("%.2f: %.2f", p.depth, p.value))
	}
	return samples
}
