package prompt

import (
	"strings"
	"testing"
)

func TestComputeEvidence(t *testing.T) {
	depths := []float64{1000, 1001, 1002, 1003}
	values := []float64{10, -999.25, 30, 20}

	ev := ComputeEvidence("GR", "GAPI", depths, values, -999.25)

	if ev.SampleCount != 3 {
		t.Errorf("SampleCount = %d, want 3 (sentinel excluded)", ev.SampleCount)
	}
	if ev.Min != 10 || ev.Max != 30 {
		t.Errorf("Min/Max = %v/%v, want 10/30", ev.Min, ev.Max)
	}
	if ev.Mean != 20 {
		t.Errorf("Mean = %v, want 20", ev.Mean)
	}
	if !ev.HasData {
		t.Error("HasData = false")
	}
	if len(ev.SpotSamples) != 3 {
		t.Errorf("SpotSamples = %v, want 3 entries", ev.SpotSamples)
	}
}

func TestComputeEvidenceAllMissing(t *testing.T) {
	ev := ComputeEvidence("RHOB", "G/C3", []float64{1000, 1001}, []float64{-999.25, -999.25}, -999.25)
	if ev.HasData || ev.SampleCount != 0 {
		t.Errorf("evidence = %+v, want empty", ev)
	}
	if len(ev.SpotSamples) != 0 {
		t.Errorf("SpotSamples = %v, want none", ev.SpotSamples)
	}
}

func TestComputeEvidenceDeterministic(t *testing.T) {
	depths := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	values := []float64{5, 4, 8, 1, 9, 2, 7, 3, 6, 10}

	a := ComputeEvidence("GR", "GAPI", depths, values, -999.25)
	b := ComputeEvidence("GR", "GAPI", depths, values, -999.25)

	if a.Mean != b.Mean || a.Min != b.Min || a.Max != b.Max {
		t.Error("evidence differs across identical calls")
	}
	if strings.Join(a.SpotSamples, "|") != strings.Join(b.SpotSamples, "|") {
		t.Error("spot samples differ across identical calls")
	}
}

func TestInterpretationBuilder(t *testing.T) {
	well := WellContext{
		WellName:   "DISCOVERY-1",
		FieldName:  "NORTH FIELD",
		DepthUnit:  "M",
		StartDepth: 1000,
		EndDepth:   1010,
	}
	evidence := []CurveEvidence{
		ComputeEvidence("GR", "GAPI", []float64{1000, 1001}, []float64{75, 85}, -999.25),
		ComputeEvidence("RHOB", "G/C3", []float64{1000, 1001}, []float64{2.35, 2.45}, -999.25),
	}

	out := NewInterpretationBuilder(well, evidence).Build()

	for _, want := range []string{
		"DISCOVERY-1",
		"NORTH FIELD",
		"Depth Range: 1000 to 1010 M",
		"GR (GAPI):",
		"RHOB (G/C3):",
		"lithology",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Evidence order must follow the caller-supplied curve order.
	if strings.Index(out, "GR (GAPI)") > strings.Index(out, "RHOB (G/C3)") {
		t.Error("evidence sections out of order")
	}
}

func TestChatBuilder(t *testing.T) {
	out := NewChatBuilder(ChatGrounding{
		Well: WellContext{
			WellName:   "DISCOVERY-1",
			DepthUnit:  "M",
			StartDepth: 1000,
			EndDepth:   1010,
		},
		Filename:   "well.las",
		CurveNames: []string{"GR", "RHOB"},
		CurveUnits: []string{"GAPI", "G/C3"},
	}).Build()

	for _, want := range []string{
		"well.las",
		"DISCOVERY-1",
		"GR (GAPI), RHOB (G/C3)",
		"Depth Range: 1000 to 1010 M",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("grounding missing %q", want)
		}
	}
}
