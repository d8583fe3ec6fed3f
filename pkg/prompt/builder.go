package prompt

import (
	"fmt"
	"strings"
)

// InterpretationBuilder assembles the grounded prompt for a one-shot
// interpretation of a depth window.
type InterpretationBuilder struct {
	well     WellContext
	evidence []CurveEvidence
}

func NewInterpretationBuilder(well WellContext, evidence []CurveEvidence) *InterpretationBuilder {
	return &InterpretationBuilder{
		well:     well,
		evidence: evidence,
	}
}

func (b *InterpretationBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are a geoscience expert analyzing well-log data. Provide a detailed interpretation of the following well-log measurements.\n\n")

	b.writeWellInfo(&prompt)
	b.writeDepthRange(&prompt)
	b.writeEvidence(&prompt)

	prompt.WriteString("\nPlease provide:\n")
	prompt.WriteString("1. General overview of the depth interval\n")
	prompt.WriteString("2. Analysis of each curve and what it indicates\n")
	prompt.WriteString("3. Potential lithology (rock type) interpretation\n")
	prompt.WriteString("4. Any notable trends or anomalies\n")
	prompt.WriteString("5. Hydrocarbon potential indicators (if applicable)\n")
	prompt.WriteString("\nBe specific and reference actual values from the data.\n")

	return prompt.String()
}

func (b *InterpretationBuilder) writeWellInfo(prompt *strings.Builder) {
	if b.well.WellName == "" && b.well.FieldName == "" && b.well.Company == "" {
		return
	}
	prompt.WriteString("Well Information:\n")
	if b.well.WellName != "" {
		fmt.Fprintf(prompt, "- Well Name: %s\n", b.well.WellName)
	}
	if b.well.FieldName != "" {
		fmt.Fprintf(prompt, "- Field: %s\n", b.well.FieldName)
	}
	if b.well.Company != "" {
		fmt.Fprintf(prompt, "- Company: %s\n", b.well.Company)
	}
	prompt.WriteString("\n")
}

func (b *InterpretationBuilder) writeDepthRange(prompt *strings.Builder) {
	fmt.Fprintf(prompt, "Depth Range: %g to %g %s\n\n", b.well.StartDepth, b.well.EndDepth, b.well.DepthUnit)
}

func (b *InterpretationBuilder) writeEvidence(prompt *strings.Builder) {
	prompt.WriteString("Curve Data Summary:\n")
	for _, ev := range b.evidence {
		fmt.Fprintf(prompt, "\n%s (%s):\n", ev.Name, ev.Unit)
		if !ev.HasData {
			prompt.WriteString("  - No readings in this interval\n")
			continue
		}
		fmt.Fprintf(prompt, "  - Samples: %d\n", ev.SampleCount)
		fmt.Fprintf(prompt, "  - Minimum: %.4g\n", ev.Min)
		fmt.Fprintf(prompt, "  - Maximum: %.4g\n", ev.Max)
		fmt.Fprintf(prompt, "  - Average: %.4g\n", ev.Mean)
		if len(ev.SpotSamples) > 0 {
			fmt.Fprintf(prompt, "  - Sample values: %s\n", strings.Join(ev.SpotSamples, ", "))
		}
	}
}

// ChatGrounding is the lightweight snapshot the chat orchestrator grounds
// each turn on: file metadata plus curve names and units, no sample series.
type ChatGrounding struct {
	Well       WellContext
	Filename   string
	CurveNames []string
	CurveUnits []string
}

// ChatBuilder produces the system framing for a chat turn.
type ChatBuilder struct {
	grounding ChatGrounding
}

func NewChatBuilder(grounding ChatGrounding) *ChatBuilder {
	return &ChatBuilder{grounding: grounding}
}

func (b *ChatBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are a helpful assistant specialized in well-log data analysis.\n\n")
	prompt.WriteString("You have access to the following well data:\n")

	b.writeWellData(&prompt)

	prompt.WriteString("\nAnswer questions about this data accurately and helpfully. ")
	prompt.WriteString("If asked about specific values, reference the data provided. ")
	prompt.WriteString("If the information isn't available in the data, say so.")

	return prompt.String()
}

func (b *ChatBuilder) writeWellData(prompt *strings.Builder) {
	g := b.grounding
	fmt.Fprintf(prompt, "- File: %s\n", g.Filename)
	if g.Well.WellName != "" {
		fmt.Fprintf(prompt, "- Well Name: %s\n", g.Well.WellName)
	}
	if g.Well.FieldName != "" {
		fmt.Fprintf(prompt, "- Field: %s\n", g.Well.FieldName)
	}
	if g.Well.Company != "" {
		fmt.Fprintf(prompt, "- Company: %s\n", g.Well.Company)
	}
	fmt.Fprintf(prompt, "- Depth Range: %g to %g %s\n", g.Well.StartDepth, g.Well.EndDepth, g.Well.DepthUnit)

	if len(g.CurveNames) > 0 {
		prompt.WriteString("- Available Curves: ")
		for i, name := range g.CurveNames {
			if i > 0 {
				prompt.WriteString(", ")
			}
			prompt.WriteString(name)
			if i < len(g.CurveUnits) && g.CurveUnits[i] != "" {
				fmt.Fprintf(prompt, " (%s)", g.CurveUnits[i])
			}
		}
		prompt.WriteString("\n")
	}
}
