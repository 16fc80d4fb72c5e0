package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	funFactInstruction = "You are a knowledgeable environmental educator."

	emissionTipInstruction = "You are an expert in environmental policy and sustainability. " +
		"Your goal is to provide actionable advice."

	hintInstruction = "You are a helpful hint generator for a geography-based game focused on greenhouse gas emissions.\n" +
		"When a user makes a guess for a country, provide a concise hint related to greenhouse gas emissions " +
		"that helps them get closer to the actual target country without revealing the answer directly.\n" +
		"Focus on aspects like emissions sources, comparisons to the guessed country, or climate-related " +
		"policies of the target country.\n" +
		"Avoid giving away the answer directly. Keep hints brief and helpful. " +
		"Do not ever give the actual country name in the hint."
)

// FunFactPrompt asks for a fun fact about a subsector.
func FunFactPrompt(subsector string) []Message {
	return []Message{
		{Role: RoleDeveloper, Content: funFactInstruction},
		{Role: RoleUser, Content: fmt.Sprintf(
			"Share a fun fact about the '%s' sub-sector, particularly in the context of carbon emissions or environmental impact.",
			subsector)},
	}
}

// EmissionTipPrompt asks for a short everyday tip given a country's
// emissions in a subsector. emissionsInfo is inserted as-is.
func EmissionTipPrompt(country, subsector, emissionsInfo string) []Message {
	return []Message{
		{Role: RoleDeveloper, Content: emissionTipInstruction},
		{Role: RoleUser, Content: fmt.Sprintf(
			"Country: %s\nSub-sector: %s\nEmissions Data: %s\n\n"+
				"Based on this information, provide a relevant and very short practical tip to a regular person "+
				"that they can do in their daily life to help reduce waste, emissions, and greenhouse gases.",
			country, subsector, emissionsInfo)},
	}
}

// HintPrompt asks for a hint that moves a guess towards the target country
// without naming it.
func HintPrompt(guess, country string) []Message {
	return []Message{
		{Role: RoleDeveloper, Content: hintInstruction},
		{Role: RoleUser, Content: fmt.Sprintf(
			"My guess is '%s' and the correct country is '%s'. Can you provide a hint to help me get closer to the correct answer?",
			guess, country)},
	}
}

// FormatEmissionsInfo renders a JSON value for a prompt: strings verbatim,
// anything else as compact JSON.
func FormatEmissionsInfo(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return strings.TrimSpace(string(trimmed))
	}
	return buf.String()
}
