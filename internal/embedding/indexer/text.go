package indexer

import (
	"strings"

	"github.com/opportunityradar/radar/internal/domain"
)

const descriptionTruncateChars = 2000

// SynthesizeOpportunityText builds the exact text an opportunity's
// embedding is computed from: title, then opportunity type, then
// description truncated to descriptionTruncateChars, then themes,
// technologies, and format, each as a labeled clause, joined by ". " —
// grounded on opportunity_embedding_service.py's _create_embedding_text.
func SynthesizeOpportunityText(o domain.Opportunity) string {
	parts := []string{o.Title, "Type: " + string(o.Type)}

	desc := o.Description
	if len(desc) > descriptionTruncateChars {
		desc = desc[:descriptionTruncateChars]
	}
	if desc != "" {
		parts = append(parts, desc)
	}
	if len(o.Themes) > 0 {
		parts = append(parts, "Themes: "+strings.Join(o.Themes, ", "))
	}
	if len(o.Technologies) > 0 {
		parts = append(parts, "Technologies: "+strings.Join(o.Technologies, ", "))
	}
	if o.Format != domain.FormatUnknown {
		parts = append(parts, "Format: "+string(o.Format))
	}

	return strings.Join(parts, ". ")
}

// SynthesizeProfileText builds the text a Profile's embedding is computed
// from: skills, interests, and industries, each as a labeled clause.
func SynthesizeProfileText(p domain.Profile) string {
	var parts []string
	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if len(p.Interests) > 0 {
		parts = append(parts, "Interests: "+strings.Join(p.Interests, ", "))
	}
	if len(p.Industries) > 0 {
		parts = append(parts, "Industries: "+strings.Join(p.Industries, ", "))
	}
	if len(p.Intents) > 0 {
		parts = append(parts, "Goals: "+strings.Join(p.Intents, ", "))
	}
	return strings.Join(parts, ". ")
}
