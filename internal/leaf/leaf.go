// ABOUTME: Post-processing for leaf scanner model output
// ABOUTME: Text cleanup, recommendation parsing, disease severity scoring

package leaf

import (
	"regexp"
	"strings"
)

// Priority ranks a recommendation by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one parsed model recommendation.
type Recommendation struct {
	Title       string
	Description string
	Priority    Priority
}

// defaultSeverity is used for disease labels the map does not know.
const defaultSeverity = 60

// severityByDisease scores how damaging each known disease label is,
// 0-100. Healthy leaves carry a small non-zero baseline.
var severityByDisease = map[string]int{
	"healthy":       5,
	"red leaf spot": 75,
	"brown blight":  65,
	"anthracnose":   80,
	"bird eye spot": 60,
	"algal leaf":    55,
	"gray blight":   70,
	"white spot":    50,
}

var (
	boldMarkers = regexp.MustCompile(`\*\*`)
	whitespace  = regexp.MustCompile(`\s+`)
	actionLabel = regexp.MustCompile(`(?i)Action:`)
	whyPrefix   = regexp.MustCompile(`(?i)^why:\s*`)
)

// CleanModelText strips the markdown bold markers and "Action:" labels
// the model tends to emit and collapses runs of whitespace.
func CleanModelText(text string) string {
	text = boldMarkers.ReplaceAllString(text, "")
	text = whitespace.ReplaceAllString(text, " ")
	text = actionLabel.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SeverityScore maps a disease label to its 0-100 severity. Unknown
// labels score the default mid-range severity.
func SeverityScore(disease string) int {
	if score, ok := severityByDisease[strings.ToLower(strings.TrimSpace(disease))]; ok {
		return score
	}
	return defaultSeverity
}

// ParseRecommendations turns raw model recommendation lines into
// structured entries. Lines shaped "Title: description" split on the
// first colon; a line starting with "Why:" continues the previous
// entry's description instead of opening a new one.
func ParseRecommendations(raw []string) []Recommendation {
	var out []Recommendation

	for _, line := range raw {
		cleaned := strings.TrimSpace(boldMarkers.ReplaceAllString(line, ""))
		if cleaned == "" {
			continue
		}

		if len(out) > 0 && strings.HasPrefix(strings.ToLower(cleaned), "why") {
			last := &out[len(out)-1]
			last.Description = strings.TrimSpace(last.Description + " " + whyPrefix.ReplaceAllString(cleaned, ""))
			continue
		}

		title, description, _ := strings.Cut(cleaned, ":")

		out = append(out, Recommendation{
			Title:       strings.TrimSpace(title),
			Description: strings.TrimSpace(description),
			Priority:    parsePriority(cleaned),
		})
	}

	return out
}

// parsePriority ranks a whole recommendation line. "immediate",
// "confirm" and "fungicide" mark urgent field work; "optimize" and
// "review" mark scheduled adjustments; everything else is routine.
func parsePriority(text string) Priority {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "immediate"),
		strings.Contains(lower, "confirm"),
		strings.Contains(lower, "fungicide"):
		return PriorityHigh
	case strings.Contains(lower, "optimize"),
		strings.Contains(lower, "review"):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// InferPriority ranks free-form advisory text, with a wider keyword net
// than recommendation lines: destructive interventions are high, watch
// and tune verbs are medium.
func InferPriority(text string) Priority {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "immediate"),
		strings.Contains(lower, "remove"),
		strings.Contains(lower, "fungicide"),
		strings.Contains(lower, "destroy"):
		return PriorityHigh
	case strings.Contains(lower, "monitor"),
		strings.Contains(lower, "improve"),
		strings.Contains(lower, "adjust"):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ConditionMetric is one bar in the leaf-condition chart derived from a
// disease severity.
type ConditionMetric struct {
	Metric string
	Score  int
}

// ConditionMetrics derives display metrics from a disease label's
// severity: uniform color and intact surface fall as severity rises,
// floored so a fully diseased leaf still renders a visible bar.
func ConditionMetrics(disease string) []ConditionMetric {
	severity := SeverityScore(disease)
	return []ConditionMetric{
		{Metric: "Color Uniformity", Score: max(40, 100-severity)},
		{Metric: "Surface Integrity", Score: max(35, 95-severity)},
		{Metric: "Disease Presence", Score: severity},
	}
}
