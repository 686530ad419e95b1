package services

import (
	"regexp"
	"strings"
)

// SwotSections holds the four extracted regions of a SWOT result,
// each as a list of bullet strings.
type SwotSections struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// Header tokens are matched bilingually (English/German) because results
// may come back in either language depending on the project context.
var swotHeaderPatterns = map[string]*regexp.Regexp{
	"strengths":     regexp.MustCompile(`(?i)^(strengths|stärken)\b`),
	"weaknesses":    regexp.MustCompile(`(?i)^(weaknesses|schwächen)\b`),
	"opportunities": regexp.MustCompile(`(?i)^(opportunities|chancen)\b`),
	"threats":       regexp.MustCompile(`(?i)^(threats|risiken)\b`),
}

// ParseSwot extracts the four labeled SWOT regions from free-text Markdown.
// Each region runs until the next recognized header or end of text. Returns
// ok=false when no region yields content, signaling the caller to fall back
// to rendering the raw Markdown. Best-effort: headers quoted inside content
// can mis-split regions.
func ParseSwot(markdown string) (*SwotSections, bool) {
	sections := map[string][]string{}
	var current string

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)

		if key := matchSwotHeader(line); key != "" {
			current = key
			continue
		}
		if current == "" || line == "" {
			continue
		}
		// Residual heading lines inside a region are not bullets.
		if strings.HasPrefix(line, "#") {
			continue
		}
		item := stripBulletMarker(line)
		if item == "" {
			continue
		}
		sections[current] = append(sections[current], item)
	}

	result := &SwotSections{
		Strengths:     sections["strengths"],
		Weaknesses:    sections["weaknesses"],
		Opportunities: sections["opportunities"],
		Threats:       sections["threats"],
	}

	if len(result.Strengths) == 0 && len(result.Weaknesses) == 0 &&
		len(result.Opportunities) == 0 && len(result.Threats) == 0 {
		return nil, false
	}
	return result, true
}

// matchSwotHeader reports which SWOT category a line opens, or "".
func matchSwotHeader(line string) string {
	stripped := strings.TrimLeft(line, "#*- \t")
	stripped = strings.TrimSpace(stripped)
	for key, re := range swotHeaderPatterns {
		if re.MatchString(stripped) {
			return key
		}
	}
	return ""
}

// stripBulletMarker removes a single leading list marker from a line.
func stripBulletMarker(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}
	// Bare markers without content
	if line == "-" || line == "*" || line == "•" {
		return ""
	}
	return line
}
