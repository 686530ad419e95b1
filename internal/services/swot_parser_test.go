package services

import (
	"reflect"
	"testing"
)

func TestParseSwot_EnglishHeaders(t *testing.T) {
	md := `### Strengths
- Strong brand recognition
- Large installed base

### Weaknesses
- High cost structure

### Opportunities
- Emerging markets

### Threats
- New entrants
- Regulation`

	sections, ok := ParseSwot(md)
	if !ok {
		t.Fatal("expected ok=true for well-formed SWOT markdown")
	}
	if !reflect.DeepEqual(sections.Strengths, []string{"Strong brand recognition", "Large installed base"}) {
		t.Errorf("strengths = %v", sections.Strengths)
	}
	if !reflect.DeepEqual(sections.Weaknesses, []string{"High cost structure"}) {
		t.Errorf("weaknesses = %v", sections.Weaknesses)
	}
	if !reflect.DeepEqual(sections.Opportunities, []string{"Emerging markets"}) {
		t.Errorf("opportunities = %v", sections.Opportunities)
	}
	if !reflect.DeepEqual(sections.Threats, []string{"New entrants", "Regulation"}) {
		t.Errorf("threats = %v", sections.Threats)
	}
}

func TestParseSwot_GermanHeaders(t *testing.T) {
	md := `## Stärken
- Etablierte Marke

## Schwächen
- Hohe Kosten

## Chancen
- Neue Märkte

## Risiken
- Wettbewerb`

	sections, ok := ParseSwot(md)
	if !ok {
		t.Fatal("expected ok=true for German headers")
	}
	if len(sections.Strengths) != 1 || sections.Strengths[0] != "Etablierte Marke" {
		t.Errorf("strengths = %v", sections.Strengths)
	}
	if len(sections.Threats) != 1 || sections.Threats[0] != "Wettbewerb" {
		t.Errorf("threats = %v", sections.Threats)
	}
}

func TestParseSwot_CaseInsensitiveAndMarkerVariants(t *testing.T) {
	md := `**STRENGTHS**
* market leader

weaknesses:
• slow release cycle`

	sections, ok := ParseSwot(md)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(sections.Strengths) != 1 || sections.Strengths[0] != "market leader" {
		t.Errorf("strengths = %v", sections.Strengths)
	}
	if len(sections.Weaknesses) != 1 || sections.Weaknesses[0] != "slow release cycle" {
		t.Errorf("weaknesses = %v", sections.Weaknesses)
	}
}

func TestParseSwot_NoRecognizableSections(t *testing.T) {
	for _, md := range []string{
		"",
		"Just a paragraph of prose without any SWOT structure.",
		"### Summary\n- not a SWOT category",
	} {
		if sections, ok := ParseSwot(md); ok {
			t.Errorf("ParseSwot(%q) = %v, ok=true; want ok=false", md, sections)
		}
	}
}

func TestParseSwot_RegionEndsAtNextHeader(t *testing.T) {
	md := `### Strengths
- alpha
### Threats
- omega`

	sections, ok := ParseSwot(md)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if len(sections.Strengths) != 1 || sections.Strengths[0] != "alpha" {
		t.Errorf("strengths = %v", sections.Strengths)
	}
	if len(sections.Weaknesses) != 0 || len(sections.Opportunities) != 0 {
		t.Error("unlabeled regions should stay empty")
	}
	if len(sections.Threats) != 1 || sections.Threats[0] != "omega" {
		t.Errorf("threats = %v", sections.Threats)
	}
}

func TestParseSwot_SkipsInteriorHeadingsAndBlankBullets(t *testing.T) {
	md := `### Strengths
#### Company A
- solid balance sheet
-

### Weaknesses
- thin margins`

	sections, ok := ParseSwot(md)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !reflect.DeepEqual(sections.Strengths, []string{"solid balance sheet"}) {
		t.Errorf("strengths = %v", sections.Strengths)
	}
}

func TestStripBulletMarker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"- item", "item"},
		{"* item", "item"},
		{"• item", "item"},
		{"plain text", "plain text"},
		{"-", ""},
		{"*", ""},
	}
	for _, tt := range tests {
		if got := stripBulletMarker(tt.in); got != tt.want {
			t.Errorf("stripBulletMarker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
