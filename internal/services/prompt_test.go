package services

import (
	"strings"
	"testing"
)

func TestSelectPrompt(t *testing.T) {
	tests := []struct {
		name         string
		analysisType string
		wantContains string
	}{
		{"market", AnalysisTypeMarket, "market research analyst"},
		{"swot", AnalysisTypeSwot, "SWOT"},
		{"general", AnalysisTypeGeneral, "research analyst"},
		{"empty defaults to general", "", "research analyst"},
		{"unknown defaults to general", "forecast", "research analyst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPrompt(tt.analysisType)
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("SelectPrompt(%q) does not contain %q", tt.analysisType, tt.wantContains)
			}
		})
	}
}

func TestSelectPrompt_UnknownEqualsGeneral(t *testing.T) {
	if SelectPrompt("nonsense") != SelectPrompt(AnalysisTypeGeneral) {
		t.Error("unknown analysis type should fall back to the general prompt")
	}
}

func TestMarketPromptStructure(t *testing.T) {
	for _, section := range []string{"Market Overview", "Competitor Landscape", "Growth Drivers", "Sources"} {
		if !strings.Contains(marketAnalysisPrompt, section) {
			t.Errorf("market prompt missing required section %q", section)
		}
	}
}

func TestSwotPromptStructure(t *testing.T) {
	for _, section := range []string{"Strengths", "Weaknesses", "Opportunities", "Threats", "Comparison", "Gap Analysis"} {
		if !strings.Contains(swotAnalysisPrompt, section) {
			t.Errorf("SWOT prompt missing required section %q", section)
		}
	}
}

func TestMeetingAnalystPromptStructure(t *testing.T) {
	for _, column := range []string{"Task", "Owner", "Deadline", "Context"} {
		if !strings.Contains(meetingAnalystPrompt, column) {
			t.Errorf("meeting analyst prompt missing table column %q", column)
		}
	}
}

func TestBuildResearchPrompt(t *testing.T) {
	got := buildResearchPrompt("## Meetings\n- kickoff", "What is the market size?")
	if !strings.HasPrefix(got, "## Meetings") {
		t.Error("knowledge context should lead the prompt")
	}
	if !strings.Contains(got, "\n---\n") {
		t.Error("context and query should be separated by a divider")
	}
	if !strings.HasSuffix(got, "USER QUERY: What is the market size?") {
		t.Errorf("prompt should end with the user query, got %q", got)
	}
}

func TestBuildResearchPrompt_NoKnowledge(t *testing.T) {
	got := buildResearchPrompt("", "query only")
	if got != "USER QUERY: query only" {
		t.Errorf("empty context should yield bare query prompt, got %q", got)
	}
}
