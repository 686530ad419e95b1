package services

import (
	"reflect"
	"testing"

	"github.com/consultdesk/backend/internal/models"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Alice,Bob", []string{"Alice", "Bob"}},
		{"spaces around parts", " Alice , Bob ", []string{"Alice", "Bob"}},
		{"empty parts dropped", "Alice,,Bob,", []string{"Alice", "Bob"}},
		{"single", "Alice", []string{"Alice"}},
		{"empty string", "", nil},
		{"whitespace only", "   ", nil},
		{"only separators", ",,,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitAndTrim(tt.in, ","); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToMeetingResponse(t *testing.T) {
	m := models.Meeting{Topic: "Kickoff", Attendees: "Alice, Bob,  Carol"}

	resp := toMeetingResponse(m)
	if !reflect.DeepEqual(resp.Attendees, []string{"Alice", "Bob", "Carol"}) {
		t.Errorf("Attendees = %v", resp.Attendees)
	}
	if resp.Topic != "Kickoff" {
		t.Errorf("Topic = %q", resp.Topic)
	}
}

func TestToMeetingResponse_NoAttendees(t *testing.T) {
	resp := toMeetingResponse(models.Meeting{Topic: "Solo"})
	if len(resp.Attendees) != 0 {
		t.Errorf("expected no attendees, got %v", resp.Attendees)
	}
}

func TestMeetingFileTypes(t *testing.T) {
	if !meetingFileTypes["audio"] || !meetingFileTypes["text"] {
		t.Error("audio and text must be accepted file types")
	}
	for _, bad := range []string{"video", "pdf", ""} {
		if meetingFileTypes[bad] {
			t.Errorf("%q should not be an accepted file type", bad)
		}
	}
}
