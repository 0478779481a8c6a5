package parse

import "testing"

func TestHasDatePattern(t *testing.T) {
	positives := []string{
		"May 30, 2025",
		"May 10 (Day 1)",
		"September 2nd",
		"DAY 2",
		"Day 1",
		"Thursday",
		"Wed",
		"5/30/2025",
		"2025-05-30",
	}
	for _, s := range positives {
		if !HasDatePattern(s) {
			t.Errorf("HasDatePattern(%q) = false, want true", s)
		}
	}

	negatives := []string{
		"Keynote Address",
		"Registration Desk",
		"Coffee Break",
		"",
	}
	for _, s := range negatives {
		if HasDatePattern(s) {
			t.Errorf("HasDatePattern(%q) = true, want false", s)
		}
	}
}

func TestHasTimePattern(t *testing.T) {
	positives := []string{
		"9:00 AM - 10:00 AM Keynote",
		"14:30-15:00 Workshop",
		"8:00 am",
		"Doors open at 18:45",
	}
	for _, s := range positives {
		if !HasTimePattern(s) {
			t.Errorf("HasTimePattern(%q) = false, want true", s)
		}
	}

	negatives := []string{
		"Day 1",
		"Session 3: Robotics",
		"Hall A",
	}
	for _, s := range negatives {
		if HasTimePattern(s) {
			t.Errorf("HasTimePattern(%q) = true, want false", s)
		}
	}
}

func TestLooksLikeSpeaker(t *testing.T) {
	positives := []string{
		"Speaker: Dr. Jane Doe",
		"By: John Smith",
		"Presented by Alice Wu",
		"Dr. Jane Doe",
		"Prof. A. Narayanan",
	}
	for _, s := range positives {
		if !LooksLikeSpeaker(s) {
			t.Errorf("LooksLikeSpeaker(%q) = false, want true", s)
		}
	}
	if LooksLikeSpeaker("Grand Ballroom") {
		t.Error("LooksLikeSpeaker matched a venue")
	}
}

func TestLooksLikeLocation(t *testing.T) {
	positives := []string{
		"Room: Grand Ballroom",
		"Venue: Convention Center",
		"Room 204",
		"Main Auditorium",
	}
	for _, s := range positives {
		if !LooksLikeLocation(s) {
			t.Errorf("LooksLikeLocation(%q) = false, want true", s)
		}
	}
	if LooksLikeLocation("Dr. Jane Doe") {
		t.Error("LooksLikeLocation matched a speaker")
	}
}

func TestCleanField(t *testing.T) {
	cases := map[string]string{
		"  Keynote   Address  ": "Keynote Address",
		"- Opening Remarks -":   "Opening Remarks",
		": Workshop":            "Workshop",
		"":                      "",
		" - ":                   "",
	}
	for in, want := range cases {
		if got := CleanField(in); got != want {
			t.Errorf("CleanField(%q) = %q, want %q", in, got, want)
		}
	}
}
