package game

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStoreSaveAndList(t *testing.T) {
	st, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer st.Close()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 3; i++ {
		_, err := st.SaveSession(SessionRecord{
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			EndedAt:    base.Add(time.Duration(i)*time.Minute + 30*time.Second),
			Score:      i * 10,
			Difficulty: 2,
			Skin:       "classic",
			Length:     3 + i,
			RecordFile: "game_x.jsonl",
		})
		if err != nil {
			t.Fatalf("SaveSession %d: %v", i, err)
		}
	}

	recent, err := st.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(recent))
	}
	if recent[0].Score != 20 || recent[1].Score != 10 {
		t.Errorf("sessions not ordered newest first: %+v", recent)
	}
	if recent[0].RecordFile != "game_x.jsonl" {
		t.Errorf("record file did not round-trip: %q", recent[0].RecordFile)
	}
}
