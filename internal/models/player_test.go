package models

import (
	"encoding/json"
	"testing"
)

func TestStatMapUnmarshal_PreservesOrder(t *testing.T) {
	input := `{"ppg": 24.5, "rpg": 4.4, "apg": "6.1", "team": "GSW", "gp": 74}`

	var m StatMap
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	want := []string{"ppg", "rpg", "apg", "team", "gp"}
	entries := m.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestStatMapUnmarshal_MixedValueTypes(t *testing.T) {
	input := `{"ppg": 24.50, "team": "GSW", "active": true}`

	var m StatMap
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	ppg, ok := m.Get("ppg")
	if !ok {
		t.Fatal("ppg missing")
	}
	// Lexical form survives, no float round-trip
	if ppg.Display() != "24.50" {
		t.Errorf("ppg = %q, want 24.50", ppg.Display())
	}
	if !ppg.IsNumber() {
		t.Error("ppg should be a number")
	}

	team, _ := m.Get("team")
	if team.Display() != "GSW" {
		t.Errorf("team = %q, want GSW", team.Display())
	}
	if team.IsNumber() {
		t.Error("team should be a string")
	}

	active, _ := m.Get("active")
	if active.Display() != "true" {
		t.Errorf("active = %q, want true", active.Display())
	}
}

func TestStatMapUnmarshal_RejectsNonObject(t *testing.T) {
	var m StatMap
	if err := json.Unmarshal([]byte(`[1,2,3]`), &m); err == nil {
		t.Error("Expected error for array input")
	}
}

func TestStatMapMarshal_RoundTripsOrder(t *testing.T) {
	var m StatMap
	m.Set("ppg", NumberStat(27.1))
	m.Set("apg", StringStat("7.4"))
	m.Set("team", StringStat("LAL"))

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	want := `{"ppg":27.1,"apg":"7.4","team":"LAL"}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}
}

func TestStatMapSet_ReplaceKeepsPosition(t *testing.T) {
	var m StatMap
	m.Set("ppg", NumberStat(24.5))
	m.Set("rpg", NumberStat(4.4))
	m.Set("ppg", NumberStat(27.1))

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "ppg" || entries[0].Value.Display() != "27.1" {
		t.Errorf("entry 0 = %s:%s, want ppg:27.1", entries[0].Name, entries[0].Value.Display())
	}
}

func TestPlayerStatsUnmarshal(t *testing.T) {
	input := `{"player_name": "Stephen Curry", "stats": {"ppg": 24.5}}`

	var ps PlayerStats
	if err := json.Unmarshal([]byte(input), &ps); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if ps.PlayerName != "Stephen Curry" {
		t.Errorf("PlayerName = %q, want Stephen Curry", ps.PlayerName)
	}
	ppg, ok := ps.Stats.Get("ppg")
	if !ok || ppg.Display() != "24.5" {
		t.Errorf("ppg = %q, want 24.5", ppg.Display())
	}
}

func TestPlayerStatsClone_Independent(t *testing.T) {
	orig := &PlayerStats{PlayerName: "LeBron James"}
	orig.Stats.Set("ppg", NumberStat(25.7))

	cp := orig.Clone()
	cp.Stats.Set("ppg", NumberStat(99))
	cp.Stats.Set("rpg", NumberStat(7.3))

	if v, _ := orig.Stats.Get("ppg"); v.Display() != "25.7" {
		t.Errorf("original mutated: ppg = %q", v.Display())
	}
	if orig.Stats.Len() != 1 {
		t.Errorf("original gained keys: %d", orig.Stats.Len())
	}

	var nilPS *PlayerStats
	if nilPS.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
