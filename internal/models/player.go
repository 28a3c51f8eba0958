package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StatValue holds a single stat cell. The upstream API serializes stats
// as either JSON strings or JSON numbers depending on the source column,
// so the original lexical form is kept and rendered verbatim.
type StatValue struct {
	text   string
	quoted bool
}

// StringStat builds a string-typed stat value.
func StringStat(s string) StatValue {
	return StatValue{text: s, quoted: true}
}

// NumberStat builds a number-typed stat value.
func NumberStat(n float64) StatValue {
	return StatValue{text: strconv.FormatFloat(n, 'f', -1, 64)}
}

// Display returns the text to render for this value.
func (v StatValue) Display() string {
	return v.text
}

// IsNumber reports whether the upstream sent this value as a JSON number.
func (v StatValue) IsNumber() bool {
	return !v.quoted
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("stat value: empty input")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("stat value: %w", err)
		}
		*v = StatValue{text: s, quoted: true}
		return nil
	}
	// Numbers keep their literal form so 24.50 does not become 24.5.
	// Booleans and null ride along as their literal text too.
	*v = StatValue{text: string(data)}
	return nil
}

func (v StatValue) MarshalJSON() ([]byte, error) {
	if v.quoted {
		return json.Marshal(v.text)
	}
	if v.text == "" {
		return []byte("null"), nil
	}
	return []byte(v.text), nil
}

// StatEntry is one named stat in display order.
type StatEntry struct {
	Name  string
	Value StatValue
}

// StatMap is an insertion-ordered mapping from stat name to value.
// encoding/json's map type loses object order, so decoding walks the
// token stream; iteration order is the order the upstream emitted.
type StatMap struct {
	keys   []string
	values map[string]StatValue
}

// Len returns the number of stats.
func (m StatMap) Len() int {
	return len(m.keys)
}

// Get looks up a stat by name.
func (m StatMap) Get(name string) (StatValue, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Set adds or replaces a stat. New names append to the iteration order.
func (m *StatMap) Set(name string, v StatValue) {
	if m.values == nil {
		m.values = make(map[string]StatValue)
	}
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = v
}

// Entries returns the stats in insertion order.
func (m StatMap) Entries() []StatEntry {
	entries := make([]StatEntry, 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, StatEntry{Name: k, Value: m.values[k]})
	}
	return entries
}

// Clone returns an independent copy.
func (m StatMap) Clone() StatMap {
	out := StatMap{}
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}

func (m *StatMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("stats: expected object, got %v", tok)
	}

	*m = StatMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("stats: expected key, got %v", keyTok)
		}
		var v StatValue
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("stats: value for %q: %w", key, err)
		}
		m.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	return nil
}

func (m StatMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := m.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PlayerStats is one player's display record.
type PlayerStats struct {
	PlayerName string  `json:"player_name"`
	Stats      StatMap `json:"stats"`
}

// Clone returns an independent copy, or nil for nil input.
func (p *PlayerStats) Clone() *PlayerStats {
	if p == nil {
		return nil
	}
	return &PlayerStats{
		PlayerName: p.PlayerName,
		Stats:      p.Stats.Clone(),
	}
}
