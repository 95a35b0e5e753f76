package engine

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// MarshalPlayer encodes p as the stored JSON blob.
func MarshalPlayer(p *PlayerData) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("marshal player: nil data")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal player: %w", err)
	}
	return data, nil
}

var requiredPlayerFields = []string{"checkIns", "progress", "stats", "bars", "currentStreak", "longestStreak"}

// UnmarshalPlayer decodes and checks a stored blob. Any problem is reported as a
// CorruptStateError.
func UnmarshalPlayer(data []byte) (*PlayerData, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, CorruptStateError{Reason: "decode", Err: err}
	}
	for _, name := range requiredPlayerFields {
		raw, ok := fields[name]
		if !ok || string(raw) == "null" {
			return nil, CorruptStateError{Reason: fmt.Sprintf("missing field %q", name)}
		}
	}

	var p PlayerData
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, CorruptStateError{Reason: "decode", Err: err}
	}
	if err := checkPlayer(&p); err != nil {
		return nil, err
	}
	sort.SliceStable(p.CheckIns, func(i, j int) bool { return p.CheckIns[i].Date < p.CheckIns[j].Date })
	return &p, nil
}

func checkPlayer(p *PlayerData) error {
	switch {
	case p.Progress.Level < 1:
		return CorruptStateError{Reason: fmt.Sprintf("level %d < 1", p.Progress.Level)}
	case p.Progress.CurrentXP < 0:
		return CorruptStateError{Reason: fmt.Sprintf("currentXP %d < 0", p.Progress.CurrentXP)}
	case p.Progress.XPToNextLevel <= 0:
		return CorruptStateError{Reason: fmt.Sprintf("xpToNextLevel %d <= 0", p.Progress.XPToNextLevel)}
	case p.CurrentStreak < 0 || p.LongestStreak < 0:
		return CorruptStateError{Reason: "negative streak"}
	case p.Bars.Fatigue < 0 || p.Bars.Fatigue > MaxFatigue:
		return CorruptStateError{Reason: fmt.Sprintf("fatigue %d out of range", p.Bars.Fatigue)}
	}

	seen := make(map[string]bool, len(p.CheckIns))
	for _, c := range p.CheckIns {
		if seen[c.Date] {
			return CorruptStateError{Reason: fmt.Sprintf("duplicate check-in for %s", c.Date)}
		}
		seen[c.Date] = true
		if err := ValidateCheckIn(c, ""); err != nil {
			return CorruptStateError{Reason: "check-in " + c.Date, Err: err}
		}
		if c.XPAwarded < 0 {
			return CorruptStateError{Reason: fmt.Sprintf("check-in %s has negative xpAwarded", c.Date)}
		}
		if c.Streak < 0 {
			return CorruptStateError{Reason: fmt.Sprintf("check-in %s has negative streak", c.Date)}
		}
	}
	return nil
}

// MarshalPlayerYAML renders the stored blob as block-style YAML with the same
// keys and key order as the JSON form.
func MarshalPlayerYAML(p *PlayerData) ([]byte, error) {
	data, err := MarshalPlayer(p)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("marshal player yaml: %w", err)
	}
	plainStyle(&doc)
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshal player yaml: %w", err)
	}
	return out, nil
}

// plainStyle drops the flow and quoting styles the JSON source carries; the
// encoder re-quotes any scalar that would otherwise change type.
func plainStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		plainStyle(c)
	}
}
