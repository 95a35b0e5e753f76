package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildPlayer(t *testing.T) *PlayerData {
	t.Helper()
	cfg := DefaultConfig()
	var p *PlayerData
	for i, r := range []int{7, 9, 3, 10} {
		date := addDays("2026-03-01", i)
		in := uniform(date, r)
		if i == 1 {
			in.Notes = "long walk"
		}
		res, err := ProcessCheckIn(context.Background(), cfg, p, in, noon(t, date), nil)
		require.NoError(t, err)
		p = res.Player
	}
	return p
}

func TestPlayerRoundTrip(t *testing.T) {
	p := buildPlayer(t)

	blob, err := MarshalPlayer(p)
	require.NoError(t, err)

	back, err := UnmarshalPlayer(blob)
	require.NoError(t, err)
	require.Equal(t, p.CheckIns[1].Notes, back.CheckIns[1].Notes)
	require.Equal(t, p.Progress, back.Progress)

	again, err := MarshalPlayer(back)
	require.NoError(t, err)
	require.Equal(t, string(blob), string(again))
}

func TestDefaultPlayerRoundTrip(t *testing.T) {
	blob, err := MarshalPlayer(NewPlayerData(DefaultConfig()))
	require.NoError(t, err)
	require.Contains(t, string(blob), `"checkIns":[]`)

	back, err := UnmarshalPlayer(blob)
	require.NoError(t, err)
	again, err := MarshalPlayer(back)
	require.NoError(t, err)
	require.JSONEq(t, string(blob), string(again))
	require.Equal(t, string(blob), string(again))
}

func TestUnmarshalRejectsCorruptBlobs(t *testing.T) {
	cases := map[string]string{
		"not json":       `{{{`,
		"empty object":   `{}`,
		"null checkins":  `{"checkIns":null,"progress":{"level":1,"currentXP":0,"xpToNextLevel":100,"title":"Novice","titleColor":"gray"},"stats":{},"bars":{"hp":{},"mp":{},"fatigue":0},"currentStreak":0,"longestStreak":0}`,
		"level zero":     `{"checkIns":[],"progress":{"level":0,"currentXP":0,"xpToNextLevel":100},"stats":{},"bars":{"hp":{},"mp":{},"fatigue":0},"currentStreak":0,"longestStreak":0}`,
		"bad rating":     `{"checkIns":[{"date":"2026-03-01","nutrition":11,"fitness":5,"work":5,"social":5,"safety":5,"health":5,"createdAt":"2026-03-01T12:00:00Z","xpAwarded":0}],"progress":{"level":1,"currentXP":0,"xpToNextLevel":100},"stats":{},"bars":{"hp":{},"mp":{},"fatigue":0},"currentStreak":0,"longestStreak":0}`,
		"duplicate date": `{"checkIns":[{"date":"2026-03-01","nutrition":5,"fitness":5,"work":5,"social":5,"safety":5,"health":5,"createdAt":"2026-03-01T12:00:00Z","xpAwarded":0},{"date":"2026-03-01","nutrition":5,"fitness":5,"work":5,"social":5,"safety":5,"health":5,"createdAt":"2026-03-01T12:00:00Z","xpAwarded":0}],"progress":{"level":1,"currentXP":0,"xpToNextLevel":100},"stats":{},"bars":{"hp":{},"mp":{},"fatigue":0},"currentStreak":0,"longestStreak":0}`,
		"wrong type":     `{"checkIns":"yes","progress":{},"stats":{},"bars":{},"currentStreak":0,"longestStreak":0}`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalPlayer([]byte(blob))
			require.ErrorAs(t, err, &CorruptStateError{})
		})
	}
}

func TestMarshalPlayerYAML(t *testing.T) {
	p := buildPlayer(t)

	out, err := MarshalPlayerYAML(p)
	require.NoError(t, err)
	text := string(out)
	require.NotContains(t, text, "{")
	require.Contains(t, text, "currentStreak: 4")
	require.Contains(t, text, "notes: long walk")
	require.Contains(t, text, "- date: ")

	var back struct {
		CheckIns []map[string]any `yaml:"checkIns"`
		Progress struct {
			Level int `yaml:"level"`
		} `yaml:"progress"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Len(t, back.CheckIns, 4)
	require.Equal(t, p.Progress.Level, back.Progress.Level)
}
