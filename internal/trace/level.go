package trace

import (
	"fmt"
	"strings"
)

// Level is how much of a run gets recorded.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // error points only
	LevelPhase        // command and stage spans
	LevelDetail       // plus one span per file
	LevelDebug        // plus heartbeats and everything else
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case; empty means off.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LevelOff, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q, want one of %s", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit filters by level. Errors pass whenever tracing is on; other
// events pass when their scope is coarse enough for the level.
func (l Level) ShouldEmit(kind Kind, scope Scope) bool {
	if l == LevelOff {
		return false
	}
	if kind == KindError {
		return true
	}
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeModule
	case LevelDebug:
		return true
	}
	return false
}
