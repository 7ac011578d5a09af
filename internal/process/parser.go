package process

import (
	"regexp"
	"strconv"

	"github.com/osse101/FightBet_Go/internal/domain"
)

var stateLinePattern = regexp.MustCompile(`Round: (\d+), P1 Health: (\d+), P2 Health: (\d+)`)

// ParseStateLine extracts a game snapshot from one line of process output.
// ok is false for lines that carry no snapshot.
func ParseStateLine(line string) (state domain.CurrentState, ok bool) {
	m := stateLinePattern.FindStringSubmatch(line)
	if m == nil {
		return state, false
	}

	var err error
	if state.Round, err = strconv.Atoi(m[1]); err != nil {
		return state, false
	}
	if state.P1Health, err = strconv.Atoi(m[2]); err != nil {
		return state, false
	}
	if state.P2Health, err = strconv.Atoi(m[3]); err != nil {
		return state, false
	}
	return state, true
}
