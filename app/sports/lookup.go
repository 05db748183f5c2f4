// Package sports provides the optional schedule collaborator used to enrich
// football broadcasts with competition, teams, phase and stadium.
package sports

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned by the null lookup. Pipeline handlers treat it
// as "the collaborator is absent" and degrade football enrichment.
var ErrUnavailable = errors.New("sports lookup unavailable")

// Match is one known fixture.
type Match struct {
	Competition string
	HomeTeam    string
	AwayTeam    string
	Phase       string
	Stadium     string
}

// Lookup finds a fixture near a reference instant by team pair.
type Lookup interface {
	FindMatch(ctx context.Context, dateRef time.Time, homeTeam, awayTeam string) (Match, bool, error)
}

// Disabled is the null lookup installed when no schedule source is
// configured.
type Disabled struct{}

func (Disabled) FindMatch(context.Context, time.Time, string, string) (Match, bool, error) {
	return Match{}, false, ErrUnavailable
}
