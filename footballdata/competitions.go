package footballdata

import (
	"context"
	"errors"

	"github.com/k64z/footballdata/filter"
)

const competitionsPath = "/competitions"

// ErrMissingID is returned by lookups that need a competition id or code.
var ErrMissingID = errors.New("competition id is missing")

// GetCompetition fetches a competition by id or code (e.g. "PL"). With an
// empty competition it lists all competitions matching filters; filters are
// ignored otherwise.
//
// Recognized filters: areas.
func (c *Client) GetCompetition(ctx context.Context, competition string, filters filter.Set) (any, error) {
	if competition != "" {
		return c.Get(ctx, competitionsPath+"/"+competition)
	}
	return c.getFiltered(ctx, competitionsPath, filters)
}

// GetCompetitionStandings fetches the standings table of a competition.
//
// Recognized filters: matchday (only honoured together with season), season
// and date.
func (c *Client) GetCompetitionStandings(ctx context.Context, id string, filters filter.Set) (any, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return c.getFiltered(ctx, competitionsPath+"/"+id+"/standings", filters)
}

// GetCompetitionMatches fetches the matches of a competition.
//
// Recognized filters: dateFrom, dateTo, matchday, season, status, stage and
// group.
func (c *Client) GetCompetitionMatches(ctx context.Context, id string, filters filter.Set) (any, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return c.getFiltered(ctx, competitionsPath+"/"+id+"/matches", filters)
}
