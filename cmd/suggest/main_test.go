package main

import (
	"log/slog"
	"testing"

	"github.com/poiesic/suggest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestEntityJSONRoundTrip(t *testing.T) {
	lat, lon := 40.7128, -74.006
	in := entityJSON{
		Kind:          "member",
		Text:          "Dr. John Smith",
		Tags:          "family doctor, general practice",
		Location:      "New York",
		Latitude:      &lat,
		Longitude:     &lon,
		Rating:        4.8,
		ProfileURL:    "/members/dr-john-smith",
		Featured:      true,
		PlanTier:      "premium",
		PriorityScore: 1.5,
		Hours: map[string][]hoursRangeJSON{
			"mon": {{Open: "09:00", Close: "17:00"}},
		},
	}

	entity, err := in.toEntity()
	require.NoError(t, err)
	assert.Equal(t, core.KindMember, entity.Kind)
	assert.Equal(t, "Dr. John Smith", entity.Text)
	assert.Equal(t, []core.HoursRange{{Open: "09:00", Close: "17:00"}}, entity.Hours["mon"])

	out := fromEntity(entity)
	assert.Equal(t, in, out)
}

func TestEntityJSONRejectsUnknownKind(t *testing.T) {
	in := entityJSON{Kind: "widget", Text: "x"}
	_, err := in.toEntity()
	assert.Error(t, err)
}

func TestRankedResultJSON(t *testing.T) {
	km := 1.25
	result := &core.RankedResult{
		OriginalQuery: "doctor near me",
		Suggestions:   []string{"Hire a trusted family doctor in New York"},
		Cards: []core.MemberCard{
			{Title: "Dr. John Smith", MemberID: 7, DistanceKm: &km, Featured: true},
		},
		UserID:   "u1",
		CacheHit: true,
		Debug: &core.DebugInfo{
			Intent: "hire",
			City:   "New York",
			Candidates: []core.DebugCandidate{
				{Text: "family doctor", Kind: "member", Score: 0.91},
			},
		},
	}

	out := rankedResultJSON(result)
	assert.Equal(t, "doctor near me", out.OriginalQuery)
	assert.True(t, out.CacheHit)
	require.Len(t, out.Cards, 1)
	assert.Equal(t, uint64(7), out.Cards[0].MemberID)
	require.NotNil(t, out.Debug)
	assert.Equal(t, "hire", out.Debug.Intent)
	require.Len(t, out.Debug.Candidates, 1)
	assert.Equal(t, 0.91, out.Debug.Candidates[0].Score)
}

func TestRankCommandFlags(t *testing.T) {
	var gotQuery string
	app := &cli.App{
		Name: "suggest",
		Commands: []*cli.Command{
			{
				Name: "rank",
				Action: func(c *cli.Context) error {
					gotQuery = c.String("query")
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Aliases: []string{"d"}, Required: true},
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true},
				},
			},
		},
	}

	t.Run("query is required", func(t *testing.T) {
		err := app.Run([]string{"suggest", "rank", "--db", "/tmp/test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("flags parse", func(t *testing.T) {
		err := app.Run([]string{"suggest", "rank", "--db", "/tmp/test", "-q", "plumber"})
		require.NoError(t, err)
		assert.Equal(t, "plumber", gotQuery)
	})
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	app := &cli.App{
		Name: "suggest",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}

	t.Run("valid level", func(t *testing.T) {
		err := app.Run([]string{"suggest", "--log-level", "DEBUG"})
		assert.NoError(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		err := app.Run([]string{"suggest", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
