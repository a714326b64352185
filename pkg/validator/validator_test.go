package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

func validBall() models.BallEvent {
	return models.BallEvent{
		Innings: 1, OverNumber: 0, BallNumber: 1,
		StrikerID: 1, NonStrikerID: 2, BowlerID: 3,
		Runs: 4, ExtraKind: models.ExtraNone,
	}
}

func TestStruct_Ball(t *testing.T) {
	assert.NoError(t, Struct(validBall()))

	cases := map[string]func(b *models.BallEvent){
		"Innings":      func(b *models.BallEvent) { b.Innings = 3 },
		"Runs":         func(b *models.BallEvent) { b.Runs = -1 },
		"Extras":       func(b *models.BallEvent) { b.Extras = -2 },
		"ExtraKind":    func(b *models.BallEvent) { b.ExtraKind = "overthrow" },
		"NonStrikerID": func(b *models.BallEvent) { b.NonStrikerID = b.StrikerID },
		"BowlerID":     func(b *models.BallEvent) { b.BowlerID = 0 },
		"WicketKind": func(b *models.BallEvent) {
			b.IsWicket = true
		},
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			b := validBall()
			mutate(&b)
			errs := ParseError(Struct(b))
			assert.Contains(t, errs, field)
		})
	}
}

func TestStruct_WicketConsistency(t *testing.T) {
	b := validBall()
	b.IsWicket = true
	b.WicketKind = models.WicketCaught
	assert.NoError(t, Struct(b))

	b = validBall()
	b.WicketKind = models.WicketBowled
	assert.Contains(t, ParseError(Struct(b)), "WicketKind")
}

func TestParseError_NonValidator(t *testing.T) {
	errs := ParseError(errors.New("boom"))
	assert.Equal(t, "boom", errs["error"])
	assert.Empty(t, ParseError(nil))
}

func TestParseError_Messages(t *testing.T) {
	b := validBall()
	b.BowlerID = 0
	b.ExtraKind = "overthrow"
	errs := ParseError(Struct(b))
	assert.Equal(t, "The BowlerID field is required.", errs["BowlerID"])
	assert.Equal(t, "The ExtraKind field must be one of the following: none, wide, no_ball, bye, leg_bye.", errs["ExtraKind"])
}
