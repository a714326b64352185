package models

// ExtraKind for runs not scored off the bat
type ExtraKind string

const (
	ExtraNone   ExtraKind = "none"
	ExtraWide   ExtraKind = "wide"
	ExtraNoBall ExtraKind = "no_ball"
	ExtraBye    ExtraKind = "bye"
	ExtraLegBye ExtraKind = "leg_bye"
)

// WicketKind for dismissals
type WicketKind string

const (
	WicketBowled    WicketKind = "bowled"
	WicketCaught    WicketKind = "caught"
	WicketLBW       WicketKind = "lbw"
	WicketRunOut    WicketKind = "run_out"
	WicketStumped   WicketKind = "stumped"
	WicketHitWicket WicketKind = "hit_wicket"
	WicketRetired   WicketKind = "retired_out"
)

// BallEvent records one delivery. The ledger of a fixture is its BallEvents
// ordered by Sequence.
type BallEvent struct {
	BaseModel
	FixtureID uint `json:"fixture_id" gorm:"not null;uniqueIndex:idx_fixture_sequence"`
	Sequence  int  `json:"sequence" gorm:"not null;uniqueIndex:idx_fixture_sequence"`

	Innings    int `json:"innings" gorm:"not null" validate:"oneof=1 2"`
	OverNumber int `json:"over_number" validate:"gte=0"`
	BallNumber int `json:"ball_number" validate:"gte=0,lte=6"`

	StrikerID    uint `json:"striker_id" gorm:"index" validate:"required"`
	NonStrikerID uint `json:"non_striker_id" validate:"required,nefield=StrikerID"`
	BowlerID     uint `json:"bowler_id" gorm:"index" validate:"required"`

	Runs      int       `json:"runs" validate:"gte=0,lte=7"`
	Extras    int       `json:"extras" validate:"gte=0"`
	ExtraKind ExtraKind `json:"extra_kind" gorm:"default:'none'" validate:"omitempty,oneof=none wide no_ball bye leg_bye"`

	IsWicket          bool       `json:"is_wicket"`
	WicketKind        WicketKind `json:"wicket_kind,omitempty" validate:"omitempty,oneof=bowled caught lbw run_out stumped hit_wicket retired_out"`
	DismissedPlayerID *uint      `json:"dismissed_player_id,omitempty"`
	FielderID         *uint      `json:"fielder_id,omitempty"`

	Commentary string `json:"commentary,omitempty" gorm:"type:text"`
}

// IsLegal reports whether the delivery counts toward the six-ball over.
func (b *BallEvent) IsLegal() bool {
	return b.ExtraKind != ExtraWide && b.ExtraKind != ExtraNoBall
}

// TotalRuns is everything the delivery added to the batting side's score.
func (b *BallEvent) TotalRuns() int {
	return b.Runs + b.Extras
}

// CreditsBowler reports whether the wicket counts in the bowler's figures.
func (b *BallEvent) CreditsBowler() bool {
	return b.IsWicket && b.WicketKind != WicketRunOut && b.WicketKind != WicketRetired
}

// IsDot is a delivery that conceded nothing at all.
func (b *BallEvent) IsDot() bool {
	return b.Runs == 0 && b.Extras == 0
}

// OutPlayer returns the dismissed player, defaulting to the striker.
func (b *BallEvent) OutPlayer() uint {
	if b.DismissedPlayerID != nil {
		return *b.DismissedPlayerID
	}
	return b.StrikerID
}
