// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type BaseModel struct {
	gorm.Model
}

// TeamSnapshot is the score one team finished a fixture on. Overs uses the
// display convention (19.4 = 19 overs and 4 balls).
type TeamSnapshot struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

// Snapshots is the JSON column holding one TeamSnapshot per team id.
type Snapshots map[uint]TeamSnapshot

func (s Snapshots) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[uint]TeamSnapshot(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the map.
func (s *Snapshots) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("Snapshots: expected []byte, got %T", src)
	}
	out := make(Snapshots)
	if err := json.Unmarshal(b, (*map[uint]TeamSnapshot)(&out)); err != nil {
		return err
	}
	*s = out
	return nil
}

// For returns the snapshot of one team and whether it was recorded.
func (s Snapshots) For(teamID uint) (TeamSnapshot, bool) {
	snap, ok := s[teamID]
	return snap, ok
}

// UintPtr returns a pointer to v.
func UintPtr(v uint) *uint { return &v }

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Tournament{}, &Team{}, &Player{},
		&Fixture{}, &BallEvent{}, &StandingsRow{},
	}
}
