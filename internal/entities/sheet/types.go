package sheet

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Attribute is one stat on the sheet. SR is always derived from Value.
// Adjustment and TotalSR stay nil until the attribute is rolled.
type Attribute struct {
	Name       AttributeName `json:"name"`
	Category   Category      `json:"category"`
	Value      int           `json:"value"`
	SR         int           `json:"sr"`
	Adjustment *int          `json:"adjustment,omitempty"`
	TotalSR    *int          `json:"total_sr,omitempty"`
}

// RollOutcome is the record of one confirmed roll
type RollOutcome struct {
	ID          string        `json:"id"`
	Attribute   AttributeName `json:"attribute"`
	EnteredStat int           `json:"entered_stat"`
	SR          int           `json:"sr"`
	DieResult   int           `json:"die_result"`
	Adjustment  int           `json:"adjustment"`
	TotalSR     int           `json:"total_sr"`
	Method      RollMethod    `json:"method"`
	RolledAt    time.Time     `json:"rolled_at"`
}

// Skill is a saved composite of an attribute, a level and a misc bonus.
// ComputedSR is frozen when the skill is saved.
type Skill struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	BaseAttribute AttributeName `json:"base_attribute"`
	Level         SkillLevel    `json:"level"`
	MiscBonus     int           `json:"misc_bonus"`
	ComputedSR    int           `json:"computed_sr"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Flow holds the transient roll interaction flags
type Flow struct {
	State       FlowState     `json:"state"`
	Attribute   AttributeName `json:"attribute,omitempty"`
	Method      RollMethod    `json:"method,omitempty"`
	ManualValue *int          `json:"manual_value,omitempty"`
}

// Session is everything one client works with
type Session struct {
	ID          string       `json:"id"`
	Attributes  []*Attribute `json:"attributes"`
	Skills      []*Skill     `json:"skills"`
	LastOutcome *RollOutcome `json:"last_outcome,omitempty"`
	Flow        Flow         `json:"flow"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Session is the source entity of roll and skill events
var _ core.Entity = (*Session)(nil)

// GetID implements core.Entity
func (s *Session) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *Session) GetType() string {
	return EntityType
}

// Attribute returns the named attribute, nil when absent
func (s *Session) Attribute(name AttributeName) *Attribute {
	for _, a := range s.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without touching s
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	out := *s
	out.Attributes = make([]*Attribute, len(s.Attributes))
	for i, a := range s.Attributes {
		out.Attributes[i] = a.Clone()
	}
	out.Skills = make([]*Skill, len(s.Skills))
	for i, sk := range s.Skills {
		cp := *sk
		out.Skills[i] = &cp
	}
	if s.LastOutcome != nil {
		cp := *s.LastOutcome
		out.LastOutcome = &cp
	}
	out.Flow.ManualValue = copyInt(s.Flow.ManualValue)
	return &out
}

// Clone returns a deep copy of the attribute
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	out := *a
	out.Adjustment = copyInt(a.Adjustment)
	out.TotalSR = copyInt(a.TotalSR)
	return &out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// AttributeGroup is one category of the sheet with its attributes in order
type AttributeGroup struct {
	Category   Category     `json:"category"`
	Label      string       `json:"label"`
	Attributes []*Attribute `json:"attributes"`
}
