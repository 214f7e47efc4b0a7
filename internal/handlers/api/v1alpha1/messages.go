package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
)

// CreateSessionRequest starts a session
type CreateSessionRequest struct{}

// CreateSessionResponse returns the new session and its default sheet
type CreateSessionResponse struct {
	SessionID string                  `json:"session_id"`
	Groups    []*sheet.AttributeGroup `json:"groups"`
}

// SessionRequest names a session for commands without other arguments
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// EndSessionResponse is empty
type EndSessionResponse struct{}

// GetAttributesResponse holds the sheet grouped by category
type GetAttributesResponse struct {
	Groups []*sheet.AttributeGroup `json:"groups"`
}

// SetAttributeValueRequest enters a stat value
type SetAttributeValueRequest struct {
	SessionID string `json:"session_id"`
	Attribute string `json:"attribute"`
	Value     int    `json:"value"`
}

// SetAttributeValueResponse holds the updated attribute
type SetAttributeValueResponse struct {
	Attribute *sheet.Attribute `json:"attribute"`
}

// RollRequest names the attribute being rolled
type RollRequest struct {
	SessionID string `json:"session_id"`
	Attribute string `json:"attribute"`
}

// ChooseMethodRequest picks how the die result is obtained
type ChooseMethodRequest struct {
	SessionID   string `json:"session_id"`
	Attribute   string `json:"attribute"`
	Method      string `json:"method"`
	ManualValue *int   `json:"manual_value,omitempty"`
}

// FlowResponse holds the roll flow after a command
type FlowResponse struct {
	Flow sheet.Flow `json:"flow"`
}

// OutcomeResponse holds a roll outcome
type OutcomeResponse struct {
	Outcome *sheet.RollOutcome `json:"outcome"`
}

// AddSkillRequest saves a skill
type AddSkillRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
	Level     string `json:"level"`
	MiscBonus int    `json:"misc_bonus"`
}

// AddSkillResponse holds the saved skill
type AddSkillResponse struct {
	Skill *sheet.Skill `json:"skill"`
}

// ListSkillsResponse holds saved skills in insertion order and their total SR
type ListSkillsResponse struct {
	Skills  []*sheet.Skill `json:"skills"`
	TotalSR int            `json:"total_sr"`
}

// encode turns a message into a Struct by way of its JSON form
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message")
	}

	fields := map[string]any{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to flatten message")
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build struct")
	}
	return out, nil
}

// decode fills v from a Struct. Strict decoding rejects fields v does not
// declare.
func decode(in *structpb.Struct, v any, strict bool) error {
	if in == nil {
		in = &structpb.Struct{}
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to marshal struct")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return errors.InvalidArgumentf("malformed message: %v", err)
	}
	return nil
}
