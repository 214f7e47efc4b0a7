package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/orchestrators/session"
)

// HandlerConfig holds dependencies for the skill check handler
type HandlerConfig struct {
	SessionService session.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SessionService == nil {
		return errors.InvalidArgument("session service is required")
	}
	return nil
}

// Handler implements SkillCheckServiceServer
type Handler struct {
	sessionService session.Service
}

// NewHandler creates a new skill check handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sessionService: cfg.SessionService,
	}, nil
}

var _ SkillCheckServiceServer = (*Handler)(nil)

// serve decodes the request, runs fn, and encodes the response. Every
// failure leaves as a gRPC status.
func serve[Req, Resp any](ctx context.Context, in *structpb.Struct, fn func(context.Context, *Req) (*Resp, error)) (*structpb.Struct, error) {
	req := new(Req)
	if err := decode(in, req, true); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := fn(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func requireSession(sessionID string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired("session_id", sessionID, vb)
}

func requireAttribute(attribute string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired("attribute", attribute, vb)
}

// CreateSession starts a session with every attribute at its default value
func (h *Handler) CreateSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, _ *CreateSessionRequest) (*CreateSessionResponse, error) {
		out, err := h.sessionService.CreateSession(ctx, &session.CreateSessionInput{})
		if err != nil {
			return nil, err
		}

		return &CreateSessionResponse{
			SessionID: out.Session.ID,
			Groups:    out.Groups,
		}, nil
	})
}

// EndSession tears a session down
func (h *Handler) EndSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *SessionRequest) (*EndSessionResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		if _, err := h.sessionService.EndSession(ctx, &session.EndSessionInput{SessionID: req.SessionID}); err != nil {
			return nil, err
		}
		return &EndSessionResponse{}, nil
	})
}

// GetAttributes returns the sheet grouped by category
func (h *Handler) GetAttributes(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *SessionRequest) (*GetAttributesResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.GetAttributes(ctx, &session.GetAttributesInput{SessionID: req.SessionID})
		if err != nil {
			return nil, err
		}
		return &GetAttributesResponse{Groups: out.Groups}, nil
	})
}

// SetAttributeValue enters a stat value
func (h *Handler) SetAttributeValue(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *SetAttributeValueRequest) (*SetAttributeValueResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		requireAttribute(req.Attribute, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.SetAttributeValue(ctx, &session.SetAttributeValueInput{
			SessionID: req.SessionID,
			Attribute: sheet.AttributeName(req.Attribute),
			Value:     req.Value,
		})
		if err != nil {
			return nil, err
		}
		return &SetAttributeValueResponse{Attribute: out.Attribute}, nil
	})
}

// BeginRoll selects the attribute to roll
func (h *Handler) BeginRoll(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *RollRequest) (*FlowResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		requireAttribute(req.Attribute, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.BeginRoll(ctx, &session.BeginRollInput{
			SessionID: req.SessionID,
			Attribute: sheet.AttributeName(req.Attribute),
		})
		if err != nil {
			return nil, err
		}
		return &FlowResponse{Flow: out.Flow}, nil
	})
}

// ChooseMethod picks a generated or manual roll
func (h *Handler) ChooseMethod(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *ChooseMethodRequest) (*FlowResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		requireAttribute(req.Attribute, vb)
		errors.ValidateRequired("method", req.Method, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.ChooseMethod(ctx, &session.ChooseMethodInput{
			SessionID:   req.SessionID,
			Attribute:   sheet.AttributeName(req.Attribute),
			Method:      sheet.RollMethod(req.Method),
			ManualValue: req.ManualValue,
		})
		if err != nil {
			return nil, err
		}
		return &FlowResponse{Flow: out.Flow}, nil
	})
}

// ConfirmRoll resolves the active roll
func (h *Handler) ConfirmRoll(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *RollRequest) (*OutcomeResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		requireAttribute(req.Attribute, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.ConfirmRoll(ctx, &session.ConfirmRollInput{
			SessionID: req.SessionID,
			Attribute: sheet.AttributeName(req.Attribute),
		})
		if err != nil {
			return nil, err
		}
		return &OutcomeResponse{Outcome: out.Outcome}, nil
	})
}

// GetLastOutcome returns the most recent roll
func (h *Handler) GetLastOutcome(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *SessionRequest) (*OutcomeResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.GetLastOutcome(ctx, &session.GetLastOutcomeInput{SessionID: req.SessionID})
		if err != nil {
			return nil, err
		}
		return &OutcomeResponse{Outcome: out.Outcome}, nil
	})
}

// AddSkill saves a skill
func (h *Handler) AddSkill(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *AddSkillRequest) (*AddSkillResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.AddSkill(ctx, &session.AddSkillInput{
			SessionID: req.SessionID,
			Name:      req.Name,
			Attribute: sheet.AttributeName(req.Attribute),
			Level:     sheet.SkillLevel(req.Level),
			MiscBonus: req.MiscBonus,
		})
		if err != nil {
			return nil, err
		}
		return &AddSkillResponse{Skill: out.Skill}, nil
	})
}

// ListSkills returns the saved skills and their running total
func (h *Handler) ListSkills(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, in, func(ctx context.Context, req *SessionRequest) (*ListSkillsResponse, error) {
		vb := errors.NewValidationBuilder()
		requireSession(req.SessionID, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}

		out, err := h.sessionService.ListSkills(ctx, &session.ListSkillsInput{SessionID: req.SessionID})
		if err != nil {
			return nil, err
		}
		return &ListSkillsResponse{Skills: out.Skills, TotalSR: out.TotalSR}, nil
	})
}
