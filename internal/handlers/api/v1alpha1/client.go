package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skill-roller/internal/errors"
)

// Client calls the skill check service. Errors come back as *errors.Error
// with the code and field violations the server sent.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Req, Resp any](ctx context.Context, conn grpc.ClientConnInterface, method string, req *Req) (*Resp, error) {
	in, err := encode(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	resp := new(Resp)
	if err := decode(out, resp, false); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	return resp, nil
}

// CreateSession starts a session
func (c *Client) CreateSession(ctx context.Context) (*CreateSessionResponse, error) {
	return invoke[CreateSessionRequest, CreateSessionResponse](ctx, c.conn, MethodCreateSession, &CreateSessionRequest{})
}

// EndSession tears a session down
func (c *Client) EndSession(ctx context.Context, sessionID string) error {
	_, err := invoke[SessionRequest, EndSessionResponse](ctx, c.conn, MethodEndSession, &SessionRequest{SessionID: sessionID})
	return err
}

// GetAttributes returns the sheet grouped by category
func (c *Client) GetAttributes(ctx context.Context, sessionID string) (*GetAttributesResponse, error) {
	return invoke[SessionRequest, GetAttributesResponse](ctx, c.conn, MethodGetAttributes, &SessionRequest{SessionID: sessionID})
}

// SetAttributeValue enters a stat value
func (c *Client) SetAttributeValue(ctx context.Context, req *SetAttributeValueRequest) (*SetAttributeValueResponse, error) {
	return invoke[SetAttributeValueRequest, SetAttributeValueResponse](ctx, c.conn, MethodSetAttributeValue, req)
}

// BeginRoll selects an attribute to roll
func (c *Client) BeginRoll(ctx context.Context, req *RollRequest) (*FlowResponse, error) {
	return invoke[RollRequest, FlowResponse](ctx, c.conn, MethodBeginRoll, req)
}

// ChooseMethod picks a generated or manual roll
func (c *Client) ChooseMethod(ctx context.Context, req *ChooseMethodRequest) (*FlowResponse, error) {
	return invoke[ChooseMethodRequest, FlowResponse](ctx, c.conn, MethodChooseMethod, req)
}

// ConfirmRoll resolves the active roll
func (c *Client) ConfirmRoll(ctx context.Context, req *RollRequest) (*OutcomeResponse, error) {
	return invoke[RollRequest, OutcomeResponse](ctx, c.conn, MethodConfirmRoll, req)
}

// GetLastOutcome returns the most recent roll
func (c *Client) GetLastOutcome(ctx context.Context, sessionID string) (*OutcomeResponse, error) {
	return invoke[SessionRequest, OutcomeResponse](ctx, c.conn, MethodGetLastOutcome, &SessionRequest{SessionID: sessionID})
}

// AddSkill saves a skill
func (c *Client) AddSkill(ctx context.Context, req *AddSkillRequest) (*AddSkillResponse, error) {
	return invoke[AddSkillRequest, AddSkillResponse](ctx, c.conn, MethodAddSkill, req)
}

// ListSkills returns saved skills and their running total
func (c *Client) ListSkills(ctx context.Context, sessionID string) (*ListSkillsResponse, error) {
	return invoke[SessionRequest, ListSkillsResponse](ctx, c.conn, MethodListSkills, &SessionRequest{SessionID: sessionID})
}
