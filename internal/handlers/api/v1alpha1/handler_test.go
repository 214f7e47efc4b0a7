package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/skill-roller/internal/orchestrators/session"
	sessionmock "github.com/KirkDiggler/skill-roller/internal/orchestrators/session/mock"
	"github.com/KirkDiggler/skill-roller/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *sessionmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = sessionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SessionService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) mustStruct(fields map[string]any) *structpb.Struct {
	st, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return st
}

func (s *HandlerTestSuite) TestCreateSession_ReturnsCreatedSheet() {
	created := testutils.CreateTestSession(testutils.TestSessionID)
	groups := []*sheet.AttributeGroup{{
		Category:   sheet.CategoryCombat,
		Label:      sheet.CategoryCombat.Label(),
		Attributes: []*sheet.Attribute{created.Attribute(sheet.AttributeMelee)},
	}}

	// No GetAttributes expectation: the sheet comes from the create call alone.
	s.mockService.EXPECT().
		CreateSession(s.ctx, &session.CreateSessionInput{}).
		Return(&session.CreateSessionOutput{Session: created, Groups: groups}, nil)

	resp, err := s.handler.CreateSession(s.ctx, s.mustStruct(map[string]any{}))
	s.Require().NoError(err)

	s.Equal(testutils.TestSessionID, resp.GetFields()["session_id"].GetStringValue())
	got := resp.GetFields()["groups"].GetListValue().GetValues()
	s.Require().Len(got, 1)
	group := got[0].GetStructValue().GetFields()
	s.Equal("Combat Stats", group["label"].GetStringValue())
	attrs := group["attributes"].GetListValue().GetValues()
	s.Require().Len(attrs, 1)
	s.Equal("Mel", attrs[0].GetStructValue().GetFields()["name"].GetStringValue())
}

func (s *HandlerTestSuite) TestSetAttributeValue_Success() {
	s.mockService.EXPECT().
		SetAttributeValue(s.ctx, &session.SetAttributeValueInput{
			SessionID: testutils.TestSessionID,
			Attribute: sheet.AttributeStrength,
			Value:     73,
		}).
		Return(&session.SetAttributeValueOutput{
			Attribute: &sheet.Attribute{
				Name:     sheet.AttributeStrength,
				Category: sheet.CategoryPhysical,
				Value:    73,
				SR:       7,
			},
		}, nil)

	resp, err := s.handler.SetAttributeValue(s.ctx, s.mustStruct(map[string]any{
		"session_id": testutils.TestSessionID,
		"attribute":  "Str",
		"value":      73,
	}))
	s.Require().NoError(err)

	attr := resp.GetFields()["attribute"].GetStructValue().GetFields()
	s.Equal("Str", attr["name"].GetStringValue())
	s.Equal(float64(73), attr["value"].GetNumberValue())
	s.Equal(float64(7), attr["sr"].GetNumberValue())
	s.NotContains(attr, "adjustment")
}

func (s *HandlerTestSuite) TestSetAttributeValue_MissingFields() {
	_, err := s.handler.SetAttributeValue(s.ctx, s.mustStruct(map[string]any{"value": 10}))
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())

	fields := errors.ValidationFields(errors.FromGRPCError(err))
	s.Contains(fields, "session_id")
	s.Contains(fields, "attribute")
}

func (s *HandlerTestSuite) TestUnknownFieldRejected() {
	_, err := s.handler.GetAttributes(s.ctx, s.mustStruct(map[string]any{
		"session_id": testutils.TestSessionID,
		"colour":     "blue",
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestFractionalValueRejected() {
	_, err := s.handler.SetAttributeValue(s.ctx, s.mustStruct(map[string]any{
		"session_id": testutils.TestSessionID,
		"attribute":  "Str",
		"value":      50.5,
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestConfirmRoll_InvalidTransition() {
	s.mockService.EXPECT().
		ConfirmRoll(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("cannot confirm_roll from idle: no roll in progress"))

	_, err := s.handler.ConfirmRoll(s.ctx, s.mustStruct(map[string]any{
		"session_id": testutils.TestSessionID,
		"attribute":  "Str",
	}))
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestChooseMethod_PassesManualValue() {
	s.mockService.EXPECT().
		ChooseMethod(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *session.ChooseMethodInput) (*session.ChooseMethodOutput, error) {
			s.Equal(sheet.RollMethodManual, input.Method)
			s.Require().NotNil(input.ManualValue)
			s.Equal(85, *input.ManualValue)

			v := 85
			return &session.ChooseMethodOutput{Flow: sheet.Flow{
				State:       sheet.FlowStateAwaitingConfirmation,
				Attribute:   sheet.AttributeStrength,
				Method:      sheet.RollMethodManual,
				ManualValue: &v,
			}}, nil
		})

	resp, err := s.handler.ChooseMethod(s.ctx, s.mustStruct(map[string]any{
		"session_id":   testutils.TestSessionID,
		"attribute":    "Str",
		"method":       "manual",
		"manual_value": 85,
	}))
	s.Require().NoError(err)

	flow := resp.GetFields()["flow"].GetStructValue().GetFields()
	s.Equal("awaiting_confirmation", flow["state"].GetStringValue())
	s.Equal(float64(85), flow["manual_value"].GetNumberValue())
}

func (s *HandlerTestSuite) TestListSkills_NotFound() {
	s.mockService.EXPECT().
		ListSkills(s.ctx, &session.ListSkillsInput{SessionID: "gone"}).
		Return(nil, errors.NotFound("session gone not found"))

	_, err := s.handler.ListSkills(s.ctx, s.mustStruct(map[string]any{"session_id": "gone"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func TestNewHandlerRequiresService(t *testing.T) {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
