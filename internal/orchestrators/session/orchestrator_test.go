package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/skill-roller/internal/engine/mock"
	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	session "github.com/KirkDiggler/skill-roller/internal/orchestrators/session"
	"github.com/KirkDiggler/skill-roller/internal/pkg/clock"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
	sessionrepomock "github.com/KirkDiggler/skill-roller/internal/repositories/session/mock"
	"github.com/KirkDiggler/skill-roller/internal/testutils"
	"github.com/KirkDiggler/skill-roller/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *sessionrepomock.MockRepository
	mockEngine *enginemock.MockEngine
	bus        events.EventBus
	now        time.Time
	ctx        context.Context
	svc        session.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = sessionrepomock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.bus = events.NewBus()
	s.now = testutils.TestTime.Add(time.Minute)
	s.ctx = context.Background()

	svc, err := session.NewOrchestrator(&session.Config{
		SessionRepo: s.mockRepo,
		Engine:      s.mockEngine,
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("sess"),
		Clock:       &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestCreateSession() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.CreateInput) (*sessionrepo.CreateOutput, error) {
			s.Equal("sess_1", input.Session.ID)
			s.Equal(s.now, input.Session.CreatedAt)
			s.Len(input.Session.Attributes, 10)
			return &sessionrepo.CreateOutput{Session: input.Session}, nil
		})

	out, err := s.svc.CreateSession(s.ctx, &session.CreateSessionInput{})
	s.Require().NoError(err)
	s.Equal("sess_1", out.Session.ID)
	s.Equal(sheet.FlowStateIdle, out.Session.Flow.State)

	s.Require().Len(out.Groups, 3)
	s.Equal(sheet.CategoryPhysical, out.Groups[0].Category)
	s.Equal("Physical Stats", out.Groups[0].Label)
	s.Require().Len(out.Groups[0].Attributes, 4)
	s.Equal(sheet.AttributeAgility, out.Groups[0].Attributes[0].Name)
	s.Equal(5, out.Groups[0].Attributes[0].SR)
}

func (s *OrchestratorTestSuite) TestCreateSessionStoreFailure() {
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

	_, err := s.svc.CreateSession(s.ctx, &session.CreateSessionInput{})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestGetAttributes() {
	stored := testutils.CreateTestSessionAtStage(testutils.TestSessionID, testutils.StageRolled)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, stored, nil)

	out, err := s.svc.GetAttributes(s.ctx, &session.GetAttributesInput{SessionID: testutils.TestSessionID})
	s.Require().NoError(err)
	s.Require().Len(out.Groups, 3)
	s.Equal(sheet.CategoryPhysical, out.Groups[0].Category)

	str := out.Groups[0].Attributes[2]
	s.Equal(sheet.AttributeStrength, str.Name)
	s.Require().NotNil(str.TotalSR)
	s.Equal(2, *str.TotalSR)
}

func (s *OrchestratorTestSuite) TestGetAttributesMissingSession() {
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, "gone", nil, errors.NotFound("session gone not found"))

	_, err := s.svc.GetAttributes(s.ctx, &session.GetAttributesInput{SessionID: "gone"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEmptySessionIDRejected() {
	_, err := s.svc.GetAttributes(s.ctx, &session.GetAttributesInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.EndSession(s.ctx, &session.EndSessionInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSetAttributeValueSaves() {
	stored := testutils.CreateTestSession(testutils.TestSessionID)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, stored, nil)

	var saved *sheet.Session
	mocks.ExpectSessionUpdate(s.ctx, s.mockRepo, &saved)

	out, err := s.svc.SetAttributeValue(s.ctx, &session.SetAttributeValueInput{
		SessionID: testutils.TestSessionID,
		Attribute: sheet.AttributeStrength,
		Value:     73,
	})
	s.Require().NoError(err)
	s.Equal(7, out.Attribute.SR)

	s.Require().NotNil(saved)
	s.Equal(73, saved.Attribute(sheet.AttributeStrength).Value)
	s.Equal(7, saved.Attribute(sheet.AttributeStrength).SR)
	s.Equal(s.now, saved.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestRejectedCommandIsNotSaved() {
	stored := testutils.CreateTestSession(testutils.TestSessionID)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, stored, nil).Times(3)
	// no Update expectation: gomock fails the test if one happens

	_, err := s.svc.SetAttributeValue(s.ctx, &session.SetAttributeValueInput{
		SessionID: testutils.TestSessionID,
		Attribute: sheet.AttributeStrength,
		Value:     101,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ConfirmRoll(s.ctx, &session.ConfirmRollInput{
		SessionID: testutils.TestSessionID,
		Attribute: sheet.AttributeStrength,
	})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.AddSkill(s.ctx, &session.AddSkillInput{
		SessionID: testutils.TestSessionID,
		Name:      "",
		Attribute: sheet.AttributeStrength,
		Level:     sheet.SkillLevelNovice,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConfirmRollPublishesEvent() {
	stored := testutils.CreateTestSession(testutils.TestSessionID)
	stored.Flow = sheet.Flow{
		State:     sheet.FlowStateAwaitingConfirmation,
		Attribute: sheet.AttributeStrength,
		Method:    sheet.RollMethodGenerated,
	}
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, stored, nil)

	var saved *sheet.Session
	mocks.ExpectSessionUpdate(s.ctx, s.mockRepo, &saved)
	s.mockEngine.EXPECT().RollPercentile().Return(85, nil)

	var published *sheet.RollOutcome
	s.bus.SubscribeFunc(session.EventRollResolved, 0, func(_ context.Context, e events.Event) error {
		s.Equal(testutils.TestSessionID, e.Source().GetID())
		v, ok := e.Context().Get(session.EventKeyOutcome)
		s.Require().True(ok)
		published = v.(*sheet.RollOutcome)
		return nil
	})

	out, err := s.svc.ConfirmRoll(s.ctx, &session.ConfirmRollInput{
		SessionID: testutils.TestSessionID,
		Attribute: sheet.AttributeStrength,
	})
	s.Require().NoError(err)
	s.Equal(-3, out.Outcome.Adjustment)
	s.Equal(2, out.Outcome.TotalSR)
	s.Equal(s.now, out.Outcome.RolledAt)

	s.Require().NotNil(saved)
	s.Equal(sheet.FlowStateResolved, saved.Flow.State)
	s.Require().NotNil(saved.LastOutcome)
	s.Equal(85, saved.LastOutcome.DieResult)

	s.Require().NotNil(published)
	s.Equal(out.Outcome.ID, published.ID)
}

func (s *OrchestratorTestSuite) TestSaveFailureSkipsEvent() {
	stored := testutils.CreateTestSession(testutils.TestSessionID)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, stored, nil)
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil, errors.NotFound("session expired"))

	fired := false
	s.bus.SubscribeFunc(session.EventSkillAdded, 0, func(_ context.Context, _ events.Event) error {
		fired = true
		return nil
	})

	_, err := s.svc.AddSkill(s.ctx, &session.AddSkillInput{
		SessionID: testutils.TestSessionID,
		Name:      "Climb",
		Attribute: sheet.AttributeStrength,
		Level:     sheet.SkillLevelExpert,
		MiscBonus: 3,
	})
	s.True(errors.IsNotFound(err))
	s.False(fired)
}

func (s *OrchestratorTestSuite) TestListSkills() {
	stored := testutils.CreateTestSessionAtStage(testutils.TestSessionID, testutils.StageWithSkills)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, stored, nil)

	out, err := s.svc.ListSkills(s.ctx, &session.ListSkillsInput{SessionID: testutils.TestSessionID})
	s.Require().NoError(err)
	s.Require().Len(out.Skills, 2)
	s.Equal("Climb", out.Skills[0].Name)
	s.Equal(14, out.Skills[0].ComputedSR)
	s.Equal("Notice", out.Skills[1].Name)
	s.Equal(7, out.Skills[1].ComputedSR)
	s.Equal(21, out.TotalSR)
}

func (s *OrchestratorTestSuite) TestGetLastOutcome() {
	fresh := testutils.CreateTestSession(testutils.TestSessionID)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, testutils.TestSessionID, fresh, nil)

	_, err := s.svc.GetLastOutcome(s.ctx, &session.GetLastOutcomeInput{SessionID: testutils.TestSessionID})
	s.True(errors.IsNotFound(err))

	rolled := testutils.CreateTestSessionAtStage("sess_rolled", testutils.StageRolled)
	mocks.ExpectSessionGet(s.ctx, s.mockRepo, "sess_rolled", rolled, nil)

	out, err := s.svc.GetLastOutcome(s.ctx, &session.GetLastOutcomeInput{SessionID: "sess_rolled"})
	s.Require().NoError(err)
	s.Equal(sheet.AttributeStrength, out.Outcome.Attribute)
	s.Equal(85, out.Outcome.DieResult)
}

func (s *OrchestratorTestSuite) TestEndSession() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, sessionrepo.DeleteInput{ID: testutils.TestSessionID}).
		Return(&sessionrepo.DeleteOutput{}, nil)

	_, err := s.svc.EndSession(s.ctx, &session.EndSessionInput{SessionID: testutils.TestSessionID})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestNilInputRejected() {
	_, err := s.svc.SetAttributeValue(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.ChooseMethod(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestNewOrchestratorValidates(t *testing.T) {
	_, err := session.NewOrchestrator(&session.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if fields := errors.ValidationFields(err); len(fields) != 4 {
		t.Fatalf("expected 4 missing fields, got %v", fields)
	}
}
