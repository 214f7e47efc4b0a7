package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/skill-roller/internal/engine"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/skill-roller/internal/orchestrators/session"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
)

type constRoller struct{ face int }

func (r constRoller) Roll(_ int) (int, error) { return r.face, nil }

func (r constRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, nil
}

// startServer runs the service on an in-memory listener and returns a client
func startServer(t *testing.T, face int) *v1alpha1.Client {
	t.Helper()

	eng, err := engine.New(&engine.Config{DiceRoller: constRoller{face: face}})
	require.NoError(t, err)

	svc, err := session.NewOrchestrator(&session.Config{
		SessionRepo: sessionrepo.NewInMemory(),
		Engine:      eng,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewSequential("sess"),
	})
	require.NoError(t, err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SessionService: svc})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterSkillCheckServiceServer(server, handler)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewClient(conn)
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, 85)

	created, err := client.CreateSession(ctx)
	require.NoError(t, err)
	require.Equal(t, "sess_1", created.SessionID)
	require.Len(t, created.Groups, 3)
	assert.Equal(t, "Physical Stats", created.Groups[0].Label)
	assert.Equal(t, 5, created.Groups[0].Attributes[0].SR)

	id := created.SessionID

	_, err = client.BeginRoll(ctx, &v1alpha1.RollRequest{SessionID: id, Attribute: "Str"})
	require.NoError(t, err)

	flow, err := client.ChooseMethod(ctx, &v1alpha1.ChooseMethodRequest{SessionID: id, Attribute: "Str", Method: "generated"})
	require.NoError(t, err)
	assert.Equal(t, "awaiting_confirmation", string(flow.Flow.State))

	outcome, err := client.ConfirmRoll(ctx, &v1alpha1.RollRequest{SessionID: id, Attribute: "Str"})
	require.NoError(t, err)
	assert.Equal(t, 85, outcome.Outcome.DieResult)
	assert.Equal(t, -3, outcome.Outcome.Adjustment)
	assert.Equal(t, 2, outcome.Outcome.TotalSR)

	last, err := client.GetLastOutcome(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, outcome.Outcome.ID, last.Outcome.ID)
	assert.True(t, outcome.Outcome.RolledAt.Equal(last.Outcome.RolledAt))

	set, err := client.SetAttributeValue(ctx, &v1alpha1.SetAttributeValueRequest{SessionID: id, Attribute: "Str", Value: 73})
	require.NoError(t, err)
	assert.Equal(t, 7, set.Attribute.SR)
	// the earlier roll stays on the attribute
	require.NotNil(t, set.Attribute.TotalSR)
	assert.Equal(t, 2, *set.Attribute.TotalSR)

	skill, err := client.AddSkill(ctx, &v1alpha1.AddSkillRequest{
		SessionID: id, Name: "Climb", Attribute: "Str", Level: "expert", MiscBonus: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 14, skill.Skill.ComputedSR)

	skills, err := client.ListSkills(ctx, id)
	require.NoError(t, err)
	require.Len(t, skills.Skills, 1)
	assert.Equal(t, 14, skills.TotalSR)

	require.NoError(t, client.EndSession(ctx, id))

	_, err = client.GetAttributes(ctx, id)
	assert.True(t, errors.IsNotFound(err))
}

func TestClientSurfacesValidationFields(t *testing.T) {
	ctx := context.Background()
	client := startServer(t, 50)

	created, err := client.CreateSession(ctx)
	require.NoError(t, err)

	_, err = client.AddSkill(ctx, &v1alpha1.AddSkillRequest{
		SessionID: created.SessionID, Name: " ", Attribute: "Luck", Level: "legend", MiscBonus: -1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	fields := errors.ValidationFields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "attribute")
	assert.Contains(t, fields, "level")
	assert.Contains(t, fields, "misc_bonus")

	_, err = client.ConfirmRoll(ctx, &v1alpha1.RollRequest{SessionID: created.SessionID, Attribute: "Str"})
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Equal(t, "idle", errors.GetMeta(err)["state"])
}
