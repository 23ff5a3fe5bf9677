package redflags

import (
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryRedFlagRepository struct {
	byID map[string]*models.RedFlag
}

func newMemoryRedFlagRepository() *memoryRedFlagRepository {
	return &memoryRedFlagRepository{byID: map[string]*models.RedFlag{}}
}

func (m *memoryRedFlagRepository) CreateRedFlag(ctx context.Context, redFlag *models.RedFlag) (string, error) {
	redFlag.ID = primitive.NewObjectID().Hex()
	stored := *redFlag
	m.byID[redFlag.ID] = &stored
	return redFlag.ID, nil
}

func (m *memoryRedFlagRepository) FindByID(ctx context.Context, redFlagID string) (*models.RedFlag, error) {
	if redFlag, ok := m.byID[redFlagID]; ok {
		found := *redFlag
		return &found, nil
	}
	return nil, nil
}

func (m *memoryRedFlagRepository) FindByIDAndMemberID(ctx context.Context, redFlagID, memberID string) (*models.RedFlag, error) {
	redFlag, _ := m.FindByID(ctx, redFlagID)
	if redFlag == nil || redFlag.MemberID != memberID {
		return nil, nil
	}
	return redFlag, nil
}

func (m *memoryRedFlagRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.RedFlag, error) {
	redFlags := []models.RedFlag{}
	for _, redFlag := range m.byID {
		if redFlag.MemberID == memberID {
			redFlags = append(redFlags, *redFlag)
		}
	}
	return redFlags, nil
}

func (m *memoryRedFlagRepository) UpdateRedFlag(ctx context.Context, redFlag *models.RedFlag) error {
	stored := *redFlag
	m.byID[redFlag.ID] = &stored
	return nil
}

func (m *memoryRedFlagRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	for id, redFlag := range m.byID {
		if redFlag.MemberID == memberID {
			delete(m.byID, id)
		}
	}
	return nil
}

type stubTaxonomyRepository struct {
	redFlagTypeIDs map[string]bool
}

func (s *stubTaxonomyRepository) FindAllRedFlagTypes(ctx context.Context) ([]models.RedFlagType, error) {
	return nil, nil
}

func (s *stubTaxonomyRepository) FindRedFlagTypeByID(ctx context.Context, typeID string) (*models.RedFlagType, error) {
	if s.redFlagTypeIDs[typeID] {
		return &models.RedFlagType{ID: typeID, Description: "known type"}, nil
	}
	return nil, nil
}

func (s *stubTaxonomyRepository) FindAllBarrierTypes(ctx context.Context) ([]models.BarrierType, error) {
	return nil, nil
}

func (s *stubTaxonomyRepository) FindBarrierTypeByID(ctx context.Context, typeID string) (*models.BarrierType, error) {
	return nil, nil
}

func (s *stubTaxonomyRepository) FindAllCarePlanTypes(ctx context.Context) ([]models.CarePlanType, error) {
	return nil, nil
}

func (s *stubTaxonomyRepository) FindCarePlanTypeByID(ctx context.Context, typeID string) (*models.CarePlanType, error) {
	return nil, nil
}

func (s *stubTaxonomyRepository) UpsertCustomCarePlanType(ctx context.Context, description string) (*models.CarePlanType, error) {
	return nil, nil
}

type stubMemberClient struct {
	members map[string]*models.Member
}

func (s *stubMemberClient) FindMemberByID(ctx context.Context, memberID string) (*models.Member, error) {
	return s.members[memberID], nil
}

type recordingEventService struct {
	published []*models.CareEvent
}

func (r *recordingEventService) Publish(ctx context.Context, event *models.CareEvent) error {
	r.published = append(r.published, event)
	return nil
}

type redFlagFixture struct {
	usecase      *redFlagUsecase
	repo         *memoryRedFlagRepository
	eventService *recordingEventService
	memberID     string
	typeID       string
}

func newRedFlagFixture() *redFlagFixture {
	memberID := primitive.NewObjectID().Hex()
	typeID := primitive.NewObjectID().Hex()
	repo := newMemoryRedFlagRepository()
	eventService := &recordingEventService{}
	usecase := &redFlagUsecase{
		RedFlagRepository:  repo,
		TaxonomyRepository: &stubTaxonomyRepository{redFlagTypeIDs: map[string]bool{typeID: true}},
		MemberClient:       &stubMemberClient{members: map[string]*models.Member{memberID: {ID: memberID, Active: true}}},
		CareEventService:   eventService,
		Log:                zap.NewNop(),
	}
	return &redFlagFixture{
		usecase:      usecase,
		repo:         repo,
		eventService: eventService,
		memberID:     memberID,
		typeID:       typeID,
	}
}

func TestCreateRedFlag(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newRedFlagFixture()

		result, err := fx.usecase.CreateRedFlag(context.Background(), &requests.CreateRedFlag{
			MemberID:  fx.memberID,
			TypeID:    fx.typeID,
			Notes:     "discharged yesterday",
			CreatedBy: "coordinator-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)

		stored := fx.repo.byID[result.ID]
		assert.Equal(t, fx.memberID, stored.MemberID)
		assert.Equal(t, "coordinator-1", stored.CreatedBy)
		assert.False(t, stored.CreatedAt.IsZero())
		assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)

		assert.Len(t, fx.eventService.published, 1)
		assert.Equal(t, constvars.EntityRedFlag, fx.eventService.published[0].Entity)
		assert.Equal(t, constvars.EventActionCreated, fx.eventService.published[0].Action)
	})

	t.Run("member not found", func(t *testing.T) {
		fx := newRedFlagFixture()

		result, err := fx.usecase.CreateRedFlag(context.Background(), &requests.CreateRedFlag{
			MemberID: primitive.NewObjectID().Hex(),
			TypeID:   fx.typeID,
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Empty(t, fx.repo.byID)
	})

	t.Run("type not in catalog", func(t *testing.T) {
		fx := newRedFlagFixture()

		result, err := fx.usecase.CreateRedFlag(context.Background(), &requests.CreateRedFlag{
			MemberID: fx.memberID,
			TypeID:   primitive.NewObjectID().Hex(),
		})

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Empty(t, fx.repo.byID)
	})
}

func TestUpdateRedFlag(t *testing.T) {
	active := string(models.CareStatusActive)
	completed := string(models.CareStatusCompleted)

	createRedFlag := func(fx *redFlagFixture) string {
		result, err := fx.usecase.CreateRedFlag(context.Background(), &requests.CreateRedFlag{
			MemberID: fx.memberID,
			TypeID:   fx.typeID,
			Notes:    "initial",
		})
		assert.NoError(t, err)
		return result.ID
	}

	t.Run("patch notes only", func(t *testing.T) {
		fx := newRedFlagFixture()
		redFlagID := createRedFlag(fx)
		notes := "updated after phone call"

		result, err := fx.usecase.UpdateRedFlag(context.Background(), &requests.UpdateRedFlag{
			RedFlagID: redFlagID,
			Notes:     &notes,
		})

		assert.NoError(t, err)
		assert.Equal(t, notes, result.Notes)
		// No status change happened, only the created event exists.
		assert.Len(t, fx.eventService.published, 1)
	})

	t.Run("complete then reopen is rejected", func(t *testing.T) {
		fx := newRedFlagFixture()
		redFlagID := createRedFlag(fx)

		setStatus := func(status string) error {
			_, err := fx.usecase.UpdateRedFlag(context.Background(), &requests.UpdateRedFlag{
				RedFlagID: redFlagID,
				Status:    &status,
			})
			return err
		}

		assert.NoError(t, setStatus(active))
		assert.NoError(t, setStatus(completed))

		err := setStatus(active)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, models.CareStatusCompleted, fx.repo.byID[redFlagID].Status)
	})

	t.Run("status change publishes event", func(t *testing.T) {
		fx := newRedFlagFixture()
		redFlagID := createRedFlag(fx)
		status := completed

		_, err := fx.usecase.UpdateRedFlag(context.Background(), &requests.UpdateRedFlag{
			RedFlagID: redFlagID,
			Status:    &status,
		})

		assert.NoError(t, err)
		last := fx.eventService.published[len(fx.eventService.published)-1]
		assert.Equal(t, constvars.EventActionStatusChanged, last.Action)
		assert.Equal(t, redFlagID, last.EntityID)
	})

	t.Run("unknown red flag", func(t *testing.T) {
		fx := newRedFlagFixture()

		result, err := fx.usecase.UpdateRedFlag(context.Background(), &requests.UpdateRedFlag{
			RedFlagID: primitive.NewObjectID().Hex(),
		})

		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestFindRedFlagsByMemberID(t *testing.T) {
	fx := newRedFlagFixture()
	for i := 0; i < 3; i++ {
		_, err := fx.usecase.CreateRedFlag(context.Background(), &requests.CreateRedFlag{
			MemberID: fx.memberID,
			TypeID:   fx.typeID,
		})
		assert.NoError(t, err)
	}

	result, err := fx.usecase.FindRedFlagsByMemberID(context.Background(), &requests.FindRedFlagsByMember{
		MemberID: fx.memberID,
	})
	assert.NoError(t, err)
	assert.Len(t, result, 3)

	empty, err := fx.usecase.FindRedFlagsByMemberID(context.Background(), &requests.FindRedFlagsByMember{
		MemberID: primitive.NewObjectID().Hex(),
	})
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
