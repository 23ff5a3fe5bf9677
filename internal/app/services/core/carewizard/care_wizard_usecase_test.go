package carewizard

import (
	"carehub-service/internal/app/config"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeRedFlagRepository struct {
	mu         sync.Mutex
	created    []*models.RedFlag
	failCreate bool
}

func (f *fakeRedFlagRepository) CreateRedFlag(ctx context.Context, redFlag *models.RedFlag) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return "", errors.New("insert failed")
	}
	redFlag.ID = primitive.NewObjectID().Hex()
	f.created = append(f.created, redFlag)
	return redFlag.ID, nil
}

func (f *fakeRedFlagRepository) FindByID(ctx context.Context, redFlagID string) (*models.RedFlag, error) {
	return nil, nil
}

func (f *fakeRedFlagRepository) FindByIDAndMemberID(ctx context.Context, redFlagID, memberID string) (*models.RedFlag, error) {
	return nil, nil
}

func (f *fakeRedFlagRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.RedFlag, error) {
	return nil, nil
}

func (f *fakeRedFlagRepository) UpdateRedFlag(ctx context.Context, redFlag *models.RedFlag) error {
	return nil
}

func (f *fakeRedFlagRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	return nil
}

type fakeBarrierRepository struct {
	mu      sync.Mutex
	created []*models.Barrier
}

func (f *fakeBarrierRepository) CreateBarrier(ctx context.Context, barrier *models.Barrier) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	barrier.ID = primitive.NewObjectID().Hex()
	f.created = append(f.created, barrier)
	return barrier.ID, nil
}

func (f *fakeBarrierRepository) FindByID(ctx context.Context, barrierID string) (*models.Barrier, error) {
	return nil, nil
}

func (f *fakeBarrierRepository) FindByIDAndMemberID(ctx context.Context, barrierID, memberID string) (*models.Barrier, error) {
	return nil, nil
}

func (f *fakeBarrierRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.Barrier, error) {
	return nil, nil
}

func (f *fakeBarrierRepository) UpdateBarrier(ctx context.Context, barrier *models.Barrier) error {
	return nil
}

func (f *fakeBarrierRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	return nil
}

type fakeCarePlanRepository struct {
	mu      sync.Mutex
	created []*models.CarePlan
}

func (f *fakeCarePlanRepository) CreateCarePlan(ctx context.Context, carePlan *models.CarePlan) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	carePlan.ID = primitive.NewObjectID().Hex()
	f.created = append(f.created, carePlan)
	return carePlan.ID, nil
}

func (f *fakeCarePlanRepository) FindByID(ctx context.Context, carePlanID string) (*models.CarePlan, error) {
	return nil, nil
}

func (f *fakeCarePlanRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.CarePlan, error) {
	return nil, nil
}

func (f *fakeCarePlanRepository) UpdateCarePlan(ctx context.Context, carePlan *models.CarePlan) error {
	return nil
}

func (f *fakeCarePlanRepository) DeleteByID(ctx context.Context, carePlanID string) (bool, error) {
	return false, nil
}

func (f *fakeCarePlanRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	return nil
}

type fakeTaxonomyRepository struct {
	redFlagTypes map[string]*models.RedFlagType
	barrierTypes map[string]*models.BarrierType
}

func (f *fakeTaxonomyRepository) FindAllRedFlagTypes(ctx context.Context) ([]models.RedFlagType, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) FindRedFlagTypeByID(ctx context.Context, typeID string) (*models.RedFlagType, error) {
	return f.redFlagTypes[typeID], nil
}

func (f *fakeTaxonomyRepository) FindAllBarrierTypes(ctx context.Context) ([]models.BarrierType, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) FindBarrierTypeByID(ctx context.Context, typeID string) (*models.BarrierType, error) {
	return f.barrierTypes[typeID], nil
}

func (f *fakeTaxonomyRepository) FindAllCarePlanTypes(ctx context.Context) ([]models.CarePlanType, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) FindCarePlanTypeByID(ctx context.Context, typeID string) (*models.CarePlanType, error) {
	return nil, nil
}

func (f *fakeTaxonomyRepository) UpsertCustomCarePlanType(ctx context.Context, description string) (*models.CarePlanType, error) {
	return nil, nil
}

// fakeTaxonomyResolver resolves care plan type references the same way
// the catalog does: known existing ids pass through, custom descriptions
// deduplicate to a stable id.
type fakeTaxonomyResolver struct {
	mu          sync.Mutex
	existingIDs map[string]bool
	customByKey map[string]string
}

func (f *fakeTaxonomyResolver) FindAllRedFlagTypes(ctx context.Context) ([]responses.RedFlagType, error) {
	return nil, nil
}

func (f *fakeTaxonomyResolver) FindAllBarrierTypes(ctx context.Context) ([]responses.BarrierType, error) {
	return nil, nil
}

func (f *fakeTaxonomyResolver) FindAllCarePlanTypes(ctx context.Context) ([]responses.CarePlanType, error) {
	return nil, nil
}

func (f *fakeTaxonomyResolver) ResolveCarePlanType(ctx context.Context, reference requests.CarePlanTypeReference) (string, error) {
	if !reference.IsValid() {
		return "", exceptions.ErrInvalidTaxonomyReference(nil)
	}
	if reference.ExistingID != "" {
		if !f.existingIDs[reference.ExistingID] {
			return "", exceptions.ErrCarePlanTypeNotFound(nil)
		}
		return reference.ExistingID, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.customByKey[reference.CustomDescription]; ok {
		return id, nil
	}
	id := primitive.NewObjectID().Hex()
	f.customByKey[reference.CustomDescription] = id
	return id, nil
}

type fakeMemberClient struct {
	members map[string]*models.Member
}

func (f *fakeMemberClient) FindMemberByID(ctx context.Context, memberID string) (*models.Member, error) {
	return f.members[memberID], nil
}

type fakeCareEventService struct {
	mu        sync.Mutex
	published []*models.CareEvent
	fail      bool
}

func (f *fakeCareEventService) Publish(ctx context.Context, event *models.CareEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broker unavailable")
	}
	f.published = append(f.published, event)
	return nil
}

type wizardFixture struct {
	usecase       *careWizardUsecase
	redFlagRepo   *fakeRedFlagRepository
	barrierRepo   *fakeBarrierRepository
	carePlanRepo  *fakeCarePlanRepository
	resolver      *fakeTaxonomyResolver
	memberClient  *fakeMemberClient
	eventService  *fakeCareEventService
	memberID      string
	redFlagTypeID string
	barrierTypeID string
	planTypeID    string
}

func newWizardFixture() *wizardFixture {
	memberID := primitive.NewObjectID().Hex()
	redFlagTypeID := primitive.NewObjectID().Hex()
	barrierTypeID := primitive.NewObjectID().Hex()
	planTypeID := primitive.NewObjectID().Hex()

	redFlagRepo := &fakeRedFlagRepository{}
	barrierRepo := &fakeBarrierRepository{}
	carePlanRepo := &fakeCarePlanRepository{}
	taxonomyRepo := &fakeTaxonomyRepository{
		redFlagTypes: map[string]*models.RedFlagType{
			redFlagTypeID: {ID: redFlagTypeID, Description: "Recent hospital discharge"},
		},
		barrierTypes: map[string]*models.BarrierType{
			barrierTypeID: {ID: barrierTypeID, Description: "No reliable transportation", Domain: "transportation"},
		},
	}
	resolver := &fakeTaxonomyResolver{
		existingIDs: map[string]bool{planTypeID: true},
		customByKey: map[string]string{},
	}
	memberClient := &fakeMemberClient{
		members: map[string]*models.Member{
			memberID: {ID: memberID, Active: true},
		},
	}
	eventService := &fakeCareEventService{}

	usecase := &careWizardUsecase{
		RedFlagRepository:  redFlagRepo,
		BarrierRepository:  barrierRepo,
		CarePlanRepository: carePlanRepo,
		TaxonomyRepository: taxonomyRepo,
		TaxonomyUsecase:    resolver,
		MemberClient:       memberClient,
		CareEventService:   eventService,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				MaxBarriersPerSubmission: 20,
				MaxCarePlansPerBarrier:   20,
			},
		},
		Log: zap.NewNop(),
	}

	return &wizardFixture{
		usecase:       usecase,
		redFlagRepo:   redFlagRepo,
		barrierRepo:   barrierRepo,
		carePlanRepo:  carePlanRepo,
		resolver:      resolver,
		memberClient:  memberClient,
		eventService:  eventService,
		memberID:      memberID,
		redFlagTypeID: redFlagTypeID,
		barrierTypeID: barrierTypeID,
		planTypeID:    planTypeID,
	}
}

func (fx *wizardFixture) submission(barrierCount, plansPerBarrier int) *requests.CareWizardSubmission {
	barriers := make([]requests.WizardBarrier, barrierCount)
	for i := range barriers {
		plans := make([]requests.WizardCarePlan, plansPerBarrier)
		for j := range plans {
			plans[j] = requests.WizardCarePlan{
				Type:  requests.CarePlanTypeReference{ExistingID: fx.planTypeID},
				Notes: fmt.Sprintf("plan %d-%d", i, j),
			}
		}
		barriers[i] = requests.WizardBarrier{
			TypeID:    fx.barrierTypeID,
			Notes:     fmt.Sprintf("barrier %d", i),
			CarePlans: plans,
		}
	}
	return &requests.CareWizardSubmission{
		MemberID: fx.memberID,
		RedFlag: requests.WizardRedFlag{
			TypeID:   fx.redFlagTypeID,
			Notes:    "flagged after discharge",
			Barriers: barriers,
		},
		CreatedBy: "coordinator-1",
	}
}

func TestSubmitCareWizard_Success(t *testing.T) {
	fx := newWizardFixture()

	result, err := fx.usecase.SubmitCareWizard(context.Background(), fx.submission(3, 2))

	assert.NoError(t, err)
	assert.Len(t, result.IDs, 6)

	assert.Len(t, fx.redFlagRepo.created, 1)
	redFlag := fx.redFlagRepo.created[0]
	assert.Equal(t, fx.memberID, redFlag.MemberID)
	assert.Equal(t, fx.redFlagTypeID, redFlag.TypeID)
	assert.Empty(t, redFlag.Status)

	assert.Len(t, fx.barrierRepo.created, 3)
	barrierIDs := map[string]bool{}
	for _, barrier := range fx.barrierRepo.created {
		assert.Equal(t, redFlag.ID, barrier.RedFlagID)
		assert.Equal(t, fx.memberID, barrier.MemberID)
		assert.Equal(t, models.CareStatusActive, barrier.Status)
		barrierIDs[barrier.ID] = true
	}

	assert.Len(t, fx.carePlanRepo.created, 6)
	for _, carePlan := range fx.carePlanRepo.created {
		assert.True(t, barrierIDs[carePlan.BarrierID], "care plan must hang off a created barrier")
		assert.Equal(t, fx.memberID, carePlan.MemberID)
		assert.Equal(t, models.CareStatusActive, carePlan.Status)
	}
}

func TestSubmitCareWizard_InvalidMemberID(t *testing.T) {
	fx := newWizardFixture()
	request := fx.submission(1, 1)
	request.MemberID = "not-an-object-id"

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 400, customErr.StatusCode)
	assert.Empty(t, fx.redFlagRepo.created)
}

func TestSubmitCareWizard_BarrierLimitExceeded(t *testing.T) {
	fx := newWizardFixture()
	fx.usecase.InternalConfig.App.MaxBarriersPerSubmission = 2
	request := fx.submission(3, 1)

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 400, customErr.StatusCode)
	assert.Empty(t, fx.redFlagRepo.created)
}

func TestSubmitCareWizard_CarePlanLimitExceeded(t *testing.T) {
	fx := newWizardFixture()
	fx.usecase.InternalConfig.App.MaxCarePlansPerBarrier = 1
	request := fx.submission(1, 2)

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Empty(t, fx.redFlagRepo.created)
	assert.Empty(t, fx.carePlanRepo.created)
}

func TestSubmitCareWizard_MemberNotFound(t *testing.T) {
	fx := newWizardFixture()
	request := fx.submission(1, 1)
	request.MemberID = primitive.NewObjectID().Hex()

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, 404, customErr.StatusCode)
	assert.Empty(t, fx.redFlagRepo.created)
	assert.Empty(t, fx.barrierRepo.created)
}

func TestSubmitCareWizard_RedFlagTypeNotFound(t *testing.T) {
	fx := newWizardFixture()
	request := fx.submission(1, 1)
	request.RedFlag.TypeID = primitive.NewObjectID().Hex()

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Empty(t, fx.redFlagRepo.created)
}

func TestSubmitCareWizard_UnknownBarrierTypeKeepsRedFlag(t *testing.T) {
	fx := newWizardFixture()
	request := fx.submission(1, 1)
	request.RedFlag.Barriers[0].TypeID = primitive.NewObjectID().Hex()

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	assert.Error(t, err)
	// No rollback: the red flag written before the failure stays.
	assert.Len(t, fx.redFlagRepo.created, 1)
	assert.Empty(t, fx.carePlanRepo.created)
}

func TestSubmitCareWizard_UnknownCarePlanTypeFailsSubmission(t *testing.T) {
	fx := newWizardFixture()
	request := fx.submission(1, 1)
	request.RedFlag.Barriers[0].CarePlans[0].Type = requests.CarePlanTypeReference{
		ExistingID: primitive.NewObjectID().Hex(),
	}

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Len(t, fx.redFlagRepo.created, 1)
	assert.Empty(t, fx.carePlanRepo.created)
}

func TestSubmitCareWizard_CustomTypeDeduplicated(t *testing.T) {
	fx := newWizardFixture()
	request := fx.submission(2, 1)
	custom := requests.CarePlanTypeReference{CustomDescription: "Weekly check-in call"}
	request.RedFlag.Barriers[0].CarePlans[0].Type = custom
	request.RedFlag.Barriers[1].CarePlans[0].Type = custom

	result, err := fx.usecase.SubmitCareWizard(context.Background(), request)

	assert.NoError(t, err)
	assert.Len(t, result.IDs, 2)
	assert.Len(t, fx.carePlanRepo.created, 2)
	assert.Equal(t, fx.carePlanRepo.created[0].TypeID, fx.carePlanRepo.created[1].TypeID,
		"identical custom descriptions must resolve to one type")
	assert.Len(t, fx.resolver.customByKey, 1)
}

func TestSubmitCareWizard_EventFailureDoesNotFailSubmission(t *testing.T) {
	fx := newWizardFixture()
	fx.eventService.fail = true

	result, err := fx.usecase.SubmitCareWizard(context.Background(), fx.submission(1, 1))

	assert.NoError(t, err)
	assert.Len(t, result.IDs, 1)
}

func TestSubmitCareWizard_EmptyBarriers(t *testing.T) {
	fx := newWizardFixture()

	result, err := fx.usecase.SubmitCareWizard(context.Background(), fx.submission(0, 0))

	assert.NoError(t, err)
	assert.Empty(t, result.IDs)
	assert.Len(t, fx.redFlagRepo.created, 1)
}
