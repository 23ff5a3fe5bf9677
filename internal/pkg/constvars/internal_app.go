package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
)

const (
	REQUEST_ID_PREFIX = "CAREHUB_SVC_"
)

const (
	MongoCollectionRedFlags      = "red_flags"
	MongoCollectionBarriers      = "barriers"
	MongoCollectionCarePlans     = "care_plans"
	MongoCollectionRedFlagTypes  = "red_flag_types"
	MongoCollectionBarrierTypes  = "barrier_types"
	MongoCollectionCarePlanTypes = "care_plan_types"
)

const (
	RedisKeyRedFlagTypeList  = "taxonomy:red_flag_types"
	RedisKeyBarrierTypeList  = "taxonomy:barrier_types"
	RedisKeyCarePlanTypeList = "taxonomy:care_plan_types"
)

const (
	CareStatusActive    = "active"
	CareStatusCompleted = "completed"
)

const (
	EntityRedFlag  = "red_flag"
	EntityBarrier  = "barrier"
	EntityCarePlan = "care_plan"

	EventActionCreated       = "created"
	EventActionStatusChanged = "status_changed"
	EventActionDeleted       = "deleted"
)
