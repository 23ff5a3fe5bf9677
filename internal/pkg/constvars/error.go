package constvars

// Validation messages for clients, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"object_id": "must be a valid identifier",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMemberNotFound                = "member not found"
	ErrClientRedFlagNotFound               = "red flag not found"
	ErrClientBarrierNotFound               = "barrier not found"
	ErrClientCarePlanNotFound              = "care plan not found"
	ErrClientRedFlagTypeNotFound           = "red flag type not found"
	ErrClientBarrierTypeNotFound           = "barrier type not found"
	ErrClientCarePlanTypeNotFound          = "care plan type not found"
	ErrClientInvalidTaxonomyReference      = "exactly one of existing type id or custom description must be provided"
	ErrClientInvalidMemberID               = "member id is not a valid identifier"
	ErrClientStatusReversalNotAllowed      = "a completed item cannot be reopened"
	ErrClientWizardLimitExceeded           = "submission exceeds the allowed number of barriers or care plans"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerProcess          = "internal server process failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevURLParamIDValidation   = "URL parameter %s failed validation"

	// Domain messages
	ErrDevMemberNotFound           = "member does not exist"
	ErrDevRedFlagNotFound          = "red flag does not exist or does not belong to member"
	ErrDevBarrierNotFound          = "barrier does not exist or does not belong to member"
	ErrDevCarePlanNotFound         = "care plan does not exist"
	ErrDevRedFlagTypeNotFound      = "red flag type is not in the catalog"
	ErrDevBarrierTypeNotFound      = "barrier type is not in the catalog"
	ErrDevCarePlanTypeNotFound     = "care plan type is not in the catalog"
	ErrDevInvalidTaxonomyReference = "taxonomy reference must set exactly one of existingId/customDescription"
	ErrDevInvalidMemberID          = "member id is not a valid object id"
	ErrDevStatusReversalNotAllowed = "status transition from completed back to active is unsupported"
	ErrDevWizardLimitExceeded      = "configured barrier or care plan fan-out limit exceeded"
	ErrDevStatusUnknown            = "unknown care status value"

	// MongoDB messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToUpsertDocument   = "failed to upsert document"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to acquire redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// HTTP client messages
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode response from %s"
)
