package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingMemberIDKey    = "member_id"
	LoggingRedFlagIDKey   = "red_flag_id"
	LoggingBarrierIDKey   = "barrier_id"
	LoggingCarePlanIDKey  = "care_plan_id"
	LoggingTypeIDKey      = "type_id"
	LoggingRedisKey       = "redis_key"
	LoggingLockValueKey   = "lock_value"
	LoggingLockExpiryKey  = "lock_expiration_time"
	LoggingQueueNameKey   = "queue_name"
	LoggingEventActionKey = "event_action"
	LoggingEntityKey      = "entity"
)
