package pipeline

// ScheduleType controls how the remote service schedules runs of an object.
type ScheduleType string

const (
	ScheduleTypeCron       ScheduleType = "cron"
	ScheduleTypeTimeSeries ScheduleType = "timeseries"
	ScheduleTypeOnDemand   ScheduleType = "ondemand"
)

// StartAt is the symbolic start time of a schedule.
type StartAt string

// StartAtFirstActivationDateTime starts the schedule when the pipeline is
// activated.
const StartAtFirstActivationDateTime StartAt = "FIRST_ACTIVATION_DATE_TIME"

// FailureAndRerunMode controls how failures cascade through dependencies.
type FailureAndRerunMode string

const (
	FailureAndRerunModeCascade FailureAndRerunMode = "CASCADE"
	FailureAndRerunModeNone    FailureAndRerunMode = "none"
)

// ActionOnTaskFailure is the resource behaviour when a task fails.
type ActionOnTaskFailure string

const (
	ActionOnTaskFailureContinue  ActionOnTaskFailure = "continue"
	ActionOnTaskFailureTerminate ActionOnTaskFailure = "terminate"
)

// ActionOnResourceFailure is the retry behaviour when a resource fails.
type ActionOnResourceFailure string

const (
	ActionOnResourceFailureRetryAll  ActionOnResourceFailure = "retryall"
	ActionOnResourceFailureRetryNone ActionOnResourceFailure = "retrynone"
)

// S3EncryptionType selects server side encryption for S3 data nodes.
type S3EncryptionType string

const (
	S3EncryptionTypeServerSide S3EncryptionType = "SERVER_SIDE_ENCRYPTION"
	S3EncryptionTypeNone       S3EncryptionType = "NONE"
)

// Common IAM role names used by the Default object.
const (
	DefaultRole         = "DataPipelineDefaultRole"
	DefaultResourceRole = "DataPipelineDefaultResourceRole"
)
