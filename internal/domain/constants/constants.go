package constants

// Audit store providers
const (
	AuditProviderDynamoDB = "dynamodb"
	AuditProviderPostgres = "postgres"
)

// SMS providers
const (
	SMSProviderSNS    = "sns"
	SMSProviderPubSub = "pubsub"
	SMSProviderLocal  = "local"
	SMSProviderNoop   = "noop"
)
