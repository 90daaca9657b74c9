package observability

// Metric name prefixes
const (
	MetricPrefix = "megabot"
)

// Metric names
const (
	// Command metrics
	AdminCommandsTotal   = MetricPrefix + ".admin.commands_total"
	AdminCommandDuration = MetricPrefix + ".admin.command_duration"

	// Ledger metrics
	BalanceAdjustmentsTotal  = MetricPrefix + ".ledger.balance_adjustments_total"
	InventoryOperationsTotal = MetricPrefix + ".ledger.inventory_operations_total"

	// NATS metrics
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"
)

// Label keys
const (
	LabelCommand   = "command"
	LabelOutcome   = "outcome"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelEventType = "event_type"
)

// Command outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeDenied   = "denied"
	OutcomeError    = "error"
)

// Inventory operations
const (
	InventoryOperationGive   = "give"
	InventoryOperationRemove = "remove"
	InventoryOperationClear  = "clear"
)
