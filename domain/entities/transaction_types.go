package entities

// TransactionType represents the reason for a balance change
type TransactionType string

const (
	TransactionTypeInitial     TransactionType = "initial"
	TransactionTypeAdminSet    TransactionType = "admin_set"
	TransactionTypeAdminAdd    TransactionType = "admin_add"
	TransactionTypeAdminRemove TransactionType = "admin_remove"
	TransactionTypeAdminReset  TransactionType = "admin_reset"
	TransactionTypeAdjustment  TransactionType = "adjustment"
)

// IsAdminAction returns true if the transaction was initiated through an admin command
func (t TransactionType) IsAdminAction() bool {
	switch t {
	case TransactionTypeAdminSet, TransactionTypeAdminAdd, TransactionTypeAdminRemove, TransactionTypeAdminReset:
		return true
	}
	return false
}
