package engine

import "errors"

var (
	// ErrDuplicateTransaction a deposit/withdraw id already exists in the ledger.
	ErrDuplicateTransaction = errors.New("transaction id is not unique")

	// ErrNegativeAmount a deposit or withdrawal carries a negative amount.
	ErrNegativeAmount = errors.New("amount is negative")

	// ErrAccountLocked a withdrawal was attempted on a locked account.
	ErrAccountLocked = errors.New("account is locked")

	// ErrInsufficientFunds a withdrawal exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient available funds")

	// ErrTransactionNotFound a dispute/resolve/chargeback references an id
	// that is not a ledgered deposit.
	ErrTransactionNotFound = errors.New("disputed transaction does not exist")

	// ErrClientMismatch the command's client does not own the referenced transaction.
	ErrClientMismatch = errors.New("client does not own transaction")

	// ErrUnknownClient the referenced transaction's client has no account.
	ErrUnknownClient = errors.New("client has no account for the dispute")

	// ErrInsufficientAvailable a dispute would drive available funds negative.
	ErrInsufficientAvailable = errors.New("insufficient available funds to dispute")

	// ErrNotDisputed a resolve/chargeback references a transaction with no open dispute.
	ErrNotDisputed = errors.New("transaction has not been disputed")

	// ErrInsufficientHeld a resolve would drive held funds negative.
	ErrInsufficientHeld = errors.New("insufficient held funds to resolve")
)
