// Package engine applies deposits, withdrawals, disputes, resolves and
// chargebacks to per-client account state, one transaction at a time and in
// submission order.
package engine

import "fmt"

// Engine owns the account store and the ledger for one processing run.
// It is not safe for concurrent use; callers feed it transactions strictly
// one at a time. Independent engines never share state, so multiple ledgers
// can coexist in one process.
type Engine struct {
	accounts AccountStore
	ledger   Ledger
}

func New() *Engine {
	return &Engine{
		accounts: make(AccountStore),
		ledger:   make(Ledger),
	}
}

// Accounts returns the engine's live account store. The caller must not
// mutate it; it is exposed for reporting once the run is finished.
func (e *Engine) Accounts() AccountStore { return e.accounts }

// Ledger returns the engine's live ledger of submitted deposits and
// withdrawals.
func (e *Engine) Ledger() Ledger { return e.ledger }

func (e *Engine) getOrCreateAccount(clientID uint16) *ClientAccount {
	acct, ok := e.accounts[clientID]
	if !ok {
		acct = NewClientAccount(clientID)
		e.accounts[clientID] = acct
	}
	return acct
}

// Handle applies one transaction. Processing runs in two stages: first the
// record is ledgered (deposits and withdrawals only, rejecting duplicate
// ids), then the domain rules for its variant are applied. The ledger write
// deliberately happens before validation: the ledger records submitted
// transactions, not just successful ones, so a later dispute can still find
// a rejected withdrawal by id.
//
// A returned error is scoped to this one call. Apart from the defensive
// account creation on ErrUnknownClient, a failed call leaves all balances
// and flags untouched.
func (e *Engine) Handle(tx Transaction) error {
	switch tx.Kind {
	case KindDeposit, KindWithdraw:
		if _, ok := e.ledger[tx.TxID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateTransaction, tx.TxID)
		}
		rec := tx
		e.ledger[tx.TxID] = &rec
	default:
		// Disputes, resolves and chargebacks are transient commands and
		// are never ledgered. They also have no id of their own to key on.
	}

	switch tx.Kind {
	case KindDeposit:
		acct := e.getOrCreateAccount(tx.ClientID)
		if tx.Amount < 0 {
			return fmt.Errorf("%w: cannot deposit %v", ErrNegativeAmount, tx.Amount)
		}
		acct.Available += tx.Amount
		return nil

	case KindWithdraw:
		acct := e.getOrCreateAccount(tx.ClientID)
		if tx.Amount < 0 {
			return fmt.Errorf("%w: cannot withdraw %v", ErrNegativeAmount, tx.Amount)
		}
		if acct.Locked {
			return fmt.Errorf("%w: client %d", ErrAccountLocked, tx.ClientID)
		}
		if acct.Available < tx.Amount {
			return fmt.Errorf("%w: client %d", ErrInsufficientFunds, tx.ClientID)
		}
		acct.Available -= tx.Amount
		return nil

	case KindDispute:
		return e.dispute(tx)

	case KindResolve, KindChargeback:
		return e.settle(tx)

	default:
		return fmt.Errorf("unhandled transaction kind %d", tx.Kind)
	}
}

// dispute freezes the referenced deposit's amount. Only deposits can be
// disputed; a withdrawal-shaped ledger entry fails the lookup the same way
// a missing id does.
func (e *Engine) dispute(tx Transaction) error {
	rec, ok := e.ledger[tx.TxID]
	if !ok || rec.Kind != KindDeposit {
		return fmt.Errorf("%w: %d", ErrTransactionNotFound, tx.TxID)
	}

	if tx.ClientID != rec.ClientID {
		return fmt.Errorf("%w: client %d does not have transaction %d",
			ErrClientMismatch, tx.ClientID, tx.TxID)
	}

	acct, ok := e.accounts[rec.ClientID]
	if !ok {
		// A ledgered deposit without an account is inconsistent state.
		// Create the account anyway so later transactions for this client
		// do not keep tripping over its absence, then still fail the call.
		e.getOrCreateAccount(tx.ClientID)
		return fmt.Errorf("%w: client %d", ErrUnknownClient, tx.ClientID)
	}

	if acct.Available < rec.Amount {
		return fmt.Errorf("%w: client %d", ErrInsufficientAvailable, rec.ClientID)
	}

	acct.Held += rec.Amount
	acct.Available -= rec.Amount
	rec.disputed = true
	return nil
}

// settle handles resolve and chargeback, which share the lookup path and
// the open-dispute requirement and differ only in how they release the held
// amount. Resolve refuses to drive held funds negative; chargeback does not
// check, which mirrors the source system exactly.
func (e *Engine) settle(tx Transaction) error {
	rec, ok := e.ledger[tx.TxID]
	if !ok || rec.Kind != KindDeposit {
		return fmt.Errorf("%w: %d", ErrTransactionNotFound, tx.TxID)
	}

	if rec.ClientID != tx.ClientID {
		return fmt.Errorf("%w: client %d does not have transaction %d",
			ErrClientMismatch, tx.ClientID, tx.TxID)
	}

	acct, ok := e.accounts[rec.ClientID]
	if !ok {
		e.getOrCreateAccount(tx.ClientID)
		return fmt.Errorf("%w: client %d", ErrUnknownClient, tx.ClientID)
	}

	if !rec.disputed {
		return fmt.Errorf("%w: %d", ErrNotDisputed, tx.TxID)
	}

	if tx.Kind == KindResolve {
		if acct.Held < rec.Amount {
			return fmt.Errorf("%w: client %d", ErrInsufficientHeld, rec.ClientID)
		}
		acct.Available += rec.Amount
		acct.Held -= rec.Amount
		rec.disputed = false
		return nil
	}

	acct.Held -= rec.Amount
	acct.Locked = true
	rec.disputed = false
	return nil
}
