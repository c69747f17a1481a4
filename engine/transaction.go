package engine

// Kind identifies one of the five transaction variants. The set is closed:
// the ingest layer only ever produces these values, and Handle matches on
// all of them.
type Kind uint8

const (
	KindDeposit Kind = iota + 1
	KindWithdraw
	KindDispute
	KindResolve
	KindChargeback
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdraw:
		return "withdraw"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Transaction is a single submitted record. Amount is only meaningful for
// deposits and withdrawals; dispute, resolve and chargeback carry no amount
// of their own and always operate on the referenced deposit's amount.
type Transaction struct {
	TxID     uint64
	ClientID uint16
	Amount   float64
	Kind     Kind

	// disputed tracks an open dispute on a ledgered deposit. It is never
	// populated from input and only the engine flips it.
	disputed bool
}

// Disputed reports whether a ledgered deposit currently has an open dispute.
func (t *Transaction) Disputed() bool { return t.disputed }
