package engine

// ClientAccount is one client's balance sheet. Total is derived from
// Available and Held at read time and never stored.
type ClientAccount struct {
	ClientID  uint16
	Available float64
	Held      float64
	Locked    bool
}

func NewClientAccount(clientID uint16) *ClientAccount {
	return &ClientAccount{ClientID: clientID}
}

// Total returns the sum of available and held funds.
func (a *ClientAccount) Total() float64 {
	return a.Available + a.Held
}

// AccountStore maps a client id to its account. Accounts are created lazily
// on first reference and never removed.
type AccountStore map[uint16]*ClientAccount

// Ledger maps a transaction id to the one submitted deposit or withdrawal
// with that id. Records stay forever so later disputes can find them,
// whether or not the original submission passed domain validation.
type Ledger map[uint64]*Transaction
