// Package report renders the final account store as CSV.
package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/matheusgomes28/transactions/engine"
)

// Options controls report formatting.
type Options struct {
	// Precision is the number of digits after the decimal point for the
	// amount columns. -1 uses the shortest representation that round-trips.
	Precision int
}

// Write emits one record per known client with columns
// client,available,held,total,locked. The total column is computed at write
// time from available and held. The engine leaves client order unspecified;
// rows are sorted by client id here so output is stable across runs.
func Write(w io.Writer, accounts engine.AccountStore, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	ids := make([]uint16, 0, len(accounts))
	for id := range accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		acct := accounts[id]
		err := cw.Write([]string{
			strconv.FormatUint(uint64(acct.ClientID), 10),
			f(acct.Available, opts.Precision),
			f(acct.Held, opts.Precision),
			f(acct.Total(), opts.Precision),
			strconv.FormatBool(acct.Locked),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64, prec int) string {
	return strconv.FormatFloat(x, 'f', prec, 64)
}
