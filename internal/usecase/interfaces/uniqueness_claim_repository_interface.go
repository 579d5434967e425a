package interfaces

import "context"

// IUniquenessClaimRepository guards composite uniqueness rules through claim
// records keyed by a normalized scope string. ClaimTx items fail the whole
// transaction when the scope is already held, which deterministically picks a
// single winner among racing inserts.
type IUniquenessClaimRepository interface {
	// Exists pre-checks a scope so callers can fail fast with a precise
	// conflict message before building the transaction.
	Exists(ctx context.Context, scope string) (bool, error)
	ClaimTx(scope string) TxItem
	ReleaseTx(scope string) TxItem
}
