package signer

import (
	"context"

	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
	"github.com/ivline11/nft-rental-dapp/internal/txbuilder"
)

//go:generate mockgen -source=signer.go -destination=../mocks/mock_signer.go -package=mocks

// Signer hands a built submission to the external wallet for authorization
// and returns the executed result or a rejection. An explicit user decline
// in the wallet is a normal failure outcome, not a cancellation path, and
// no call through this interface is ever retried.
type Signer interface {
	SignAndExecute(ctx context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error)
}
