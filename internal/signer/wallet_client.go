package signer

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	httpclient "github.com/ivline11/nft-rental-dapp/internal/client/http"
	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
	"github.com/ivline11/nft-rental-dapp/internal/logger"
	"github.com/ivline11/nft-rental-dapp/internal/txbuilder"
)

// WalletClient is the default Signer: it posts the serialized transaction
// to a wallet bridge, waits for the user's authorization, and submits the
// signed bytes to the chain. Signing can take as long as the user takes to
// respond, so the transport timeout is generous and there are no retries.
type WalletClient struct {
	bridge *httpclient.HTTPClient
	chain  sui.SuiClientInterface
}

// NewWalletClient creates a Signer backed by the wallet bridge at bridgeURL.
func NewWalletClient(bridgeURL string, chain sui.SuiClientInterface) *WalletClient {
	return &WalletClient{
		bridge: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(bridgeURL),
			httpclient.WithTimeout(5*time.Minute),
		),
		chain: chain,
	}
}

// Ensure WalletClient implements the interface
var _ Signer = (*WalletClient)(nil)

type signResponse struct {
	TxBytes    string   `json:"txBytes"`
	Signatures []string `json:"signatures"`
	Error      string   `json:"error,omitempty"`
}

// SignAndExecute sends the transaction to the wallet for signing and
// submits the result. A wallet-side rejection (including the user declining
// the prompt) surfaces as an error carrying the wallet's message verbatim,
// so the orchestrator can classify it.
func (w *WalletClient) SignAndExecute(ctx context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
	logger.Debug("Requesting wallet signature", zap.String("tx", spew.Sdump(tx)))

	resp, err := w.bridge.Post(ctx, "/v1/sign", tx)
	if err != nil {
		if httpErr, ok := errors.Cause(err).(*httpclient.HTTPError); ok && httpErr.Body != "" {
			return nil, errors.Errorf("wallet rejected transaction: %s", httpErr.Body)
		}
		return nil, errors.Wrap(err, "requesting wallet signature")
	}

	var signed signResponse
	if err := w.bridge.ProcessJSONResponse(resp, &signed); err != nil {
		if httpErr, ok := err.(*httpclient.HTTPError); ok && httpErr.Body != "" {
			return nil, errors.Errorf("wallet rejected transaction: %s", httpErr.Body)
		}
		return nil, errors.Wrap(err, "decoding wallet response")
	}
	if signed.Error != "" {
		return nil, errors.Errorf("wallet rejected transaction: %s", signed.Error)
	}

	result, err := w.chain.ExecuteTransaction(ctx, &sui.SignedTransaction{
		TxBytes:    signed.TxBytes,
		Signatures: signed.Signatures,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction signed and executed",
		zap.String("digest", result.Digest),
		zap.String("sender", tx.Sender))
	return result, nil
}
