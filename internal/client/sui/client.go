package sui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	httpclient "github.com/ivline11/nft-rental-dapp/internal/client/http"
	"github.com/ivline11/nft-rental-dapp/internal/logger"
)

// SuiClient talks JSON-RPC to a fullnode. Reads go through a retrying
// transport; transaction submission goes through a separate transport with
// retries disabled, because a submission is not idempotent.
type SuiClient struct {
	rpc  *httpclient.HTTPClient
	exec *httpclient.HTTPClient
}

// NewSuiClient creates a client for the fullnode at rpcURL.
func NewSuiClient(rpcURL string) *SuiClient {
	return &SuiClient{
		rpc: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(rpcURL),
			httpclient.WithRetryConfig(httpclient.DefaultRetryConfig()),
		),
		exec: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(rpcURL),
		),
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// RPCError is a JSON-RPC level failure returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

func (c *SuiClient) call(ctx context.Context, transport *httpclient.HTTPClient, method string, params []interface{}, result interface{}) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}

	resp, err := transport.Post(ctx, "", req)
	if err != nil {
		return errors.Wrapf(err, "calling %s", method)
	}

	var envelope rpcResponse
	if err := transport.ProcessJSONResponse(resp, &envelope); err != nil {
		return errors.Wrapf(err, "decoding %s response", method)
	}

	if envelope.Error != nil {
		logger.Warn("RPC call failed",
			zap.String("method", method),
			zap.Int("code", envelope.Error.Code),
			zap.String("message", envelope.Error.Message))
		return envelope.Error
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return errors.Wrapf(err, "unmarshaling %s result", method)
		}
	}
	return nil
}

// GetOwnedObjects returns every object of the given struct type owned by the
// address. An empty result is not an error. structType may be empty to list
// all owned objects.
func (c *SuiClient) GetOwnedObjects(ctx context.Context, owner string, structType string) ([]ObjectRef, error) {
	query := ownedObjectsQuery{
		Options: objectDataOptions{ShowContent: true, ShowDisplay: true, ShowType: true},
	}
	if structType != "" {
		query.Filter = &structTypeFilter{StructType: structType}
	}

	var refs []ObjectRef
	var cursor *string
	for {
		var page objectsPage
		params := []interface{}{owner, query, cursor, nil}
		if err := c.call(ctx, c.rpc, methodGetOwnedObjects, params, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Data {
			if item.Data == nil {
				continue
			}
			refs = append(refs, ObjectRef{
				ObjectID: item.Data.ObjectID,
				Type:     item.Data.Type,
				Raw:      item.Data,
			})
		}

		if !page.HasNextPage || page.NextCursor == nil {
			return refs, nil
		}
		cursor = page.NextCursor
	}
}

// GetObject fetches one object by id. A missing, deleted or pruned object
// returns (nil, nil): absence is an expected outcome, not a failure.
func (c *SuiClient) GetObject(ctx context.Context, objectID string) (*RawObject, error) {
	options := objectDataOptions{ShowContent: true, ShowDisplay: true, ShowType: true, ShowOwner: true}

	var item objectData
	if err := c.call(ctx, c.rpc, methodGetObject, []interface{}{objectID, options}, &item); err != nil {
		return nil, err
	}
	if item.Error != nil {
		if item.Error.notFound() {
			return nil, nil
		}
		return nil, fmt.Errorf("object %s: %s", objectID, item.Error.Code)
	}
	return item.Data, nil
}

// GetDynamicFields lists the dynamic fields of a container object.
func (c *SuiClient) GetDynamicFields(ctx context.Context, parentID string) ([]FieldRef, error) {
	var fields []FieldRef
	var cursor *string
	for {
		var page fieldsPage
		params := []interface{}{parentID, cursor, nil}
		if err := c.call(ctx, c.rpc, methodGetDynamicFields, params, &page); err != nil {
			return nil, err
		}
		fields = append(fields, page.Data...)

		if !page.HasNextPage || page.NextCursor == nil {
			return fields, nil
		}
		cursor = page.NextCursor
	}
}

// GetDynamicFieldObject fetches one dynamic field of a container by name.
// A field listed moments ago may have been consumed in the meantime; that
// race resolves to (nil, nil), never an error.
func (c *SuiClient) GetDynamicFieldObject(ctx context.Context, parentID string, name FieldName) (*RawObject, error) {
	var item objectData
	if err := c.call(ctx, c.rpc, methodGetDynamicFieldObject, []interface{}{parentID, name}, &item); err != nil {
		return nil, err
	}
	if item.Error != nil {
		if item.Error.notFound() {
			return nil, nil
		}
		return nil, fmt.Errorf("dynamic field of %s: %s", parentID, item.Error.Code)
	}
	return item.Data, nil
}

// ExecuteTransaction submits a signed transaction and waits for effects.
// Submissions are never retried; a transport failure here is surfaced as-is
// and the caller decides whether to re-trigger the whole operation.
func (c *SuiClient) ExecuteTransaction(ctx context.Context, signed *SignedTransaction) (*ExecuteResult, error) {
	options := map[string]bool{
		"showEffects":       true,
		"showObjectChanges": true,
	}
	params := []interface{}{signed.TxBytes, signed.Signatures, options, "WaitForLocalExecution"}

	var result ExecuteResult
	if err := c.call(ctx, c.exec, methodExecuteTransaction, params, &result); err != nil {
		return nil, err
	}

	if !result.Succeeded() {
		return nil, fmt.Errorf("transaction %s failed: %s", result.Digest, result.Effects.Status.Error)
	}

	logger.Info("Transaction executed",
		zap.String("digest", result.Digest))
	return &result, nil
}
