package sui

import "context"

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_sui_client.go -package=mocks

// SuiClientInterface defines the read and submission operations the rest of
// the service needs from a fullnode.
type SuiClientInterface interface {
	GetOwnedObjects(ctx context.Context, owner string, structType string) ([]ObjectRef, error)
	GetObject(ctx context.Context, objectID string) (*RawObject, error)
	GetDynamicFields(ctx context.Context, parentID string) ([]FieldRef, error)
	GetDynamicFieldObject(ctx context.Context, parentID string, name FieldName) (*RawObject, error)
	ExecuteTransaction(ctx context.Context, signed *SignedTransaction) (*ExecuteResult, error)
}

// Ensure SuiClient implements the interface
var _ SuiClientInterface = (*SuiClient)(nil)
