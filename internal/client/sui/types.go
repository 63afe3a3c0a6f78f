package sui

import "encoding/json"

// JSON-RPC method names on the fullnode.
const (
	methodGetOwnedObjects       = "suix_getOwnedObjects"
	methodGetObject             = "sui_getObject"
	methodGetDynamicFields      = "suix_getDynamicFields"
	methodGetDynamicFieldObject = "suix_getDynamicFieldObject"
	methodExecuteTransaction    = "sui_executeTransactionBlock"
)

// RawObject is the untyped payload of an on-chain object as returned by the
// fullnode. Content is left raw: historical objects come back in several
// shapes and decoding them is the decoder package's job.
type RawObject struct {
	ObjectID string          `json:"objectId"`
	Version  string          `json:"version,omitempty"`
	Digest   string          `json:"digest,omitempty"`
	Type     string          `json:"type,omitempty"`
	Owner    json.RawMessage `json:"owner,omitempty"`
	Content  json.RawMessage `json:"content,omitempty"`
	Display  json.RawMessage `json:"display,omitempty"`
}

// ObjectRef is a reference to an owned object returned by an owned-objects
// query.
type ObjectRef struct {
	ObjectID string
	Type     string
	Raw      *RawObject
}

// FieldName identifies a dynamic field on a parent object. The value is kept
// raw: field names are typed on chain and their encoding varies.
type FieldName struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// FieldRef describes one dynamic field of a container object.
type FieldRef struct {
	Name       FieldName `json:"name"`
	Type       string    `json:"type"`
	ObjectType string    `json:"objectType"`
	ObjectID   string    `json:"objectId"`
}

// ExecutionStatus reports whether a submitted transaction executed
// successfully; Error carries the ledger's failure text verbatim.
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ObjectChange describes one object created or mutated by an executed
// transaction.
type ObjectChange struct {
	Type       string `json:"type"`
	ObjectType string `json:"objectType,omitempty"`
	ObjectID   string `json:"objectId,omitempty"`
	Sender     string `json:"sender,omitempty"`
}

// TransactionEffects is the subset of execution effects this client reads.
type TransactionEffects struct {
	Status ExecutionStatus `json:"status"`
}

// ExecuteResult is the outcome of a successfully submitted transaction.
type ExecuteResult struct {
	Digest        string              `json:"digest"`
	Effects       *TransactionEffects `json:"effects,omitempty"`
	ObjectChanges []ObjectChange      `json:"objectChanges,omitempty"`
}

// Succeeded reports whether the transaction executed without a ledger-level
// failure. Missing effects are treated as success: some nodes omit them
// unless requested.
func (r *ExecuteResult) Succeeded() bool {
	if r == nil {
		return false
	}
	if r.Effects == nil {
		return true
	}
	return r.Effects.Status.Status != "failure"
}

// SignedTransaction is a transaction already authorized by the wallet,
// ready for submission.
type SignedTransaction struct {
	TxBytes    string   `json:"txBytes"`
	Signatures []string `json:"signatures"`
}

// ownedObjectsQuery is the filter+options envelope for owned-object queries.
type ownedObjectsQuery struct {
	Filter  *structTypeFilter `json:"filter,omitempty"`
	Options objectDataOptions `json:"options"`
}

type structTypeFilter struct {
	StructType string `json:"StructType"`
}

type objectDataOptions struct {
	ShowContent bool `json:"showContent"`
	ShowDisplay bool `json:"showDisplay,omitempty"`
	ShowType    bool `json:"showType,omitempty"`
	ShowOwner   bool `json:"showOwner,omitempty"`
}

// objectData wraps a single object response; exactly one of Data and Error
// is set.
type objectData struct {
	Data  *RawObject   `json:"data,omitempty"`
	Error *objectError `json:"error,omitempty"`
}

type objectError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
}

// notFound reports whether an object-level error means the object does not
// exist (deleted, pruned or never created) rather than a transport failure.
func (e *objectError) notFound() bool {
	if e == nil {
		return false
	}
	switch e.Code {
	case "notExists", "deleted", "dynamicFieldNotFound":
		return true
	}
	return false
}

type objectsPage struct {
	Data        []objectData `json:"data"`
	HasNextPage bool         `json:"hasNextPage"`
	NextCursor  *string      `json:"nextCursor,omitempty"`
}

type fieldsPage struct {
	Data        []FieldRef `json:"data"`
	HasNextPage bool       `json:"hasNextPage"`
	NextCursor  *string    `json:"nextCursor,omitempty"`
}
