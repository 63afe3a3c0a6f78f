package rental

// KioskData is the per-account discovery result: the first kiosk and owner
// cap found are authoritative for this client. The contained-asset set is
// never part of this record; it is re-derived from the ledger on demand.
type KioskData struct {
	KioskID         string `json:"kioskId"`
	KioskCapID      string `json:"kioskCapId"`
	ProtectedTPID   string `json:"protectedTpId,omitempty"`
	HasRentablesExt bool   `json:"hasRentablesExt"`
}

// Mutation statuses. The already_* values are successful no-op outcomes,
// not failures; callers branch on the status instead of an error.
const (
	StatusCreated          = "created"
	StatusAlreadyCreated   = "already_created"
	StatusInstalled        = "installed"
	StatusAlreadyInstalled = "already_installed"
	StatusConfigured       = "configured"
	StatusAlreadySetup     = "already_setup"
	StatusMinted           = "minted"
	StatusPlaced           = "placed"
	StatusListed           = "listed"
	StatusRented           = "rented"
	StatusReturned         = "returned"
	StatusRemoved          = "removed"
	StatusExtensionRemoved = "extension_removed"
)

// MutationResult reports the outcome of one mutating operation. Digest is
// empty for idempotent no-ops that submitted nothing.
type MutationResult struct {
	Status string `json:"status"`
	Digest string `json:"digest,omitempty"`
}

// SetupResult reports the outcome of policy configuration, carrying the
// policy object when it already existed.
type SetupResult struct {
	Status        string `json:"status"`
	ProtectedTPID string `json:"protectedTpId,omitempty"`
	Digest        string `json:"digest,omitempty"`
}

// ListForRentParams are the orchestrator-level listing arguments. Duration
// is whole days at this boundary.
type ListForRentParams struct {
	NFTID        string `json:"nftId"`
	DurationDays uint64 `json:"durationDays"`
	PricePerDay  uint64 `json:"pricePerDay"`
}

// RentParams are the orchestrator-level rent arguments. The borrower's
// kiosk is discovered from the caller's address; the total price is
// derived from the listing.
type RentParams struct {
	RenterKioskID  string `json:"renterKioskId"`
	RentalPolicyID string `json:"rentalPolicyId"`
	NFTID          string `json:"nftId"`
}
