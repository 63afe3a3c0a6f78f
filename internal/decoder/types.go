package decoder

// Typed records decoded from raw chain objects. Every field is best-effort:
// a record decoded from a partial or legacy payload carries placeholder
// values instead of failing.

// NFT is a unique owned digital item.
type NFT struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Owner       string `json:"owner,omitempty"`
}

// Kiosk is a per-account shared container for assets.
type Kiosk struct {
	ID        string `json:"id"`
	Owner     string `json:"owner,omitempty"`
	ItemCount uint64 `json:"itemCount"`
	Profits   uint64 `json:"profits"`
}

// KioskOwnerCap is the non-transferable credential proving control over a
// specific kiosk.
type KioskOwnerCap struct {
	ID      string `json:"id"`
	KioskID string `json:"kioskId"`
}

// ProtectedTP is the per-NFT-type transfer policy wrapper created by
// setup_renting. Possessing its id authorizes listing.
type ProtectedTP struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// RentalPolicy carries the royalty rate for a rented NFT type, in basis
// points (10000 bp = 100%).
type RentalPolicy struct {
	ID                 string `json:"id"`
	RoyaltyBasisPoints uint64 `json:"royaltyBasisPoints"`
}

// Listing is an asset sitting in a kiosk's rental extension storage,
// offered for timed rental. DurationSeconds is the ledger-native unit;
// DurationDays is derived for the API surface.
type Listing struct {
	NFTID           string `json:"nftId"`
	KioskID         string `json:"kioskId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PricePerDay     uint64 `json:"pricePerDay"`
	DurationSeconds uint64 `json:"durationSeconds"`
	DurationDays    uint64 `json:"durationDays"`
	StartDate       uint64 `json:"startDate,omitempty"`
	Rented          bool   `json:"rented"`
}

// ObjectKind classifies a raw object by its fully qualified type string.
type ObjectKind int

const (
	KindUnknown ObjectKind = iota
	KindNFT
	KindKiosk
	KindKioskOwnerCap
	KindProtectedTP
	KindRentalPolicy
	KindListing
)

func (k ObjectKind) String() string {
	switch k {
	case KindNFT:
		return "nft"
	case KindKiosk:
		return "kiosk"
	case KindKioskOwnerCap:
		return "kioskOwnerCap"
	case KindProtectedTP:
		return "protectedTP"
	case KindRentalPolicy:
		return "rentalPolicy"
	case KindListing:
		return "listing"
	default:
		return "unknown"
	}
}

// Placeholder values for payloads that do not carry the expected fields.
const (
	UnknownName = "Unknown NFT"
)
