package decoder

import (
	"encoding/json"
	"strings"

	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
)

// Classify buckets an object by substring matching on its fully qualified
// type string. Ledger storage is dynamically addressed and type strings
// carry environment-specific package ids, so matching on the module::struct
// suffix is the only stable signal.
func Classify(typeStr string) ObjectKind {
	switch {
	case typeStr == "":
		return KindUnknown
	case strings.Contains(typeStr, "::kiosk::KioskOwnerCap"):
		return KindKioskOwnerCap
	case strings.Contains(typeStr, "::kiosk::Kiosk"):
		return KindKiosk
	case strings.Contains(typeStr, "::ProtectedTP"):
		return KindProtectedTP
	case strings.Contains(typeStr, "::RentalPolicy"):
		return KindRentalPolicy
	case strings.Contains(typeStr, "::Rentable<"):
		return KindListing
	case strings.Contains(typeStr, "::NFT"):
		return KindNFT
	default:
		return KindUnknown
	}
}

// DecodeNFT maps a raw object to an NFT record. Decoding is total: a nil or
// malformed payload yields a record with placeholder values, never an
// error. Partial legacy objects must not crash their caller.
func DecodeNFT(raw *sui.RawObject) *NFT {
	nft := &NFT{
		Name: UnknownName,
	}
	if raw == nil {
		return nft
	}
	nft.ID = raw.ObjectID
	nft.Type = raw.Type

	fields := normalizeFields(raw.Content)
	nft.Name = fields.str("name", UnknownName)
	nft.Description = fields.str("description", "")
	nft.URL = fields.str("url", "")

	// Display metadata wins over raw fields when present.
	if len(raw.Display) > 0 {
		var display struct {
			Data map[string]string `json:"data"`
		}
		if err := json.Unmarshal(raw.Display, &display); err == nil && display.Data != nil {
			if name, ok := display.Data["name"]; ok && name != "" {
				nft.Name = name
			}
			if desc, ok := display.Data["description"]; ok && desc != "" {
				nft.Description = desc
			}
		}
	}
	return nft
}

// DecodeKiosk maps a raw object to a Kiosk record.
func DecodeKiosk(raw *sui.RawObject) *Kiosk {
	kiosk := &Kiosk{}
	if raw == nil {
		return kiosk
	}
	kiosk.ID = raw.ObjectID

	fields := normalizeFields(raw.Content)
	kiosk.Owner = fields.str("owner", "")
	kiosk.ItemCount = fields.uint("item_count")
	kiosk.Profits = fields.uint("profits")
	return kiosk
}

// DecodeOwnerCap maps a raw object to a KioskOwnerCap record.
func DecodeOwnerCap(raw *sui.RawObject) *KioskOwnerCap {
	cap := &KioskOwnerCap{}
	if raw == nil {
		return cap
	}
	cap.ID = raw.ObjectID

	fields := normalizeFields(raw.Content)
	cap.KioskID = fields.id("for")
	if cap.KioskID == "" {
		cap.KioskID = fields.id("kiosk_id")
	}
	return cap
}

// DecodeProtectedTP maps a raw object to a ProtectedTP record.
func DecodeProtectedTP(raw *sui.RawObject) *ProtectedTP {
	tp := &ProtectedTP{}
	if raw == nil {
		return tp
	}
	tp.ID = raw.ObjectID
	tp.Type = raw.Type
	return tp
}

// DecodeRentalPolicy maps a raw object to a RentalPolicy record.
func DecodeRentalPolicy(raw *sui.RawObject) *RentalPolicy {
	policy := &RentalPolicy{}
	if raw == nil {
		return policy
	}
	policy.ID = raw.ObjectID

	fields := normalizeFields(raw.Content)
	policy.RoyaltyBasisPoints = fields.uint("amount_bp")
	if policy.RoyaltyBasisPoints == 0 {
		policy.RoyaltyBasisPoints = fields.uint("royalty_bp")
	}
	return policy
}

// SecondsPerDay converts between the API's whole-day durations and the
// ledger's native seconds.
const SecondsPerDay = 86400

// DecodeListing maps a raw rentable object (a kiosk extension sub-field) to
// a Listing record. The wrapped asset's metadata is pulled from the nested
// object field when present.
func DecodeListing(raw *sui.RawObject) *Listing {
	listing := &Listing{
		Name: UnknownName,
	}
	if raw == nil {
		return listing
	}

	fields := normalizeFields(raw.Content)

	// The rentable wrapper may itself be stored under a dynamic field
	// envelope with name/value; descend into "value" when the listing
	// fields are not at the top level.
	if _, ok := fields.values["price_per_day"]; !ok {
		if inner := fields.nested("value"); inner.shape != shapeMissing {
			fields = inner
		}
	}

	listing.PricePerDay = fields.uint("price_per_day")
	listing.DurationSeconds = fields.uint("duration")
	listing.DurationDays = listing.DurationSeconds / SecondsPerDay
	listing.KioskID = fields.id("kiosk_id")
	if start, ok := fields.optUint("start_date"); ok {
		listing.StartDate = start
		listing.Rented = true
	}

	wrapped := fields.nested("object")
	listing.NFTID = wrapped.id("id")
	listing.Name = wrapped.str("name", UnknownName)
	listing.Description = wrapped.str("description", "")

	if listing.NFTID == "" {
		listing.NFTID = fields.id("object_id")
	}
	if listing.NFTID == "" {
		listing.NFTID = raw.ObjectID
	}
	return listing
}
