package decoder

import (
	"encoding/json"
	"strings"

	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
)

// Dynamic field name markers of the rental extension's storage namespace.
const (
	listedMarker = "Listed"
	rentedMarker = "Rented"
)

// IsRentablesField reports whether a dynamic field belongs to the rental
// extension's namespace. Field names are typed values; the scan matches on
// the serialized name and the field's object type, mirroring how the
// namespace is discovered on chain.
func IsRentablesField(field sui.FieldRef) bool {
	if strings.Contains(strings.ToLower(field.Type), "rent") {
		return true
	}
	if strings.Contains(strings.ToLower(field.ObjectType), "rentable") {
		return true
	}
	nameJSON, err := json.Marshal(field.Name)
	if err != nil {
		return false
	}
	name := strings.ToLower(string(nameJSON))
	return strings.Contains(name, "rentables") || strings.Contains(name, "rent")
}

// HasRentablesExtension reports whether any of a kiosk's dynamic fields
// marks the rental extension as installed.
func HasRentablesExtension(fields []sui.FieldRef) bool {
	for _, field := range fields {
		if IsRentablesField(field) {
			return true
		}
	}
	return false
}

// ExtensionFieldKind classifies one extension storage sub-field.
type ExtensionFieldKind int

const (
	ExtensionFieldOther ExtensionFieldKind = iota
	ExtensionFieldListed
	ExtensionFieldRented
)

// ClassifyExtensionField reports whether a sub-field is a listed or rented
// entry, and the asset id it refers to when one is encoded in the field
// name.
func ClassifyExtensionField(field sui.FieldRef) (ExtensionFieldKind, string) {
	kind := ExtensionFieldOther
	switch {
	case strings.Contains(field.Name.Type, listedMarker):
		kind = ExtensionFieldListed
	case strings.Contains(field.Name.Type, rentedMarker):
		kind = ExtensionFieldRented
	default:
		return ExtensionFieldOther, ""
	}
	return kind, unwrapID(field.Name.Value, 0)
}
