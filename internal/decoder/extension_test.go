package decoder_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
	"github.com/ivline11/nft-rental-dapp/internal/decoder"
)

func TestIsRentablesField(t *testing.T) {
	tests := []struct {
		name  string
		field sui.FieldRef
		want  bool
	}{
		{
			name: "extension marker in field type",
			field: sui.FieldRef{
				Type: "0x2::kiosk_extension::ExtensionKey<0xabc::rentables_ext::Rentables>",
			},
			want: true,
		},
		{
			name: "rentable in object type",
			field: sui.FieldRef{
				ObjectType: "0xabc::rentables_ext::Rentable<0xabc::simple_nft::NFT>",
			},
			want: true,
		},
		{
			name: "marker only in serialized name",
			field: sui.FieldRef{
				Name: sui.FieldName{
					Type:  "0xabc::some_mod::Key",
					Value: json.RawMessage(`{"dummy":"0xabc::rentables_ext::Rentables"}`),
				},
			},
			want: true,
		},
		{
			name: "unrelated dynamic field",
			field: sui.FieldRef{
				Type:       "0x2::dynamic_field::Field<0x2::kiosk::Item, 0x2::sui::SUI>",
				ObjectType: "0x2::coin::Coin<0x2::sui::SUI>",
				Name: sui.FieldName{
					Type:  "0x2::kiosk::Item",
					Value: json.RawMessage(`{"id":"0x1"}`),
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decoder.IsRentablesField(tt.field))
		})
	}
}

func TestHasRentablesExtension(t *testing.T) {
	plain := sui.FieldRef{Type: "0x2::kiosk::Item"}
	ext := sui.FieldRef{Type: "0x2::kiosk_extension::ExtensionKey<0xabc::rentables_ext::Rentables>"}

	assert.False(t, decoder.HasRentablesExtension(nil))
	assert.False(t, decoder.HasRentablesExtension([]sui.FieldRef{plain}))
	assert.True(t, decoder.HasRentablesExtension([]sui.FieldRef{plain, ext}))
}

func TestClassifyExtensionField(t *testing.T) {
	tests := []struct {
		name     string
		field    sui.FieldRef
		wantKind decoder.ExtensionFieldKind
		wantID   string
	}{
		{
			name: "listed entry",
			field: sui.FieldRef{
				Name: sui.FieldName{
					Type:  "0xabc::rentables_ext::Listed",
					Value: json.RawMessage(`{"id":"0xnft"}`),
				},
			},
			wantKind: decoder.ExtensionFieldListed,
			wantID:   "0xnft",
		},
		{
			name: "rented entry",
			field: sui.FieldRef{
				Name: sui.FieldName{
					Type:  "0xabc::rentables_ext::Rented",
					Value: json.RawMessage(`"0xnft"`),
				},
			},
			wantKind: decoder.ExtensionFieldRented,
			wantID:   "0xnft",
		},
		{
			name: "bookkeeping entry",
			field: sui.FieldRef{
				Name: sui.FieldName{
					Type:  "0x2::kiosk_extension::ExtensionKey<0xabc::rentables_ext::Rentables>",
					Value: json.RawMessage(`false`),
				},
			},
			wantKind: decoder.ExtensionFieldOther,
			wantID:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id := decoder.ClassifyExtensionField(tt.field)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
