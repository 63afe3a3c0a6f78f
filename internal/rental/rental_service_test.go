package rental_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ivline11/nft-rental-dapp/internal/cache"
	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
	"github.com/ivline11/nft-rental-dapp/internal/mocks"
	"github.com/ivline11/nft-rental-dapp/internal/rental"
	"github.com/ivline11/nft-rental-dapp/internal/txbuilder"
)

type rentalFixture struct {
	kioskFixture
	service *rental.RentalService
}

func newRentalFixture(t *testing.T) *rentalFixture {
	chain := mocks.NewMockSuiClientForTest(t)
	signerMock := mocks.NewMockSignerForTest(t)
	cfg := testConfig()
	store := cache.NewTTLStore(time.Minute)
	builder := txbuilder.NewBuilder(cfg)
	kiosks := rental.NewKioskService(chain, signerMock, builder, store, cfg)
	return &rentalFixture{
		kioskFixture: kioskFixture{
			chain:  chain,
			signer: signerMock,
			store:  store,
			cfg:    cfg,
		},
		service: rental.NewRentalService(chain, signerMock, builder, kiosks, store, cfg),
	}
}

func (f *rentalFixture) rentableType() string {
	return f.cfg.RentalTarget("Rentable") + "<" + f.cfg.NFTType() + ">"
}

func listingRef(nftID string, pricePerDay, durationDays uint64, rented bool) sui.ObjectRef {
	start := ""
	if rented {
		start = `,"start_date":"1700000000"`
	}
	content := `{"fields":{` +
		`"price_per_day":"` + jsonUint(pricePerDay) + `",` +
		`"duration":"` + jsonUint(durationDays*86400) + `",` +
		`"kiosk_id":"0xlenderkiosk",` +
		`"object":{"fields":{"id":{"id":"` + nftID + `"},"name":"Item"}}` +
		start + `}}`
	return sui.ObjectRef{
		ObjectID: "0xfield-" + nftID,
		Raw: &sui.RawObject{
			ObjectID: "0xfield-" + nftID,
			Content:  json.RawMessage(content),
		},
	}
}

func jsonUint(v uint64) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func TestRentalService_GetUserNFTs(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a connected wallet", func(t *testing.T) {
		f := newRentalFixture(t)

		nfts, err := f.service.GetUserNFTs(ctx, "")

		assert.Nil(t, nfts)
		assert.Equal(t, rental.CodeUnauthenticated, rental.ErrCode(err))
	})

	t.Run("decodes owned NFTs and caches the result", func(t *testing.T) {
		f := newRentalFixture(t)
		f.chain.EXPECT().GetOwnedObjects(gomock.Any(), testAddr, f.cfg.NFTType()).
			Return([]sui.ObjectRef{
				{
					ObjectID: "0xnft1",
					Raw: &sui.RawObject{
						ObjectID: "0xnft1",
						Type:     "0xpkg::simple_nft::NFT",
						Content:  json.RawMessage(`{"fields":{"name":"Sword"}}`),
					},
				},
			}, nil)

		nfts, err := f.service.GetUserNFTs(ctx, testAddr)
		require.NoError(t, err)
		require.Len(t, nfts, 1)
		assert.Equal(t, "Sword", nfts[0].Name)

		// Second read hits the cache; a re-query would fail the mock.
		again, err := f.service.GetUserNFTs(ctx, testAddr)
		require.NoError(t, err)
		assert.Equal(t, nfts, again)
	})
}

func TestRentalService_GetRentableListings(t *testing.T) {
	ctx := context.Background()

	t.Run("filters rented listings and needs no wallet", func(t *testing.T) {
		f := newRentalFixture(t)
		f.chain.EXPECT().GetOwnedObjects(gomock.Any(), "0x0", f.rentableType()).
			Return([]sui.ObjectRef{
				listingRef("0xavailable", 1000, 2, false),
				listingRef("0xtaken", 500, 1, true),
			}, nil)

		listings, err := f.service.GetRentableListings(ctx)

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "0xavailable", listings[0].NFTID)
		assert.Equal(t, uint64(1000), listings[0].PricePerDay)
		assert.Equal(t, uint64(2), listings[0].DurationDays)
	})
}

func TestRentalService_GetRentedNFTs(t *testing.T) {
	ctx := context.Background()

	rentedName := sui.FieldName{
		Type:  "0xpkg::rentables_ext::Rented",
		Value: json.RawMessage(`{"id":"0xnft"}`),
	}

	t.Run("lists rented entries in the borrower kiosk", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.chain.EXPECT().GetDynamicFields(gomock.Any(), testKiosk).
			Return([]sui.FieldRef{
				{Type: extensionKeyType},
				{Name: rentedName},
			}, nil)
		f.chain.EXPECT().GetDynamicFieldObject(gomock.Any(), testKiosk, rentedName).
			Return(&sui.RawObject{
				ObjectID: "0xfield",
				Content:  json.RawMessage(`{"fields":{"price_per_day":"10","duration":"86400","start_date":"1700000000","object":{"fields":{"id":{"id":"0xnft"},"name":"Borrowed"}}}}`),
			}, nil)

		rented, err := f.service.GetRentedNFTs(ctx, testAddr)

		require.NoError(t, err)
		require.Len(t, rented, 1)
		assert.Equal(t, "0xnft", rented[0].NFTID)
		assert.Equal(t, testKiosk, rented[0].KioskID)
		assert.True(t, rented[0].Rented)
	})

	t.Run("no kiosk yields an empty list", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectNoKiosk()

		rented, err := f.service.GetRentedNFTs(ctx, testAddr)

		require.NoError(t, err)
		assert.Empty(t, rented)
	})
}

func TestRentalService_CreateNFT(t *testing.T) {
	ctx := context.Background()

	t.Run("mints and invalidates the owned view", func(t *testing.T) {
		f := newRentalFixture(t)

		// Prime the cache, then expect a re-query after the mint.
		f.chain.EXPECT().GetOwnedObjects(gomock.Any(), testAddr, f.cfg.NFTType()).
			Return([]sui.ObjectRef{}, nil).Times(2)
		_, err := f.service.GetUserNFTs(ctx, testAddr)
		require.NoError(t, err)

		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
				require.Len(t, tx.Commands, 1)
				assert.Equal(t, "0xpkg::simple_nft::create_nft", tx.Commands[0].MoveCall.Target)
				return &sui.ExecuteResult{Digest: "0xdigest"}, nil
			})

		result, err := f.service.CreateNFT(ctx, testAddr, "Sword", "Sharp")
		require.NoError(t, err)
		assert.Equal(t, rental.StatusMinted, result.Status)

		_, err = f.service.GetUserNFTs(ctx, testAddr)
		require.NoError(t, err)
	})

	t.Run("requires a name", func(t *testing.T) {
		f := newRentalFixture(t)

		result, err := f.service.CreateNFT(ctx, testAddr, "", "desc")

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})
}

func TestRentalService_SetupRenting(t *testing.T) {
	ctx := context.Background()

	t.Run("configures the rental policy", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
				require.Len(t, tx.Commands, 1)
				assert.Equal(t, "0xpkg::rentables_ext::setup_renting", tx.Commands[0].MoveCall.Target)
				return &sui.ExecuteResult{Digest: "0xdigest"}, nil
			})

		result, err := f.service.SetupRenting(ctx, testAddr, "0xpub", 250)

		require.NoError(t, err)
		assert.Equal(t, rental.StatusConfigured, result.Status)
	})

	t.Run("existing policy is a no-op with zero submissions", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, true)

		result, err := f.service.SetupRenting(ctx, testAddr, "0xpub", 250)

		require.NoError(t, err)
		assert.Equal(t, rental.StatusAlreadySetup, result.Status)
		assert.Equal(t, testTP, result.ProtectedTPID)
		assert.Empty(t, result.Digest)
	})

	t.Run("rejects royalty above 100 percent", func(t *testing.T) {
		f := newRentalFixture(t)

		result, err := f.service.SetupRenting(ctx, testAddr, "0xpub", 10001)

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})

	t.Run("requires a publisher credential", func(t *testing.T) {
		f := newRentalFixture(t)

		result, err := f.service.SetupRenting(ctx, testAddr, "", 250)

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})

	t.Run("non-publisher failure is classified", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("transaction failed on chain: CommandArgumentError { arg_idx: 0 }"))

		result, err := f.service.SetupRenting(ctx, testAddr, "0xnotpub", 250)

		assert.Nil(t, result)
		assert.Equal(t, rental.CodeMalformedArgument, rental.ErrCode(err))
	})
}

func TestRentalService_PlaceInKiosk(t *testing.T) {
	ctx := context.Background()

	t.Run("places an owned NFT", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
				require.Len(t, tx.Commands, 1)
				assert.Equal(t, "0x2::kiosk::place", tx.Commands[0].MoveCall.Target)
				return &sui.ExecuteResult{Digest: "0xdigest"}, nil
			})

		result, err := f.service.PlaceInKiosk(ctx, testAddr, "0xnft")

		require.NoError(t, err)
		assert.Equal(t, rental.StatusPlaced, result.Status)
	})

	t.Run("requires a kiosk", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectNoKiosk()

		result, err := f.service.PlaceInKiosk(ctx, testAddr, "0xnft")

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})
}

func TestRentalService_ListForRent(t *testing.T) {
	ctx := context.Background()

	params := rental.ListForRentParams{
		NFTID:        "0xnft",
		DurationDays: 3,
		PricePerDay:  1000,
	}

	t.Run("lists after verifying the policy on chain", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, true)
		f.chain.EXPECT().GetObject(gomock.Any(), testTP).
			Return(&sui.RawObject{ObjectID: testTP}, nil)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
				require.Len(t, tx.Commands, 1)
				call := tx.Commands[0].MoveCall
				assert.Equal(t, "0xpkg::rentables_ext::list", call.Target)
				// Duration arrives in ledger seconds.
				assert.Equal(t, "259200", tx.Inputs[call.Arguments[4].Input].Value)
				return &sui.ExecuteResult{Digest: "0xdigest"}, nil
			})

		result, err := f.service.ListForRent(ctx, testAddr, params)

		require.NoError(t, err)
		assert.Equal(t, rental.StatusListed, result.Status)
	})

	t.Run("requires the extension to be installed", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(false, true)

		result, err := f.service.ListForRent(ctx, testAddr, params)

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})

	t.Run("missing policy object fails before any submission", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, true)
		f.chain.EXPECT().GetObject(gomock.Any(), testTP).Return(nil, nil)

		result, err := f.service.ListForRent(ctx, testAddr, params)

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})

	t.Run("zero duration fails before any submission", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, true)
		f.chain.EXPECT().GetObject(gomock.Any(), testTP).
			Return(&sui.RawObject{ObjectID: testTP}, nil)

		result, err := f.service.ListForRent(ctx, testAddr, rental.ListForRentParams{
			NFTID:        "0xnft",
			DurationDays: 0,
			PricePerDay:  1000,
		})

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})
}

func TestRentalService_Rent(t *testing.T) {
	ctx := context.Background()

	t.Run("pays price per day times duration", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.chain.EXPECT().GetOwnedObjects(gomock.Any(), "0x0", f.rentableType()).
			Return([]sui.ObjectRef{listingRef("0xnft", 1000, 3, false)}, nil)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
				require.Len(t, tx.Commands, 2)
				split := tx.Commands[0].SplitCoins
				require.NotNil(t, split)
				assert.Equal(t, "3000", tx.Inputs[split.Amounts[0].Input].Value)
				return &sui.ExecuteResult{Digest: "0xdigest"}, nil
			})

		result, err := f.service.Rent(ctx, testAddr, rental.RentParams{
			RenterKioskID:  "0xlenderkiosk",
			RentalPolicyID: "0xpolicy",
			NFTID:          "0xnft",
		})

		require.NoError(t, err)
		assert.Equal(t, rental.StatusRented, result.Status)
	})

	t.Run("missing listing is an object-not-found outcome", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.chain.EXPECT().GetOwnedObjects(gomock.Any(), "0x0", f.rentableType()).
			Return([]sui.ObjectRef{}, nil)

		result, err := f.service.Rent(ctx, testAddr, rental.RentParams{
			RenterKioskID:  "0xlenderkiosk",
			RentalPolicyID: "0xpolicy",
			NFTID:          "0xnft",
		})

		assert.Nil(t, result)
		assert.Equal(t, rental.CodeObjectNotFound, rental.ErrCode(err))
	})

	t.Run("missing policy id fails before any submission", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.chain.EXPECT().GetOwnedObjects(gomock.Any(), "0x0", f.rentableType()).
			Return([]sui.ObjectRef{listingRef("0xnft", 1000, 3, false)}, nil)

		result, err := f.service.Rent(ctx, testAddr, rental.RentParams{
			RenterKioskID: "0xlenderkiosk",
			NFTID:         "0xnft",
		})

		assert.Nil(t, result)
		assert.Equal(t, rental.CodePreconditionFailed, rental.ErrCode(err))
	})
}

func TestRentalService_RentThenReturn(t *testing.T) {
	ctx := context.Background()
	f := newRentalFixture(t)
	f.expectDiscovery(true, false)
	f.chain.EXPECT().GetOwnedObjects(gomock.Any(), "0x0", f.rentableType()).
		Return([]sui.ObjectRef{listingRef("0xnft", 1000, 2, false)}, nil)
	f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
		Return(&sui.ExecuteResult{Digest: "0xrent"}, nil)

	rented, err := f.service.Rent(ctx, testAddr, rental.RentParams{
		RenterKioskID:  "0xlenderkiosk",
		RentalPolicyID: "0xpolicy",
		NFTID:          "0xnft",
	})
	require.NoError(t, err)
	assert.Equal(t, rental.StatusRented, rented.Status)

	// The kiosk discovery is still cached; the return performs one more
	// submission and nothing else.
	f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
		Return(&sui.ExecuteResult{Digest: "0xreturn"}, nil)

	returned, err := f.service.ReturnNFT(ctx, testAddr, "0xnft")
	require.NoError(t, err)
	assert.Equal(t, rental.StatusReturned, returned.Status)
	assert.Equal(t, "0xreturn", returned.Digest)
}

func TestRentalService_ReturnNFT(t *testing.T) {
	ctx := context.Background()

	t.Run("returns through borrow and hand-back in one submission", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *txbuilder.Transaction) (*sui.ExecuteResult, error) {
				require.Len(t, tx.Commands, 2)
				assert.Equal(t, "0xpkg::rentables_ext::borrow_val", tx.Commands[0].MoveCall.Target)
				assert.Equal(t, "0xpkg::rentables_ext::return_val", tx.Commands[1].MoveCall.Target)
				return &sui.ExecuteResult{Digest: "0xdigest"}, nil
			})

		result, err := f.service.ReturnNFT(ctx, testAddr, "0xnft")

		require.NoError(t, err)
		assert.Equal(t, rental.StatusReturned, result.Status)
	})

	t.Run("second return classifies as object not found", func(t *testing.T) {
		f := newRentalFixture(t)
		f.expectDiscovery(true, false)
		f.signer.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("transaction failed on chain: dynamic field does not exist, object already consumed"))

		result, err := f.service.ReturnNFT(ctx, testAddr, "0xnft")

		assert.Nil(t, result)
		assert.Equal(t, rental.CodeObjectNotFound, rental.ErrCode(err))
	})
}
