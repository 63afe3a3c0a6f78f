package rental

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ivline11/nft-rental-dapp/internal/cache"
	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
	"github.com/ivline11/nft-rental-dapp/internal/config"
	"github.com/ivline11/nft-rental-dapp/internal/decoder"
	"github.com/ivline11/nft-rental-dapp/internal/logger"
	"github.com/ivline11/nft-rental-dapp/internal/signer"
	"github.com/ivline11/nft-rental-dapp/internal/txbuilder"
)

// Listings of shared rentable objects are addressed under the zero owner.
const sharedOwner = "0x0"

// Royalty rates are basis points, capped at 100%.
const maxRoyaltyBasisPoints = 10000

// RentalService orchestrates the per-asset lifecycle: minting, placing,
// listing, renting and returning. It composes the chain reader, the
// decoder, the transaction builder and the signing gateway, and never
// retries a failed operation on its own.
type RentalService struct {
	chain   sui.SuiClientInterface
	signer  signer.Signer
	builder *txbuilder.Builder
	kiosks  *KioskService
	store   cache.Store
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRentalService creates a new rental service.
func NewRentalService(chain sui.SuiClientInterface, signerClient signer.Signer, builder *txbuilder.Builder, kiosks *KioskService, store cache.Store, cfg *config.Config) *RentalService {
	return &RentalService{
		chain:   chain,
		signer:  signerClient,
		builder: builder,
		kiosks:  kiosks,
		store:   store,
		cfg:     cfg,
		logger:  logger.Log,
	}
}

// GetUserNFTs lists the NFTs owned directly by the address (not the ones
// already placed in a kiosk).
func (s *RentalService) GetUserNFTs(ctx context.Context, address string) ([]*decoder.NFT, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	if cached, ok := s.store.Get(cache.UserNFTsKey(address)); ok {
		if nfts, ok := cached.([]*decoder.NFT); ok {
			return nfts, nil
		}
	}

	refs, err := s.chain.GetOwnedObjects(ctx, address, s.cfg.NFTType())
	if err != nil {
		return nil, fmt.Errorf("failed to query user NFTs: %w", err)
	}

	nfts := make([]*decoder.NFT, 0, len(refs))
	for _, ref := range refs {
		nfts = append(nfts, decoder.DecodeNFT(ref.Raw))
	}

	s.store.Set(cache.UserNFTsKey(address), nfts)
	return nfts, nil
}

// GetRentableListings returns the currently rentable assets across all
// kiosks. This read needs no connected wallet; its freshness window is the
// cache TTL.
func (s *RentalService) GetRentableListings(ctx context.Context) ([]*decoder.Listing, error) {
	if cached, ok := s.store.Get(cache.RentablesKey); ok {
		if listings, ok := cached.([]*decoder.Listing); ok {
			return listings, nil
		}
	}

	rentableType := fmt.Sprintf("%s<%s>", s.cfg.RentalTarget("Rentable"), s.cfg.NFTType())
	refs, err := s.chain.GetOwnedObjects(ctx, sharedOwner, rentableType)
	if err != nil {
		return nil, fmt.Errorf("failed to query rentable listings: %w", err)
	}

	listings := make([]*decoder.Listing, 0, len(refs))
	for _, ref := range refs {
		listing := decoder.DecodeListing(ref.Raw)
		if listing.Rented {
			continue
		}
		listings = append(listings, listing)
	}

	s.store.Set(cache.RentablesKey, listings)
	return listings, nil
}

// GetRentedNFTs returns the borrower's view: assets currently rented into
// the caller's kiosk, derived from the extension storage's rented entries.
func (s *RentalService) GetRentedNFTs(ctx context.Context, address string) ([]*decoder.Listing, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	data, err := s.kiosks.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []*decoder.Listing{}, nil
	}

	if cached, ok := s.store.Get(cache.RentedKey(address)); ok {
		if listings, ok := cached.([]*decoder.Listing); ok {
			return listings, nil
		}
	}

	fields, err := s.chain.GetDynamicFields(ctx, data.KioskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list extension storage: %w", err)
	}

	rented := make([]*decoder.Listing, 0)
	for _, field := range fields {
		kind, _ := decoder.ClassifyExtensionField(field)
		if kind != decoder.ExtensionFieldRented {
			continue
		}
		raw, err := s.chain.GetDynamicFieldObject(ctx, data.KioskID, field.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch rented entry: %w", err)
		}
		if raw == nil {
			continue
		}
		listing := decoder.DecodeListing(raw)
		listing.KioskID = data.KioskID
		rented = append(rented, listing)
	}

	s.store.Set(cache.RentedKey(address), rented)
	return rented, nil
}

// CreateNFT mints a new NFT to the caller's address.
func (s *RentalService) CreateNFT(ctx context.Context, address, name, description string) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if name == "" {
		return nil, NewDomainError(CodePreconditionFailed, "an NFT name is required")
	}

	tx := s.builder.CreateNFT(address, name, description)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(cache.UserNFTsKey(address))

	s.logger.Info("NFT minted",
		zap.String("address", address),
		zap.String("name", name),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusMinted, Digest: result.Digest}, nil
}

// SetupRenting configures the rental policy for the deployment's NFT type.
// Requires the type's publisher credential, supplied out-of-band. An
// existing protected policy makes this a no-op reported as already_setup;
// the ledger-side once-per-type constraint is otherwise left to the ledger
// and a duplicate attempt surfaces as a classified domain error.
func (s *RentalService) SetupRenting(ctx context.Context, address, publisherID string, royaltyBp uint64) (*SetupResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if royaltyBp > maxRoyaltyBasisPoints {
		return nil, NewDomainError(CodePreconditionFailed, "royalty must be between 0 and 10000 basis points")
	}

	if publisherID == "" {
		publisherID = s.cfg.PublisherID
	}
	if publisherID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "a publisher credential is required to configure renting")
	}

	data, err := s.kiosks.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data != nil && data.ProtectedTPID != "" {
		s.logger.Info("Rental policy already configured",
			zap.String("protected_tp_id", data.ProtectedTPID))
		return &SetupResult{Status: StatusAlreadySetup, ProtectedTPID: data.ProtectedTPID}, nil
	}

	tx := s.builder.SetupRenting(address, publisherID, royaltyBp)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(cache.KioskKey(address))

	s.logger.Info("Rental policy configured",
		zap.String("address", address),
		zap.Uint64("royalty_bp", royaltyBp),
		zap.String("digest", result.Digest))
	return &SetupResult{Status: StatusConfigured, Digest: result.Digest}, nil
}

// PlaceInKiosk moves an owned NFT into the caller's kiosk.
func (s *RentalService) PlaceInKiosk(ctx context.Context, address, nftID string) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if nftID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "an NFT id is required")
	}

	data, err := s.kiosks.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "create a kiosk before placing NFTs into it")
	}

	tx := s.builder.PlaceInKiosk(address, data.KioskID, data.KioskCapID, nftID)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(
		cache.UserNFTsKey(address),
		cache.KioskNFTsKey(data.KioskID),
	)

	s.logger.Info("NFT placed in kiosk",
		zap.String("kiosk_id", data.KioskID),
		zap.String("nft_id", nftID),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusPlaced, Digest: result.Digest}, nil
}

// ListForRent offers an asset already inside the caller's kiosk for timed
// rental. Preconditions are checked client-side and fail fast, before any
// submission: the kiosk must exist, the extension must be installed, and
// the protected transfer policy must exist on chain.
func (s *RentalService) ListForRent(ctx context.Context, address string, params ListForRentParams) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if params.NFTID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "an NFT id is required")
	}

	data, err := s.kiosks.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "create a kiosk before listing NFTs")
	}
	if !data.HasRentablesExt {
		return nil, NewDomainError(CodePreconditionFailed, "install the rental extension before listing NFTs")
	}
	if data.ProtectedTPID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "the rental policy for this asset type is missing or not configured")
	}

	// Policy existence is only knowable by querying; verify best-effort
	// before building the submission.
	tp, err := s.chain.GetObject(ctx, data.ProtectedTPID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify protected transfer policy: %w", err)
	}
	if tp == nil {
		return nil, NewDomainError(CodePreconditionFailed, "the rental policy for this asset type is missing or not configured")
	}

	tx, err := s.builder.ListForRent(address, txbuilder.ListForRentParams{
		KioskID:       data.KioskID,
		CapID:         data.KioskCapID,
		ProtectedTPID: data.ProtectedTPID,
		NFTID:         params.NFTID,
		DurationDays:  params.DurationDays,
		PricePerDay:   params.PricePerDay,
	})
	if err != nil {
		return nil, NewDomainError(CodePreconditionFailed, err.Error())
	}

	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(
		cache.UserNFTsKey(address),
		cache.KioskNFTsKey(data.KioskID),
		cache.RentablesKey,
	)

	s.logger.Info("NFT listed for rent",
		zap.String("nft_id", params.NFTID),
		zap.Uint64("duration_days", params.DurationDays),
		zap.Uint64("price_per_day", params.PricePerDay),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusListed, Digest: result.Digest}, nil
}

// Rent rents a listed asset into the caller's kiosk. The payment equals
// price-per-day times duration exactly, derived from the listing; any
// mismatch is the ledger's to reject.
func (s *RentalService) Rent(ctx context.Context, address string, params RentParams) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if params.NFTID == "" || params.RenterKioskID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "the NFT id and the renter's kiosk id are required")
	}

	data, err := s.kiosks.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "create a kiosk before renting NFTs")
	}

	listings, err := s.GetRentableListings(ctx)
	if err != nil {
		return nil, err
	}
	var listing *decoder.Listing
	for _, l := range listings {
		if l.NFTID == params.NFTID {
			listing = l
			break
		}
	}
	if listing == nil {
		return nil, NewDomainError(CodeObjectNotFound, "the requested listing was not found or is no longer available")
	}

	policyID := params.RentalPolicyID
	if policyID == "" {
		policyID = s.cfg.RentalPolicyID
	}
	if policyID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "the rental policy for this asset type is missing or not configured")
	}

	totalPrice := listing.PricePerDay * listing.DurationDays

	tx := s.builder.Rent(address, txbuilder.RentParams{
		RenterKioskID:   params.RenterKioskID,
		BorrowerKioskID: data.KioskID,
		RentalPolicyID:  policyID,
		NFTID:           params.NFTID,
		TotalPrice:      totalPrice,
	})
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(
		cache.RentablesKey,
		cache.RentedKey(address),
		cache.KioskNFTsKey(params.RenterKioskID),
		cache.KioskNFTsKey(data.KioskID),
	)

	s.logger.Info("NFT rented",
		zap.String("nft_id", params.NFTID),
		zap.Uint64("total_price", totalPrice),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusRented, Digest: result.Digest}, nil
}

// ReturnNFT returns a rented asset to its lender. The borrow of the asset
// plus its return obligation and the hand-back are two calls inside one
// atomic submission; a second return of the same rental fails on the
// ledger because the obligation token was already consumed, and classifies
// as an object-not-found outcome.
func (s *RentalService) ReturnNFT(ctx context.Context, address, nftID string) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if nftID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "an NFT id is required")
	}

	data, err := s.kiosks.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "no kiosk found for this account")
	}

	tx := s.builder.ReturnAsset(address, data.KioskID, data.KioskCapID, nftID)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(
		cache.RentedKey(address),
		cache.RentablesKey,
		cache.KioskNFTsKey(data.KioskID),
	)

	s.logger.Info("NFT returned",
		zap.String("nft_id", nftID),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusReturned, Digest: result.Digest}, nil
}
