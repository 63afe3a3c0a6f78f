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

// Struct types of the framework-level kiosk objects.
const (
	kioskStructType    = "0x2::kiosk::Kiosk"
	ownerCapStructType = "0x2::kiosk::KioskOwnerCap"
)

// KioskService orchestrates the per-container lifecycle: discovery,
// creation, extension install/removal and the contained-asset view. It
// holds no authoritative state; every read is derived from the ledger and
// cached only briefly, and every mutation invalidates the affected reads
// before returning.
type KioskService struct {
	chain   sui.SuiClientInterface
	signer  signer.Signer
	builder *txbuilder.Builder
	store   cache.Store
	cfg     *config.Config
	logger  *zap.Logger
}

// NewKioskService creates a new kiosk service.
func NewKioskService(chain sui.SuiClientInterface, signerClient signer.Signer, builder *txbuilder.Builder, store cache.Store, cfg *config.Config) *KioskService {
	return &KioskService{
		chain:   chain,
		signer:  signerClient,
		builder: builder,
		store:   store,
		cfg:     cfg,
		logger:  logger.Log,
	}
}

// GetKioskData discovers the caller's kiosk, owner capability and protected
// transfer policy, and whether the rental extension is installed. Returns
// (nil, nil) when the account owns no kiosk. The first kiosk and cap found
// are authoritative.
func (s *KioskService) GetKioskData(ctx context.Context, address string) (*KioskData, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	if cached, ok := s.store.Get(cache.KioskKey(address)); ok {
		if data, ok := cached.(*KioskData); ok {
			return data, nil
		}
	}

	kiosks, err := s.chain.GetOwnedObjects(ctx, address, kioskStructType)
	if err != nil {
		return nil, fmt.Errorf("failed to query kiosks: %w", err)
	}
	caps, err := s.chain.GetOwnedObjects(ctx, address, ownerCapStructType)
	if err != nil {
		return nil, fmt.Errorf("failed to query kiosk caps: %w", err)
	}
	if len(kiosks) == 0 || len(caps) == 0 {
		return nil, nil
	}

	data := &KioskData{
		KioskID:    kiosks[0].ObjectID,
		KioskCapID: caps[0].ObjectID,
	}

	tps, err := s.chain.GetOwnedObjects(ctx, address, s.cfg.RentalTarget("ProtectedTP"))
	if err != nil {
		s.logger.Warn("Protected TP query failed",
			zap.String("address", address),
			zap.Error(err))
	} else if len(tps) > 0 {
		data.ProtectedTPID = tps[0].ObjectID
	}
	if data.ProtectedTPID == "" {
		data.ProtectedTPID = s.cfg.ProtectedTPID
	}

	data.HasRentablesExt = s.hasRentablesExtension(ctx, address, data.KioskID)

	s.store.Set(cache.KioskKey(address), data)
	return data, nil
}

// hasRentablesExtension checks the kiosk's dynamic fields for the extension
// namespace, falling back to a probe for extension-owned objects. Failures
// here degrade to "not installed"; the install path re-checks anyway.
func (s *KioskService) hasRentablesExtension(ctx context.Context, address, kioskID string) bool {
	fields, err := s.chain.GetDynamicFields(ctx, kioskID)
	if err != nil {
		s.logger.Warn("Dynamic field scan failed",
			zap.String("kiosk_id", kioskID),
			zap.Error(err))
	} else if decoder.HasRentablesExtension(fields) {
		return true
	}

	rentables, err := s.chain.GetOwnedObjects(ctx, address, s.cfg.RentalTarget("Rentables"))
	if err != nil {
		s.logger.Warn("Rentables probe failed",
			zap.String("address", address),
			zap.Error(err))
		return false
	}
	return len(rentables) > 0
}

// CreateKiosk creates a kiosk and its owner capability for the account. If
// a kiosk is already discovered the call is a no-op reported as
// already_created, with zero submissions.
func (s *KioskService) CreateKiosk(ctx context.Context, address string) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	existing, err := s.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Info("Kiosk already exists, skipping creation",
			zap.String("address", address),
			zap.String("kiosk_id", existing.KioskID))
		return &MutationResult{Status: StatusAlreadyCreated}, nil
	}

	tx := s.builder.CreateKiosk(address)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(cache.KioskKey(address))

	s.logger.Info("Kiosk created",
		zap.String("address", address),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusCreated, Digest: result.Digest}, nil
}

// InstallExtension installs the rental extension on the caller's kiosk.
// Re-installing is re-entrant: when the extension is already present and
// force is false the call reports already_installed and submits nothing.
func (s *KioskService) InstallExtension(ctx context.Context, address string, force bool) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	data, err := s.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "create a kiosk before installing the rental extension")
	}

	if data.HasRentablesExt && !force {
		s.logger.Info("Rental extension already installed",
			zap.String("kiosk_id", data.KioskID))
		return &MutationResult{Status: StatusAlreadyInstalled}, nil
	}

	tx := s.builder.InstallExtension(address, data.KioskID, data.KioskCapID)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(cache.KioskKey(address))

	s.logger.Info("Rental extension installed",
		zap.String("kiosk_id", data.KioskID),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusInstalled, Digest: result.Digest}, nil
}

// RemoveExtension removes the rental extension. Only permitted when the
// extension's storage holds no entries; a non-empty storage fails locally
// with a precondition error before any submission.
func (s *KioskService) RemoveExtension(ctx context.Context, address string) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	data, err := s.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "no kiosk found for this account")
	}
	if !data.HasRentablesExt {
		return nil, NewDomainError(CodePreconditionFailed, "the rental extension is not installed on this kiosk")
	}

	fields, err := s.chain.GetDynamicFields(ctx, data.KioskID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect extension storage: %w", err)
	}
	for _, field := range fields {
		kind, nftID := decoder.ClassifyExtensionField(field)
		if kind != decoder.ExtensionFieldOther {
			s.logger.Warn("Extension storage not empty",
				zap.String("kiosk_id", data.KioskID),
				zap.String("nft_id", nftID))
			return nil, NewDomainError(CodePreconditionFailed, "the extension storage still holds listed or rented assets; delist or return them first")
		}
	}

	tx := s.builder.RemoveExtension(address, data.KioskID, data.KioskCapID)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(cache.KioskKey(address))

	s.logger.Info("Rental extension removed",
		zap.String("kiosk_id", data.KioskID),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusExtensionRemoved, Digest: result.Digest}, nil
}

// GetKioskNFTs lists the assets currently held by the caller's kiosk,
// re-derived from the kiosk's dynamic fields. A field that disappears
// between the listing and the per-field fetch is skipped: reads race
// concurrent mutations and the two calls are not mutually consistent.
func (s *KioskService) GetKioskNFTs(ctx context.Context, address string) ([]*decoder.NFT, error) {
	if address == "" {
		return nil, errUnauthenticated
	}

	data, err := s.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []*decoder.NFT{}, nil
	}

	if cached, ok := s.store.Get(cache.KioskNFTsKey(data.KioskID)); ok {
		if nfts, ok := cached.([]*decoder.NFT); ok {
			return nfts, nil
		}
	}

	fields, err := s.chain.GetDynamicFields(ctx, data.KioskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kiosk contents: %w", err)
	}

	nfts := make([]*decoder.NFT, 0, len(fields))
	for _, field := range fields {
		if decoder.IsRentablesField(field) {
			continue
		}
		raw, err := s.chain.GetDynamicFieldObject(ctx, data.KioskID, field.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch kiosk item: %w", err)
		}
		if raw == nil {
			// Consumed between the listing and this fetch.
			continue
		}
		if decoder.Classify(raw.Type) != decoder.KindNFT {
			continue
		}
		nfts = append(nfts, decoder.DecodeNFT(raw))
	}

	s.store.Set(cache.KioskNFTsKey(data.KioskID), nfts)
	return nfts, nil
}

// RemoveNFT takes an asset out of the caller's kiosk and transfers it back
// to the caller's address.
func (s *KioskService) RemoveNFT(ctx context.Context, address, nftID string) (*MutationResult, error) {
	if address == "" {
		return nil, errUnauthenticated
	}
	if nftID == "" {
		return nil, NewDomainError(CodePreconditionFailed, "an NFT id is required")
	}

	data, err := s.GetKioskData(ctx, address)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, NewDomainError(CodePreconditionFailed, "no kiosk found for this account")
	}

	tx := s.builder.TakeFromKiosk(address, data.KioskID, data.KioskCapID, nftID)
	result, err := s.signer.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, Classify(err)
	}

	s.store.Invalidate(
		cache.KioskNFTsKey(data.KioskID),
		cache.UserNFTsKey(address),
	)

	s.logger.Info("NFT removed from kiosk",
		zap.String("kiosk_id", data.KioskID),
		zap.String("nft_id", nftID),
		zap.String("digest", result.Digest))
	return &MutationResult{Status: StatusRemoved, Digest: result.Digest}, nil
}
