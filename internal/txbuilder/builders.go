package txbuilder

import (
	"fmt"

	"github.com/ivline11/nft-rental-dapp/internal/config"
	"github.com/ivline11/nft-rental-dapp/internal/decoder"
)

// Framework-level kiosk functions live in the system package.
const (
	kioskNewTarget   = "0x2::kiosk::new"
	kioskPlaceTarget = "0x2::kiosk::place"
	kioskTakeTarget  = "0x2::kiosk::take"
)

// Builder assembles domain operations into single atomic submissions. All
// targets and the static gas budget come from the deployment config.
type Builder struct {
	cfg *config.Config
}

// NewBuilder creates a transaction builder for the configured deployment.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

func (b *Builder) newTx(sender string) *Transaction {
	tx := NewTransaction()
	tx.SetSender(sender)
	tx.SetGasBudget(b.cfg.GasBudget)
	return tx
}

// CreateKiosk builds the container-creation submission: one call producing
// the kiosk and its owner capability, then two transfers of those outputs
// to the creating account. The transfers must reference the call's own
// result handles; the objects have no indexable ledger id at build time.
func (b *Builder) CreateKiosk(owner string) *Transaction {
	tx := b.newTx(owner)
	created := tx.MoveCallCmd(kioskNewTarget, nil)
	recipient := tx.PureAddress(owner)
	tx.TransferObjectsCmd([]Argument{created.Nth(0)}, recipient)
	tx.TransferObjectsCmd([]Argument{created.Nth(1)}, recipient)
	return tx
}

// CreateNFT builds a mint of a new NFT with an empty URL.
func (b *Builder) CreateNFT(sender, name, description string) *Transaction {
	tx := b.newTx(sender)
	tx.MoveCallCmd(b.cfg.NFTTarget("create_nft"), nil,
		tx.PureString(name),
		tx.PureString(description),
		tx.PureString(""),
	)
	return tx
}

// InstallExtension builds the rental-extension install call. The caller is
// responsible for having checked that the extension is not already
// installed, unless a reinstall was explicitly requested.
func (b *Builder) InstallExtension(sender, kioskID, capID string) *Transaction {
	tx := b.newTx(sender)
	tx.MoveCallCmd(b.cfg.RentalTarget("install"), nil,
		tx.Object(kioskID),
		tx.Object(capID),
	)
	return tx
}

// SetupRenting builds the policy-configuration call for the deployment's
// NFT type. The ledger enforces once-per-type; a second attempt fails
// there, not here.
func (b *Builder) SetupRenting(sender, publisherID string, royaltyBp uint64) *Transaction {
	tx := b.newTx(sender)
	tx.MoveCallCmd(b.cfg.RentalTarget("setup_renting"), []string{b.cfg.NFTType()},
		tx.Object(publisherID),
		tx.PureU64(royaltyBp),
	)
	return tx
}

// PlaceInKiosk builds the call placing an owned NFT into a kiosk.
func (b *Builder) PlaceInKiosk(sender, kioskID, capID, nftID string) *Transaction {
	tx := b.newTx(sender)
	tx.MoveCallCmd(kioskPlaceTarget, []string{b.cfg.NFTType()},
		tx.Object(kioskID),
		tx.Object(capID),
		tx.Object(nftID),
	)
	return tx
}

// ListForRentParams are the typed arguments of a listing submission.
// DurationDays is whole days at this boundary; the ledger's native time
// unit is seconds and the conversion happens exactly once, here.
type ListForRentParams struct {
	KioskID       string
	CapID         string
	ProtectedTPID string
	NFTID         string
	DurationDays  uint64
	PricePerDay   uint64
}

// ListForRent builds the listing call.
func (b *Builder) ListForRent(sender string, p ListForRentParams) (*Transaction, error) {
	if p.DurationDays == 0 {
		return nil, fmt.Errorf("listing duration must be at least one day")
	}
	if p.PricePerDay == 0 {
		return nil, fmt.Errorf("listing price must be greater than zero")
	}

	durationSeconds := p.DurationDays * decoder.SecondsPerDay

	tx := b.newTx(sender)
	tx.MoveCallCmd(b.cfg.RentalTarget("list"), []string{b.cfg.NFTType()},
		tx.Object(p.KioskID),
		tx.Object(p.CapID),
		tx.Object(p.ProtectedTPID),
		tx.PureID(p.NFTID),
		tx.PureU64(durationSeconds),
		tx.PureU64(p.PricePerDay),
	)
	return tx, nil
}

// RentParams are the typed arguments of a rent submission. TotalPrice must
// equal price-per-day times duration in days exactly; a mismatch is a
// contract-level rejection.
type RentParams struct {
	RenterKioskID   string
	BorrowerKioskID string
	RentalPolicyID  string
	NFTID           string
	TotalPrice      uint64
}

// Rent builds the payment split followed by the rent call. The split
// output funds the rental and is referenced through its result handle.
func (b *Builder) Rent(sender string, p RentParams) *Transaction {
	tx := b.newTx(sender)
	payment := tx.SplitCoinsCmd(tx.Gas(), tx.PureU64(p.TotalPrice))
	tx.MoveCallCmd(b.cfg.RentalTarget("rent"), []string{b.cfg.NFTType()},
		tx.Object(p.RenterKioskID),
		tx.Object(p.BorrowerKioskID),
		tx.Object(p.RentalPolicyID),
		tx.PureID(p.NFTID),
		payment.Arg(),
		tx.Object(b.cfg.ClockID),
	)
	return tx
}

// ReturnAsset builds the two-call return submission: borrow the asset plus
// its return obligation out of the borrower's kiosk, then immediately put
// both back. Splitting these across submissions would strand the asset and
// the obligation token outside any container.
func (b *Builder) ReturnAsset(sender, borrowerKioskID, capID, nftID string) *Transaction {
	tx := b.newTx(sender)
	kiosk := tx.Object(borrowerKioskID)
	borrowed := tx.MoveCallCmd(b.cfg.RentalTarget("borrow_val"), []string{b.cfg.NFTType()},
		kiosk,
		tx.Object(capID),
		tx.PureID(nftID),
	)
	tx.MoveCallCmd(b.cfg.RentalTarget("return_val"), []string{b.cfg.NFTType()},
		kiosk,
		borrowed.Nth(0),
		borrowed.Nth(1),
	)
	return tx
}

// TakeFromKiosk builds the removal of an asset from a kiosk back to its
// owner's address.
func (b *Builder) TakeFromKiosk(sender, kioskID, capID, nftID string) *Transaction {
	tx := b.newTx(sender)
	taken := tx.MoveCallCmd(kioskTakeTarget, []string{b.cfg.NFTType()},
		tx.Object(kioskID),
		tx.Object(capID),
		tx.PureID(nftID),
	)
	tx.TransferObjectsCmd([]Argument{taken.Arg()}, tx.PureAddress(sender))
	return tx
}

// RemoveExtension builds the extension removal call. Only valid when the
// extension's storage is empty; the orchestrator verifies that before
// asking for this transaction.
func (b *Builder) RemoveExtension(sender, kioskID, capID string) *Transaction {
	tx := b.newTx(sender)
	tx.MoveCallCmd(b.cfg.RentalTarget("remove"), nil,
		tx.Object(kioskID),
		tx.Object(capID),
	)
	return tx
}
