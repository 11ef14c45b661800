package services

//go:generate mockgen -source=interfaces.go -destination=mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TxRunner executes a function inside one database transaction; row locks
// taken by repositories inside fn are held until the function returns.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletReader defines wallet read operations used by services.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// WalletWriter defines wallet balance and status mutations.
type WalletWriter interface {
	Create(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
	ApplyFreeze(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error
	ApplyDeduct(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error
	ApplyRelease(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error
	AddAvailable(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) error
	SetStatus(ctx context.Context, walletID uuid.UUID, status string) error
}

// LotReader defines lot read operations used by services.
type LotReader interface {
	SelectEligibleForUpdate(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error)
	GetByID(ctx context.Context, lotID uuid.UUID) (*models.WalletLotDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error)
}

// LotWriter defines lot mutations.
type LotWriter interface {
	Save(ctx context.Context, lot *models.WalletLotDB) error
	DecrementRemaining(ctx context.Context, lotID uuid.UUID, amount decimal.Decimal) error
	RestoreRemaining(ctx context.Context, lotID uuid.UUID, amount decimal.Decimal) error
	MarkExhaustedIfDepleted(ctx context.Context, lotID uuid.UUID) error
	SetLocked(ctx context.Context, lotID uuid.UUID, locked bool) error
	SetDisputeLocked(ctx context.Context, lotID uuid.UUID, locked bool) error
	SetLockedByUser(ctx context.Context, userID uuid.UUID, locked bool) error
}

// FreezeReader defines freeze reservation read operations.
type FreezeReader interface {
	ListFrozenByOrder(ctx context.Context, userID uuid.UUID, orderID string) ([]models.WalletLotFreezeDB, error)
	ListExpiredFrozen(ctx context.Context, now time.Time, limit int) ([]models.WalletLotFreezeDB, error)
}

// FreezeWriter defines freeze reservation mutations.
type FreezeWriter interface {
	Save(ctx context.Context, freeze *models.WalletLotFreezeDB) error
	SetStatus(ctx context.Context, freezeID uuid.UUID, status string) error
}

// TransactionReader defines wallet transaction read operations.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.WalletTransactionDB, error)
	GetPendingForUpdate(ctx context.Context, transactionID uuid.UUID) (*models.WalletTransactionDB, error)
}

// TransactionWriter defines wallet transaction mutations.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.WalletTransactionDB) error
	SetStatus(ctx context.Context, transactionID uuid.UUID, status string) error
	FailPendingByOrder(ctx context.Context, userID uuid.UUID, orderID string) error
}

// LockReader defines wallet lock read operations.
type LockReader interface {
	ListActiveByWallet(ctx context.Context, walletID uuid.UUID) ([]models.WalletLockDB, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]models.WalletLockDB, error)
}

// LockWriter defines wallet lock mutations.
type LockWriter interface {
	Save(ctx context.Context, lock *models.WalletLockDB) error
	Resolve(ctx context.Context, lockID uuid.UUID) error
}

// DisputeReader defines dispute read operations.
type DisputeReader interface {
	GetByID(ctx context.Context, disputeID uuid.UUID) (*models.DisputeDB, error)
	GetOpenForUpdate(ctx context.Context, disputeID uuid.UUID) (*models.DisputeDB, error)
}

// DisputeWriter defines dispute mutations.
type DisputeWriter interface {
	Save(ctx context.Context, dispute *models.DisputeDB) error
	SetStatus(ctx context.Context, disputeID uuid.UUID, status string) error
	AddEvidence(ctx context.Context, evidence *models.DisputeEvidenceDB) error
}

// IntentReader loads persisted split-payment saga state.
type IntentReader interface {
	GetForUpdate(ctx context.Context, intentID uuid.UUID) (*models.PaymentIntentDB, error)
}

// IntentWriter persists split-payment saga state.
type IntentWriter interface {
	Save(ctx context.Context, intent *models.PaymentIntentDB) error
	SetStatus(ctx context.Context, intentID uuid.UUID, status string) error
	SetGatewayResult(ctx context.Context, intentID uuid.UUID, checkoutURL, gatewayChargeID string) error
}

// AuditAppender appends audit rows to durable storage.
type AuditAppender interface {
	Append(ctx context.Context, entry *models.AuditLogDB) error
}

// Auditor records an audit event with explicit actor attribution.
type Auditor interface {
	Record(ctx context.Context, actor models.Actor, event, entityType, entityID string, payload any) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GatewayCharger is the external payment gateway client.
type GatewayCharger interface {
	Charge(ctx context.Context, req models.GatewayChargeRequest) (*models.GatewayChargeResult, error)
	VerifyCharge(ctx context.Context, chargeID string) (*models.GatewayChargeResult, error)
	SupportedCurrencyCodes(ctx context.Context) ([]string, error)
}

// ExchangeRateReader fetches current exchange rates from the currency collaborator.
type ExchangeRateReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
}

// ExchangeRateCacheReader caches exchange rates.
type ExchangeRateCacheReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float64, error)
	SetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string, rate float64) error
}

// RateReader converts between currencies using collaborator-supplied rates.
type RateReader interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// Notifier delivers out-of-band notifications; delivery failures are logged,
// never propagated.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event string, payload any) error
}

// LotAllocator selects and allocates eligible lots for a freeze.
type LotAllocator interface {
	SelectEligibleLots(ctx context.Context, userID uuid.UUID) ([]models.WalletLotDB, error)
	Allocate(lots []models.WalletLotDB, amountNeeded decimal.Decimal) (models.LotAllocations, decimal.Decimal)
}

// Freezer is the freeze/deduct/release surface consumed by the coordinator.
type Freezer interface {
	Freeze(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string) (*FreezeResult, error)
	Deduct(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string, freezeTransactionID uuid.UUID) (*DeductResult, error)
	Release(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string, freezeTransactionID uuid.UUID) (*ReleaseResult, error)
	ReleaseByOrder(ctx context.Context, actor models.Actor, userID uuid.UUID, orderID string) (*ReleaseResult, error)
}

// MetricsRecorder records settlement operation metrics.
type MetricsRecorder interface {
	RecordSettlement(operation string, duration time.Duration, success bool)
}
