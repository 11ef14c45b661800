package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrGatewayCharge is returned when the gateway rejects the remainder leg.
	ErrGatewayCharge = errors.New("gateway charge failed")
	// ErrUnsupportedCurrency is returned when the gateway cannot charge in
	// the order currency.
	ErrUnsupportedCurrency = errors.New("currency not supported by gateway")
	// ErrIntentNotFound is returned when no intent matches the id, user and
	// order being settled.
	ErrIntentNotFound = errors.New("payment intent not found")
	// ErrIntentNotSettleable is returned when the intent is not waiting on a
	// gateway return.
	ErrIntentNotSettleable = errors.New("payment intent is not awaiting gateway settlement")
)

// ReconciliationError reports money charged externally with no matching
// wallet-side record: the gateway confirmed a charge but the wallet
// deduction failed afterward. It must surface to the caller and never be
// swallowed; resolving it requires manual reconciliation.
type ReconciliationError struct {
	OrderID       string
	TransactionID uuid.UUID
	Err           error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation required for order %s: gateway charge succeeded but wallet settlement failed: %v", e.OrderID, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

// SplitPaymentResult is the composite checkout outcome.
type SplitPaymentResult struct {
	IntentID      uuid.UUID       // Persisted payment intent
	OrderID       string          // Order being paid
	WalletApplied decimal.Decimal // Amount settled from wallet value
	GatewayAmount decimal.Decimal // Amount routed to the gateway
	Channel       string          // wallet, gateway or split
	Status        string          // Final intent status
	CheckoutURL   string          // Set for the asynchronous gateway flow
	TransactionID uuid.UUID       // Wallet freeze transaction, uuid.Nil when none
}

// SplitPaymentService orchestrates a checkout funded partly from wallet lots
// and partly from the external gateway. The freeze commits before the
// gateway is called, so no database lock is ever held across the network
// round-trip; on gateway failure the freeze is compensated with a release.
// The persisted payment intent is the saga state — a crash between the
// gateway call and compensation leaves a frozen reservation that the expiry
// sweep reclaims.
type SplitPaymentService struct {
	freezer     Freezer
	gateway     GatewayCharger
	wallets     WalletReader
	intents     IntentWriter
	intentReads IntentReader
	rates       RateReader
	audit       Auditor
	metrics     MetricsRecorder
	returnURL   string
	cancelURL   string
}

// NewSplitPaymentService creates a new SplitPaymentService. returnURL and
// cancelURL are where the gateway sends the customer back after the
// asynchronous flow.
func NewSplitPaymentService(
	freezer Freezer,
	gateway GatewayCharger,
	wallets WalletReader,
	intents IntentWriter,
	intentReads IntentReader,
	rates RateReader,
	audit Auditor,
	metrics MetricsRecorder,
	returnURL, cancelURL string,
) *SplitPaymentService {
	return &SplitPaymentService{
		freezer:     freezer,
		gateway:     gateway,
		wallets:     wallets,
		intents:     intents,
		intentReads: intentReads,
		rates:       rates,
		audit:       audit,
		metrics:     metrics,
		returnURL:   returnURL,
		cancelURL:   cancelURL,
	}
}

// ProcessSplitPayment runs a checkout: wallet freeze first, gateway for the
// remainder, deduct or compensate depending on the outcome.
func (s *SplitPaymentService) ProcessSplitPayment(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, currency, orderID string, useWallet bool) (*SplitPaymentResult, error) {
	start := time.Now()
	result, err := s.processSplitPayment(ctx, actor, userID, amount, currency, orderID, useWallet)
	s.metrics.RecordSettlement("checkout", time.Since(start), err == nil)
	return result, err
}

func (s *SplitPaymentService) processSplitPayment(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, currency, orderID string, useWallet bool) (*SplitPaymentResult, error) {
	if orderID == "" {
		return nil, ErrInvalidOrder
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	// frozen is in the wallet's currency and drives deduct/release amounts;
	// walletApplied is the same value expressed in the order currency and
	// drives the split arithmetic.
	frozen := decimal.Zero
	walletApplied := decimal.Zero
	var freezeTxnID uuid.UUID
	if useWallet {
		wallet, err := s.wallets.GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// No wallet yet: the whole amount goes to the gateway.
		case err != nil:
			return nil, err
		default:
			walletNeed, err := s.ConvertAmount(ctx, amount, currency, wallet.Currency)
			if err != nil {
				return nil, err
			}

			freezeRes, err := s.freezer.Freeze(ctx, actor, userID, walletNeed, orderID)
			if err != nil {
				// Nothing to compensate: a failed freeze persists nothing.
				return nil, err
			}
			frozen = freezeRes.FrozenAmount
			if freezeRes.Transaction != nil {
				freezeTxnID = freezeRes.Transaction.TransactionID
			}

			switch {
			case frozen.Equal(walletNeed):
				// Full coverage maps back to the exact order amount, no
				// rounding residue.
				walletApplied = amount
			case frozen.IsPositive():
				walletApplied, err = s.ConvertAmount(ctx, frozen, wallet.Currency, currency)
				if err != nil {
					return nil, s.compensate(ctx, actor, userID, frozen, orderID, freezeTxnID, err)
				}
			}
		}
	}

	gatewayAmount := amount.Sub(walletApplied)
	channel := models.PaymentChannelSplit
	switch {
	case gatewayAmount.IsZero():
		channel = models.PaymentChannelWallet
	case frozen.IsZero():
		channel = models.PaymentChannelGateway
	}

	intent := &models.PaymentIntentDB{
		IntentID:      uuid.New(),
		UserID:        userID,
		OrderID:       orderID,
		Currency:      currency,
		TotalAmount:   amount,
		WalletAmount:  walletApplied,
		GatewayAmount: gatewayAmount,
		FrozenAmount:  frozen,
		FreezeTxnID:   freezeTxnID,
		Channel:       channel,
		Status:        models.IntentStatusPending,
	}
	if err := s.intents.Save(ctx, intent); err != nil {
		return nil, s.compensate(ctx, actor, userID, frozen, orderID, freezeTxnID, err)
	}

	if gatewayAmount.IsZero() {
		// Whole amount is wallet-funded: settle immediately, no network call.
		if _, err := s.freezer.Deduct(ctx, actor, userID, frozen, orderID, freezeTxnID); err != nil {
			s.setIntentStatus(ctx, intent.IntentID, models.IntentStatusCompensated)
			return nil, s.compensate(ctx, actor, userID, frozen, orderID, freezeTxnID, err)
		}
		if err := s.intents.SetStatus(ctx, intent.IntentID, models.IntentStatusCompleted); err != nil {
			logger.Log.Errorw("failed to complete payment intent", "intentID", intent.IntentID, "error", err)
		}
		return &SplitPaymentResult{
			IntentID:      intent.IntentID,
			OrderID:       orderID,
			WalletApplied: walletApplied,
			GatewayAmount: decimal.Zero,
			Channel:       models.PaymentChannelWallet,
			Status:        models.IntentStatusCompleted,
			TransactionID: freezeTxnID,
		}, nil
	}

	if err := s.checkCurrencySupported(ctx, currency); err != nil {
		return nil, s.compensate(ctx, actor, userID, frozen, orderID, freezeTxnID, err)
	}

	charge, err := s.gateway.Charge(ctx, models.GatewayChargeRequest{
		Amount:    gatewayAmount,
		Currency:  currency,
		ReturnURL: s.returnURL,
		CancelURL: s.cancelURL,
		Metadata: map[string]string{
			"order_id":              orderID,
			"intent_id":             intent.IntentID.String(),
			"freeze_transaction_id": freezeTxnID.String(),
		},
	})
	if err != nil {
		s.setIntentStatus(ctx, intent.IntentID, models.IntentStatusCompensated)
		return nil, s.compensate(ctx, actor, userID, frozen, orderID, freezeTxnID, fmt.Errorf("%w: %v", ErrGatewayCharge, err))
	}

	if charge.CheckoutURL != "" {
		// Asynchronous flow: deduction happens when the gateway return
		// callback fires; until then the reservation stays frozen, bounded
		// by its own expiry.
		if err := s.intents.SetGatewayResult(ctx, intent.IntentID, charge.CheckoutURL, ""); err != nil {
			logger.Log.Errorw("failed to record checkout url", "intentID", intent.IntentID, "error", err)
		}
		s.setIntentStatus(ctx, intent.IntentID, models.IntentStatusRequiresGateway)
		return &SplitPaymentResult{
			IntentID:      intent.IntentID,
			OrderID:       orderID,
			WalletApplied: walletApplied,
			GatewayAmount: gatewayAmount,
			Channel:       channel,
			Status:        models.IntentStatusRequiresGateway,
			CheckoutURL:   charge.CheckoutURL,
			TransactionID: freezeTxnID,
		}, nil
	}

	if charge.Status != models.GatewayChargeSucceeded {
		s.setIntentStatus(ctx, intent.IntentID, models.IntentStatusCompensated)
		return nil, s.compensate(ctx, actor, userID, frozen, orderID, freezeTxnID, ErrGatewayCharge)
	}

	// Immediate gateway success: finalize the wallet leg. A failure past
	// this point means money was already charged externally.
	if frozen.IsPositive() {
		if _, err := s.freezer.Deduct(ctx, actor, userID, frozen, orderID, freezeTxnID); err != nil {
			s.releaseQuietly(ctx, actor, userID, frozen, orderID, freezeTxnID)
			s.setIntentStatus(ctx, intent.IntentID, models.IntentStatusFailed)
			s.metrics.RecordSettlement("reconciliation", 0, false)
			return nil, &ReconciliationError{OrderID: orderID, TransactionID: freezeTxnID, Err: err}
		}
	}
	if err := s.intents.SetGatewayResult(ctx, intent.IntentID, "", charge.ChargeID); err != nil {
		logger.Log.Errorw("failed to record gateway charge", "intentID", intent.IntentID, "error", err)
	}
	s.setIntentStatus(ctx, intent.IntentID, models.IntentStatusCompleted)

	return &SplitPaymentResult{
		IntentID:      intent.IntentID,
		OrderID:       orderID,
		WalletApplied: walletApplied,
		GatewayAmount: gatewayAmount,
		Channel:       channel,
		Status:        models.IntentStatusCompleted,
		TransactionID: freezeTxnID,
	}, nil
}

// SettleGatewayReturn finalizes the wallet leg after the asynchronous
// gateway flow confirms payment. Amounts and the freeze transaction come
// from the persisted intent, never from the caller, and the reported charge
// is verified against the gateway before any wallet money moves. If the
// deduction unexpectedly fails even though the gateway already charged, the
// freeze is released and a ReconciliationError surfaces, a conflict state
// requiring manual review.
func (s *SplitPaymentService) SettleGatewayReturn(ctx context.Context, actor models.Actor, userID uuid.UUID, orderID string, intentID uuid.UUID, gatewayChargeID string) error {
	start := time.Now()

	intent, err := s.intentReads.GetForUpdate(ctx, intentID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrIntentNotFound
	}
	if err != nil {
		return err
	}
	if intent.UserID != userID || intent.OrderID != orderID {
		// Do not leak whether the intent exists for another user.
		return ErrIntentNotFound
	}
	if intent.Status != models.IntentStatusRequiresGateway {
		return ErrIntentNotSettleable
	}

	charge, err := s.gateway.VerifyCharge(ctx, gatewayChargeID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayCharge, err)
	}
	if charge.Status != models.GatewayChargeSucceeded {
		return ErrGatewayCharge
	}

	if intent.FrozenAmount.IsPositive() {
		if _, err := s.freezer.Deduct(ctx, actor, userID, intent.FrozenAmount, orderID, intent.FreezeTxnID); err != nil {
			s.releaseQuietly(ctx, actor, userID, intent.FrozenAmount, orderID, intent.FreezeTxnID)
			s.setIntentStatus(ctx, intentID, models.IntentStatusFailed)
			s.metrics.RecordSettlement("settle", time.Since(start), false)
			return &ReconciliationError{OrderID: orderID, TransactionID: intent.FreezeTxnID, Err: err}
		}
	}

	if err := s.intents.SetGatewayResult(ctx, intentID, "", gatewayChargeID); err != nil {
		logger.Log.Errorw("failed to record gateway charge", "intentID", intentID, "error", err)
	}
	s.setIntentStatus(ctx, intentID, models.IntentStatusCompleted)
	s.metrics.RecordSettlement("settle", time.Since(start), true)

	return s.audit.Record(ctx, actor, "payment.settled", "payment_intent", intentID.String(), map[string]any{
		"order_id": orderID, "gateway_charge_id": gatewayChargeID, "wallet_amount": intent.FrozenAmount,
	})
}

// CancelByOrder releases whatever is still frozen for an order, for example
// when the customer abandons the gateway checkout page.
func (s *SplitPaymentService) CancelByOrder(ctx context.Context, actor models.Actor, userID uuid.UUID, orderID string) (*ReleaseResult, error) {
	return s.freezer.ReleaseByOrder(ctx, actor, userID, orderID)
}

// ConvertAmount translates an amount between currencies using
// collaborator-supplied rates. Rates pass through unchanged; same-currency
// conversions short-circuit to the identity.
func (s *SplitPaymentService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if fromCurrency == toCurrency {
		return amount, nil
	}
	rate, err := s.rates.GetRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Round(2), nil
}

// compensate releases the frozen wallet portion after a failure on the
// gateway side of the saga and returns the original error. A release
// failure is logged and attached; the reservation is then bounded by its
// own expiry and reclaimed by the sweep.
func (s *SplitPaymentService) compensate(ctx context.Context, actor models.Actor, userID uuid.UUID, frozen decimal.Decimal, orderID string, freezeTransactionID uuid.UUID, cause error) error {
	if !frozen.IsPositive() {
		return cause
	}

	start := time.Now()
	_, err := s.freezer.Release(ctx, actor, userID, frozen, orderID, freezeTransactionID)
	s.metrics.RecordSettlement("compensation", time.Since(start), err == nil)
	if err != nil {
		logger.Log.Errorw("compensation release failed, reservation left to expiry sweep",
			"userID", userID, "orderID", orderID, "transactionID", freezeTransactionID, "error", err)
	}
	return cause
}

func (s *SplitPaymentService) releaseQuietly(ctx context.Context, actor models.Actor, userID uuid.UUID, amount decimal.Decimal, orderID string, freezeTransactionID uuid.UUID) {
	if _, err := s.freezer.Release(ctx, actor, userID, amount, orderID, freezeTransactionID); err != nil {
		logger.Log.Errorw("post-charge release failed",
			"userID", userID, "orderID", orderID, "transactionID", freezeTransactionID, "error", err)
	}
}

func (s *SplitPaymentService) setIntentStatus(ctx context.Context, intentID uuid.UUID, status string) {
	if err := s.intents.SetStatus(ctx, intentID, status); err != nil {
		logger.Log.Errorw("failed to set payment intent status", "intentID", intentID, "status", status, "error", err)
	}
}

func (s *SplitPaymentService) checkCurrencySupported(ctx context.Context, currency string) error {
	codes, err := s.gateway.SupportedCurrencyCodes(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayCharge, err)
	}
	for _, code := range codes {
		if code == currency {
			return nil
		}
	}
	return ErrUnsupportedCurrency
}
