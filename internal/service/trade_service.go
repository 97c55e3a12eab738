package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// TradeService validates and executes simulated trade orders against the
// wallet balance and a single quote snapshot. An order moves
// Submitted -> Validating -> Rejected(reason) | Executed; there is no retry
// state, a rejected order is resubmitted as a new order.
type TradeService struct {
	tradeRepo      *repository.TradeRepository
	holdingRepo    *repository.HoldingRepository
	walletRepo     *repository.WalletRepository
	instrumentRepo *repository.InstrumentRepository
}

// NewTradeService creates a new TradeService with the provided repository dependencies.
func NewTradeService(
	tradeRepo *repository.TradeRepository,
	holdingRepo *repository.HoldingRepository,
	walletRepo *repository.WalletRepository,
	instrumentRepo *repository.InstrumentRepository,
) *TradeService {
	return &TradeService{
		tradeRepo:      tradeRepo,
		holdingRepo:    holdingRepo,
		walletRepo:     walletRepo,
		instrumentRepo: instrumentRepo,
	}
}

// ValidateOrder checks an order's preconditions against one quote snapshot.
// Checks run in a fixed order and the first failure wins:
//
//  1. a usable quote must exist for the symbol  -> ErrQuoteUnavailable
//  2. the quantity must be strictly positive    -> ErrInvalidQuantity
//  3. a sell must not exceed the shares held    -> ErrInsufficientShares
//  4. a buy must not exceed the wallet balance  -> ErrInsufficientFunds
//
// On success it returns the executed price: the quote's price at validation
// time. Orders execute at the last observed price, never a negotiated one.
func (s *TradeService) ValidateOrder(order model.TradeOrder, snapshot *model.QuoteSnapshot) (decimal.Decimal, error) {
	quote, ok := snapshot.Quote(order.Symbol)
	if !ok {
		return decimal.Decimal{}, apperrors.ErrQuoteUnavailable
	}

	if order.Quantity.Sign() <= 0 {
		return decimal.Decimal{}, apperrors.ErrInvalidQuantity
	}

	switch order.Side {
	case model.TradeSideSell:
		holding, err := s.holdingRepo.GetHoldingBySymbol(order.UserID, order.Symbol)
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			return decimal.Decimal{}, apperrors.ErrInsufficientShares
		}
		if err != nil {
			return decimal.Decimal{}, err
		}
		if order.Quantity.GreaterThan(holding.Shares) {
			return decimal.Decimal{}, apperrors.ErrInsufficientShares
		}
	case model.TradeSideBuy:
		wallet, err := s.walletRepo.GetWallet(order.UserID)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if order.Quantity.Mul(quote.Price).GreaterThan(wallet.Balance) {
			return decimal.Decimal{}, apperrors.ErrInsufficientFunds
		}
	default:
		return decimal.Decimal{}, apperrors.ErrInvalidQuantity
	}

	return quote.Price, nil
}

// Execute applies a validated order at the given executed price. The price
// must be the one ValidateOrder returned so the "price at validation time"
// contract holds even when the feed refreshed in between. Execution is
// atomic: wallet and holdings change together or not at all.
func (s *TradeService) Execute(order model.TradeOrder, executedPrice decimal.Decimal) (model.TradeConfirmation, error) {
	now := time.Now().UTC()

	var balance decimal.Decimal
	var err error
	switch order.Side {
	case model.TradeSideBuy:
		name := order.Symbol
		if inst, instErr := s.instrumentRepo.Get(order.Symbol); instErr == nil {
			name = inst.DisplayName
		}
		balance, err = s.tradeRepo.ExecuteBuy(order, executedPrice, name, now)
	case model.TradeSideSell:
		balance, err = s.tradeRepo.ExecuteSell(order, executedPrice, now)
	default:
		return model.TradeConfirmation{}, apperrors.ErrInvalidQuantity
	}
	if err != nil {
		return model.TradeConfirmation{}, err
	}

	return model.TradeConfirmation{
		ID:            uuid.New().String(),
		Symbol:        order.Symbol,
		Side:          order.Side,
		Quantity:      order.Quantity,
		ExecutedPrice: executedPrice,
		Total:         order.Quantity.Mul(executedPrice),
		WalletBalance: balance,
		Timestamp:     now,
	}, nil
}

// PlaceTrade runs the full order lifecycle against one consistent snapshot:
// validate, then execute at the validation-time price.
func (s *TradeService) PlaceTrade(order model.TradeOrder, snapshot *model.QuoteSnapshot) (model.TradeConfirmation, error) {
	executedPrice, err := s.ValidateOrder(order, snapshot)
	if err != nil {
		return model.TradeConfirmation{}, err
	}
	return s.Execute(order, executedPrice)
}
