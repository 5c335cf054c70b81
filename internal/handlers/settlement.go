package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

var (
	// ErrSettlementFailed means nothing was left behind: either the first
	// step failed, or a later step failed and its compensations restored
	// the prior state.
	ErrSettlementFailed = errors.New("settlement failed")
	// ErrSettlementPartial means a step failed and compensation could not
	// fully undo the earlier steps; the store is inconsistent.
	ErrSettlementPartial = errors.New("settlement partially applied")
)

type settlementRequest struct {
	Email   string  `json:"email"`
	Amount  float64 `json:"amount"`
	CartID  string  `json:"cart_id"`
	ClassID string  `json:"selectedClassId"`
}

type settlementResult struct {
	Result        store.InsertResult `json:"result"`
	DeletedResult store.DeleteResult `json:"deletedResult"`
	AddingResult  store.UpdateResult `json:"addingResult"`
}

// settle finalizes a purchase: record the payment, clear the cart item,
// bump the class enrollment. The three writes span three collections, so
// instead of a transaction each step has a compensating action that runs in
// reverse order when a later step fails.
func settle(ctx context.Context, payments store.Payments, carts store.Carts, classes store.Classes, req settlementRequest) (*settlementResult, error) {
	cartID, err := primitive.ObjectIDFromHex(req.CartID)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	// Snapshot the cart item up front so a step-3 failure can restore it.
	snapshot, err := carts.ByID(ctx, req.CartID)
	if err != nil {
		return nil, fmt.Errorf("%w: reading cart item: %v", ErrSettlementFailed, err)
	}

	payment := models.Payment{
		Email:         req.Email,
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		CartID:        cartID,
		ClassID:       classID,
		Date:          time.Now(),
	}

	inserted, err := payments.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("%w: recording payment: %v", ErrSettlementFailed, err)
	}

	deleted, err := carts.Delete(ctx, req.CartID)
	if err != nil {
		if _, compErr := payments.Delete(ctx, inserted.InsertedID); compErr != nil {
			return nil, fmt.Errorf("%w: cart removal failed and payment %s was not rolled back: %v", ErrSettlementPartial, inserted.InsertedID, err)
		}
		return nil, fmt.Errorf("%w: removing cart item: %v", ErrSettlementFailed, err)
	}

	added, err := classes.IncrementEnrolled(ctx, req.ClassID, 1)
	if err != nil {
		partial := false
		if snapshot != nil {
			if _, compErr := carts.Insert(ctx, *snapshot); compErr != nil {
				partial = true
			}
		}
		if _, compErr := payments.Delete(ctx, inserted.InsertedID); compErr != nil {
			partial = true
		}
		if partial {
			return nil, fmt.Errorf("%w: enrollment update failed and earlier steps were not rolled back: %v", ErrSettlementPartial, err)
		}
		return nil, fmt.Errorf("%w: updating enrollment: %v", ErrSettlementFailed, err)
	}

	return &settlementResult{
		Result:        inserted,
		DeletedResult: deleted,
		AddingResult:  added,
	}, nil
}
