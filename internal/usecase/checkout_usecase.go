package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	"shopsync/internal/infrastructure/localstate"
	"shopsync/pkg/errors"
	"shopsync/pkg/logger"
)

// CheckoutUseCase places an order from the current cart. Totals are
// recomputed by the backend; the client only validates the shipping form
// and clears its cart once the backend accepts the order.
type CheckoutUseCase struct {
	orders   repository.OrderRemote
	cache    *localstate.Cache
	states   repository.StateRepository
	session  func() *entity.Session
	validate *validator.Validate
}

func NewCheckoutUseCase(
	orders repository.OrderRemote,
	cache *localstate.Cache,
	states repository.StateRepository,
	session func() *entity.Session,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:   orders,
		cache:    cache,
		states:   states,
		session:  session,
		validate: validator.New(),
	}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, address entity.ShippingAddress) (*entity.Order, error) {
	sess := u.session()
	if sess == nil || sess.UserID == "" {
		return nil, errors.Unauthenticated("sign in to check out", nil)
	}
	if len(u.cache.Lines()) == 0 {
		return nil, errors.BadRequest("cart is empty", nil)
	}
	if err := u.validate.Struct(address); err != nil {
		return nil, err
	}

	order, err := u.orders.Place(ctx, sess.UserID, address)
	if err != nil {
		return nil, errors.SyncFailed("order placement failed", err)
	}

	// The backend consumed the cart; mirror that locally.
	u.cache.ReplaceCart(nil)
	if u.states != nil {
		if err := u.states.Save(ctx, sess.UserID, u.cache.State()); err != nil {
			logger.LogPersistenceError("save", err)
		}
	}
	return order, nil
}
