package usecase

import (
	"context"
	"time"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	"shopsync/pkg/errors"
)

type OrderUseCase struct {
	orders  repository.OrderRemote
	session func() *entity.Session
}

func NewOrderUseCase(orders repository.OrderRemote, session func() *entity.Session) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		session: session,
	}
}

func (u *OrderUseCase) History(ctx context.Context) ([]entity.Order, error) {
	sess := u.session()
	if sess == nil || sess.UserID == "" {
		return nil, errors.Unauthenticated("sign in to view your orders", nil)
	}
	return u.orders.List(ctx, sess.UserID)
}

// Cancel checks eligibility client-side before calling the backend so the
// user gets an immediate answer for orders that have already shipped. The
// backend re-checks; its answer wins.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID string) (*entity.Order, error) {
	sess := u.session()
	if sess == nil || sess.UserID == "" {
		return nil, errors.Unauthenticated("sign in to manage your orders", nil)
	}

	order, err := u.find(ctx, sess.UserID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Cancellable() {
		return nil, errors.BadRequest("order can no longer be cancelled", nil)
	}
	return u.orders.Cancel(ctx, sess.UserID, orderID)
}

func (u *OrderUseCase) Return(ctx context.Context, orderID string) (*entity.Order, error) {
	sess := u.session()
	if sess == nil || sess.UserID == "" {
		return nil, errors.Unauthenticated("sign in to manage your orders", nil)
	}

	order, err := u.find(ctx, sess.UserID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Returnable(time.Now()) {
		return nil, errors.BadRequest("order is outside the return window", nil)
	}
	return u.orders.Return(ctx, sess.UserID, orderID)
}

func (u *OrderUseCase) find(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	orders, err := u.orders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}
