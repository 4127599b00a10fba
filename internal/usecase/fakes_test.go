package usecase

import (
	"context"
	"sync"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
	"shopsync/pkg/errors"
)

type fakeCartRemote struct {
	mu      sync.Mutex
	lines   []entity.CartLine
	setFn   func(userID, productID string, quantity int) ([]entity.CartLine, error)
	getErr  error
	setArgs []int
}

func (f *fakeCartRemote) Get(ctx context.Context, userID string) ([]entity.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]entity.CartLine{}, f.lines...), nil
}

func (f *fakeCartRemote) SetQuantity(ctx context.Context, userID, productID string, quantity int) ([]entity.CartLine, error) {
	f.mu.Lock()
	f.setArgs = append(f.setArgs, quantity)
	fn := f.setFn
	f.mu.Unlock()
	if fn != nil {
		return fn(userID, productID, quantity)
	}
	return []entity.CartLine{{ProductID: productID, Quantity: quantity}}, nil
}

func (f *fakeCartRemote) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int{}, f.setArgs...)
}

type fakeWishlistRemote struct {
	mu       sync.Mutex
	items    []string
	toggleFn func(userID, productID string) ([]string, error)
	toggles  int
}

func (f *fakeWishlistRemote) Get(ctx context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.items...), nil
}

func (f *fakeWishlistRemote) Toggle(ctx context.Context, userID, productID string) ([]string, error) {
	f.mu.Lock()
	f.toggles++
	fn := f.toggleFn
	f.mu.Unlock()
	if fn != nil {
		return fn(userID, productID)
	}
	return []string{productID}, nil
}

func (f *fakeWishlistRemote) toggleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.toggles
}

type fakeStateRepository struct {
	mu        sync.Mutex
	persisted *repository.PersistedState
	saveErr   error
	loadErr   error
	saves     int
	cleared   bool
}

func (f *fakeStateRepository) Save(ctx context.Context, userID string, state entity.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.persisted = &repository.PersistedState{UserID: userID, State: state.Clone()}
	return nil
}

func (f *fakeStateRepository) Load(ctx context.Context) (*repository.PersistedState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.persisted, nil
}

func (f *fakeStateRepository) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = true
	f.persisted = nil
	return nil
}

func (f *fakeStateRepository) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

type fakeOrderRemote struct {
	mu      sync.Mutex
	orders  []entity.Order
	placed  *entity.Order
	listErr error
}

func (f *fakeOrderRemote) List(ctx context.Context, userID string) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.Order{}, f.orders...), nil
}

func (f *fakeOrderRemote) Place(ctx context.Context, userID string, address entity.ShippingAddress) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := entity.Order{ID: "order-1", UserID: userID, Status: entity.OrderStatusPending, Address: address}
	f.placed = &order
	return &order, nil
}

func (f *fakeOrderRemote) Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	return f.transition(orderID, entity.OrderStatusCancelled)
}

func (f *fakeOrderRemote) Return(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	return f.transition(orderID, entity.OrderStatusReturned)
}

func (f *fakeOrderRemote) transition(orderID, status string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			order := f.orders[i]
			return &order, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

type fakeAuthRemote struct {
	token string
	err   error
}

func (f *fakeAuthRemote) Login(ctx context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func sessionFor(userID string) func() *entity.Session {
	return func() *entity.Session {
		if userID == "" {
			return nil
		}
		return &entity.Session{UserID: userID, Token: "token-" + userID}
	}
}
