package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/AbdulRehman2008/E-comerce/internal/auth"
	"github.com/AbdulRehman2008/E-comerce/internal/cart"
	"github.com/AbdulRehman2008/E-comerce/internal/mail"
	"github.com/AbdulRehman2008/E-comerce/internal/order"
)

// ErrEmptyCart is returned when Submit is invoked with nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// DefaultSaveTimeout bounds how long the user waits on the durable save
// before checkout proceeds without an order id.
const DefaultSaveTimeout = 2500 * time.Millisecond

// OrderCreator is the durable order store collaborator. Create assigns the
// order id on success.
type OrderCreator interface {
	Create(ctx context.Context, o *order.Order) error
}

// EventPublisher announces placed orders; best effort.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *order.Order) error
}

// Summary is what the confirmation view shows.
type Summary struct {
	OrderID   string  `json:"orderId,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	ItemCount int     `json:"itemsCount"`
	Total     float64 `json:"total"`
}

type outcomeKind int

const (
	outcomeCompleted outcomeKind = iota
	outcomeTimedOut
	outcomeFailed
)

// saveOutcome is the tagged result of racing the durable save against the
// timeout: Completed carries the order id, Failed the error, TimedOut neither.
type saveOutcome struct {
	kind    outcomeKind
	orderID string
	err     error
}

type saveResult struct {
	orderID string
	err     error
}

// Service runs the one-shot order submission flow. The flow is deliberately
// optimistic: the cart is cleared and the user sees a confirmation once the
// save has been dispatched, whether or not it settled in time. Backend
// failures are logged, never surfaced.
type Service struct {
	cart        *cart.Store
	orders      OrderCreator
	mailer      mail.Mailer
	publisher   EventPublisher
	saveTimeout time.Duration
	logger      *log.Logger
}

// NewService wires the flow. mailer and publisher may be nil when the
// corresponding collaborator is not configured.
func NewService(cartStore *cart.Store, orders OrderCreator, mailer mail.Mailer, publisher EventPublisher, saveTimeout time.Duration, logger *log.Logger) *Service {
	if saveTimeout <= 0 {
		saveTimeout = DefaultSaveTimeout
	}
	return &Service{
		cart:        cartStore,
		orders:      orders,
		mailer:      mailer,
		publisher:   publisher,
		saveTimeout: saveTimeout,
		logger:      logger,
	}
}

// Submit snapshots the cart, races the durable save against the timeout,
// fires the confirmation email and order event without waiting on them, then
// clears the cart unconditionally. The only error it returns is ErrEmptyCart;
// every other path reaches the confirmation summary.
func (s *Service) Submit(ctx context.Context, customer order.Customer) (Summary, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return Summary{}, ErrEmptyCart
	}

	sess := auth.FromContext(ctx)

	snapshot := buildSnapshot(items, customer, sess.UserID)

	// The order value handed to the mailer and publisher is copied before the
	// save goroutine starts, so the id assignment inside Create never races
	// with their reads.
	background := *snapshot

	resCh := make(chan saveResult, 1)
	go func() {
		// Detached from the request context: if the race is lost the save
		// keeps running to completion on its own.
		err := s.orders.Create(context.Background(), snapshot)
		resCh <- saveResult{orderID: snapshot.ID, err: err}
	}()

	out := s.awaitSave(resCh)

	s.dispatchEmail(background, out.orderID, sess)
	s.dispatchEvent(background, out.orderID)

	s.cart.Clear()

	return Summary{
		OrderID:   out.orderID,
		Name:      mail.CustomerName(customer),
		Email:     customer.Email,
		ItemCount: countItems(background.Items),
		Total:     background.Total,
	}, nil
}

// awaitSave resolves the race between the durable save and the timeout.
func (s *Service) awaitSave(resCh <-chan saveResult) saveOutcome {
	timer := time.NewTimer(s.saveTimeout)
	defer timer.Stop()

	select {
	case res := <-resCh:
		if res.err != nil {
			s.logger.Printf("order save failed: %v", res.err)
			return saveOutcome{kind: outcomeFailed, err: res.err}
		}
		return saveOutcome{kind: outcomeCompleted, orderID: res.orderID}
	case <-timer.C:
		// The save keeps running; its settlement is only logged.
		go func() {
			res := <-resCh
			if res.err != nil {
				s.logger.Printf("order save failed (background): %v", res.err)
				return
			}
			s.logger.Printf("order saved (background): %s", res.orderID)
		}()
		return saveOutcome{kind: outcomeTimedOut}
	}
}

func (s *Service) dispatchEmail(o order.Order, orderID string, sess auth.Session) {
	if s.mailer == nil {
		return
	}
	if o.Customer.Email == "" {
		o.Customer.Email = sess.Email
	}
	go func() {
		if err := s.mailer.SendOrderConfirmation(context.Background(), o, orderID); err != nil {
			s.logger.Printf("confirmation email failed: %v", err)
		}
	}()
}

func (s *Service) dispatchEvent(o order.Order, orderID string) {
	if s.publisher == nil {
		return
	}
	o.ID = orderID
	go func() {
		if err := s.publisher.PublishOrderPlaced(context.Background(), &o); err != nil {
			s.logger.Printf("order event publish failed: %v", err)
		}
	}()
}

// buildSnapshot deep-copies the cart lines into an immutable pending order;
// later cart mutations cannot touch an in-flight submission.
func buildSnapshot(items []cart.Item, customer order.Customer, userID string) *order.Order {
	lines := make([]order.Item, len(items))
	total := 0.0
	for i, it := range items {
		lines[i] = order.Item{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
		}
		total += it.Price * float64(it.Quantity)
	}

	return &order.Order{
		UserID:    userID,
		Customer:  customer,
		Items:     lines,
		Total:     total,
		Status:    order.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func countItems(items []order.Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
