package poller

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"
)

const (
	defaultPollInterval = 15 * time.Second
	defaultCheckTimeout = 5 * time.Second
)

var (
	paymentStatusChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_payment_status_checks_total",
		Help: "Total number of payment status checks grouped by result.",
	}, []string{"result"})
	paymentConfirmations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_payment_confirmations_total",
		Help: "Total number of watched orders that reached the paid state.",
	})
	watchedOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pos_watched_orders",
		Help: "Current number of orders being watched for payment.",
	})
)

// ConfirmFunc is invoked exactly once per watched order, when its payment
// status reaches the terminal paid state.
type ConfirmFunc func(ctx context.Context, orderID, draftID string)

// Options configure the payment watcher.
type Options struct {
	// PollInterval is the fixed period between status checks.
	PollInterval time.Duration
	// CheckTimeout bounds a single status query.
	CheckTimeout time.Duration
	// MaxChecks stops a watch after this many ticks without settlement.
	// Zero means poll until resolved or cancelled.
	MaxChecks int
}

// Option configures the Watcher.
type Option func(*Options)

// WithPollInterval sets the period between status checks.
func WithPollInterval(interval time.Duration) Option {
	return func(opts *Options) {
		opts.PollInterval = interval
	}
}

// WithCheckTimeout sets the per-query timeout.
func WithCheckTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.CheckTimeout = timeout
	}
}

// WithMaxChecks caps the number of ticks before a watch gives up.
func WithMaxChecks(max int) Option {
	return func(opts *Options) {
		opts.MaxChecks = max
	}
}

type watchState int

const (
	stateWatching watchState = iota
	stateResolved
	stateCancelled
)

type watch struct {
	orderID string
	draftID string
	cancel  context.CancelFunc
	state   watchState
}

// Watcher polls the backend's payment status source for pending orders until
// each one settles or the owner gives up. One goroutine per watched order;
// transient query failures never stop the loop.
//
// Cancellation is final: once a watch leaves the watching state, no event is
// delivered for it, even if a status response is still in flight.
type Watcher struct {
	source      interfaces.IPaymentStatusSource
	onConfirmed ConfirmFunc
	opts        Options

	mu      sync.Mutex
	watches map[string]*watch // keyed by order id
	byDraft map[string]string // draft id -> order id
}

var _ interfaces.IPaymentWatcher = (*Watcher)(nil)

func NewWatcher(source interfaces.IPaymentStatusSource, onConfirmed ConfirmFunc, options ...Option) *Watcher {
	opts := Options{
		PollInterval: defaultPollInterval,
		CheckTimeout: defaultCheckTimeout,
	}
	for _, o := range options {
		o(&opts)
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.CheckTimeout <= 0 {
		opts.CheckTimeout = defaultCheckTimeout
	}

	return &Watcher{
		source:      source,
		onConfirmed: onConfirmed,
		opts:        opts,
		watches:     make(map[string]*watch),
		byDraft:     make(map[string]string),
	}
}

// Watch starts polling the order's payment status. Watching the same order
// twice is a no-op. A session tracks at most one pending order, so a watch
// for a draft that is already watching a different order replaces the old
// watch; the replaced order's loop stops without firing.
func (w *Watcher) Watch(orderID, draftID string) {
	w.mu.Lock()
	if _, ok := w.watches[orderID]; ok {
		w.mu.Unlock()
		return
	}

	var replaced *watch
	if prevOrderID, ok := w.byDraft[draftID]; ok {
		replaced = w.watches[prevOrderID]
		replaced.state = stateCancelled
		delete(w.watches, prevOrderID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wt := &watch{orderID: orderID, draftID: draftID, cancel: cancel, state: stateWatching}
	w.watches[orderID] = wt
	w.byDraft[draftID] = orderID
	w.mu.Unlock()

	if replaced != nil {
		replaced.cancel()
		watchedOrders.Dec()
		log.Printf("[payment][watcher] watch replaced order_id=%s draft_id=%s", replaced.orderID, draftID)
	}

	watchedOrders.Inc()
	log.Printf("[payment][watcher] watch start order_id=%s draft_id=%s interval=%s", orderID, draftID, w.opts.PollInterval)

	go w.run(ctx, wt)
}

// CancelByDraftID stops the watch belonging to a draft. Returns false when
// nothing was being watched for it.
func (w *Watcher) CancelByDraftID(draftID string) bool {
	w.mu.Lock()
	orderID, ok := w.byDraft[draftID]
	if !ok {
		w.mu.Unlock()
		return false
	}
	wt := w.watches[orderID]
	wt.state = stateCancelled
	delete(w.watches, orderID)
	delete(w.byDraft, draftID)
	w.mu.Unlock()

	wt.cancel()
	watchedOrders.Dec()
	log.Printf("[payment][watcher] watch cancelled order_id=%s draft_id=%s", orderID, draftID)
	return true
}

// Shutdown cancels every active watch.
func (w *Watcher) Shutdown() {
	w.mu.Lock()
	watches := make([]*watch, 0, len(w.watches))
	for _, wt := range w.watches {
		wt.state = stateCancelled
		watches = append(watches, wt)
	}
	w.watches = make(map[string]*watch)
	w.byDraft = make(map[string]string)
	w.mu.Unlock()

	for _, wt := range watches {
		wt.cancel()
		watchedOrders.Dec()
	}
}

func (w *Watcher) run(ctx context.Context, wt *watch) {
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	checks := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		checks++
		status, err := w.check(ctx, wt.orderID)
		switch {
		case err != nil:
			// Best effort: a failed check is logged and retried next tick.
			paymentStatusChecks.WithLabelValues("error").Inc()
			log.Printf("[payment][watcher] status check failed order_id=%s err=%v", wt.orderID, err)
		case status == entities.PaymentStatusPaid:
			paymentStatusChecks.WithLabelValues("paid").Inc()
			if w.resolve(wt) {
				paymentConfirmations.Inc()
				log.Printf("[payment][watcher] payment confirmed order_id=%s draft_id=%s", wt.orderID, wt.draftID)
				w.onConfirmed(context.Background(), wt.orderID, wt.draftID)
			}
			return
		default:
			paymentStatusChecks.WithLabelValues(string(status)).Inc()
		}

		if w.opts.MaxChecks > 0 && checks >= w.opts.MaxChecks {
			w.expire(wt)
			return
		}
	}
}

func (w *Watcher) check(ctx context.Context, orderID string) (entities.PaymentStatus, error) {
	checkCtx, cancel := context.WithTimeout(ctx, w.opts.CheckTimeout)
	defer cancel()
	return w.source.GetPaymentStatus(checkCtx, orderID)
}

// resolve transitions watching -> resolved. It reports false if the watch was
// cancelled meanwhile, so no confirmation fires after cancel.
func (w *Watcher) resolve(wt *watch) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if wt.state != stateWatching {
		return false
	}
	wt.state = stateResolved
	delete(w.watches, wt.orderID)
	if w.byDraft[wt.draftID] == wt.orderID {
		delete(w.byDraft, wt.draftID)
	}
	watchedOrders.Dec()
	return true
}

func (w *Watcher) expire(wt *watch) {
	w.mu.Lock()
	if wt.state != stateWatching {
		w.mu.Unlock()
		return
	}
	wt.state = stateCancelled
	delete(w.watches, wt.orderID)
	if w.byDraft[wt.draftID] == wt.orderID {
		delete(w.byDraft, wt.draftID)
	}
	w.mu.Unlock()

	watchedOrders.Dec()
	log.Printf("[payment][watcher] giving up after %d checks order_id=%s", w.opts.MaxChecks, wt.orderID)
}
