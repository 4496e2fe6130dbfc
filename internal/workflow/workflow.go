package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

type Tab string

const (
	TabRequest Tab = "request"
	TabHistory Tab = "history"
)

type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseRequesting     Phase = "requesting"
	PhaseLoadingHistory Phase = "loading-history"
	PhaseLoaded         Phase = "loaded"
	PhaseSubmitting     Phase = "submitting"
	PhaseSuccess        Phase = "success"
	PhaseError          Phase = "error"
)

const (
	SuccessMessage         = "Payout request submitted successfully!"
	BalanceWarning         = "Requested amount exceeds your available balance"
	SuccessDisplayDuration = 3 * time.Second
)

var (
	ErrSubmitInFlight = errors.New("a payout request is already being submitted")
	ErrUnknownTab     = errors.New("unknown tab")
)

type BalanceFetcher interface {
	Fetch(ctx context.Context, cred auth.Credential) decimal.Decimal
}

type PayoutService interface {
	Submit(ctx context.Context, cred auth.Credential, req domain.PayoutRequest) (*domain.Payout, error)
	History(ctx context.Context, cred auth.Credential) ([]domain.Payout, error)
}

// Timer is the part of *time.Timer the controller needs.
type Timer interface {
	Stop() bool
}

type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// State is a point-in-time copy of what the payout page shows.
type State struct {
	Phase         Phase
	Tab           Tab
	Balance       decimal.Decimal
	BalanceLoaded bool
	Amount        string
	PaymentMethod domain.PaymentMethod
	Filter        string
	Payouts       []domain.Payout
	Visible       []domain.Payout
	Loading       bool
	Error         string
	Success       string
	Warning       string
}

// Controller drives the payout page of one session. Every fetch is stamped
// with a generation; a response that arrives after a newer fetch of the same
// kind started is dropped instead of overwriting fresher data.
type Controller struct {
	cred      auth.Credential
	balance   BalanceFetcher
	payouts   PayoutService
	afterFunc AfterFunc
	now       func() time.Time

	mu           sync.Mutex
	state        State
	balanceGen   uint64
	historyGen   uint64
	successGen   uint64
	successTimer Timer
	lastActive   time.Time
	// submitting spans the ledger call of Submit; fetches never clear it.
	submitting bool
}

func New(cred auth.Credential, balance BalanceFetcher, payouts PayoutService) *Controller {
	c := &Controller{
		cred:      cred,
		balance:   balance,
		payouts:   payouts,
		afterFunc: realAfterFunc,
		now:       time.Now,
		state: State{
			Phase:         PhaseIdle,
			Tab:           TabRequest,
			PaymentMethod: domain.BankTransfer,
			Filter:        payoutservice.FilterAll,
		},
	}
	c.lastActive = c.now()
	return c
}

// SetAfterFunc replaces the timer used to clear the success message.
func (c *Controller) SetAfterFunc(f AfterFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterFunc = f
}

func (c *Controller) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

func (c *Controller) touch() {
	c.lastActive = c.now()
}

// SwitchTab enters tab. The balance is always refreshed; the history tab also
// reloads the payout list.
func (c *Controller) SwitchTab(ctx context.Context, tab Tab) (State, error) {
	if tab != TabRequest && tab != TabHistory {
		return c.Snapshot(), ErrUnknownTab
	}

	c.mu.Lock()
	c.touch()
	c.state.Tab = tab
	if !c.submitting {
		if tab == TabHistory {
			c.state.Phase = PhaseLoadingHistory
		} else {
			c.state.Phase = PhaseRequesting
		}
	}
	c.mu.Unlock()

	c.refresh(ctx, tab == TabHistory)
	return c.Snapshot(), nil
}

// Submit validates the form locally and, if it passes, sends one payout
// request. Balance and history are refreshed only after the ledger answered.
func (c *Controller) Submit(ctx context.Context, amount string, method domain.PaymentMethod) (State, error) {
	c.mu.Lock()
	c.touch()
	if c.submitting {
		c.mu.Unlock()
		return c.Snapshot(), ErrSubmitInFlight
	}

	c.state.Amount = amount
	if method != "" {
		c.state.PaymentMethod = method
	}
	req := domain.PayoutRequest{Amount: amount, PaymentMethod: c.state.PaymentMethod}

	parsed, err := payoutservice.Validate(req)
	if err != nil {
		c.state.Phase = PhaseError
		c.state.Error = err.Error()
		c.state.Success = ""
		c.mu.Unlock()
		return c.Snapshot(), err
	}

	c.state.Warning = ""
	if c.state.BalanceLoaded && parsed.GreaterThan(c.state.Balance) {
		// the ledger decides; this is only a hint
		c.state.Warning = BalanceWarning
	}
	c.submitting = true
	c.state.Phase = PhaseSubmitting
	c.state.Loading = true
	c.state.Error = ""
	c.clearSuccessLocked()
	c.mu.Unlock()

	payout, err := c.payouts.Submit(ctx, c.cred, req)

	c.mu.Lock()
	c.submitting = false
	c.state.Loading = false
	if err != nil {
		c.state.Phase = PhaseError
		c.state.Error = failureMessage(err, payoutservice.SubmitFailedMessage)
		c.mu.Unlock()
		zap.L().Warn("payout submission failed", zap.Error(err))
		return c.Snapshot(), err
	}

	c.state.Phase = PhaseSuccess
	c.state.Error = ""
	c.state.Success = SuccessMessage
	c.state.Amount = ""
	c.scheduleSuccessClearLocked()
	c.mu.Unlock()

	zap.L().Debug("payout submitted", zap.String("payout", payout.ID))
	c.refresh(ctx, true)
	return c.Snapshot(), nil
}

// failureMessage forwards validation and ledger messages. Auth failures get
// the generic text even when the ledger explained them.
func failureMessage(err error, fallback string) string {
	var vErr *payoutservice.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return domain.ErrDuplicateSubmission.Error()
	case ledger.IsAuth(err):
		return fallback
	}
	return ledger.UserMessage(err, fallback)
}

// SetFilter changes the status filter over the already fetched history.
func (c *Controller) SetFilter(status string) State {
	c.mu.Lock()
	c.touch()
	if status == "" {
		status = payoutservice.FilterAll
	}
	c.state.Filter = status
	c.state.Visible = payoutservice.Filter(c.state.Payouts, status)
	c.mu.Unlock()
	return c.Snapshot()
}

// Dismiss closes the error, success and warning alerts.
func (c *Controller) Dismiss() State {
	c.mu.Lock()
	c.touch()
	c.state.Error = ""
	c.state.Warning = ""
	c.clearSuccessLocked()
	if c.state.Phase == PhaseError || c.state.Phase == PhaseSuccess {
		c.state.Phase = c.restingPhaseLocked()
	}
	c.mu.Unlock()
	return c.Snapshot()
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Payouts = append([]domain.Payout(nil), c.state.Payouts...)
	s.Visible = append([]domain.Payout(nil), c.state.Visible...)
	return s
}

// Close stops the pending success timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.successTimer != nil {
		c.successTimer.Stop()
		c.successTimer = nil
	}
}

func (c *Controller) refresh(ctx context.Context, withHistory bool) {
	var g errgroup.Group
	g.Go(func() error {
		c.refreshBalance(ctx)
		return nil
	})
	if withHistory {
		g.Go(func() error {
			c.loadHistory(ctx)
			return nil
		})
	}
	_ = g.Wait()
}

func (c *Controller) refreshBalance(ctx context.Context) {
	c.mu.Lock()
	c.balanceGen++
	gen := c.balanceGen
	c.mu.Unlock()

	balance := c.balance.Fetch(ctx, c.cred)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.balanceGen {
		return
	}
	c.state.Balance = balance
	c.state.BalanceLoaded = true
}

func (c *Controller) loadHistory(ctx context.Context) {
	c.mu.Lock()
	c.historyGen++
	gen := c.historyGen
	c.state.Loading = true
	if c.state.Phase != PhaseSuccess {
		c.state.Error = ""
	}
	c.mu.Unlock()

	payouts, err := c.payouts.History(ctx, c.cred)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.historyGen {
		return
	}
	c.state.Loading = c.submitting
	if err != nil {
		c.state.Error = failureMessage(err, payoutservice.HistoryFailedMessage)
		if !c.submitting && c.state.Phase != PhaseSuccess {
			c.state.Phase = PhaseError
		}
		return
	}
	c.state.Payouts = payouts
	c.state.Visible = payoutservice.Filter(payouts, c.state.Filter)
	if c.state.Phase == PhaseLoadingHistory {
		c.state.Phase = PhaseLoaded
	}
}

func (c *Controller) scheduleSuccessClearLocked() {
	c.successGen++
	gen := c.successGen
	c.successTimer = c.afterFunc(SuccessDisplayDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.successGen {
			return
		}
		c.state.Success = ""
		c.successTimer = nil
		if c.state.Phase == PhaseSuccess {
			c.state.Phase = c.restingPhaseLocked()
		}
	})
}

func (c *Controller) clearSuccessLocked() {
	c.successGen++
	c.state.Success = ""
	if c.successTimer != nil {
		c.successTimer.Stop()
		c.successTimer = nil
	}
}

func (c *Controller) restingPhaseLocked() Phase {
	if c.state.Tab == TabHistory {
		return PhaseLoaded
	}
	return PhaseRequesting
}
