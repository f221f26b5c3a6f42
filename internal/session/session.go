// Package session runs a timed practice session: it serves generated
// questions, scores answers, keeps the question queue topped up and ends
// the session when the clock runs out.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// DefaultSessionDuration is the length of a timed session.
const DefaultSessionDuration = 10 * time.Minute

// ErrNoSession is returned when an operation needs an active session.
var ErrNoSession = errors.New("no active session")

// Config tunes the controller.
type Config struct {
	Duration     time.Duration
	InitialBatch int // questions generated at start
	LowWater     int // replenish while fewer than this many questions exist
	TopUp        int // questions added per replenish
	Overflow     int // questions added when the learner runs past the queue
}

// DefaultConfig returns the standard timings.
func DefaultConfig() Config {
	return Config{
		Duration:     DefaultSessionDuration,
		InitialBatch: 10,
		LowWater:     50,
		TopUp:        10,
		Overflow:     5,
	}
}

// Controller owns the current timed session. Ticks and replenish requests
// carry the epoch of the session that scheduled them; a request whose
// epoch is stale is ignored, which is how a new session cancels the
// previous session's timer.
type Controller struct {
	gen   *problemgen.Generator
	cfg   Config
	log   *zap.Logger
	state *SessionState
	epoch uint64
}

// NewController creates a Controller.
func NewController(gen *problemgen.Generator, cfg Config, log *zap.Logger) *Controller {
	def := DefaultConfig()
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.InitialBatch <= 0 {
		cfg.InitialBatch = def.InitialBatch
	}
	if cfg.LowWater <= 0 {
		cfg.LowWater = def.LowWater
	}
	if cfg.TopUp <= 0 {
		cfg.TopUp = def.TopUp
	}
	if cfg.Overflow <= 0 {
		cfg.Overflow = def.Overflow
	}
	return &Controller{gen: gen, cfg: cfg, log: log}
}

// State returns the current session, or nil before the first Start.
func (c *Controller) State() *SessionState {
	return c.state
}

// Start begins a new session and invalidates any earlier one.
func (c *Controller) Start(domain problemgen.Domain, now time.Time) (*SessionState, error) {
	qs, err := c.gen.Generate(domain, c.cfg.InitialBatch)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	c.epoch++
	c.state = &SessionState{
		SessionID: uuid.New().String(),
		Domain:    domain,
		Questions: qs,
		StartTime: now,
		Remaining: c.cfg.Duration,
		Phase:     PhaseActive,
		epoch:     c.epoch,
	}
	c.log.Debug("session started",
		zap.String("session_id", c.state.SessionID),
		zap.String("domain", string(domain)),
		zap.Int("questions", len(qs)))
	return c.state, nil
}

// live returns the session if epoch still refers to an active one.
func (c *Controller) live(epoch uint64) *SessionState {
	if c.state == nil || epoch != c.epoch || !c.state.Active() {
		return nil
	}
	return c.state
}

// Tick takes one second off the clock of the session with the given
// epoch. It reports true when this tick ended the session. Stale ticks
// are no-ops.
func (c *Controller) Tick(epoch uint64) bool {
	s := c.live(epoch)
	if s == nil {
		return false
	}
	s.Remaining -= time.Second
	if s.Remaining > 0 {
		return false
	}
	s.Remaining = 0
	c.end()
	return true
}

// Replenish tops up the question queue by TopUp while it holds fewer than
// LowWater questions. It returns how many were added; a request for an
// ended or superseded session adds nothing.
func (c *Controller) Replenish(epoch uint64) int {
	s := c.live(epoch)
	if s == nil || len(s.Questions) >= c.cfg.LowWater {
		return 0
	}
	return c.extend(s, c.cfg.TopUp)
}

func (c *Controller) extend(s *SessionState, n int) int {
	qs, err := c.gen.Generate(s.Domain, n)
	if err != nil {
		c.log.Warn("question generation failed", zap.Error(err))
	}
	s.Questions = append(s.Questions, qs...)
	return len(qs)
}

// Submit scores raw as the answer to the current question. Input that is
// not an integer in [0,100] returns problemgen.ErrInvalidAnswer and is not
// scored.
func (c *Controller) Submit(raw string) (*Result, error) {
	s := c.state
	if s == nil || s.Phase != PhaseActive {
		return nil, ErrNoSession
	}
	n, err := problemgen.ParseAnswer(raw)
	if err != nil {
		return nil, err
	}

	q := s.CurrentQuestion()
	res := Result{Question: q, UserAnswer: n, Correct: problemgen.CheckAnswer(q, n)}
	if res.Correct {
		s.TotalCorrect++
	} else {
		s.TotalWrong++
	}
	s.Results = append(s.Results, res)
	s.LastResult = &s.Results[len(s.Results)-1]
	s.Phase = PhaseFeedback
	return s.LastResult, nil
}

// Skip moves past the current question without scoring it.
func (c *Controller) Skip() error {
	s := c.state
	if s == nil || s.Phase != PhaseActive {
		return ErrNoSession
	}
	s.Results = append(s.Results, Result{Question: s.CurrentQuestion(), Skipped: true})
	s.LastResult = nil
	c.advance(s)
	return nil
}

// Next leaves the feedback phase and serves the next question.
func (c *Controller) Next() error {
	s := c.state
	if s == nil || s.Phase != PhaseFeedback {
		return ErrNoSession
	}
	s.Phase = PhaseActive
	s.LastResult = nil
	c.advance(s)
	return nil
}

func (c *Controller) advance(s *SessionState) {
	s.Index++
	if s.Index >= len(s.Questions) {
		c.extend(s, c.cfg.Overflow)
	}
}

// Finish ends the session early, as when the learner quits.
func (c *Controller) Finish() error {
	if c.state == nil || !c.state.Active() {
		return ErrNoSession
	}
	c.end()
	return nil
}

func (c *Controller) end() {
	c.state.Phase = PhaseEnded
	c.epoch++
	c.log.Debug("session ended",
		zap.String("session_id", c.state.SessionID),
		zap.Int("correct", c.state.TotalCorrect),
		zap.Int("wrong", c.state.TotalWrong))
}
