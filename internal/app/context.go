// Package app holds the application state shared by the front ends: the
// notebook, the history, the live and remedial sessions, and the screen
// the learner is on.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/export"
	"github.com/abhisek/mathdrill/internal/history"
	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/similar"
	"github.com/abhisek/mathdrill/internal/store"
)

// ErrInvalidLevel is returned for a remedial level outside 1–3.
var ErrInvalidLevel = errors.New("level must be 1, 2 or 3")

// ErrNoRemedial is returned when a remedial operation runs without a
// remedial session.
var ErrNoRemedial = errors.New("no remedial session")

// Options configures a Context.
type Options struct {
	Repo    store.Repo
	Log     *zap.Logger
	Rand    *rand.Rand
	Session session.Config
	Now     func() time.Time
}

// Context owns everything the application mutates. It is driven from a
// single goroutine.
type Context struct {
	repo store.Repo
	log  *zap.Logger
	rng  *rand.Rand
	now  func() time.Time

	gen        *problemgen.Generator
	deriver    *similar.Deriver
	controller *session.Controller

	notebook *notebook.Notebook
	history  *history.History

	state    State
	summary  *session.SessionSummary
	remedial *practice.Session
	level    int
}

// New loads the notebook and history from opts.Repo and returns a Context
// on the mode selection screen.
func New(ctx context.Context, opts Options) *Context {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	gen := problemgen.New(opts.Rand, problemgen.DefaultConfig())
	return &Context{
		repo:       opts.Repo,
		log:        opts.Log,
		rng:        opts.Rand,
		now:        opts.Now,
		gen:        gen,
		deriver:    similar.NewDeriver(opts.Rand),
		controller: session.NewController(gen, opts.Session, opts.Log),
		notebook:   notebook.Load(ctx, opts.Repo, opts.Log),
		history:    history.Load(ctx, opts.Repo, opts.Log),
		state:      ModeSelection,
		level:      1,
	}
}

func (c *Context) State() State { return c.state }
func (c *Context) Notebook() *notebook.Notebook { return c.notebook }
func (c *Context) History() *history.History { return c.history }
func (c *Context) Session() *session.SessionState { return c.controller.State() }
func (c *Context) Summary() *session.SessionSummary { return c.summary }
func (c *Context) Remedial() *practice.Session { return c.remedial }
func (c *Context) Deriver() *similar.Deriver { return c.deriver }
func (c *Context) Level() int { return c.level }
func (c *Context) Now() time.Time { return c.now() }

// SessionDuration is the configured length of a timed session.
func (c *Context) SessionDuration() time.Duration { return c.controller.Duration() }

// StartPractice begins a timed session in domain.
func (c *Context) StartPractice(domain problemgen.Domain) (*session.SessionState, error) {
	s, err := c.controller.Start(domain, c.now())
	if err != nil {
		return nil, err
	}
	c.summary = nil
	c.state = Practice
	return s, nil
}

// SubmitAnswer scores raw against the current question. A wrong answer is
// added to the notebook; a failure to persist it is logged only.
func (c *Context) SubmitAnswer(ctx context.Context, raw string) (*session.Result, error) {
	res, err := c.controller.Submit(raw)
	if err != nil {
		return nil, err
	}
	if !res.Correct && c.notebook.RecordMistake(res.Question, res.UserAnswer, c.now()) {
		_ = c.saveNotebook(ctx)
	}
	return res, nil
}

// SkipQuestion moves past the current question unscored.
func (c *Context) SkipQuestion() error {
	return c.controller.Skip()
}

// NextQuestion leaves answer feedback and serves the next question.
func (c *Context) NextQuestion() error {
	return c.controller.Next()
}

// Tick advances the clock of the session with the given epoch. When the
// tick ends the session the result is recorded and the state moves to
// Result.
func (c *Context) Tick(ctx context.Context, epoch uint64) bool {
	if !c.controller.Tick(epoch) {
		return false
	}
	c.complete(ctx)
	return true
}

// Replenish tops up the question queue of the session with the given epoch.
func (c *Context) Replenish(epoch uint64) int {
	return c.controller.Replenish(epoch)
}

// EndPractice stops the session early and records it.
func (c *Context) EndPractice(ctx context.Context) (*session.SessionSummary, error) {
	if err := c.controller.Finish(); err != nil {
		return nil, err
	}
	c.complete(ctx)
	return c.summary, nil
}

func (c *Context) complete(ctx context.Context) {
	s := c.controller.State()
	d := c.controller.Duration()
	c.summary = session.BuildSummary(s, d)
	c.history.Add(session.HistoryRecord(s, d, c.now()))
	_ = c.saveHistory(ctx)
	c.state = Result
}

// BackToMenu returns to mode selection, abandoning any remedial session.
func (c *Context) BackToMenu() {
	c.remedial = nil
	c.state = ModeSelection
}

// OpenNotebook shows the mistake notebook.
func (c *Context) OpenNotebook() {
	c.remedial = nil
	c.state = WrongPractice
}

// SetLevel sets the remedial difficulty level.
func (c *Context) SetLevel(level int) error {
	if level < 1 || level > 3 {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	c.level = level
	return nil
}

// StartRemedial builds a remedial session over the notebook.
func (c *Context) StartRemedial(mode practice.Mode) (*practice.Session, error) {
	s, err := practice.BuildSession(mode, c.level, c.notebook, c.deriver, c.rng)
	if err != nil {
		return nil, err
	}
	c.remedial = s
	c.state = WrongPractice
	c.log.Debug("remedial session built",
		zap.String("mode", string(mode)),
		zap.Int("level", c.level),
		zap.Int("items", len(s.Items)))
	return s, nil
}

// SubmitRemedial scores raw against the current remedial item. Original
// items update the streak of their notebook record.
func (c *Context) SubmitRemedial(ctx context.Context, raw string) (*practice.Item, error) {
	if c.remedial == nil || c.remedial.Current() == nil {
		return nil, ErrNoRemedial
	}
	n, err := problemgen.ParseAnswer(raw)
	if err != nil {
		return nil, err
	}
	correct := c.remedial.Answer(n)
	it := c.remedial.Current()
	if it.Type == practice.TypeOriginal && c.notebook.RecordRemedialOutcome(it.Source, correct) {
		_ = c.saveNotebook(ctx)
	}
	return it, nil
}

// SkipRemedial marks the current remedial item skipped.
func (c *Context) SkipRemedial() error {
	if c.remedial == nil {
		return ErrNoRemedial
	}
	c.remedial.Skip()
	return nil
}

// RevealRemedial returns the current item's answer.
func (c *Context) RevealRemedial() (int, error) {
	if c.remedial == nil {
		return 0, ErrNoRemedial
	}
	return c.remedial.Reveal(), nil
}

// NextRemedial advances the remedial cursor and reports whether the
// session just completed.
func (c *Context) NextRemedial() (bool, error) {
	if c.remedial == nil {
		return false, ErrNoRemedial
	}
	return c.remedial.Next(), nil
}

// StopRemedial abandons the remedial session and stays on the notebook.
func (c *Context) StopRemedial() {
	c.remedial = nil
}

// MarkMastered marks the record behind expression (or the original of a
// variant) as mastered and saves the notebook.
func (c *Context) MarkMastered(ctx context.Context, expression, originalExpression string) (bool, error) {
	if !c.notebook.MarkMastered(expression, originalExpression) {
		return false, nil
	}
	return true, c.saveNotebook(ctx)
}

// DeleteMistakes removes the records at indices and saves the notebook.
func (c *Context) DeleteMistakes(ctx context.Context, indices []int) (int, error) {
	n := c.notebook.DeleteSelected(indices)
	if n == 0 {
		return 0, nil
	}
	return n, c.saveNotebook(ctx)
}

// ImportMistakes merges recs into the notebook and saves it.
func (c *Context) ImportMistakes(ctx context.Context, recs []notebook.Record) (int, error) {
	added := export.Merge(c.notebook, recs)
	if added == 0 {
		return 0, nil
	}
	return added, c.saveNotebook(ctx)
}

// Reset clears the notebook and history.
func (c *Context) Reset(ctx context.Context) error {
	c.notebook.Clear()
	c.history.Clear()
	c.remedial = nil
	c.summary = nil
	c.state = ModeSelection

	var errs []error
	for _, key := range []string{store.KeyNotebook, store.KeyHistory} {
		if err := c.repo.Delete(ctx, key); err != nil {
			c.log.Warn("reset not persisted", zap.String("key", key), zap.Error(err))
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Context) saveNotebook(ctx context.Context) error {
	if err := c.notebook.Save(ctx, c.repo); err != nil {
		c.log.Warn("notebook not saved", zap.Error(err))
		return err
	}
	return nil
}

func (c *Context) saveHistory(ctx context.Context) error {
	if err := c.history.Save(ctx, c.repo); err != nil {
		c.log.Warn("history not saved", zap.Error(err))
		return err
	}
	return nil
}
