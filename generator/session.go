package generator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"inspiration_drawer/drawer"
	"inspiration_drawer/drawlog"
)

// ErrSuggest wraps failures of the suggester during a draw.
var ErrSuggest = errors.New("suggest titles")

// Session 持有一組籤盒設定，負責一次完整的抽籤流程：抽籤、推薦、寫入紀錄。
type Session struct {
	boxes     []drawer.Box
	sampler   *drawer.Sampler
	suggester Suggester
	log       *drawlog.Log
	verbose   bool
	logger    *log.Logger
}

// SessionConfig is everything a Session needs; nothing is read from
// globals.
type SessionConfig struct {
	Boxes     []drawer.Box
	Sampler   *drawer.Sampler
	Suggester Suggester
	Log       *drawlog.Log
	Verbose   bool
	Logger    *log.Logger
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Log == nil {
		return nil, errors.New("draw log is required")
	}
	if cfg.Sampler == nil {
		cfg.Sampler = drawer.NewSampler(0)
	}
	if cfg.Suggester == nil {
		cfg.Suggester = NewTemplateSuggester(cfg.Sampler)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Session{
		boxes:     append([]drawer.Box(nil), cfg.Boxes...),
		sampler:   cfg.Sampler,
		suggester: cfg.Suggester,
		log:       cfg.Log,
		verbose:   cfg.Verbose,
		logger:    cfg.Logger,
	}, nil
}

func (s *Session) infof(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	s.logger.Printf("[INFO] "+format, args...)
}

// Boxes returns a copy of the configured boxes.
func (s *Session) Boxes() []drawer.Box {
	return append([]drawer.Box(nil), s.boxes...)
}

// Draw runs one cycle over the configured boxes.
func (s *Session) Draw(ctx context.Context) (drawer.LogEntry, error) {
	return s.DrawBoxes(ctx, s.boxes)
}

// DrawBoxes runs one cycle over boxes: sample, suggest, record. Nothing
// is written when suggesting fails.
func (s *Session) DrawBoxes(ctx context.Context, boxes []drawer.Box) (drawer.LogEntry, error) {
	result := s.sampler.Draw(boxes)
	s.infof("[draw] sampled %d boxes, %d items", len(result), len(result.Pool()))

	suggestions, err := s.suggester.Suggest(ctx, result)
	if err != nil {
		return drawer.LogEntry{}, fmt.Errorf("%w: %w", ErrSuggest, err)
	}

	titles, directions := Split(suggestions)
	entry := drawer.NewEntry(result, titles, directions)
	kept, err := s.log.Record(entry)
	if err != nil {
		return drawer.LogEntry{}, err
	}
	s.infof("[draw] recorded entry %s, log holds %d", entry.ID, len(kept))
	return entry, nil
}

// History returns the retained log, most recent first.
func (s *Session) History() ([]drawer.LogEntry, error) {
	return s.log.Entries()
}

// Lookup finds one retained entry by id.
func (s *Session) Lookup(id string) (drawer.LogEntry, bool, error) {
	return s.log.Find(id)
}
