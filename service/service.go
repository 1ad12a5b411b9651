// Package service exposes the extraction and navigation operations over a
// registry of hosted windows. Each window gets a serializing mutex (host
// automation is not reentrant) and a heading name cache that lives as long
// as the registration.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docwalk/host"
	"docwalk/nav"
	"docwalk/walk"
)

var (
	ErrUnknownWindow   = errors.New("service: unknown window")
	ErrDuplicateWindow = errors.New("service: window already registered")
	ErrInvalidRange    = errors.New("service: invalid range")
)

type entry struct {
	mu        sync.Mutex
	win       host.Window
	headings  *walk.HeadingCache
	navigator *nav.Navigator
}

// Service is the operation front door over registered windows.
type Service struct {
	mu      sync.RWMutex
	windows map[string]*entry
	log     *zap.Logger
}

func New(log *zap.Logger) *Service {
	return &Service{
		windows: make(map[string]*entry),
		log:     log,
	}
}

// Register adds a window under an identifier. Identifiers are caller
// assigned and must be unique among live registrations.
func (s *Service) Register(id string, win host.Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.windows[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateWindow, id)
	}
	s.windows[id] = &entry{
		win:       win,
		headings:  &walk.HeadingCache{},
		navigator: nav.NewNavigator(win, s.log.With(zap.String("window", id))),
	}
	s.log.Debug("Window registered", zap.String("window", id))
	return nil
}

// Unregister drops a window registration. Unknown identifiers are ignored.
func (s *Service) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.windows[id]; ok {
		delete(s.windows, id)
		s.log.Debug("Window unregistered", zap.String("window", id))
	}
}

func (s *Service) entry(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWindow, id)
	}
	return e, nil
}

func (s *Service) requestLog(id, op string) *zap.Logger {
	return s.log.With(
		zap.String("request", uuid.NewString()),
		zap.String("window", id),
		zap.String("op", op),
	)
}

// GetTextInRange extracts [startOffset, endOffset) of a registered window
// as markup under the given facet configuration.
func (s *Service) GetTextInRange(id string, startOffset, endOffset int, cfg walk.FormatConfig) (string, error) {
	if startOffset < 0 || endOffset <= startOffset {
		return "", fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, startOffset, endOffset)
	}
	e, err := s.entry(id)
	if err != nil {
		return "", err
	}
	log := s.requestLog(id, "getTextInRange")
	e.mu.Lock()
	defer e.mu.Unlock()
	out, err := walk.NewExtractor(e.win, e.headings, log).TextInRange(startOffset, endOffset, cfg)
	if err != nil {
		log.Error("Extraction failed", zap.Error(err))
		return "", err
	}
	log.Debug("Extraction finished",
		zap.Int("startOffset", startOffset),
		zap.Int("endOffset", endOffset),
		zap.Int("size", len(out)))
	return out, nil
}

// ExpandToLine measures the line holding offset in a registered window.
func (s *Service) ExpandToLine(id string, offset int) (lineStart, lineEnd int, err error) {
	e, err := s.entry(id)
	if err != nil {
		return 0, 0, err
	}
	log := s.requestLog(id, "expandToLine")
	e.mu.Lock()
	defer e.mu.Unlock()
	lineStart, lineEnd, err = e.navigator.ExpandToLine(offset)
	if err != nil {
		log.Error("Line expansion failed", zap.Int("offset", offset), zap.Error(err))
		return 0, 0, err
	}
	log.Debug("Line expansion finished",
		zap.Int("offset", offset),
		zap.Int("lineStart", lineStart),
		zap.Int("lineEnd", lineEnd))
	return lineStart, lineEnd, nil
}

// MoveByLine moves one line from offset and reports the landing offset.
func (s *Service) MoveByLine(id string, offset int, backward bool) (int, error) {
	e, err := s.entry(id)
	if err != nil {
		return 0, err
	}
	log := s.requestLog(id, "moveByLine")
	e.mu.Lock()
	defer e.mu.Unlock()
	newOffset, err := e.navigator.MoveByLine(offset, backward)
	if err != nil {
		log.Error("Line move failed", zap.Int("offset", offset), zap.Error(err))
		return 0, err
	}
	log.Debug("Line move finished",
		zap.Int("offset", offset),
		zap.Bool("backward", backward),
		zap.Int("newOffset", newOffset))
	return newOffset, nil
}
