package main

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gregoryjjb/cllsim/circularlist"
	"gregoryjjb/cllsim/pubsub"
)

var simlog zerolog.Logger

func init() {
	simlog = log.With().Str("component", "simulator").Logger()
}

var ErrInvalidValue = errors.New("invalid value")

type Action string

const (
	ActionInsertFront Action = "insert_front"
	ActionInsertEnd   Action = "insert_end"
	ActionDelete      Action = "delete"
	ActionSearch      Action = "search"
	ActionReset       Action = "reset"
	ActionSnapshot    Action = "snapshot"
)

const (
	MessageInvalid  = "Please enter a number."
	MessageNotFound = "Value not found."
	MessageFound    = "Value FOUND!"
	MessageMissing  = "Value NOT found."
	MessageReset    = "List reset."
)

// Result is the outcome of one user action
type Result struct {
	Action  Action `json:"action"`
	Value   int    `json:"value"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Display string `json:"display"`
}

type State struct {
	Display string `json:"display"`
	Values  []int  `json:"values"`
	Length  int    `json:"length"`
}

// Event is published after every action that changed the list
type Event struct {
	Action Action `json:"action"`
	State  State  `json:"state"`
}

// ParseValue accepts non-empty strings of ASCII digits only.
func ParseValue(text string) (int, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidValue)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidValue, text)
		}
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidValue, text)
	}
	return v, nil
}

// Simulator owns the one list the UI works on. Every call holds mu for its
// whole duration since the list itself does no locking.
type Simulator struct {
	list   *circularlist.List[int]
	mu     sync.Mutex
	pubsub *pubsub.Pubsub[Event]
}

func NewSimulator() *Simulator {
	return &Simulator{
		list:   circularlist.New[int](),
		pubsub: pubsub.New[Event](),
	}
}

func (s *Simulator) InsertFront(text string) (Result, error) {
	return s.apply(ActionInsertFront, text, func(v int) (bool, string) {
		s.list.InsertFront(v)
		return true, fmt.Sprintf("Inserted %d at front.", v)
	})
}

func (s *Simulator) InsertEnd(text string) (Result, error) {
	return s.apply(ActionInsertEnd, text, func(v int) (bool, string) {
		s.list.InsertEnd(v)
		return true, fmt.Sprintf("Inserted %d at end.", v)
	})
}

func (s *Simulator) Delete(text string) (Result, error) {
	return s.apply(ActionDelete, text, func(v int) (bool, string) {
		if s.list.DeleteValue(v) {
			return true, fmt.Sprintf("Deleted %d.", v)
		}
		return false, MessageNotFound
	})
}

func (s *Simulator) Search(text string) (Result, error) {
	return s.apply(ActionSearch, text, func(v int) (bool, string) {
		if s.list.Search(v) {
			return true, MessageFound
		}
		return false, MessageMissing
	})
}

func (s *Simulator) Reset() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Clear()
	simlog.Info().Str("action", string(ActionReset)).Msg("List reset")
	s.publishLocked(ActionReset)

	return Result{
		Action:  ActionReset,
		OK:      true,
		Message: MessageReset,
		Display: s.list.Display(),
	}
}

func (s *Simulator) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

// Subscribe streams an Event for every change until unsubscribe is called.
func (s *Simulator) Subscribe() (func(), <-chan Event) {
	id, ch := s.pubsub.Subscribe()
	return func() {
		s.pubsub.Unsubscribe(id)
	}, ch
}

func (s *Simulator) apply(action Action, text string, fn func(int) (bool, string)) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := ParseValue(text)
	if err != nil {
		simlog.Debug().Err(err).Str("action", string(action)).Msg("Rejected input")
		return Result{
			Action:  action,
			Message: MessageInvalid,
			Display: s.list.Display(),
		}, err
	}

	ok, msg := fn(v)
	simlog.Info().
		Str("action", string(action)).
		Int("value", v).
		Bool("ok", ok).
		Msg(msg)

	if ok && action != ActionSearch {
		s.publishLocked(action)
	}

	return Result{
		Action:  action,
		Value:   v,
		OK:      ok,
		Message: msg,
		Display: s.list.Display(),
	}, nil
}

func (s *Simulator) publishLocked(action Action) {
	s.pubsub.Publish(Event{
		Action: action,
		State:  s.stateLocked(),
	})
}

func (s *Simulator) stateLocked() State {
	values := s.list.Values()
	if values == nil {
		values = []int{}
	}
	return State{
		Display: s.list.Display(),
		Values:  values,
		Length:  len(values),
	}
}
