package store

import (
	"context"
	"encoding/json"
	"strconv"
)

func (s *JSONStore) NextUserID(ctx context.Context) (id int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Counters, "next_user_id", err) }()

	return s.next(ctx, userCounterKey, Users)
}

func (s *JSONStore) NextNoteID(ctx context.Context) (id int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(Counters, "next_note_id", err) }()

	return s.next(ctx, noteCounterKey, Notes)
}

// next increments the counter stored under key and persists it before
// returning the new value. An unreadable counter is rebuilt from the highest
// ID present in owner so that IDs are not reused. Callers hold s.mu.
func (s *JSONStore) next(ctx context.Context, key string, owner Collection) (int, error) {
	counters := s.load(ctx, Counters)

	var current int
	if raw, ok := counters[key]; !ok || json.Unmarshal(raw, &current) != nil || current < 0 {
		current = s.highestID(ctx, owner)
		s.log.Warn(ctx, "counter unreadable, rebuilt from records", "counter", key, "value", current)
	}

	current++
	counters[key] = json.RawMessage(strconv.Itoa(current))
	if err := s.save(ctx, Counters, counters); err != nil {
		return 0, err
	}
	return current, nil
}

func (s *JSONStore) highestID(ctx context.Context, c Collection) int {
	highest := 0
	for key := range s.load(ctx, c) {
		if id, err := strconv.Atoi(key); err == nil && id > highest {
			highest = id
		}
	}
	return highest
}
