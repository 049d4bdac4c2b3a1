package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Word(t *testing.T) {
	s := NewStore()

	w := s.Word("apple")
	assert.Equal(t, "apple", w.WordID)
	assert.Equal(t, 0, w.Familiarity)
	assert.Nil(t, w.LastSeenAt)
	assert.Nil(t, w.NextReviewAt)
	assert.Equal(t, 0, w.CorrectCount)
	assert.Equal(t, 0, w.IncorrectCount)

	// same pointer on repeat access
	w.Familiarity = 3
	assert.Same(t, w, s.Word("apple"))
	assert.Equal(t, 3, s.Word("apple").Familiarity)
}

func TestStore_Word_NilMap(t *testing.T) {
	// a store decoded from an empty persisted record has a nil word map
	s := &Store{}

	w := s.Word("apple")
	assert.NotNil(t, w)
	assert.Len(t, s.Words, 1)
}

func TestStore_PushHistory(t *testing.T) {
	s := NewStore()

	s.PushHistory("a")
	s.PushHistory("b")
	s.PushHistory("b") // adjacent duplicate is dropped
	s.PushHistory("a") // non-adjacent repeat is kept

	assert.Equal(t, []string{"a", "b", "a"}, s.History)
}

func TestStore_PushHistory_Bounded(t *testing.T) {
	s := NewStore()

	for i := 0; i < HistoryLimit+20; i++ {
		s.PushHistory(fmt.Sprintf("word-%d", i))
	}

	assert.Len(t, s.History, HistoryLimit)
	// newest entry first, oldest entries dropped
	assert.Equal(t, fmt.Sprintf("word-%d", HistoryLimit+19), s.History[0])
	assert.Equal(t, "word-20", s.History[HistoryLimit-1])
}
