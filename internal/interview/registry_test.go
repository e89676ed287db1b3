package interview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridhire/gridhire/internal/utils"
)

func TestRegistryUnknownIDReturnsNotFound(t *testing.T) {
	r := NewRegistry()

	err := r.With("nope", func(*Session) error {
		t.Fatal("fn must not run for an unknown id")
		return nil
	})

	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRegistryPutAndWith(t *testing.T) {
	r := NewRegistry()
	s := NewSession("Priya")
	r.Put(s)

	var got string
	err := r.With(s.ID, func(sess *Session) error {
		got = sess.CandidateName
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, "Priya", got)
	require.Equal(t, 1, r.Len())
}

func TestRegistrySerializesSameSession(t *testing.T) {
	r := NewRegistry()
	s := NewSession("Priya")
	s.SetQuestions(questionSet(1000))
	r.Put(s)

	// 100 concurrent turn appends; without the per-session lock the slice
	// append would race and drop entries.
	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = r.With(s.ID, func(sess *Session) error {
				sess.AddTurn("candidate", "x")
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, r.With(s.ID, func(sess *Session) error {
		require.Len(t, sess.Turns, workers)
		return nil
	}))
}
