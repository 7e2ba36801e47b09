package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrault/phraseur/internal/batch"
	"github.com/aperrault/phraseur/internal/domain"
)

func newProblemFixture(t *testing.T, gen *scriptedGenerator) (ProblemService, *memSentenceStore, *memVerbStore) {
	t.Helper()

	sentences := newMemSentenceStore()
	verbs := newMemVerbStore()
	seedVerb(t, verbs, "manger", domain.AuxiliaryAvoir)

	sentenceSvc := NewSentenceService(gen, sentences, verbs, rand.New(rand.NewSource(1)), nil)
	problemSvc := NewProblemService(sentenceSvc, verbs, rand.New(rand.NewSource(2)), nil)
	return problemSvc, sentences, verbs
}

func okGenerator() *scriptedGenerator {
	return &scriptedGenerator{fn: func(prompt string) (string, error) {
		return generationReplyJSON("Une phrase.", "none", "none", "none", true), nil
	}}
}

func TestProblemRandom(t *testing.T) {
	t.Run("DrawsVerbFromStore", func(t *testing.T) {
		svc, sentences, _ := newProblemFixture(t, okGenerator())

		sentence, err := svc.Random(context.Background(), ProblemRequest{})
		require.NoError(t, err)
		assert.Equal(t, "manger", sentence.Infinitive, "empty infinitive draws from the verb store")
		assert.Equal(t, domain.AuxiliaryAvoir, sentence.Auxiliary)
		assert.Equal(t, 1, sentences.count())
	})

	t.Run("ExplicitInfinitiveKept", func(t *testing.T) {
		svc, _, _ := newProblemFixture(t, okGenerator())

		req := ProblemRequest{}
		req.Infinitive = "parler"

		sentence, err := svc.Random(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "parler", sentence.Infinitive)
	})

	t.Run("EmptyVerbStoreFails", func(t *testing.T) {
		sentences := newMemSentenceStore()
		verbs := newMemVerbStore()
		sentenceSvc := NewSentenceService(okGenerator(), sentences, verbs, rand.New(rand.NewSource(1)), nil)
		svc := NewProblemService(sentenceSvc, verbs, rand.New(rand.NewSource(2)), nil)

		_, err := svc.Random(context.Background(), ProblemRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to pick a random verb")
	})

	t.Run("RandomCorrectnessFlipsCoin", func(t *testing.T) {
		var sawCorrect, sawIncorrect bool
		gen := &scriptedGenerator{fn: func(prompt string) (string, error) {
			correct := !strings.Contains(prompt, "must be grammatically incorrect")
			if correct {
				sawCorrect = true
			} else {
				sawIncorrect = true
			}
			return generationReplyJSON("Une phrase.", "none", "none", "none", correct), nil
		}}
		svc, _, _ := newProblemFixture(t, gen)

		for i := 0; i < 30; i++ {
			_, err := svc.Random(context.Background(), ProblemRequest{RandomCorrectness: true})
			require.NoError(t, err)
		}
		assert.True(t, sawCorrect, "some problems are generated correct")
		assert.True(t, sawIncorrect, "some problems are generated incorrect")
	})
}

func TestProblemBatch(t *testing.T) {
	t.Run("GeneratesQuantitySentences", func(t *testing.T) {
		svc, sentences, _ := newProblemFixture(t, okGenerator())

		results, err := svc.Batch(context.Background(), 4, 10, ProblemRequest{})
		require.NoError(t, err)
		assert.Len(t, results, 10)
		assert.Equal(t, 10, sentences.count())
	})

	t.Run("PartialFailuresAreSkipped", func(t *testing.T) {
		var calls int32
		gen := &scriptedGenerator{fn: func(prompt string) (string, error) {
			if atomic.AddInt32(&calls, 1)%3 == 0 {
				return "", errors.New("model hiccup")
			}
			return generationReplyJSON("Une phrase.", "none", "none", "none", true), nil
		}}
		svc, sentences, _ := newProblemFixture(t, gen)

		results, err := svc.Batch(context.Background(), 2, 9, ProblemRequest{})
		require.NoError(t, err, "individual failures never fail the batch")
		assert.Len(t, results, 6)
		assert.Equal(t, 6, sentences.count())
	})

	t.Run("InvalidWorkers", func(t *testing.T) {
		svc, _, _ := newProblemFixture(t, okGenerator())
		_, err := svc.Batch(context.Background(), 0, 5, ProblemRequest{})
		assert.ErrorIs(t, err, batch.ErrInvalidWorkerCount)
	})

	t.Run("Cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc, _, _ := newProblemFixture(t, okGenerator())
		_, err := svc.Batch(ctx, 2, 5, ProblemRequest{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
