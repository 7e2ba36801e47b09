package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/generation"
	"github.com/aperrault/phraseur/internal/store"
)

// In-memory doubles shared by the service tests.

// scriptedGenerator returns canned replies in order, or calls fn when set.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies []string
	err     error
	fn      func(prompt string) (string, error)
	prompts []string
}

var _ generation.Generator = (*scriptedGenerator)(nil)

func (g *scriptedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prompts = append(g.prompts, prompt)

	if g.fn != nil {
		return g.fn(prompt)
	}
	if g.err != nil {
		return "", g.err
	}
	if len(g.replies) == 0 {
		return "", nil
	}
	reply := g.replies[0]
	if len(g.replies) > 1 {
		g.replies = g.replies[1:]
	}
	return reply, nil
}

// generationReplyJSON builds a well-formed generation reply.
func generationReplyJSON(sentence, negation, directObject, indirectPronoun string, isCorrect bool) string {
	correct := "false"
	if isCorrect {
		correct = "true"
	}
	out, _ := json.Marshal(map[string]string{
		"sentence":         sentence,
		"translation":      "translation of " + sentence,
		"is_correct":       correct,
		"negation":         negation,
		"direct_object":    directObject,
		"indirect_pronoun": indirectPronoun,
	})
	return string(out)
}

// memVerbStore is an in-memory VerbStore keyed by infinitive.
type memVerbStore struct {
	mu    sync.Mutex
	verbs map[string]*domain.Verb
	order []string
}

var _ store.VerbStore = (*memVerbStore)(nil)

func newMemVerbStore() *memVerbStore {
	return &memVerbStore{verbs: make(map[string]*domain.Verb)}
}

func (m *memVerbStore) Upsert(ctx context.Context, verb *domain.Verb) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.verbs[verb.Infinitive]; ok {
		verb.ID = existing.ID
		verb.CreatedAt = existing.CreatedAt
	} else {
		m.order = append(m.order, verb.Infinitive)
	}
	copied := *verb
	m.verbs[verb.Infinitive] = &copied
	return nil
}

func (m *memVerbStore) GetByInfinitive(ctx context.Context, infinitive string) (*domain.Verb, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	verb, ok := m.verbs[infinitive]
	if !ok {
		return nil, store.ErrVerbNotFound
	}
	copied := *verb
	return &copied, nil
}

func (m *memVerbStore) Random(ctx context.Context) (*domain.Verb, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.order) == 0 {
		return nil, store.ErrEmptyStore
	}
	copied := *m.verbs[m.order[0]]
	return &copied, nil
}

// memConjugationStore is an in-memory ConjugationStore keyed by (verb, tense).
type memConjugationStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]map[domain.Tense]*domain.Conjugation
}

var _ store.ConjugationStore = (*memConjugationStore)(nil)

func newMemConjugationStore() *memConjugationStore {
	return &memConjugationStore{rows: make(map[uuid.UUID]map[domain.Tense]*domain.Conjugation)}
}

func (m *memConjugationStore) Upsert(ctx context.Context, c *domain.Conjugation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byTense, ok := m.rows[c.VerbID]
	if !ok {
		byTense = make(map[domain.Tense]*domain.Conjugation)
		m.rows[c.VerbID] = byTense
	}
	if existing, ok := byTense[c.Tense]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	}
	copied := *c
	byTense[c.Tense] = &copied
	return nil
}

func (m *memConjugationStore) GetByVerbAndTense(ctx context.Context, verbID uuid.UUID, tense domain.Tense) (*domain.Conjugation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.rows[verbID][tense]
	if !ok {
		return nil, store.ErrConjugationNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memConjugationStore) ListByVerb(ctx context.Context, verbID uuid.UUID) ([]*domain.Conjugation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.Conjugation
	for _, c := range m.rows[verbID] {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

// memSentenceStore is an in-memory SentenceStore.
type memSentenceStore struct {
	mu        sync.Mutex
	sentences []*domain.Sentence
	createErr error
}

var _ store.SentenceStore = (*memSentenceStore)(nil)

func newMemSentenceStore() *memSentenceStore {
	return &memSentenceStore{}
}

func (m *memSentenceStore) Create(ctx context.Context, sentence *domain.Sentence) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	copied := *sentence
	m.sentences = append(m.sentences, &copied)
	return nil
}

func (m *memSentenceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sentences {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, store.ErrSentenceNotFound
}

func (m *memSentenceStore) Random(ctx context.Context) (*domain.Sentence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sentences) == 0 {
		return nil, store.ErrEmptyStore
	}
	copied := *m.sentences[0]
	return &copied, nil
}

func (m *memSentenceStore) List(ctx context.Context, limit, offset int) ([]*domain.Sentence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if offset >= len(m.sentences) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.sentences) {
		end = len(m.sentences)
	}
	out := make([]*domain.Sentence, 0, end-offset)
	for _, s := range m.sentences[offset:end] {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memSentenceStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sentences)
}
