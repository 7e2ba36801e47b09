package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/feature"
	"github.com/aperrault/phraseur/internal/store"
	"github.com/aperrault/phraseur/migrations"
)

// testStores bundles the three stores over one migrated test database.
type testStores struct {
	verbs        *PostgresVerbStore
	conjugations *PostgresConjugationStore
	sentences    *PostgresSentenceStore
}

// testDB opens a migrated database, skipping when PHRASEUR_TEST_DB_URL is
// unset. The tables are truncated so each test starts empty.
func testDB(t *testing.T) testStores {
	t.Helper()

	url := os.Getenv("PHRASEUR_TEST_DB_URL")
	if url == "" {
		t.Skip("PHRASEUR_TEST_DB_URL not set, skipping database integration tests")
	}

	ctx := context.Background()
	db, err := Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."))

	_, err = db.ExecContext(ctx, "TRUNCATE verbs, conjugations, sentences CASCADE")
	require.NoError(t, err)

	return testStores{
		verbs:        NewPostgresVerbStore(db, nil),
		conjugations: NewPostgresConjugationStore(db, nil),
		sentences:    NewPostgresSentenceStore(db, nil),
	}
}

func mustVerb(t *testing.T, infinitive, auxiliary string) *domain.Verb {
	t.Helper()
	verb, err := domain.NewVerb(infinitive, auxiliary, "to "+infinitive)
	require.NoError(t, err)
	return verb
}

func TestVerbStoreRoundTrip(t *testing.T) {
	stores := testDB(t)
	verbs := stores.verbs
	ctx := context.Background()

	verb := mustVerb(t, "parler", domain.AuxiliaryAvoir)
	require.NoError(t, verbs.Upsert(ctx, verb))

	got, err := verbs.GetByInfinitive(ctx, "parler")
	require.NoError(t, err)
	assert.Equal(t, verb.ID, got.ID)
	assert.Equal(t, domain.AuxiliaryAvoir, got.Auxiliary)

	t.Run("UpsertKeepsID", func(t *testing.T) {
		updated := mustVerb(t, "parler", domain.AuxiliaryAvoir)
		updated.Translation = "to talk"
		require.NoError(t, verbs.Upsert(ctx, updated))
		assert.Equal(t, verb.ID, updated.ID, "the stored row's ID is written back on update")

		got, err := verbs.GetByInfinitive(ctx, "parler")
		require.NoError(t, err)
		assert.Equal(t, "to talk", got.Translation)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := verbs.GetByInfinitive(ctx, "xylophoner")
		assert.ErrorIs(t, err, store.ErrVerbNotFound)
	})

	t.Run("Random", func(t *testing.T) {
		got, err := verbs.Random(ctx)
		require.NoError(t, err)
		assert.Equal(t, "parler", got.Infinitive)
	})
}

func TestConjugationStoreRoundTrip(t *testing.T) {
	stores := testDB(t)
	verbs := stores.verbs
	ctx := context.Background()

	verb := mustVerb(t, "finir", domain.AuxiliaryAvoir)
	require.NoError(t, verbs.Upsert(ctx, verb))

	c, err := domain.NewConjugation(verb.ID, domain.TensePresent, map[string]string{"je": "finis", "nous": "finissons"})
	require.NoError(t, err)
	require.NoError(t, stores.conjugations.Upsert(ctx, c))

	got, err := stores.conjugations.GetByVerbAndTense(ctx, verb.ID, domain.TensePresent)
	require.NoError(t, err)
	assert.Equal(t, "finis", got.Forms["je"])

	t.Run("UpsertMergesByNaturalKey", func(t *testing.T) {
		again, err := domain.NewConjugation(verb.ID, domain.TensePresent, map[string]string{"je": "finis", "tu": "finis"})
		require.NoError(t, err)
		require.NoError(t, stores.conjugations.Upsert(ctx, again))
		assert.Equal(t, c.ID, again.ID)

		list, err := stores.conjugations.ListByVerb(ctx, verb.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		orphan, err := domain.NewConjugation(mustVerb(t, "x", domain.AuxiliaryAvoir).ID, domain.TensePresent, map[string]string{"je": "x"})
		require.NoError(t, err)
		assert.Error(t, stores.conjugations.Upsert(ctx, orphan))
	})
}

func TestSentenceStoreRoundTrip(t *testing.T) {
	stores := testDB(t)
	ctx := context.Background()

	sentence, err := domain.NewSentence(
		"manger", domain.AuxiliaryAvoir, domain.PronounJe, domain.TensePasseCompose,
		feature.Value{Kind: feature.KindDirectObject, Name: "feminine"},
		feature.None(feature.KindIndirectPronoun),
		feature.Value{Kind: feature.KindNegation, Name: "pas"},
		true,
	)
	require.NoError(t, err)
	sentence.SetContent("Je ne l'ai pas mangée.", "I did not eat it.")

	require.NoError(t, stores.sentences.Create(ctx, sentence))

	got, err := stores.sentences.GetByID(ctx, sentence.ID)
	require.NoError(t, err)
	assert.Equal(t, sentence.Content, got.Content)
	assert.Equal(t, feature.KindDirectObject, got.DirectObject.Kind, "feature kinds are reconstructed on read")
	assert.Equal(t, "feminine", got.DirectObject.Name)
	assert.True(t, got.IndirectPronoun.IsNone())

	t.Run("List", func(t *testing.T) {
		list, err := stores.sentences.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Random", func(t *testing.T) {
		got, err := stores.sentences.Random(ctx)
		require.NoError(t, err)
		assert.Equal(t, sentence.ID, got.ID)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := stores.sentences.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrSentenceNotFound)
	})
}
