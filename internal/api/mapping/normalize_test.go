package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Scalars(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	author := authorEntity{ID: 7, Name: "Calvino", Secret: "internal", CreatedAt: created}

	data, err := n.Normalize(author)
	require.NoError(t, err)

	assert.Equal(t, uint(7), data["ID"])
	assert.Equal(t, "Calvino", data["Name"])
	assert.Equal(t, "2024-03-01T10:30:00Z", data["CreatedAt"])
	// Non-serializable fields never appear, not even as null.
	_, present := data["Secret"]
	assert.False(t, present)
}

func TestNormalize_UnsetValuesOmitted(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	book := bookEntity{ID: 3, Title: "Invisible Cities"}

	data, err := n.Normalize(book)
	require.NoError(t, err)

	assert.Equal(t, uint(3), data["ID"])
	_, present := data["Author"]
	assert.False(t, present, "nil relation pointer must be omitted")
	_, present = data["PublishedAt"]
	assert.False(t, present, "nil time pointer must be omitted")

	author, err := n.Normalize(authorEntity{ID: 1, Name: "x"})
	require.NoError(t, err)
	_, present = author["CreatedAt"]
	assert.False(t, present, "zero time must be omitted")
	_, present = author["Books"]
	assert.False(t, present, "nil collection must be omitted")
}

func TestNormalize_RelationsBecomeResources(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	published := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	author := authorEntity{
		ID:   1,
		Name: "Calvino",
		Books: []bookEntity{
			{ID: 10, AuthorID: 1, Title: "Invisible Cities", PublishedAt: &published},
			{ID: 11, AuthorID: 1, Title: "If on a winter's night"},
		},
	}

	data, err := n.Normalize(author)
	require.NoError(t, err)

	books, ok := data["Books"].([]any)
	require.True(t, ok)
	require.Len(t, books, 2)

	first, ok := books[0].(bookResource)
	require.True(t, ok)
	require.NotNil(t, first.ID)
	assert.Equal(t, uint(10), *first.ID)
	assert.Equal(t, "Invisible Cities", *first.Title)
	require.NotNil(t, first.PublishedAt)
	assert.True(t, published.Equal(*first.PublishedAt))
}

func TestNormalize_CycleGuard(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	author := authorEntity{ID: 1, Name: "Calvino"}
	book := bookEntity{ID: 10, AuthorID: 1, Author: &author, Title: "Invisible Cities"}
	author.Books = []bookEntity{book}

	data, err := n.Normalize(author)
	require.NoError(t, err)

	books := data["Books"].([]any)
	require.Len(t, books, 1)
	// The back-reference cycles onto a type already on the path and is
	// dropped instead of recursing forever.
	assert.Nil(t, books[0].(bookResource).Author)
}

func TestNormalize_NilEntity(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	var author *authorEntity
	_, err := n.Normalize(author)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUninitializedEntity)

	_, err = n.NormalizeToResource(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUninitializedEntity)
}

func TestNormalize_UnmappedEntity(t *testing.T) {
	n := NewEntityNormalizer(NewClassMapper())

	_, err := n.Normalize(authorEntity{ID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnmappedType)
}

func TestNormalizeToResource(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	author := authorEntity{
		ID:        1,
		Name:      "Calvino",
		CreatedAt: created,
		Books:     []bookEntity{{ID: 10, AuthorID: 1, Title: "Invisible Cities"}},
	}

	out, err := n.NormalizeToResource(author)
	require.NoError(t, err)

	res, ok := out.(authorResource)
	require.True(t, ok)
	require.NotNil(t, res.ID)
	assert.Equal(t, uint(1), *res.ID)
	assert.Equal(t, "Calvino", *res.Name)
	require.NotNil(t, res.CreatedAt)
	assert.True(t, created.Equal(*res.CreatedAt))
	require.Len(t, res.Books, 1)
	assert.Equal(t, "Invisible Cities", *res.Books[0].Title)
}

func TestNormalizeToResource_PointerEntity(t *testing.T) {
	n := NewEntityNormalizer(newTestClasses())

	out, err := n.NormalizeToResource(&bookEntity{ID: 4, Title: "Marcovaldo"})
	require.NoError(t, err)

	res := out.(bookResource)
	assert.Equal(t, uint(4), *res.ID)
	assert.Equal(t, "Marcovaldo", *res.Title)
}
