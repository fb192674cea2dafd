package gorm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/pagination"
	gormpersistence "github.com/streamvault/catalog/internal/infrastructure/persistence/gorm"
	apperrors "github.com/streamvault/catalog/pkg/errors"
)

func newCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c, err := category.NewCategory(name, "description", true)
	require.NoError(t, err)
	return c
}

func TestCategoryRepositoryRoundTrip(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)
	ctx := context.Background()

	c := newCategory(t, "Movies")
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
	assert.Equal(t, "Movies", found.Name)
	assert.Equal(t, "description", found.Description)
	assert.True(t, found.Active)
	assert.Nil(t, found.DeletedAt)
}

func TestCategoryRepositoryFindByIDNotFound(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)

	id := category.NewID()
	_, err := repo.FindByID(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Category with ID "+id.String()+" was not found")
}

func TestCategoryRepositoryUpdate(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)
	ctx := context.Background()

	c := newCategory(t, "Moveis")
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	require.NoError(t, c.Update("Movies", "fixed", false))
	_, err = repo.Update(ctx, c)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Movies", found.Name)
	assert.False(t, found.Active)
	require.NotNil(t, found.DeletedAt)
}

func TestCategoryRepositoryDeleteAbsentIsNoop(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)

	err := repo.DeleteByID(context.Background(), category.NewID())

	require.NoError(t, err)
}

func TestCategoryRepositoryDelete(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)
	ctx := context.Background()

	c := newCategory(t, "Movies")
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, c.ID))

	_, err = repo.FindByID(ctx, c.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryRepositoryFindAll(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Movies", "Series", "Documentaries"} {
		_, err := repo.Create(ctx, newCategory(t, name))
		require.NoError(t, err)
	}

	page, err := repo.FindAll(ctx, pagination.SearchQuery{
		Page: 0, PerPage: 2, Sort: "name", Direction: "asc",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Documentaries", page.Items[0].Name)
	assert.Equal(t, "Movies", page.Items[1].Name)

	second, err := repo.FindAll(ctx, pagination.SearchQuery{
		Page: 1, PerPage: 2, Sort: "name", Direction: "asc",
	})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "Series", second.Items[0].Name)
}

func TestCategoryRepositoryFindAllTerms(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Movies", "Series"} {
		_, err := repo.Create(ctx, newCategory(t, name))
		require.NoError(t, err)
	}

	page, err := repo.FindAll(ctx, pagination.SearchQuery{Terms: "mov", PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Movies", page.Items[0].Name)
}

func TestCategoryRepositoryExistsByIDs(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCategoryRepository(db)
	ctx := context.Background()

	c := newCategory(t, "Movies")
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	found, err := repo.ExistsByIDs(ctx, []category.ID{c.ID, category.IDFrom("missing")})
	require.NoError(t, err)

	assert.Equal(t, []category.ID{c.ID}, found)
}
