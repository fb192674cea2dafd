package gorm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/pagination"
	gormpersistence "github.com/streamvault/catalog/internal/infrastructure/persistence/gorm"
	apperrors "github.com/streamvault/catalog/pkg/errors"
)

func newCastMember(t *testing.T, name string, memberType castmember.Type) *castmember.CastMember {
	t.Helper()
	member, err := castmember.NewCastMember(name, memberType)
	require.NoError(t, err)
	return member
}

func TestCastMemberRepositoryRoundTrip(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCastMemberRepository(db)
	ctx := context.Background()

	member := newCastMember(t, "Mary Doe", castmember.TypeActor)
	_, err := repo.Create(ctx, member)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, found.ID)
	assert.Equal(t, "Mary Doe", found.Name)
	assert.Equal(t, castmember.TypeActor, found.Type)
}

func TestCastMemberRepositoryFindByIDNotFound(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCastMemberRepository(db)

	id := castmember.NewID()
	_, err := repo.FindByID(context.Background(), id)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "CastMember with ID "+id.String()+" was not found")
}

func TestCastMemberRepositoryUpdate(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCastMemberRepository(db)
	ctx := context.Background()

	member := newCastMember(t, "Mary De", castmember.TypeDirector)
	_, err := repo.Create(ctx, member)
	require.NoError(t, err)

	require.NoError(t, member.Update("Mary Doe", castmember.TypeActor))
	_, err = repo.Update(ctx, member)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mary Doe", found.Name)
	assert.Equal(t, castmember.TypeActor, found.Type)
}

func TestCastMemberRepositoryDelete(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCastMemberRepository(db)
	ctx := context.Background()

	member := newCastMember(t, "Mary Doe", castmember.TypeActor)
	_, err := repo.Create(ctx, member)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, member.ID))

	_, err = repo.FindByID(ctx, member.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCastMemberRepositoryFindAll(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCastMemberRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newCastMember(t, "Mary Doe", castmember.TypeActor))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newCastMember(t, "John Smith", castmember.TypeDirector))
	require.NoError(t, err)

	page, err := repo.FindAll(ctx, pagination.SearchQuery{Terms: "doe", PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mary Doe", page.Items[0].Name)
}

func TestCastMemberRepositoryExistsByIDs(t *testing.T) {
	db := gormpersistence.NewTestDB(t)
	repo := gormpersistence.NewCastMemberRepository(db)
	ctx := context.Background()

	member := newCastMember(t, "Mary Doe", castmember.TypeActor)
	_, err := repo.Create(ctx, member)
	require.NoError(t, err)

	found, err := repo.ExistsByIDs(ctx, []castmember.ID{member.ID, castmember.IDFrom("missing")})
	require.NoError(t, err)

	assert.Equal(t, []castmember.ID{member.ID}, found)
}
