package category_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/validation"
)

func TestNewCategory(t *testing.T) {
	c, err := category.NewCategory("Movies", "Feature films", true)

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Movies", c.Name)
	assert.Equal(t, "Feature films", c.Description)
	assert.True(t, c.Active)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	assert.Nil(t, c.DeletedAt)
}

func TestNewCategoryInactiveStartsDeleted(t *testing.T) {
	c, err := category.NewCategory("Movies", "", false)

	require.NoError(t, err)
	assert.False(t, c.Active)
	require.NotNil(t, c.DeletedAt)
}

func TestNewCategoryNameValidation(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"unset", "", "'name' should not be null"},
		{"blank", "   ", "'name' should not be empty"},
		{"too long", strings.Repeat("a", 256), "'name' must be between 1 and 255 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := category.NewCategory(tc.input, "description", true)

			require.Error(t, err)
			var notificationErr *validation.NotificationError
			require.ErrorAs(t, err, &notificationErr)
			assert.Equal(t, "Failed to create Aggregate Category", notificationErr.Message)
			require.Len(t, notificationErr.Errors(), 1)
			assert.Equal(t, tc.expected, notificationErr.Errors()[0].Message)
		})
	}
}

func TestCategoryUpdate(t *testing.T) {
	c, err := category.NewCategory("Moveis", "", true)
	require.NoError(t, err)
	createdAt := c.CreatedAt
	updatedAt := c.UpdatedAt

	time.Sleep(time.Millisecond)
	err = c.Update("Movies", "Feature films", true)

	require.NoError(t, err)
	assert.Equal(t, "Movies", c.Name)
	assert.Equal(t, "Feature films", c.Description)
	assert.Equal(t, createdAt, c.CreatedAt)
	assert.True(t, c.UpdatedAt.After(updatedAt))
}

func TestCategoryUpdateInvalidName(t *testing.T) {
	c, err := category.NewCategory("Movies", "", true)
	require.NoError(t, err)

	err = c.Update("", "Feature films", true)

	require.Error(t, err)
	var notificationErr *validation.NotificationError
	require.ErrorAs(t, err, &notificationErr)
	assert.Equal(t, "Failed to update Aggregate Category", notificationErr.Message)
}

func TestCategoryDeactivateKeepsFirstDeletedAt(t *testing.T) {
	c, err := category.NewCategory("Movies", "", true)
	require.NoError(t, err)

	c.Deactivate()
	require.NotNil(t, c.DeletedAt)
	first := *c.DeletedAt

	time.Sleep(time.Millisecond)
	c.Deactivate()

	assert.False(t, c.Active)
	assert.Equal(t, first, *c.DeletedAt)
}

func TestCategoryActivateClearsDeletedAt(t *testing.T) {
	c, err := category.NewCategory("Movies", "", false)
	require.NoError(t, err)
	require.NotNil(t, c.DeletedAt)

	c.Activate()

	assert.True(t, c.Active)
	assert.Nil(t, c.DeletedAt)
}

func TestCategoryUpdateBumpsUpdatedAtEvenWhenIdempotent(t *testing.T) {
	c, err := category.NewCategory("Movies", "Feature films", true)
	require.NoError(t, err)
	updatedAt := c.UpdatedAt

	time.Sleep(time.Millisecond)
	err = c.Update("Movies", "Feature films", true)

	require.NoError(t, err)
	assert.True(t, c.UpdatedAt.After(updatedAt))
}

func TestNewCategoryCountsNameLengthInCharacters(t *testing.T) {
	name := strings.Repeat("é", 255)
	c, err := category.NewCategory(name, "Feature films", true)

	require.NoError(t, err)
	assert.Equal(t, name, c.Name)

	_, err = category.NewCategory(strings.Repeat("é", 256), "Feature films", true)

	require.Error(t, err)
	var notificationErr *validation.NotificationError
	require.ErrorAs(t, err, &notificationErr)
	assert.Equal(t, "'name' must be between 1 and 255 characters", notificationErr.Errors()[0].Message)
}

func TestWithCategoryCopiesEveryField(t *testing.T) {
	c, err := category.NewCategory("Movies", "Feature films", false)
	require.NoError(t, err)

	copied := category.WithCategory(c)

	assert.Equal(t, c, copied)
	assert.NotSame(t, c, copied)
}
