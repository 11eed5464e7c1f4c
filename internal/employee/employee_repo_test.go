package employee_test

import (
	"context"
	"testing"

	"go-worksphere/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) employee.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&employee.Employee{}))

	return employee.NewRepository(db)
}

func seed(t *testing.T, repo employee.Repository, empls ...*employee.Employee) {
	t.Helper()
	for _, e := range empls {
		require.NoError(t, repo.Create(context.Background(), e))
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	empl := &employee.Employee{
		FirstName:  "Alice",
		LastName:   "Smith",
		Email:      "alice@x.com",
		Department: "Engineering",
		Position:   "Engineer",
	}
	seed(t, repo, empl)
	assert.NotZero(t, empl.ID)

	found, err := repo.FindByID(ctx, empl.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice@x.com", found.Email)

	_, err = repo.FindByID(ctx, empl.ID+1000)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DuplicateEmailRejected(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	seed(t, repo, &employee.Employee{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com",
		Department: "Engineering", Position: "Engineer",
	})

	err := repo.Create(ctx, &employee.Employee{
		FirstName: "Alicia", LastName: "Stone", Email: "alice@x.com",
		Department: "HR", Position: "Manager",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestRepository_ExistsByEmailIsCaseSensitive(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	seed(t, repo, &employee.Employee{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com",
		Department: "Engineering", Position: "Engineer",
	})

	exists, err := repo.ExistsByEmail(ctx, "alice@x.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "Alice@x.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_Search(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	seed(t, repo,
		&employee.Employee{FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", Department: "Eng", Position: "Engineer"},
		&employee.Employee{FirstName: "Bob", LastName: "Jones", Email: "bob@x.com", Department: "Eng", Position: "Engineer"},
		&employee.Employee{FirstName: "Carol", LastName: "Alindogan", Email: "carol@x.com", Department: "HR", Position: "Manager"},
	)

	// case-insensitive substring over first name, last name, and email
	found, err := repo.Search(ctx, "ALI")
	assert.NoError(t, err)
	if assert.Len(t, found, 2) {
		assert.Equal(t, "Alice", found[0].FirstName)
		assert.Equal(t, "Carol", found[1].FirstName)
	}

	found, err = repo.Search(ctx, "jones")
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Bob", found[0].FirstName)
	}
}

func TestRepository_SearchWithFilters(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	seed(t, repo,
		&employee.Employee{FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", Department: "Eng", Position: "Engineer", Status: "Active"},
		&employee.Employee{FirstName: "Bob", LastName: "Jones", Email: "bob@x.com", Department: "Eng", Position: "Engineer", Status: "Inactive"},
		&employee.Employee{FirstName: "Alina", LastName: "Brown", Email: "alina@x.com", Department: "HR", Position: "Manager", Status: "Active"},
	)

	t.Run("department only equals FindByDepartment", func(t *testing.T) {
		filtered, err := repo.SearchWithFilters(ctx, "", "Eng", "")
		assert.NoError(t, err)

		direct, err2 := repo.FindByDepartment(ctx, "Eng")
		assert.NoError(t, err2)

		assert.Equal(t, direct, filtered)
		assert.Len(t, filtered, 2)
	})

	t.Run("filters AND together", func(t *testing.T) {
		found, err := repo.SearchWithFilters(ctx, "ali", "Eng", "Active")
		assert.NoError(t, err)
		if assert.Len(t, found, 1) {
			assert.Equal(t, "Alice", found[0].FirstName)
		}
	})

	t.Run("no filters match all", func(t *testing.T) {
		found, err := repo.SearchWithFilters(ctx, "", "", "")
		assert.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("department match is case-sensitive", func(t *testing.T) {
		found, err := repo.FindByDepartment(ctx, "eng")
		assert.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("status path filter", func(t *testing.T) {
		found, err := repo.FindByStatus(ctx, "Active")
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	empl := &employee.Employee{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com",
		Department: "Eng", Position: "Engineer",
	}
	seed(t, repo, empl)

	assert.NoError(t, repo.Delete(ctx, empl.ID))
	assert.ErrorIs(t, repo.Delete(ctx, empl.ID), gorm.ErrRecordNotFound)
}
