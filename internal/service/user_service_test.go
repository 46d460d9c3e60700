package service

import (
	"testing"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_HashesPasswordAndRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepo(db))

	created, err := users.CreateUser(&CreateUserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Role:     model.RoleSalesPerson,
		Password: "letmein",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "letmein", created.Password)
	assert.True(t, created.CheckPassword("letmein"))
	assert.False(t, created.CheckPassword("wrong"))

	_, err = users.CreateUser(&CreateUserRequest{
		Name:     "Sam Again",
		Email:    "sam@example.com",
		Role:     model.RoleAdmin,
		Password: "another1",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestCreateUser_UnknownRoleRejected(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepo(db))

	_, err := users.CreateUser(&CreateUserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Role:     model.Role("Intern"),
		Password: "letmein",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestCreateUser_ShortPasswordRejected(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepo(db))

	_, err := users.CreateUser(&CreateUserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Role:     model.RoleAdmin,
		Password: "abc",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdateUser_PartialFieldsAndRoleGuard(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepo(db))

	created, err := users.CreateUser(&CreateUserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Role:     model.RoleSalesPerson,
		Password: "letmein",
	})
	require.NoError(t, err)

	updated, err := users.UpdateUser(created.ID, &UpdateUserRequest{Name: "Samuel"})
	require.NoError(t, err)
	assert.Equal(t, "Samuel", updated.Name)
	assert.Equal(t, "sam@example.com", updated.Email)
	assert.Equal(t, model.RoleSalesPerson, updated.Role)
	assert.True(t, updated.CheckPassword("letmein"))

	_, err = users.UpdateUser(created.ID, &UpdateUserRequest{Role: model.Role("Intern")})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestLogin_ReturnsTokenWithUserClaims(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepo(db))
	auth := NewAuthService(repository.NewUserRepo(db))

	created, err := users.CreateUser(&CreateUserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Role:     model.RoleAdmin,
		Password: "letmein",
	})
	require.NoError(t, err)

	resp, err := auth.Login("sam@example.com", "letmein")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.User.ID)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLogin_SameErrorForUnknownUserAndBadPassword(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(repository.NewUserRepo(db))
	auth := NewAuthService(repository.NewUserRepo(db))

	_, err := users.CreateUser(&CreateUserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Role:     model.RoleAdmin,
		Password: "letmein",
	})
	require.NoError(t, err)

	_, missingErr := auth.Login("nobody@example.com", "letmein")
	_, badPassErr := auth.Login("sam@example.com", "wrong")

	require.Error(t, missingErr)
	require.Error(t, badPassErr)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(missingErr))
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(badPassErr))
	assert.Equal(t, missingErr.Error(), badPassErr.Error())
}
