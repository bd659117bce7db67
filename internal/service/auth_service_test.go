package service

import (
	"net/http/httptest"
	"testing"

	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(repository.NewUserRepository(db), cfg)

	user := &model.User{Name: "Ada", Email: "ada@lab.dev", Password: "hunter22"}
	require.NoError(t, svc.Register(user))
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	dup := &model.User{Name: "Ada II", Email: "ada@lab.dev", Password: "other"}
	assert.ErrorIs(t, svc.Register(dup), util.ErrEmailRegistered)

	token, err := svc.Login("ada@lab.dev", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@lab.dev", claims.Email)

	_, err = svc.Login("ada@lab.dev", "wrong")
	assert.Error(t, err)
	_, err = svc.Login("nobody@lab.dev", "hunter22")
	assert.Error(t, err)
}

func TestGetCurrentUserDeletedAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), newTestConfig())

	user := createTestUser(t, db, "gone@lab.dev")

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set("user", &util.Claims{UserID: user.ID, Email: user.Email})

	require.NotNil(t, svc.GetCurrentUser(ctx))

	// a still-valid token for a deleted account must not resolve
	require.NoError(t, db.Unscoped().Delete(user).Error)
	assert.Nil(t, svc.GetCurrentUser(ctx))

	// no claims on the context at all
	bare, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, svc.GetCurrentUser(bare))
}
