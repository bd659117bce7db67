package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lab_backend/internal/config"
	"lab_backend/internal/middleware"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/service"
	"lab_backend/internal/util"
	"lab_backend/pkg/database"
	"lab_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ctrlDBSeq int64

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", atomic.AddInt64(&ctrlDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "controller-test-secret-0123456789abcdef"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Sheet.ReviewIntervalDays = 14

	attemptSvc := service.NewAttemptService(
		repository.NewAttemptRepository(db),
		repository.NewDiscussionRepository(db),
	)
	sheetSvc := service.NewSheetService(
		repository.NewProblemRepository(db),
		repository.NewAttemptRepository(db),
		nil,
		cfg,
	)
	ctrl := NewAttemptController(attemptSvc, sheetSvc)
	journalCtrl := NewJournalController(service.NewJournalService(repository.NewJournalRepository(db)))

	router := gin.New()
	api := router.Group("/api", middleware.AuthMiddleware(cfg))
	api.GET("/attempts", ctrl.ListAttempts)
	api.POST("/attempts", ctrl.CreateAttempt)
	api.PUT("/attempts", ctrl.ResolveAttempt)
	api.DELETE("/attempts", ctrl.DeleteAttempt)
	api.GET("/attempts/discussions", ctrl.GetDiscussions)
	api.POST("/attempts/discussions", ctrl.AddDiscussion)
	api.GET("/journal", journalCtrl.ListEntries)
	api.POST("/journal", journalCtrl.CreateEntry)
	api.PUT("/journal/:id", journalCtrl.UpdateEntry)

	return &testServer{router: router, db: db, cfg: cfg}
}

func (s *testServer) login(t *testing.T, email string) (*model.User, string) {
	t.Helper()
	user := &model.User{Name: "tester", Email: email, Password: "x"}
	require.NoError(t, s.db.Create(user).Error)
	token, err := util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return user, token
}

func (s *testServer) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeAttemptID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Data struct {
			Attempt model.Attempt `json:"attempt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Attempt.ID)
	return resp.Data.Attempt.ID
}

func TestAttemptRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/attempts?problemId=two-sum", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/attempts?problemId=two-sum", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAttemptHTTPLifecycle(t *testing.T) {
	s := newTestServer(t)
	_, token := s.login(t, "http@lab.dev")

	w := s.do(t, http.MethodPost, "/api/attempts", token,
		`{"problemId":"two-sum","content":"hash map one pass","language":"go"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	attemptID := decodeAttemptID(t, w)

	// gave_up needs a reason from the closed list
	w = s.do(t, http.MethodPut, "/api/attempts", token,
		fmt.Sprintf(`{"attemptId":%q,"status":"gave_up"}`, attemptID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/attempts", token,
		fmt.Sprintf(`{"attemptId":%q,"status":"resolved","solveMethod":"hash map"}`, attemptID))
	assert.Equal(t, http.StatusOK, w.Code)

	// second terminal transition is a conflict
	w = s.do(t, http.MethodPut, "/api/attempts", token,
		fmt.Sprintf(`{"attemptId":%q,"status":"gave_up","failureReason":"Completely stuck"}`, attemptID))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPut, "/api/attempts", token,
		`{"attemptId":"missing","status":"resolved"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/attempts?problemId=two-sum", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data struct {
			Attempts []model.Attempt `json:"attempts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data.Attempts, 1)
	assert.Equal(t, model.Resolved, listResp.Data.Attempts[0].Status)
}

func TestAttemptHTTPOwnership(t *testing.T) {
	s := newTestServer(t)
	_, ownerToken := s.login(t, "http-owner@lab.dev")
	_, otherToken := s.login(t, "http-other@lab.dev")

	w := s.do(t, http.MethodPost, "/api/attempts", ownerToken,
		`{"problemId":"binary-search","content":"midpoint overflow trap"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	attemptID := decodeAttemptID(t, w)

	w = s.do(t, http.MethodDelete, "/api/attempts?attemptId="+attemptID, otherToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodDelete, "/api/attempts?attemptId="+attemptID, ownerToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDiscussionHTTP(t *testing.T) {
	s := newTestServer(t)
	user, token := s.login(t, "http-discuss@lab.dev")

	w := s.do(t, http.MethodPost, "/api/attempts", token,
		`{"problemId":"group-anagrams","content":"rune-count key"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	attemptID := decodeAttemptID(t, w)

	w = s.do(t, http.MethodPost, "/api/attempts/discussions", token,
		fmt.Sprintf(`{"attemptId":%q,"content":"consider sorting instead"}`, attemptID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/attempts/discussions?attemptId="+attemptID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Discussions []model.Discussion `json:"discussions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Discussions, 1)
	assert.Equal(t, user.Email, resp.Data.Discussions[0].Username)
}
