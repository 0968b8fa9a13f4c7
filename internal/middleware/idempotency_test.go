package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrms-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	testCacheKey = "idemp:/leaves:u1:key-1"
	testLockKey  = testCacheKey + ":lock"
)

func idempotencyRouter(rdb *redis.Client, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/leaves", func(c *gin.Context) {
		c.Set(callerKey, rbac.Caller{ID: "u1", Role: rbac.RoleEmployee})
	}, Idempotency(rdb), handler)
	return r
}

func postLeaves(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{}`))
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	payload, err := json.Marshal(cachedResponse{Status: http.StatusOK, Body: []byte(`{"id":"abc"}`)})
	assert.NoError(t, err)
	redisMock.ExpectGet(testCacheKey).SetVal(string(payload))

	handlerCalls := 0
	r := idempotencyRouter(rdb, func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"id": "fresh"})
	})

	w := postLeaves(r, "key-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"id":"abc"}`, w.Body.String())
	assert.Equal(t, 0, handlerCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateConflicts(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	redisMock.ExpectGet(testCacheKey).RedisNil()
	redisMock.ExpectSetNX(testLockKey, "locked", 30*time.Second).SetVal(false)

	handlerCalls := 0
	r := idempotencyRouter(rdb, func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"id": "abc"})
	})

	w := postLeaves(r, "key-1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"PROCESSING"`)
	assert.Equal(t, 0, handlerCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_RecordsSuccessfulResponse(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	expected, err := json.Marshal(cachedResponse{Status: http.StatusOK, Body: []byte(`{"id":"abc"}`)})
	assert.NoError(t, err)
	redisMock.ExpectGet(testCacheKey).RedisNil()
	redisMock.ExpectSetNX(testLockKey, "locked", 30*time.Second).SetVal(true)
	redisMock.ExpectSet(testCacheKey, expected, 24*time.Hour).SetVal("OK")
	redisMock.ExpectDel(testLockKey).SetVal(1)

	handlerCalls := 0
	r := idempotencyRouter(rdb, func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"id": "abc"})
	})

	w := postLeaves(r, "key-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"id":"abc"}`, w.Body.String())
	assert.Equal(t, 1, handlerCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_FailureReleasesLockWithoutCaching(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	redisMock.ExpectGet(testCacheKey).RedisNil()
	redisMock.ExpectSetNX(testLockKey, "locked", 30*time.Second).SetVal(true)
	redisMock.ExpectDel(testLockKey).SetVal(1)

	r := idempotencyRouter(rdb, func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
	})

	w := postLeaves(r, "key-1")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_SkipsWithoutHeader(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	handlerCalls := 0
	r := idempotencyRouter(rdb, func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"id": "abc"})
	})

	w := postLeaves(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, handlerCalls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
