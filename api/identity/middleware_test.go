package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := token.NewJwtService("test-secret", "maze-operator")

	router := gin.New()
	router.GET("/guarded", RequireScope(ts, i.ScopeMazeWrite), func(c *gin.Context) {
		_, ok := c.Get(ContextOperatorClaims)
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	call := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	writer, err := ts.Issue("ops", []string{i.ScopeMazeWrite}, time.Minute)
	require.NoError(t, err)
	reader, err := ts.Issue("viewer", []string{"maze:read"}, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, call("Bearer "+writer))
	assert.Equal(t, http.StatusNoContent, call("bearer "+writer))
	assert.Equal(t, http.StatusForbidden, call("Bearer "+reader))
	assert.Equal(t, http.StatusUnauthorized, call(""))
	assert.Equal(t, http.StatusUnauthorized, call(writer))
	assert.Equal(t, http.StatusUnauthorized, call("Bearer not-a-token"))
}
