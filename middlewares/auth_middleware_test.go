package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistronome/restaurant-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func protectedRouter(role string) *gin.Engine {
	r := gin.New()
	admin := r.Group("/admin", AuthMiddleware(), RequireRole(role))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetUint("userID")})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	w := request(protectedRouter("staff"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	w := request(protectedRouter("staff"), "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "staff")
	require.NoError(t, err)

	w := request(protectedRouter("staff"), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	token, err := utils.GenerateToken(7, "staff")
	require.NoError(t, err)

	w := request(protectedRouter("manager"), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAdminBypass(t *testing.T) {
	token, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)

	w := request(protectedRouter("staff"), token)
	assert.Equal(t, http.StatusOK, w.Code)
}
