package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext returns a gin context bound to a response recorder
func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	return c, recorder
}

func regularUser() *entity.User {
	return &entity.User{
		ID:    7,
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  entity.RoleUser,
	}
}
