package apierrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	Respond(c, err)
	return resp
}

func TestRespondStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("Couldn't find user by id: %d", 42), http.StatusNotFound},
		{"conflict", NewConflict("Username and/or email already exists"), http.StatusConflict},
		{"validation", NewValidation("email", "must be a valid email address"), http.StatusBadRequest},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if resp := respond(tc.err); resp.Code != tc.want {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.want, resp.Code)
		}
	}
}

func TestFromBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	type form struct {
		Email       string `json:"email" binding:"required,email"`
		DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	}

	r.POST("/", func(c *gin.Context) {
		var req form
		if err := c.ShouldBindJSON(&req); err != nil {
			Respond(c, FromBinding(err))
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope","date_of_birth":"soon"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", resp.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	for _, field := range []string{"email", "date_of_birth"} {
		if _, ok := body.Errors[field]; !ok {
			t.Errorf("Expected a message for %q, got %v", field, body.Errors)
		}
	}
}
