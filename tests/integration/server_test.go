package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/blogs"
	"github.com/folksdev/blogapi/pkg/blog/comments"
	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/groups"
	"github.com/folksdev/blogapi/pkg/blog/models"
	"github.com/folksdev/blogapi/pkg/blog/posts"
	"github.com/folksdev/blogapi/pkg/blog/users"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// setupRouter wires the full v1 API the way cmd/blog-server does
func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	v1 := r.Group("/v1")
	users.NewHandler(db).RegisterRoutes(v1.Group("/user"))
	groups.NewHandler(db).RegisterRoutes(v1.Group("/group"))
	blogs.NewHandler(db).RegisterRoutes(v1.Group("/blog"))
	posts.NewHandler(db).RegisterRoutes(v1.Group("/post"))
	comments.NewHandler(db).RegisterRoutes(v1.Group("/comment"))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// TestBlogLifecycle walks the whole platform end to end: user signup,
// blog creation, the one-blog-per-user rule, posting, commenting, and
// the cascade on user deletion.
func TestBlogLifecycle(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	resp := doJSON(t, router, "POST", "/v1/user", map[string]string{
		"name": "Ursula", "surname": "One", "username": "u1",
		"email": "u1@example.com", "date_of_birth": "1988-03-12", "gender": "FEMALE",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create user: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var user dto.UserResponse
	json.Unmarshal(resp.Body.Bytes(), &user)

	resp = doJSON(t, router, "POST", fmt.Sprintf("/v1/blog/%d", user.ID), map[string]string{
		"title": "Daily Notes", "description": "Notes", "content": "Hello",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create blog: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var blog dto.BlogResponse
	json.Unmarshal(resp.Body.Bytes(), &blog)

	// A second blog for the same user must conflict
	resp = doJSON(t, router, "POST", fmt.Sprintf("/v1/blog/%d", user.ID), map[string]string{
		"title": "Second Thoughts", "description": "Nope",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("second blog: expected 409, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, "POST", fmt.Sprintf("/v1/post/%d", blog.ID), map[string]interface{}{
		"title": "First Post", "content": "Body", "topics": []string{"TECH"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create post: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var post dto.PostResponse
	json.Unmarshal(resp.Body.Bytes(), &post)

	resp = doJSON(t, router, "POST", fmt.Sprintf("/v1/comment/%d/%d", post.ID, user.ID), map[string]string{
		"body": "Nice one",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create comment: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// Delete the user; the confirmation names the id
	resp = doJSON(t, router, "DELETE", fmt.Sprintf("/v1/user/%d", user.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete user: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var confirmation dto.DeleteResponse
	json.Unmarshal(resp.Body.Bytes(), &confirmation)
	if !strings.Contains(confirmation.Message, fmt.Sprintf("id: %d", user.ID)) {
		t.Errorf("Expected confirmation to name the user id, got %q", confirmation.Message)
	}

	resp = doJSON(t, router, "GET", fmt.Sprintf("/v1/user/%d", user.ID), nil)
	if resp.Code != http.StatusNotFound {
		t.Errorf("get deleted user: expected 404, got %d", resp.Code)
	}

	// Everything the user owned is gone too
	counts := map[string]interface{}{
		"blogs":    &models.Blog{},
		"posts":    &models.Post{},
		"comments": &models.Comment{},
	}
	for name, model := range counts {
		var count int64
		db.Model(model).Count(&count)
		if count != 0 {
			t.Errorf("Expected no %s after user delete, got %d", name, count)
		}
	}
}

// TestGroupMembershipFlow covers group creation and the idempotent
// user-to-group assignment surfacing on both sides of the relation.
func TestGroupMembershipFlow(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	resp := doJSON(t, router, "POST", "/v1/user", map[string]string{
		"name": "Ada", "surname": "Lively", "username": "ada",
		"email": "ada@example.com", "date_of_birth": "1990-05-01", "gender": "FEMALE",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create user: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var user dto.UserResponse
	json.Unmarshal(resp.Body.Bytes(), &user)

	resp = doJSON(t, router, "POST", "/v1/group", map[string]interface{}{
		"name": "Writers", "description": "Fiction club", "topics": []string{"DRAMA"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("create group: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var group dto.GroupResponse
	json.Unmarshal(resp.Body.Bytes(), &group)

	// Add the user twice; membership stays a set
	for i := 0; i < 2; i++ {
		resp = doJSON(t, router, "PUT", fmt.Sprintf("/v1/user/%d/%d", user.ID, group.ID), nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("add group (call %d): expected 200, got %d: %s", i+1, resp.Code, resp.Body.String())
		}
	}

	var updated dto.UserResponse
	json.Unmarshal(resp.Body.Bytes(), &updated)
	if len(updated.Groups) != 1 {
		t.Errorf("Expected 1 group on the user, got %d", len(updated.Groups))
	}

	resp = doJSON(t, router, "GET", fmt.Sprintf("/v1/group/%d", group.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("get group: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var fetched dto.GroupResponse
	json.Unmarshal(resp.Body.Bytes(), &fetched)
	if len(fetched.Members) != 1 || fetched.Members[0].Username != "ada" {
		t.Errorf("Expected member 'ada', got %+v", fetched.Members)
	}
}
