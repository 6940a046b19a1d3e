package posts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/folksdev/blogapi/pkg/blog/dto"
	"github.com/folksdev/blogapi/pkg/blog/models"
)

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

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(db).RegisterRoutes(r.Group("/v1/post"))
	return r
}

func createTestBlog(t *testing.T, db *gorm.DB) models.Blog {
	user := models.User{Name: "Test", Surname: "User", Username: "ada", Email: "ada@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	blog := models.Blog{Title: "My Blog", Description: "d", UserID: user.ID}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("Failed to create test blog: %v", err)
	}
	return blog
}

func TestCreatePost(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	blog := createTestBlog(t, db)

	body := CreatePostRequest{Title: "First post", Content: "Hello", Topics: []string{"TECH", "NEWS"}}
	jsonBody, _ := json.Marshal(body)

	req, _ := http.NewRequest("POST", fmt.Sprintf("/v1/post/%d", blog.ID), bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var response dto.PostResponse
	json.Unmarshal(resp.Body.Bytes(), &response)

	if response.Title != "First post" {
		t.Errorf("Expected title 'First post', got %s", response.Title)
	}
	if response.BlogTitle != "My Blog" {
		t.Errorf("Expected blog title 'My Blog', got %s", response.BlogTitle)
	}
	if len(response.Topics) != 2 {
		t.Errorf("Expected 2 topics, got %v", response.Topics)
	}
}

func TestCreatePostBlogNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	body := CreatePostRequest{Title: "t", Content: "c"}
	jsonBody, _ := json.Marshal(body)

	req, _ := http.NewRequest("POST", "/v1/post/42", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestListPostsByBlog(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	blog := createTestBlog(t, db)
	db.Create(&models.Post{Title: "a", Content: "c", BlogID: blog.ID})
	db.Create(&models.Post{Title: "b", Content: "c", BlogID: blog.ID})

	req, _ := http.NewRequest("GET", fmt.Sprintf("/v1/post/blog/%d", blog.ID), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var postList []dto.PostResponse
	json.Unmarshal(resp.Body.Bytes(), &postList)
	if len(postList) != 2 {
		t.Errorf("Expected 2 posts, got %d", len(postList))
	}
}

func TestListPostsByBlogNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/v1/post/blog/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for missing blog, got %d", resp.Code)
	}
}

func TestUpdatePostPreservesBlogAndComments(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	blog := createTestBlog(t, db)
	post := models.Post{Title: "old", Content: "c", BlogID: blog.ID}
	db.Create(&post)
	db.Create(&models.PostTopic{PostID: post.ID, Topic: models.TopicNews})
	var user models.User
	db.First(&user)
	db.Create(&models.Comment{Body: "b", PostID: post.ID, UserID: user.ID})

	resp, err := service.Update(post.ID, &CreatePostRequest{Title: "new", Content: "c2", Topics: []string{"TECH"}})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if resp.Title != "new" {
		t.Errorf("Expected title 'new', got %s", resp.Title)
	}
	if resp.BlogTitle != "My Blog" {
		t.Errorf("Expected parent blog to be preserved, got %q", resp.BlogTitle)
	}
	if len(resp.Comments) != 1 {
		t.Errorf("Expected comments to be preserved, got %d", len(resp.Comments))
	}
	if len(resp.Topics) != 1 || resp.Topics[0] != "TECH" {
		t.Errorf("Expected topics [TECH], got %v", resp.Topics)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)

	if _, err := service.Update(42, &CreatePostRequest{Title: "t", Content: "c"}); err == nil {
		t.Error("Expected not found error")
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	blog := createTestBlog(t, db)
	post := models.Post{Title: "p", Content: "c", BlogID: blog.ID}
	db.Create(&post)
	var user models.User
	db.First(&user)
	db.Create(&models.Comment{Body: "b", PostID: post.ID, UserID: user.ID})

	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/v1/post/%d", post.ID), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var comments int64
	db.Model(&models.Comment{}).Count(&comments)
	if comments != 0 {
		t.Errorf("Expected comments to be removed with the post, got %d", comments)
	}

	// The parent blog must survive
	var blogCount int64
	db.Model(&models.Blog{}).Count(&blogCount)
	if blogCount != 1 {
		t.Errorf("Expected blog to survive post delete, got %d blogs", blogCount)
	}
}
