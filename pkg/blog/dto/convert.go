package dto

import (
	"github.com/folksdev/blogapi/pkg/blog/models"
)

// DateOfBirthLayout is the wire format for user birth dates
const DateOfBirthLayout = "2006-01-02"

// NewUserResponse converts a user, including group and comment summaries
// when the relations were loaded.
func NewUserResponse(u *models.User) UserResponse {
	resp := NewUserSummary(u)

	if len(u.GroupMemberships) > 0 {
		resp.Groups = make([]GroupResponse, 0, len(u.GroupMemberships))
		for i := range u.GroupMemberships {
			resp.Groups = append(resp.Groups, NewGroupSummary(&u.GroupMemberships[i].Group))
		}
	}

	if len(u.Comments) > 0 {
		resp.Comments = make([]CommentResponse, 0, len(u.Comments))
		for i := range u.Comments {
			resp.Comments = append(resp.Comments, NewCommentSummary(&u.Comments[i]))
		}
	}

	return resp
}

// NewUserSummary converts a user without its relations
func NewUserSummary(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Surname:     u.Surname,
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth.Format(DateOfBirthLayout),
		Gender:      string(u.Gender),
	}
}

// NewGroupResponse converts a group, including member summaries when the
// memberships were loaded.
func NewGroupResponse(g *models.Group) GroupResponse {
	resp := NewGroupSummary(g)

	if len(g.Memberships) > 0 {
		resp.Members = make([]UserResponse, 0, len(g.Memberships))
		for i := range g.Memberships {
			resp.Members = append(resp.Members, NewUserSummary(&g.Memberships[i].User))
		}
	}

	return resp
}

// NewGroupSummary converts a group without its members
func NewGroupSummary(g *models.Group) GroupResponse {
	resp := GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
	}

	if len(g.Topics) > 0 {
		resp.Topics = make([]string, 0, len(g.Topics))
		for _, t := range g.Topics {
			resp.Topics = append(resp.Topics, string(t.Topic))
		}
	}

	return resp
}

// NewBlogResponse converts a blog, including its owner and posts when loaded
func NewBlogResponse(b *models.Blog) BlogResponse {
	resp := BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		CreatedAt:   b.CreatedAt,
	}

	if b.User.ID != 0 {
		owner := NewUserSummary(&b.User)
		resp.User = &owner
	}

	if len(b.Posts) > 0 {
		resp.Posts = make([]PostResponse, 0, len(b.Posts))
		for i := range b.Posts {
			resp.Posts = append(resp.Posts, NewPostResponse(&b.Posts[i]))
		}
	}

	return resp
}

// NewPostResponse converts a post, including its topics, comments and the
// parent blog title when loaded.
func NewPostResponse(p *models.Post) PostResponse {
	resp := PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		BlogTitle: p.Blog.Title,
	}

	if len(p.Topics) > 0 {
		resp.Topics = make([]string, 0, len(p.Topics))
		for _, t := range p.Topics {
			resp.Topics = append(resp.Topics, string(t.Topic))
		}
	}

	if len(p.Comments) > 0 {
		resp.Comments = make([]CommentResponse, 0, len(p.Comments))
		for i := range p.Comments {
			resp.Comments = append(resp.Comments, NewCommentSummary(&p.Comments[i]))
		}
	}

	return resp
}

// NewCommentResponse converts a comment with its post title and author name
func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		PostTitle: c.Post.Title,
		Username:  c.User.Username,
	}
}

// NewCommentSummary converts a comment without resolving its relations
func NewCommentSummary(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}
