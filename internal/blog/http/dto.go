package http

import (
	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/query"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
)

func toUser(u domain.User) blogsdk.User {
	return blogsdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		LastLogin: u.LastLoginAt,
	}
}

func toProfile(u domain.User) blogsdk.Profile {
	return blogsdk.Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		LastLogin: u.LastLoginAt,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toPost(p domain.Post) blogsdk.Post {
	out := blogsdk.Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.AuthorName,
		UserID:    p.OwnerID,
		Published: p.Published,
		Views:     p.ViewCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Owner != nil {
		out.User = &blogsdk.PostOwner{ID: p.Owner.ID, Name: p.Owner.Name, Email: p.Owner.Email}
	}
	return out
}

func toPosts(ps []domain.Post) []blogsdk.Post {
	out := make([]blogsdk.Post, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPost(p))
	}
	return out
}

func toPagination(p query.Pagination) blogsdk.Pagination {
	return blogsdk.Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

func toStats(s domain.Stats) blogsdk.Stats {
	top := make([]blogsdk.AuthorStats, 0, len(s.TopAuthors))
	for _, a := range s.TopAuthors {
		top = append(top, blogsdk.AuthorStats{
			Author:     a.Author,
			PostCount:  a.PostCount,
			TotalViews: a.TotalViews,
		})
	}
	return blogsdk.Stats{
		TotalPosts:     s.TotalPosts,
		PublishedPosts: s.PublishedPosts,
		TotalViews:     s.TotalViews,
		TopAuthors:     top,
	}
}
