package sqlstore

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/query"
)

// Posts implements store.Posts.
type Posts struct {
	conn
}

func NewPosts(db DBTX, cfg Config) *Posts {
	return &Posts{conn{db: db, cfg: cfg}}
}

const postSelect = `
	SELECT p.id, p.title, p.content, p.author, p.user_id, p.published, p.view_count,
	       p.created_at, p.updated_at, u.id, u.name, u.email
	FROM posts p
	JOIN users u ON u.id = p.user_id`

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var (
		p     domain.Post
		owner domain.UserSummary
	)
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorName, &p.OwnerID, &p.Published, &p.ViewCount,
		&p.CreatedAt, &p.UpdatedAt, &owner.ID, &owner.Name, &owner.Email)
	if err != nil {
		return domain.Post{}, err
	}
	p.CreatedAt = utc(p.CreatedAt)
	p.UpdatedAt = utc(p.UpdatedAt)
	p.Owner = &owner
	return p, nil
}

func (r *Posts) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	p, err := scanPost(r.queryRow(ctx, postSelect+` WHERE p.id = ?`, id))
	if err != nil {
		return domain.Post{}, r.mapError(err)
	}
	return p, nil
}

// ListPosts builds its SQL from the ListQuery, whose Where and OrderBy only
// ever emit fixed column names and bind markers.
func (r *Posts) ListPosts(ctx context.Context, q query.ListQuery) ([]domain.Post, int64, error) {
	d := r.cfg.Dialect
	where, args := q.Where(d, 0)

	var total int64
	countSQL := `SELECT COUNT(*) FROM posts p ` + where
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, r.mapError(err)
	}

	listSQL := postSelect + " " + where + " " + q.OrderBy() +
		" LIMIT " + d.Placeholder(len(args)+1) + " OFFSET " + d.Placeholder(len(args)+2)
	rows, err := r.db.QueryContext(ctx, listSQL, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, r.mapError(err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, q.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, r.mapError(err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.mapError(err)
	}
	return posts, total, nil
}

func (r *Posts) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.exec(ctx, `
		INSERT INTO posts (id, title, content, author, user_id, published, view_count, created_at, updated_at,
			title_lc, content_lc, author_lc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Content, p.AuthorName, p.OwnerID, p.Published, p.ViewCount,
		utc(p.CreatedAt), utc(p.UpdatedAt),
		query.Fold(p.Title), query.Fold(p.Content), query.Fold(p.AuthorName),
	)
	return err
}

func (r *Posts) UpdatePost(ctx context.Context, id string, patch domain.PostPatch, at time.Time) error {
	sets := []string{"updated_at = ?"}
	args := []any{utc(at)}

	if patch.Title != nil {
		sets = append(sets, "title = ?", "title_lc = ?")
		args = append(args, *patch.Title, query.Fold(*patch.Title))
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?", "content_lc = ?")
		args = append(args, *patch.Content, query.Fold(*patch.Content))
	}
	if patch.Published != nil {
		sets = append(sets, "published = ?")
		args = append(args, *patch.Published)
	}
	args = append(args, id)

	return r.mustAffect(ctx, `UPDATE posts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
}

func (r *Posts) DeletePost(ctx context.Context, id string) error {
	return r.mustAffect(ctx, `DELETE FROM posts WHERE id = ?`, id)
}

func (r *Posts) IncrementViews(ctx context.Context, id string) error {
	return r.mustAffect(ctx, `UPDATE posts SET view_count = view_count + 1 WHERE id = ?`, id)
}

func (r *Posts) Stats(ctx context.Context, topAuthors int) (domain.Stats, error) {
	var s domain.Stats
	err := r.queryRow(ctx, `
		SELECT COUNT(*),
		       CAST(COALESCE(SUM(CASE WHEN published THEN 1 ELSE 0 END), 0) AS BIGINT),
		       CAST(COALESCE(SUM(view_count), 0) AS BIGINT)
		FROM posts`).Scan(&s.TotalPosts, &s.PublishedPosts, &s.TotalViews)
	if err != nil {
		return domain.Stats{}, r.mapError(err)
	}

	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT author, COUNT(*) AS post_count, CAST(COALESCE(SUM(view_count), 0) AS BIGINT)
		FROM posts
		GROUP BY author
		ORDER BY post_count DESC, author ASC
		LIMIT ?`), topAuthors)
	if err != nil {
		return domain.Stats{}, r.mapError(err)
	}
	defer rows.Close()

	s.TopAuthors = make([]domain.AuthorStats, 0, topAuthors)
	for rows.Next() {
		var a domain.AuthorStats
		if err := rows.Scan(&a.Author, &a.PostCount, &a.TotalViews); err != nil {
			return domain.Stats{}, r.mapError(err)
		}
		s.TopAuthors = append(s.TopAuthors, a)
	}
	if err := rows.Err(); err != nil {
		return domain.Stats{}, r.mapError(err)
	}
	return s, nil
}
