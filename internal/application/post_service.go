package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
	"github.com/sirupsen/logrus"
)

const (
	defaultPostLimit = 10
	maxPostLimit     = 50
)

// PostService handles discussion posts. Postgres is the source of truth for
// the paginated browse; posts are additionally mirrored into Elasticsearch
// on every write so the search path can use a proper full-text query,
// falling back to ILIKE when the cluster is absent.
type PostService struct {
	Users  repository.UserRepository
	Posts  repository.PostRepository
	Logger *logrus.Logger

	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewPostService(users repository.UserRepository, posts repository.PostRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *PostService {
	return &PostService{Users: users, Posts: posts, Logger: logger, ES: es, ESPostsIndex: esPostsIndex}
}

type PostInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Pagination is the page metadata attached to every post listing.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type PostPage struct {
	Posts      []entity.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

type PostQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

func newPagination(total, page, limit int) Pagination {
	totalPages := (total + limit - 1) / limit
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

func (s *PostService) List(ctx context.Context, q PostQuery) (*PostPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultPostLimit
	}
	if q.Limit > maxPostLimit {
		q.Limit = maxPostLimit
	}

	filter := repository.PostFilter{Search: strings.TrimSpace(q.Search)}
	if q.Category != "" && q.Category != "ALL" {
		if !entity.ValidPostCategory(q.Category) {
			return nil, validationf("unknown category %q", q.Category)
		}
		cat := entity.PostCategory(q.Category)
		filter.Category = &cat
	}

	posts, total, err := s.Posts.List(ctx, filter, q.Limit, (q.Page-1)*q.Limit)
	if err != nil {
		return nil, err
	}
	page := newPagination(int(total), q.Page, q.Limit)
	return &PostPage{Posts: posts, Pagination: page}, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, callerID string, in PostInput) (*entity.Post, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidPostCategory(in.Category) {
		return nil, validationf("unknown category %q", in.Category)
	}

	p := &entity.Post{
		Title:    in.Title,
		Content:  in.Content,
		Category: entity.PostCategory(in.Category),
		UserID:   caller.ID,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	p, err = s.Posts.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

func (s *PostService) Update(ctx context.Context, callerID, id string, in PostInput) (*entity.Post, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return nil, err
	}
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.CanManage(p.UserID) {
		return nil, ErrForbidden
	}
	if !entity.ValidPostCategory(in.Category) {
		return nil, validationf("unknown category %q", in.Category)
	}

	p.Title = in.Title
	p.Content = in.Content
	p.Category = entity.PostCategory(in.Category)
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	p, err = s.Posts.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return err
	}
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.CanManage(p.UserID) {
		return ErrForbidden
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		return err
	}
	s.deletePostDoc(ctx, id)
	return nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	authorName := ""
	if p.Owner != nil {
		authorName = p.Owner.Name
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"content":     p.Content,
		"category":    string(p.Category),
		"author_name": authorName,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PostService) deletePostDoc(ctx context.Context, id string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match over title, content and author name. It returns
// raw hit sources; callers that need the canonical row should go back to
// Postgres by id.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > maxPostLimit {
		size = defaultPostLimit
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content", "author_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPostsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.New("es search failed: " + res.Status())
	}

	var out struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	hits := make([]map[string]any, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		hits = append(hits, h.Source)
	}
	return hits, nil
}
