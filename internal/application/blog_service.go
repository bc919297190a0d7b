package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

var ErrBlogNotFound = errors.New("blog not found")

type BlogService struct {
	Repo      repository.BlogRepository
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewBlogService(repo repository.BlogRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *BlogService {
	return &BlogService{Repo: repo, GCS: gcs, GCSBucket: gcsBucket, ES: es, ESIndex: esIndex, Logger: logger}
}

type PublishBlogInput struct {
	Title   string
	Content string
	Tags    []string
	Author  string
}

func (s *BlogService) Publish(ctx context.Context, in PublishBlogInput) (*entity.Blog, error) {
	b := &entity.Blog{
		Title:   in.Title,
		Content: in.Content,
		Tags:    in.Tags,
		Author:  in.Author,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	_ = s.indexBlog(ctx, b)
	return b, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*entity.Blog, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *BlogService) List(ctx context.Context) ([]*entity.Blog, error) {
	return s.Repo.List(ctx)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// UploadImage stores a cover image in GCS and returns its public URL.
func (s *BlogService) UploadImage(ctx context.Context, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("blogs", uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// SetImage attaches an uploaded cover image to an existing article and
// reindexes it.
func (s *BlogService) SetImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (*entity.Blog, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.UploadImage(ctx, r, filename, contentType)
	if err != nil {
		return nil, err
	}
	b.ImageURL = url
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, err
	}
	_ = s.indexBlog(ctx, b)
	return b, nil
}

func (s *BlogService) indexBlog(ctx context.Context, b *entity.Blog) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         b.ID,
		"title":      b.Title,
		"content":    b.Content,
		"tags":       b.Tags,
		"author":     b.Author,
		"image_url":  b.ImageURL,
		"created_at": b.CreatedAt.Format(time.RFC3339Nano),
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: b.ID, Body: strings.NewReader(string(body)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("blog_id", b.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("blog_id", b.ID).Warn("es index response error")
	}
	return nil
}

func (s *BlogService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("blog_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over title, content and tags.
func (s *BlogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content", "tags"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(body))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
