package services

import (
	"context"
	"strings"
	"time"

	"suredoor/listing"
	"suredoor/models"
	"suredoor/storage"

	"github.com/google/uuid"
)

// Blog status filter values
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// BlogQuery mirrors the filters of the admin blog screen
type BlogQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
}

// BlogService handles business logic for blog posts
type BlogService struct {
	repo   BlogRepository
	images ImageRemover
}

// NewBlogService creates a new blog service
func NewBlogService(repo BlogRepository, images ImageRemover) *BlogService {
	return &BlogService{repo: repo, images: images}
}

// List returns every post, drafts included, matching q
func (bs *BlogService) List(q BlogQuery) ([]models.BlogPost, error) {
	posts, err := bs.repo.GetBlogPosts(false)
	if err != nil {
		return nil, err
	}

	return listing.Filter(posts,
		func(p models.BlogPost) bool { return listing.Contains(p.Title, q.Search) },
		func(p models.BlogPost) bool { return listing.Category(p.Category, q.Category) },
		func(p models.BlogPost) bool { return listing.Bool(p.Published, q.Status, StatusPublished, StatusDraft) },
	), nil
}

// ListPublished returns published posts, optionally narrowed to one category
func (bs *BlogService) ListPublished(category string) ([]models.BlogPost, error) {
	posts, err := bs.repo.GetBlogPosts(true)
	if err != nil {
		return nil, err
	}
	return listing.Filter(posts, func(p models.BlogPost) bool {
		return listing.Category(p.Category, category)
	}), nil
}

// Recent returns up to limit published posts, newest first
func (bs *BlogService) Recent(limit int) ([]models.BlogPost, error) {
	posts, err := bs.repo.GetBlogPosts(true)
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// Categories lists the categories used by published posts
func (bs *BlogService) Categories() ([]string, error) {
	posts, err := bs.repo.GetBlogPosts(true)
	if err != nil {
		return nil, err
	}
	categories := make([]string, len(posts))
	for i, p := range posts {
		categories[i] = p.Category
	}
	return distinct(categories), nil
}

// GetPublishedBySlug finds a post for the public site; drafts are not found
func (bs *BlogService) GetPublishedBySlug(slug string) (*models.BlogPost, error) {
	post, err := bs.repo.GetBlogPostBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (bs *BlogService) GetByID(id string) (*models.BlogPost, error) {
	post, err := bs.repo.GetBlogPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Create stores a new post, deriving the slug from the title when none is given
func (bs *BlogService) Create(req models.BlogPostRequest) (*models.BlogPost, error) {
	postSlug, err := resolveSlug(req.Slug, req.Title, "", bs.repo.BlogSlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Slug:      postSlug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyBlogRequest(post, req)

	if err := bs.repo.CreateBlogPost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces the post's fields with req
func (bs *BlogService) Update(ctx context.Context, id string, req models.BlogPostRequest) (*models.BlogPost, error) {
	post, err := bs.GetByID(id)
	if err != nil {
		return nil, err
	}

	postSlug, err := resolveSlug(req.Slug, req.Title, id, bs.repo.BlogSlugExists)
	if err != nil {
		return nil, err
	}

	oldImage := post.FeaturedImage
	post.Slug = postSlug
	applyBlogRequest(post, req)

	if err := bs.repo.UpdateBlogPost(post); err != nil {
		return nil, err
	}

	if oldImage != post.FeaturedImage {
		releaseImage(ctx, bs.images, oldImage, storage.BucketBlog)
	}
	return post, nil
}

func (bs *BlogService) Delete(ctx context.Context, id string) error {
	post, err := bs.GetByID(id)
	if err != nil {
		return err
	}

	if err := bs.repo.DeleteBlogPost(id); err != nil {
		return err
	}

	releaseImage(ctx, bs.images, post.FeaturedImage, storage.BucketBlog)
	return nil
}

func applyBlogRequest(post *models.BlogPost, req models.BlogPostRequest) {
	post.Title = strings.TrimSpace(req.Title)
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.FeaturedImage = strings.TrimSpace(req.FeaturedImage)
	post.Author = strings.TrimSpace(req.Author)
	post.Category = strings.TrimSpace(req.Category)
	post.Published = req.Published
}
