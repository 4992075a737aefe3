package controllers

import (
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facureino/website/app/models"
)

type fakePostRepo struct {
	posts  []*models.BlogPost
	nextID uint
}

func (r *fakePostRepo) Create(post *models.BlogPost) error {
	r.nextID++
	post.ID = r.nextID
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) GetByID(id uint) (*models.BlogPost, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fiber.ErrNotFound
}

func (r *fakePostRepo) GetBySlug(slug string) (*models.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, fiber.ErrNotFound
}

func (r *fakePostRepo) GetAll() ([]models.BlogPost, error) {
	out := make([]models.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) Update(post *models.BlogPost) error { return nil }

func (r *fakePostRepo) Delete(id uint) error { return nil }

func (r *fakePostRepo) Count() (int64, error) { return int64(len(r.posts)), nil }

func (r *fakePostRepo) SlugExists(slug string) (bool, error) {
	_, err := r.GetBySlug(slug)
	return err == nil, nil
}

func (r *fakePostRepo) SlugExistsExceptID(slug string, id uint) (bool, error) {
	for _, p := range r.posts {
		if p.Slug == slug && p.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func TestHandlePostStoreDerivesSlugAndRoundTrips(t *testing.T) {
	repo := &fakePostRepo{}
	ctrl := NewAdminPostController(repo, nil, nil)

	app := fiber.New()
	app.Post("/admin/dashboard/nuevo-post", ctrl.HandlePostStore)

	form := url.Values{
		"title":   {"¡Mi Show #1!"},
		"excerpt": {"Una noche inolvidable"},
		"content": {"<p>Gracias a todos.</p>"},
	}
	status := postForm(t, app, "/admin/dashboard/nuevo-post", form)

	assert.Equal(t, fiber.StatusFound, status)
	require.Len(t, repo.posts, 1)

	post, err := repo.GetBySlug("mi-show-1")
	require.NoError(t, err)
	assert.Equal(t, "¡Mi Show #1!", post.Title)
	assert.Equal(t, ArtistName, post.Author)
	// No uploads: content untouched, no featured image
	assert.Equal(t, "<p>Gracias a todos.</p>", post.Content)
	assert.Empty(t, post.FeaturedImage)
}

func TestChooseFeaturedImage(t *testing.T) {
	uploaded := []string{
		"https://cdn.example.com/blog/a.jpg",
		"https://cdn.example.com/blog/b.jpg",
	}

	assert.Equal(t, "https://cdn.example.com/explicit.jpg",
		chooseFeaturedImage("https://cdn.example.com/explicit.jpg", uploaded))
	assert.Equal(t, "https://cdn.example.com/blog/a.jpg", chooseFeaturedImage("", uploaded))
	assert.Equal(t, "", chooseFeaturedImage("", nil))
}

func TestAppendImagesToContentSkipsFeatured(t *testing.T) {
	uploaded := []string{
		"https://cdn.example.com/blog/a.jpg",
		"https://cdn.example.com/blog/b.jpg",
	}

	content := appendImagesToContent("Hola.", uploaded, "https://cdn.example.com/blog/a.jpg")

	assert.Contains(t, content, "Hola.")
	assert.NotContains(t, content, `src="https://cdn.example.com/blog/a.jpg"`)
	assert.Contains(t, content, `<img src="https://cdn.example.com/blog/b.jpg" alt="Imagen 1" class="my-4 rounded-lg max-w-full" />`)
}

func TestAppendImagesToContentKeepsUploadOrder(t *testing.T) {
	uploaded := []string{
		"https://cdn.example.com/blog/a.jpg",
		"https://cdn.example.com/blog/b.jpg",
		"https://cdn.example.com/blog/c.jpg",
	}

	content := appendImagesToContent("", uploaded, "https://cdn.example.com/blog/b.jpg")

	aIdx := strings.Index(content, "blog/a.jpg")
	cIdx := strings.Index(content, "blog/c.jpg")
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, cIdx)
	assert.Less(t, aIdx, cIdx)
	assert.Contains(t, content, `alt="Imagen 1"`)
	assert.Contains(t, content, `alt="Imagen 2"`)
}

func TestAppendImagesToContentWithoutUploads(t *testing.T) {
	assert.Equal(t, "Hola.", appendImagesToContent("Hola.", nil, ""))
}
