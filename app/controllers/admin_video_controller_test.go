package controllers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facureino/website/app/models"
)

type fakeVideoRepo struct {
	videos  []models.TikTokVideo
	created []*models.TikTokVideo
}

func (r *fakeVideoRepo) Create(video *models.TikTokVideo) error {
	r.created = append(r.created, video)
	r.videos = append(r.videos, *video)
	return nil
}

func (r *fakeVideoRepo) GetByID(id uint) (*models.TikTokVideo, error) {
	for i := range r.videos {
		if r.videos[i].ID == id {
			return &r.videos[i], nil
		}
	}
	return nil, fiber.ErrNotFound
}

func (r *fakeVideoRepo) GetLatest(limit int) ([]models.TikTokVideo, error) {
	if limit > len(r.videos) {
		limit = len(r.videos)
	}
	return r.videos[:limit], nil
}

func (r *fakeVideoRepo) Update(video *models.TikTokVideo) error { return nil }

func (r *fakeVideoRepo) Delete(id uint) error { return nil }

func (r *fakeVideoRepo) Count() (int64, error) { return int64(len(r.videos)), nil }

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) int {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}

func videoForm(title string) url.Values {
	return url.Values{
		"title":         {title},
		"video_id":      {"7301234567890123456"},
		"author_handle": {"facureino"},
	}
}

func TestHandleVideoSaveAcceptsWhileSlotsFree(t *testing.T) {
	repo := &fakeVideoRepo{videos: []models.TikTokVideo{
		{ID: 1, Title: "Uno", VideoID: "1", AuthorHandle: "facureino"},
		{ID: 2, Title: "Dos", VideoID: "2", AuthorHandle: "facureino"},
	}}
	ctrl := NewAdminVideoController(repo)

	app := fiber.New()
	app.Post("/admin/dashboard/videos/save", ctrl.HandleVideoSave)

	status := postForm(t, app, "/admin/dashboard/videos/save", videoForm("Tres"))

	assert.Equal(t, fiber.StatusFound, status)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Tres", repo.created[0].Title)
}

func TestHandleVideoSaveRejectsWhenSlotsFull(t *testing.T) {
	repo := &fakeVideoRepo{videos: []models.TikTokVideo{
		{ID: 1, Title: "Uno", VideoID: "1", AuthorHandle: "facureino"},
		{ID: 2, Title: "Dos", VideoID: "2", AuthorHandle: "facureino"},
		{ID: 3, Title: "Tres", VideoID: "3", AuthorHandle: "facureino"},
	}}
	ctrl := NewAdminVideoController(repo)

	app := fiber.New()
	app.Post("/admin/dashboard/videos/save", ctrl.HandleVideoSave)

	status := postForm(t, app, "/admin/dashboard/videos/save", videoForm("Cuatro"))

	// The cap redirects back with a flash error and never touches the store
	assert.Equal(t, fiber.StatusFound, status)
	assert.Empty(t, repo.created)
}

func TestHandleVideoSaveRejectsIncompleteForm(t *testing.T) {
	repo := &fakeVideoRepo{}
	ctrl := NewAdminVideoController(repo)

	app := fiber.New()
	app.Post("/admin/dashboard/videos/save", ctrl.HandleVideoSave)

	form := videoForm("Sin ID")
	form.Set("video_id", "")
	status := postForm(t, app, "/admin/dashboard/videos/save", form)

	assert.Equal(t, fiber.StatusFound, status)
	assert.Empty(t, repo.created)
}
