package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
)

// AdminVideoController manages the embedded video slots on the home page
type AdminVideoController struct {
	videos repository.VideoRepository
}

// NewAdminVideoController creates a new admin video controller
func NewAdminVideoController(videos repository.VideoRepository) *AdminVideoController {
	return &AdminVideoController{videos: videos}
}

// HandleVideoIndex renders the video manager with the current slots
func (avc *AdminVideoController) HandleVideoIndex(c *fiber.Ctx) error {
	videos, err := avc.videos.GetLatest(models.MaxTikTokVideos)
	if err != nil {
		videos = nil
	}

	count, err := avc.videos.Count()
	if err != nil {
		count = int64(len(videos))
	}

	return renderPage(c, "admin/videos", "Videos", fiber.Map{
		"Videos":    videos,
		"SlotsFull": count >= models.MaxTikTokVideos,
		"MaxSlots":  models.MaxTikTokVideos,
	})
}

// HandleVideoSave adds a new video. The slot cap is checked before the
// insert so a full manager never writes a fourth row.
func (avc *AdminVideoController) HandleVideoSave(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	count, err := avc.videos.Count()
	if err != nil {
		log.Errorf("Failed to count videos: %v", err)
		fm["message"] = "No se pudo guardar el video"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	if count >= models.MaxTikTokVideos {
		fm["message"] = "Ya hay 3 videos cargados, borrá uno antes de agregar otro"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	video, ok := avc.videoFromForm(c)
	if !ok {
		fm["message"] = "Completá título, ID del video y usuario"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	if err := avc.videos.Create(video); err != nil {
		log.Errorf("Failed to create video: %v", err)
		fm["message"] = "No se pudo guardar el video"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	sfm := fiber.Map{
		"type":    "success",
		"message": "Video agregado",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard/videos")
}

// HandleVideoUpdate replaces the fields of an existing slot
func (avc *AdminVideoController) HandleVideoUpdate(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		fm["message"] = "Video inválido"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	video, err := avc.videos.GetByID(uint(id))
	if err != nil {
		fm["message"] = "El video no existe"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	updated, ok := avc.videoFromForm(c)
	if !ok {
		fm["message"] = "Completá título, ID del video y usuario"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	video.Title = updated.Title
	video.VideoID = updated.VideoID
	video.AuthorHandle = updated.AuthorHandle

	if err := avc.videos.Update(video); err != nil {
		log.Errorf("Failed to update video %d: %v", video.ID, err)
		fm["message"] = "No se pudo guardar el video"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	sfm := fiber.Map{
		"type":    "success",
		"message": "Video actualizado",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard/videos")
}

// HandleVideoDelete frees a slot
func (avc *AdminVideoController) HandleVideoDelete(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		fm["message"] = "Video inválido"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	if err := avc.videos.Delete(uint(id)); err != nil {
		log.Errorf("Failed to delete video %d: %v", id, err)
		fm["message"] = "No se pudo borrar el video"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/videos")
	}

	sfm := fiber.Map{
		"type":    "success",
		"message": "Video borrado",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard/videos")
}

// videoFromForm builds a video from the manager form. The handle keeps
// whatever "@" the operator typed, the model normalizes it when building
// profile links.
func (avc *AdminVideoController) videoFromForm(c *fiber.Ctx) (*models.TikTokVideo, bool) {
	video := &models.TikTokVideo{
		Title:        strings.TrimSpace(c.FormValue("title")),
		VideoID:      strings.TrimSpace(c.FormValue("video_id")),
		AuthorHandle: strings.TrimSpace(c.FormValue("author_handle")),
	}

	if video.Title == "" || video.VideoID == "" || video.AuthorHandle == "" {
		return nil, false
	}

	return video, true
}

// Global admin video controller instance

var adminVideoController *AdminVideoController

// InitializeAdminVideoController initializes the global admin video controller
func InitializeAdminVideoController() {
	adminVideoController = NewAdminVideoController(repository.GetGlobalRepositories().Video)
}

// HandleVideoIndex is the route-level entrypoint for the video manager
func HandleVideoIndex(c *fiber.Ctx) error {
	return adminVideoController.HandleVideoIndex(c)
}

// HandleVideoSave is the route-level entrypoint for adding a video
func HandleVideoSave(c *fiber.Ctx) error {
	return adminVideoController.HandleVideoSave(c)
}

// HandleVideoUpdate is the route-level entrypoint for updating a video
func HandleVideoUpdate(c *fiber.Ctx) error {
	return adminVideoController.HandleVideoUpdate(c)
}

// HandleVideoDelete is the route-level entrypoint for deleting a video
func HandleVideoDelete(c *fiber.Ctx) error {
	return adminVideoController.HandleVideoDelete(c)
}
