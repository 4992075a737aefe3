package controllers

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/sujit-baniya/flash"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/slug"
	"github.com/facureino/website/internal/pkg/statistics"
	"github.com/facureino/website/internal/pkg/storage"
	"github.com/facureino/website/internal/pkg/upload"
)

// ImageUploader is the slice of the storage client the post controller
// needs. Satisfied by *storage.Client.
type ImageUploader interface {
	UploadObject(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) (string, error)
}

// AdminPostController handles creating and editing blog posts
type AdminPostController struct {
	posts     repository.PostRepository
	uploader  ImageUploader
	storeConf *storage.Config
}

// NewAdminPostController creates a new admin post controller
func NewAdminPostController(posts repository.PostRepository, uploader ImageUploader, storeConf *storage.Config) *AdminPostController {
	return &AdminPostController{posts: posts, uploader: uploader, storeConf: storeConf}
}

// HandlePostNew renders the create-post form with the author and date
// prefilled.
func (apc *AdminPostController) HandlePostNew(c *fiber.Ctx) error {
	return renderPage(c, "admin/post_form", "Nueva entrada", fiber.Map{
		"FormAction":    "/admin/dashboard/nuevo-post",
		"DefaultAuthor": ArtistName,
		"Today":         time.Now().Format("2006-01-02"),
	})
}

// HandlePostStore validates the form, uploads any attached images and
// inserts the post. When any upload fails the whole submission is
// rejected so a post never references half-uploaded assets.
func (apc *AdminPostController) HandlePostStore(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		fm["message"] = "El título es obligatorio"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-post")
	}

	postSlug := strings.TrimSpace(c.FormValue("slug"))
	if postSlug == "" {
		postSlug = slug.Derive(title)
	}
	if postSlug == "" {
		fm["message"] = "No se pudo generar una URL a partir del título"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-post")
	}

	// A taken slug gets a timestamp suffix instead of failing the save
	if exists, err := apc.posts.SlugExists(postSlug); err == nil && exists {
		postSlug = fmt.Sprintf("%s-%d", postSlug, time.Now().Unix())
	}

	author := strings.TrimSpace(c.FormValue("author"))
	if author == "" {
		author = ArtistName
	}

	uploaded, err := apc.uploadFormImages(c)
	if err != nil {
		fm["message"] = err.Error()

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-post")
	}

	featured := chooseFeaturedImage(strings.TrimSpace(c.FormValue("featured_image")), uploaded)
	content := appendImagesToContent(c.FormValue("content"), uploaded, featured)

	post := &models.BlogPost{
		Title:         title,
		Slug:          postSlug,
		Excerpt:       strings.TrimSpace(c.FormValue("excerpt")),
		Content:       content,
		FeaturedImage: featured,
		Author:        author,
	}

	// Publication date is editable; an empty or bad value keeps "now"
	if date := strings.TrimSpace(c.FormValue("date")); date != "" {
		if d, err := time.Parse("2006-01-02", date); err == nil {
			post.CreatedAt = d
		}
	}

	if err := post.Validate(); err != nil {
		fm["message"] = "Revisá los datos del formulario"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-post")
	}

	if err := apc.posts.Create(post); err != nil {
		log.Errorf("Failed to create post: %v", err)
		fm["message"] = "No se pudo guardar la entrada"

		return flash.WithError(c, fm).Redirect("/admin/dashboard/nuevo-post")
	}

	statistics.InvalidateDashboardStats()

	sfm := fiber.Map{
		"type":    "success",
		"message": "Entrada publicada",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard")
}

// HandlePostEdit renders the edit form for an existing post
func (apc *AdminPostController) HandlePostEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		fm := fiber.Map{
			"type":    "error",
			"message": "Entrada inválida",
		}
		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	post, err := apc.posts.GetByID(uint(id))
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "La entrada no existe",
		}
		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	return renderPage(c, "admin/post_form", "Editar entrada", fiber.Map{
		"FormAction": fmt.Sprintf("/admin/dashboard/posts/update/%d", post.ID),
		"Post":       post,
	})
}

// HandlePostUpdate updates the text fields of an existing post. Image
// management for existing posts happens through new uploads on create
// only.
func (apc *AdminPostController) HandlePostUpdate(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		fm["message"] = "Entrada inválida"

		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	post, err := apc.posts.GetByID(uint(id))
	if err != nil {
		fm["message"] = "La entrada no existe"

		return flash.WithError(c, fm).Redirect("/admin/dashboard")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		fm["message"] = "El título es obligatorio"

		return flash.WithError(c, fm).Redirect(fmt.Sprintf("/admin/dashboard/posts/edit/%d", post.ID))
	}

	postSlug := strings.TrimSpace(c.FormValue("slug"))
	if postSlug == "" {
		postSlug = slug.Derive(title)
	}
	if exists, err := apc.posts.SlugExistsExceptID(postSlug, post.ID); err == nil && exists {
		postSlug = fmt.Sprintf("%s-%d", postSlug, time.Now().Unix())
	}

	post.Title = title
	post.Slug = postSlug
	post.Excerpt = strings.TrimSpace(c.FormValue("excerpt"))
	post.Content = c.FormValue("content")
	if author := strings.TrimSpace(c.FormValue("author")); author != "" {
		post.Author = author
	}
	if featured := strings.TrimSpace(c.FormValue("featured_image")); featured != "" {
		post.FeaturedImage = featured
	}

	if err := apc.posts.Update(post); err != nil {
		log.Errorf("Failed to update post %d: %v", post.ID, err)
		fm["message"] = "No se pudo guardar la entrada"

		return flash.WithError(c, fm).Redirect(fmt.Sprintf("/admin/dashboard/posts/edit/%d", post.ID))
	}

	sfm := fiber.Map{
		"type":    "success",
		"message": "Entrada actualizada",
	}
	return flash.WithSuccess(c, sfm).Redirect("/admin/dashboard")
}

// uploadFormImages pushes every file of the multipart "images" field to
// object storage and returns their public URLs in form order.
func (apc *AdminPostController) uploadFormImages(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		// Plain form posts without files are fine
		return nil, nil
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}

	if apc.uploader == nil {
		return nil, fmt.Errorf("el almacenamiento de imágenes no está configurado")
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		if fileHeader.Size > storage.MaxUploadBytes {
			return nil, fmt.Errorf("la imagen %s supera el límite de 10 MB", fileHeader.Filename)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la imagen %s", fileHeader.Filename)
		}

		head := make([]byte, 512)
		n, _ := io.ReadFull(file, head)
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			file.Close()
			return nil, fmt.Errorf("no se pudo leer la imagen %s", fileHeader.Filename)
		}

		if _, err := upload.ValidateImageBySniff(fileHeader.Filename, head[:n]); err != nil {
			file.Close()
			return nil, err
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		objectKey := apc.storeConf.ObjectKey(uuid.New().String(), ext)

		url, err := apc.uploader.UploadObject(c.Context(), objectKey, file, fileHeader.Size, storage.ContentTypeForExt(ext))
		file.Close()
		if err != nil {
			log.Errorf("Failed to upload %s: %v", fileHeader.Filename, err)
			return nil, fmt.Errorf("no se pudo subir la imagen %s", fileHeader.Filename)
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// chooseFeaturedImage returns the explicitly provided featured image URL,
// falling back to the first upload when none was given.
func chooseFeaturedImage(explicit string, uploaded []string) string {
	if explicit != "" {
		return explicit
	}
	if len(uploaded) > 0 {
		return uploaded[0]
	}
	return ""
}

// appendImagesToContent appends an img tag for every uploaded image
// except the featured one, which the post page already renders on top.
func appendImagesToContent(content string, uploaded []string, featured string) string {
	var b strings.Builder
	b.WriteString(content)

	i := 0
	for _, url := range uploaded {
		if url == featured {
			continue
		}
		i++
		b.WriteString(fmt.Sprintf("\n<img src=\"%s\" alt=\"Imagen %d\" class=\"my-4 rounded-lg max-w-full\" />", url, i))
	}

	return b.String()
}

// Global admin post controller instance

var adminPostController *AdminPostController

// InitializeAdminPostController initializes the global admin post
// controller. When object storage is disabled posts can still be created
// without image uploads.
func InitializeAdminPostController() {
	storeConf, err := storage.LoadConfig()
	if err != nil {
		log.Errorf("Invalid storage configuration: %v", err)
		storeConf = &storage.Config{}
	}

	var uploader ImageUploader
	if storeConf.IsEnabled() {
		client, err := storage.NewClient(storeConf)
		if err != nil {
			log.Errorf("Failed to create storage client: %v", err)
		} else {
			uploader = client
		}
	}

	adminPostController = NewAdminPostController(repository.GetGlobalRepositories().Post, uploader, storeConf)
}

// HandlePostNew is the route-level entrypoint for the create-post form
func HandlePostNew(c *fiber.Ctx) error {
	return adminPostController.HandlePostNew(c)
}

// HandlePostStore is the route-level entrypoint for post creation
func HandlePostStore(c *fiber.Ctx) error {
	return adminPostController.HandlePostStore(c)
}

// HandlePostEdit is the route-level entrypoint for the edit-post form
func HandlePostEdit(c *fiber.Ctx) error {
	return adminPostController.HandlePostEdit(c)
}

// HandlePostUpdate is the route-level entrypoint for post updates
func HandlePostUpdate(c *fiber.Ctx) error {
	return adminPostController.HandlePostUpdate(c)
}
