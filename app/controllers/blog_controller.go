package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/facureino/website/app/repository"
)

// BlogController handles the public blog pages
type BlogController struct {
	posts repository.PostRepository
}

// NewBlogController creates a new blog controller with repository
func NewBlogController(posts repository.PostRepository) *BlogController {
	return &BlogController{posts: posts}
}

// HandleBlogIndex renders the blog list, newest first. A failed read logs
// and renders the empty-state panel instead of breaking the page.
func (bc *BlogController) HandleBlogIndex(c *fiber.Ctx) error {
	posts, err := bc.posts.GetAll()
	if err != nil {
		log.Errorf("Failed to load blog posts: %v", err)
		posts = nil
	}

	return renderPage(c, "blog/index", "Blog", fiber.Map{
		"Posts": posts,
	})
}

// HandleBlogShow renders a single post looked up by slug; a missing slug is
// the one public read that surfaces as a 404.
func (bc *BlogController) HandleBlogShow(c *fiber.Ctx) error {
	postSlug := c.Params("slug")

	post, err := bc.posts.GetBySlug(postSlug)
	if err != nil {
		c.Status(fiber.StatusNotFound)
		return renderPage(c, "blog/not_found", "Post no encontrado", nil)
	}

	return renderPage(c, "blog/show", post.Title, fiber.Map{
		"Post": post,
	})
}

// Global blog controller instance

var blogController *BlogController

// InitializeBlogController initializes the global blog controller
func InitializeBlogController() {
	blogController = NewBlogController(repository.GetGlobalRepositories().Post)
}

// HandleBlogIndex is the route-level entrypoint for the blog list
func HandleBlogIndex(c *fiber.Ctx) error {
	return blogController.HandleBlogIndex(c)
}

// HandleBlogShow is the route-level entrypoint for a single post
func HandleBlogShow(c *fiber.Ctx) error {
	return blogController.HandleBlogShow(c)
}
