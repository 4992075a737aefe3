package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
)

// GalleryImage is one entry of the home page photo gallery. The gallery is
// static editorial content, not database-backed.
type GalleryImage struct {
	Src   string
	Alt   string
	Title string
}

var galleryImages = []GalleryImage{
	{Src: "/img/gallery/teatro-nacional.jpg", Alt: "Show en Teatro Nacional", Title: "Show en Teatro Nacional"},
	{Src: "/img/gallery/festival-comedia.jpg", Alt: "Festival de Comedia 2023", Title: "Festival de Comedia 2023"},
	{Src: "/img/gallery/gira-internacional.jpg", Alt: "Gira Internacional", Title: "Gira Internacional"},
	{Src: "/img/gallery/backstage.jpg", Alt: "Backstage", Title: "Backstage"},
	{Src: "/img/gallery/entrevista-tv.jpg", Alt: "Entrevista TV", Title: "Entrevista TV"},
	{Src: "/img/gallery/show-privado.jpg", Alt: "Show Privado", Title: "Show Privado"},
}

// MainController renders the public home page
type MainController struct {
	events repository.EventRepository
	videos repository.VideoRepository
}

// NewMainController creates a new main controller with repositories
func NewMainController(events repository.EventRepository, videos repository.VideoRepository) *MainController {
	return &MainController{events: events, videos: videos}
}

// HandleStart renders the home page: hero, gallery, embedded videos and the
// events calendar for the selected day. Read failures degrade to empty
// sections, the page itself never errors.
func (mc *MainController) HandleStart(c *fiber.Ctx) error {
	videos, err := mc.videos.GetLatest(models.MaxTikTokVideos)
	if err != nil {
		log.Errorf("Failed to load videos: %v", err)
		videos = nil
	}

	events, err := mc.events.GetAll()
	if err != nil {
		log.Errorf("Failed to load events: %v", err)
		events = nil
	}

	upcoming, err := mc.events.GetUpcoming(5)
	if err != nil {
		log.Errorf("Failed to load upcoming events: %v", err)
		upcoming = nil
	}

	selectedDay := time.Now()
	if q := c.Query("fecha"); q != "" {
		if d, err := time.Parse("2006-01-02", q); err == nil {
			selectedDay = d
		}
	}

	return renderPage(c, "home", ArtistName, fiber.Map{
		"Gallery":       galleryImages,
		"Videos":        videos,
		"Upcoming":      upcoming,
		"Events":        models.EventsOnDay(events, selectedDay),
		"EventDays":     models.DaysWithEvents(events),
		"SelectedDay":   selectedDay.Format("2006-01-02"),
		"SelectedLabel": selectedDay.Format("02/01/2006"),
	})
}

// Global main controller instance

var mainController *MainController

// InitializeMainController initializes the global main controller
func InitializeMainController() {
	repos := repository.GetGlobalRepositories()
	mainController = NewMainController(repos.Event, repos.Video)
}

// HandleStart is the route-level entrypoint for the home page
func HandleStart(c *fiber.Ctx) error {
	return mainController.HandleStart(c)
}
