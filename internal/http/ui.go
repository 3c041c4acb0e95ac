package http

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quoteserver/internal/entities"
	"github.com/mrlokans/quoteserver/internal/errkind"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	stylesheetPath = "/static/style.css"

	notFoundMessage = "The quote you were looking for decided to take a day off. Try another!"
	failureMessage  = "We hit a snag trying to fetch a quote. Please try again."
)

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

type UIController struct {
	reader QuoteReader
}

func NewUIController(reader QuoteReader) *UIController {
	return &UIController{reader: reader}
}

// MainPage renders the quote selected by ?id=, or a random one without it.
func (controller *UIController) MainPage(c *gin.Context) {
	var (
		quote *entities.Quote
		err   error
	)
	if idText, ok := c.GetQuery("id"); ok {
		quote, err = controller.reader.GetByID(c.Request.Context(), idText)
	} else {
		quote, err = controller.reader.GetRandom(c.Request.Context())
	}

	if err != nil {
		log.Printf("Web: Failed to get quote for page: %v", err)
		status, message := http.StatusInternalServerError, failureMessage
		if errkind.OutcomeOf(err) == errkind.OutcomeNotFound {
			status, message = http.StatusNotFound, notFoundMessage
		}
		c.HTML(status, "index", gin.H{
			"Stylesheet": stylesheetPath,
			"Message":    message,
		})
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Stylesheet": stylesheetPath,
		"Quote":      quote,
	})
}
