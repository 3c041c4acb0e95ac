package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quoteserver/internal/entities"
)

// QuoteReader is what both the API and the HTML page need from the service layer.
type QuoteReader interface {
	GetByID(ctx context.Context, idText string) (*entities.Quote, error)
	GetRandom(ctx context.Context) (*entities.Quote, error)
}

// QuoteResponse is the JSON representation of a quote.
type QuoteResponse struct {
	ID     int64  `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

func toQuoteResponse(q *entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		Quote:  q.Quote,
		Author: q.Author,
	}
}

type QuotesController struct {
	reader QuoteReader
}

func NewQuotesController(reader QuoteReader) *QuotesController {
	return &QuotesController{reader: reader}
}

// GetQuote handles GET /api/v1/quote/:id
func (controller *QuotesController) GetQuote(c *gin.Context) {
	idText := c.Param("id")
	quote, err := controller.reader.GetByID(c.Request.Context(), idText)
	if err != nil {
		respondLookupError(c, err, "quote fetch failed for id "+idText)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// GetRandomQuote handles GET /api/v1/random-quote
func (controller *QuotesController) GetRandomQuote(c *gin.Context) {
	quote, err := controller.reader.GetRandom(c.Request.Context())
	if err != nil {
		respondLookupError(c, err, "failed to get random quote")
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}
