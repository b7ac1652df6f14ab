package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server implements the backend REST surface the dashboard core consumes,
// over fixture data.
type Server struct {
	repo      *Repo
	jwts      *JWTService
	admin     *adminAccount
	locations LocationStore
}

// NewServer creates a fixture server over the given stores.
func NewServer(repo *Repo, jwts *JWTService, locations LocationStore) *Server {
	return &Server{
		repo:      repo,
		jwts:      jwts,
		admin:     newAdminAccount(),
		locations: locations,
	}
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

func respondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Message: "validation failed",
		Errors:  fields,
	})
}

// listFilterFrom reads the additive list query parameters.
func listFilterFrom(c *gin.Context) listFilter {
	return listFilter{
		status: c.Query("status"),
		search: c.Query("search"),
		page:   intQuery(c, "page"),
		limit:  intQuery(c, "limit"),
	}
}

func intQuery(c *gin.Context, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// paginationBody is the page metadata shape list endpoints return.
type paginationBody struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"total"`
	Limit       int `json:"limit"`
}

func pagination(f listFilter, total, totalPages int) paginationBody {
	page := f.page
	if page <= 0 {
		page = 1
	}
	limit := f.limit
	if limit <= 0 {
		limit = 20
	}
	return paginationBody{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Limit:       limit,
	}
}
