// Package handler serves the single page of the service: a form for adding a user and a table
// listing every user added so far.
package handler

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/user-form/internal/model"
)

//go:embed templates/index.html
var templates embed.FS

// indexTemplate is the name of the page template.
const indexTemplate = "index.html"

// UserService is the part of the service layer the page depends on.
type UserService interface {
	AddUser(ctx context.Context, user model.User) error
	AllUsers(ctx context.Context) ([]model.User, error)
}

// Handler renders the page for GET and POST requests.
type Handler struct {
	users UserService
	page  *template.Template
}

// New returns a Handler that reads and writes users through the specified service.
func New(users UserService) *Handler {
	return &Handler{
		users: users,
		page:  template.Must(template.ParseFS(templates, "templates/"+indexTemplate)),
	}
}

// Router initializes the gin engine and registers the page for GET and POST. Store failures
// panic inside the handlers and are turned into a 500 response by the recovery middleware.
func (h *Handler) Router(requestLogging bool) *gin.Engine {
	var router *gin.Engine
	if requestLogging {
		router = gin.Default()
	} else {
		fmt.Println("Turning off HTTP request logging.")
		router = gin.New()
		router.Use(gin.Recovery())
	}
	router.SetHTMLTemplate(h.page)
	router.GET("/", h.showPage)
	router.POST("/", h.addUser)
	return router
}

// showPage responds with an empty form and the list of all users.
//
// Example call:
//
//	> curl http://localhost:8080/
func (h *Handler) showPage(c *gin.Context) {
	users, err := h.users.AllUsers(c.Request.Context())
	if err != nil {
		log.Panicln(err)
	}
	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"User":     model.User{},
		"AllUsers": users,
	})
}

// addUser appends the user from the submitted form and then responds exactly like showPage.
// Fields missing from the form are stored as empty strings; nothing is validated.
//
// Example call:
//
//	> curl http://localhost:8080/ --data "firstName=Ada&lastName=Lovelace&email=ada@x.com&phone=555"
func (h *Handler) addUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBind(&user); err != nil {
		user = model.User{}
	}
	if err := h.users.AddUser(c.Request.Context(), user); err != nil {
		log.Panicln(err)
	}
	h.showPage(c)
}
