package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PagesController serves the optional HTML pages from the working directory.
// Missing files degrade to a plain-text pointer instead of a 404 on the root
// route, matching the behavior the frontend expects.
type PagesController interface {
	RegisterRoutes(g *gin.Engine)
}

type pagesController struct {
	baseDir string
}

func NewPagesController(baseDir string) PagesController {
	return &pagesController{baseDir: baseDir}
}

func (p *pagesController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", p.home)
	for _, page := range []string{"chat.html", "about.html", "contact.html"} {
		g.GET("/"+page, p.servePage(page))
	}
}

func (p *pagesController) home(c *gin.Context) {
	indexPath := filepath.Join(p.baseDir, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		c.File(indexPath)
		return
	}
	c.String(http.StatusOK, "Marty backend is running. Go to /chat.html")
}

func (p *pagesController) servePage(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(p.baseDir, page))
	}
}
