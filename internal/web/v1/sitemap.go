package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// publicPaths are the indexable pages listed in sitemap.xml.
var publicPaths = []string{"/", "/about", "/contact", "/login", "/register"}

const robotsBody = `User-agent: *
Allow: /
Disallow: /logout
`

// Robots serves robots.txt.
func (h *Handler) Robots(c *gin.Context) {
	c.String(http.StatusOK, robotsBody)
}

// Sitemap serves a sitemap.xml generated from the public route list,
// using the request's host so the URLs match however the site is served.
func (h *Handler) Sitemap(c *gin.Context) {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	base := scheme + "://" + c.Request.Host

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, path := range publicPaths {
		fmt.Fprintf(&b, "  <url><loc>%s%s</loc></url>\n", base, path)
	}
	b.WriteString("</urlset>\n")

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}
