package response

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Detail writes the error shape shared by every failure path: a status code
// plus a human-readable message under "detail".
func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

// MediaURL rewrites a stored relative media path into an absolute URL under
// the public base. Paths that are already absolute pass through untouched;
// nil stays nil so optional media fields serialize as null.
func MediaURL(baseURL, urlPrefix string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}

	p := *path
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return &p
	}

	full := strings.TrimRight(baseURL, "/") + "/" +
		strings.Trim(urlPrefix, "/") + "/" +
		strings.TrimLeft(p, "/")
	return &full
}
