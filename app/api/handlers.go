package api

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	outDir  string
	version string
}

func NewHandler(outDir, version string) *Handler {
	return &Handler{outDir: outDir, version: version}
}

func (h *Handler) OutDir() string {
	return h.outDir
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// ListFeeds reports the generated XML files under the output directory,
// including per-language subdirectories.
func (h *Handler) ListFeeds(c *gin.Context) {
	var feeds []string

	err := filepath.WalkDir(h.outDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".xml" {
			return nil
		}
		rel, err := filepath.Rel(h.outDir, path)
		if err != nil {
			return err
		}
		feeds = append(feeds, "/rss/"+filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read output directory"})
		return
	}

	sort.Strings(feeds)
	c.JSON(http.StatusOK, gin.H{"feeds": feeds})
}
