package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/docfoundry/docgen-mcp/storage"
)

// downloadHandler serves stored PDFs by artifact ID. Expired and unknown
// IDs are indistinguishable to the client.
func downloadHandler(store *storage.ArtifactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
			return
		}

		artifact, ok := store.Retrieve(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found or expired"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", artifact.Filename))
		// Links expire; a cached copy would outlive the artifact
		c.Header("Cache-Control", "no-store, must-revalidate")
		c.Data(http.StatusOK, "application/pdf", artifact.Data)
	}
}
