package handlers

import (
	"errors"
	"net/http"

	"github.com/chachabrian/covoiturage-backend/internal/services"
	"github.com/gin-gonic/gin"
)

const defaultUploadFolder = "divers"

// maxUploadSize caps the whole multipart body of an upload.
const maxUploadSize = 5 << 20

// uploadFolders maps the accepted "dossier" values to storage folders.
var uploadFolders = map[string]bool{
	"passagers":   true,
	"conducteurs": true,
	"permis":      true,
	"assurances":  true,
	"divers":      true,
}

// UploadPhoto stores the multipart file "fichier" and returns the reference
// to put in a photo field.
func UploadPhoto(storage *services.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

		file, err := c.FormFile("fichier")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"erreur": "Fichier trop volumineux"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"erreur": "Le fichier est requis"})
			return
		}

		folder := c.DefaultPostForm("dossier", defaultUploadFolder)
		if !uploadFolders[folder] {
			c.JSON(http.StatusBadRequest, gin.H{"erreur": "Dossier inconnu"})
			return
		}

		reference, err := storage.Upload(c.Request.Context(), file, folder)
		if err != nil {
			serverError(c, "Erreur lors de l'envoi du fichier", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"reference": reference,
			"url":       storage.URL(reference),
		})
	}
}
