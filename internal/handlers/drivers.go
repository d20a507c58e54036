package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/chachabrian/covoiturage-backend/internal/models"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

type driverInput struct {
	LastName      string   `json:"nom_conducteur" binding:"required"`
	FirstName     string   `json:"prenom_conducteur" binding:"required"`
	PhoneNumber   string   `json:"numero_de_telephone" binding:"required"`
	VehicleModel  string   `json:"modele_vehicule"`
	SeatCount     intValue `json:"nombre_de_places" binding:"gte=0"`
	Photo         string   `json:"photo_conducteur"`
	LicensePhoto  string   `json:"photo_permis"`
	InsuranceCard string   `json:"carte_assurance"`
}

func (in driverInput) toModel() models.Driver {
	return models.Driver{
		LastName:      in.LastName,
		FirstName:     in.FirstName,
		PhoneNumber:   in.PhoneNumber,
		VehicleModel:  in.VehicleModel,
		SeatCount:     int(in.SeatCount),
		Photo:         in.Photo,
		LicensePhoto:  in.LicensePhoto,
		InsuranceCard: in.InsuranceCard,
	}
}

func drivers(repo repository.Repository[models.Driver], events services.EventPublisher) resource[models.Driver] {
	return resource[models.Driver]{
		name:    "conducteur",
		plural:  "des conducteurs",
		single:  "du conducteur",
		deleted: "Conducteur supprimé avec succès",
		repo:    repo,
		events:  events,
	}
}

// GetDrivers lists every driver
func GetDrivers(repo repository.Repository[models.Driver]) gin.HandlerFunc {
	return drivers(repo, nil).list()
}

// CreateDriver stores a new driver
func CreateDriver(repo repository.Repository[models.Driver], events services.EventPublisher) gin.HandlerFunc {
	return drivers(repo, events).create(bindJSON(driverInput.toModel))
}

// UpdateDriver replaces every field of driver :id
func UpdateDriver(repo repository.Repository[models.Driver], events services.EventPublisher) gin.HandlerFunc {
	return drivers(repo, events).update(bindJSON(driverInput.toModel))
}

// DeleteDriver removes driver :id. Trips still pointing at it make the
// store refuse the delete.
func DeleteDriver(repo repository.Repository[models.Driver], events services.EventPublisher) gin.HandlerFunc {
	return drivers(repo, events).remove()
}
