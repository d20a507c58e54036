package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/chachabrian/covoiturage-backend/internal/models"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

type passengerInput struct {
	LastName    string `json:"nom_passager" binding:"required"`
	FirstName   string `json:"prenom_passager" binding:"required"`
	PhoneNumber string `json:"numero_de_telephone" binding:"required"`
	Password    string `json:"mot_de_passe" binding:"required"`
	Photo       string `json:"photo_passager"`
}

func (in passengerInput) toModel() models.Passenger {
	return models.Passenger{
		LastName:    in.LastName,
		FirstName:   in.FirstName,
		PhoneNumber: in.PhoneNumber,
		Password:    in.Password,
		Photo:       in.Photo,
	}
}

func passengers(repo repository.Repository[models.Passenger], events services.EventPublisher) resource[models.Passenger] {
	return resource[models.Passenger]{
		name:    "passager",
		plural:  "des passagers",
		single:  "du passager",
		deleted: "Passager supprimé avec succès",
		repo:    repo,
		events:  events,
	}
}

// GetPassengers lists every passenger
func GetPassengers(repo repository.Repository[models.Passenger]) gin.HandlerFunc {
	return passengers(repo, nil).list()
}

// CreatePassenger stores a new passenger and returns it with its id
func CreatePassenger(repo repository.Repository[models.Passenger], events services.EventPublisher) gin.HandlerFunc {
	return passengers(repo, events).create(bindJSON(passengerInput.toModel))
}

// UpdatePassenger replaces every field of passenger :id
func UpdatePassenger(repo repository.Repository[models.Passenger], events services.EventPublisher) gin.HandlerFunc {
	return passengers(repo, events).update(bindJSON(passengerInput.toModel))
}

// DeletePassenger removes passenger :id
func DeletePassenger(repo repository.Repository[models.Passenger], events services.EventPublisher) gin.HandlerFunc {
	return passengers(repo, events).remove()
}
