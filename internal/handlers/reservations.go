package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/chachabrian/covoiturage-backend/internal/models"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

type reservationInput struct {
	TripID      intValue `json:"id_du_trajet" binding:"required,gt=0"`
	PassengerID intValue `json:"id_du_passager" binding:"required,gt=0"`
	Status      string   `json:"statut"`
}

func (in reservationInput) toModel() models.Reservation {
	return models.Reservation{
		TripID:      uint(in.TripID),
		PassengerID: uint(in.PassengerID),
		Status:      in.Status,
	}
}

func reservations(repo repository.Repository[models.Reservation], events services.EventPublisher) resource[models.Reservation] {
	return resource[models.Reservation]{
		name:    "reservation",
		plural:  "des réservations",
		single:  "de la réservation",
		deleted: "Réservation supprimée avec succès",
		repo:    repo,
		events:  events,
	}
}

// GetReservations lists every reservation with its passenger and trip
func GetReservations(repo repository.Repository[models.Reservation]) gin.HandlerFunc {
	return reservations(repo, nil).list()
}

// CreateReservation books a passenger on a trip. Seats are not counted.
func CreateReservation(repo repository.Repository[models.Reservation], events services.EventPublisher) gin.HandlerFunc {
	return reservations(repo, events).create(bindJSON(reservationInput.toModel))
}

// UpdateReservation replaces every field of reservation :id
func UpdateReservation(repo repository.Repository[models.Reservation], events services.EventPublisher) gin.HandlerFunc {
	return reservations(repo, events).update(bindJSON(reservationInput.toModel))
}

// DeleteReservation removes reservation :id
func DeleteReservation(repo repository.Repository[models.Reservation], events services.EventPublisher) gin.HandlerFunc {
	return reservations(repo, events).remove()
}
