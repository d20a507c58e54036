package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/covoiturage-backend/internal/models"
	"github.com/chachabrian/covoiturage-backend/internal/repository"
	"github.com/chachabrian/covoiturage-backend/internal/services"
)

type tripInput struct {
	DriverID      intValue  `json:"id_du_conducteur" binding:"required,gt=0"`
	Departure     string    `json:"point_de_depart" binding:"required"`
	Arrival       string    `json:"point_d_arrivee" binding:"required"`
	DepartureTime time.Time `json:"heure_de_depart"`
	ArrivalTime   time.Time `json:"heure_d_arrivee"`
	Price         float64   `json:"prix" binding:"gte=0"`
}

func (in tripInput) toModel() models.Trip {
	return models.Trip{
		DriverID:      uint(in.DriverID),
		Departure:     in.Departure,
		Arrival:       in.Arrival,
		DepartureTime: in.DepartureTime,
		ArrivalTime:   in.ArrivalTime,
		Price:         in.Price,
	}
}

func trips(repo repository.Repository[models.Trip], events services.EventPublisher) resource[models.Trip] {
	return resource[models.Trip]{
		name:    "trajet",
		plural:  "des trajets",
		single:  "du trajet",
		deleted: "Trajet supprimé avec succès",
		repo:    repo,
		events:  events,
	}
}

// GetTrips lists every trip with its driver and reservations
func GetTrips(repo repository.Repository[models.Trip]) gin.HandlerFunc {
	return trips(repo, nil).list()
}

// CreateTrip stores a new trip. The driver id is not checked against the
// conducteur table here.
func CreateTrip(repo repository.Repository[models.Trip], events services.EventPublisher) gin.HandlerFunc {
	return trips(repo, events).create(bindJSON(tripInput.toModel))
}

// UpdateTrip replaces every field of trip :id
func UpdateTrip(repo repository.Repository[models.Trip], events services.EventPublisher) gin.HandlerFunc {
	return trips(repo, events).update(bindJSON(tripInput.toModel))
}

// DeleteTrip removes trip :id
func DeleteTrip(repo repository.Repository[models.Trip], events services.EventPublisher) gin.HandlerFunc {
	return trips(repo, events).remove()
}
