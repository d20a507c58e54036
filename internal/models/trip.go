package models

import "time"

// Trip is a journey offered by a driver. Driver and Reservations are only
// populated when listing; writes carry the scalar DriverID.
type Trip struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	DriverID      uint          `json:"id_du_conducteur" gorm:"column:id_du_conducteur;not null"`
	Departure     string        `json:"point_de_depart" gorm:"column:point_de_depart"`
	Arrival       string        `json:"point_d_arrivee" gorm:"column:point_d_arrivee"`
	DepartureTime time.Time     `json:"heure_de_depart" gorm:"column:heure_de_depart"`
	ArrivalTime   time.Time     `json:"heure_d_arrivee" gorm:"column:heure_d_arrivee"`
	Price         float64       `json:"prix" gorm:"column:prix"`
	Driver        *Driver       `json:"conducteur,omitempty" gorm:"foreignKey:DriverID"`
	Reservations  []Reservation `json:"reservations,omitempty" gorm:"foreignKey:TripID"`
}

// TableName specifies the table name
func (Trip) TableName() string {
	return "trajet"
}

// PrimaryKey returns the row id.
func (t Trip) PrimaryKey() uint {
	return t.ID
}
