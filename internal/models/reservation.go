package models

// Reservation books a passenger onto a trip. Status is free-form.
type Reservation struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TripID      uint       `json:"id_du_trajet" gorm:"column:id_du_trajet;not null"`
	PassengerID uint       `json:"id_du_passager" gorm:"column:id_du_passager;not null"`
	Status      string     `json:"statut" gorm:"column:statut"`
	Passenger   *Passenger `json:"passager,omitempty" gorm:"foreignKey:PassengerID"`
	Trip        *Trip      `json:"trajet,omitempty" gorm:"foreignKey:TripID"`
}

// TableName specifies the table name
func (Reservation) TableName() string {
	return "reservation"
}

// PrimaryKey returns the row id.
func (r Reservation) PrimaryKey() uint {
	return r.ID
}
