package models

// Passenger is a registered rider. The password is stored exactly as
// submitted.
type Passenger struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	LastName    string `json:"nom_passager" gorm:"column:nom_passager"`
	FirstName   string `json:"prenom_passager" gorm:"column:prenom_passager"`
	PhoneNumber string `json:"numero_de_telephone" gorm:"column:numero_de_telephone"`
	Password    string `json:"mot_de_passe" gorm:"column:mot_de_passe"`
	Photo       string `json:"photo_passager" gorm:"column:photo_passager"`
}

// TableName specifies the table name
func (Passenger) TableName() string {
	return "passager"
}

// PrimaryKey returns the row id.
func (p Passenger) PrimaryKey() uint {
	return p.ID
}
