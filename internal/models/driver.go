package models

// Driver offers trips with their own vehicle.
type Driver struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	LastName      string `json:"nom_conducteur" gorm:"column:nom_conducteur"`
	FirstName     string `json:"prenom_conducteur" gorm:"column:prenom_conducteur"`
	PhoneNumber   string `json:"numero_de_telephone" gorm:"column:numero_de_telephone"`
	VehicleModel  string `json:"modele_vehicule" gorm:"column:modele_vehicule"`
	SeatCount     int    `json:"nombre_de_places" gorm:"column:nombre_de_places"`
	Photo         string `json:"photo_conducteur" gorm:"column:photo_conducteur"`
	LicensePhoto  string `json:"photo_permis" gorm:"column:photo_permis"`
	InsuranceCard string `json:"carte_assurance" gorm:"column:carte_assurance"`
}

// TableName specifies the table name
func (Driver) TableName() string {
	return "conducteur"
}

// PrimaryKey returns the row id.
func (d Driver) PrimaryKey() uint {
	return d.ID
}
