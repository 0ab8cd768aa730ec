package domain

// RvPark is a park holding spots. Nombre is unique across parks.
type RvPark struct {
	ID        int32  `json:"id_rv_park"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
