package domain

type TipoVehiculo string

const (
	TipoVehiculoCarga      TipoVehiculo = "Carga"
	TipoVehiculoMaquinaria TipoVehiculo = "Maquinaria"
	TipoVehiculoCaravana   TipoVehiculo = "Caravana"
	TipoVehiculoOtro       TipoVehiculo = "Otro"
)

// Cliente is a persona record plus its login credentials. Creation writes
// both; updates only touch the persona fields, credentials are immutable
// through this entity.
type Cliente struct {
	ID            int32        `json:"id_persona"`
	Nombre        string       `json:"nombre"`
	Telefono      string       `json:"telefono,omitempty"`
	Email         string       `json:"email"`
	TipoVehiculo  TipoVehiculo `json:"tipo_vehiculo,omitempty"`
	NombreUsuario string       `json:"nombre_usuario"`
	PasswordHash  string       `json:"-"`
	Rol           Rol          `json:"rol"`
	CreatedOn     string       `json:"created_on"`
	UpdatedOn     string       `json:"updated_on"`
}
