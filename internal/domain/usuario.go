package domain

type Rol string

const (
	RolAdministrador Rol = "Administrador"
	RolSupervisor    Rol = "Supervisor"
	RolOperador      Rol = "Operador"
	RolCliente       Rol = "Cliente"
)

// Usuario is an operator account that can sign in to the system.
type Usuario struct {
	ID            int32  `json:"id_usuario"`
	NombreUsuario string `json:"nombre_usuario"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	Rol           Rol    `json:"rol"`
	CreatedOn     string `json:"created_on"`
	UpdatedOn     string `json:"updated_on"`
}
