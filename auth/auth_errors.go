package auth

// Field level validation messages shown next to form inputs
const (
	MsgNombreLength      = "El nombre y apellido debe tener entre 3 y 150 caracteres."
	MsgUsuarioLength     = "El usuario debe tener entre 4 y 80 caracteres."
	MsgUsuarioPattern    = "El usuario solo puede incluir letras, números, puntos y guiones bajos."
	MsgEmailInvalid      = "Ingresa un correo válido (máximo 150 caracteres)."
	MsgTelefonoLength    = "El teléfono no puede superar 50 caracteres."
	MsgPasswordStrength  = "La contraseña debe cumplir todos los requisitos de seguridad."
	MsgPasswordLength    = "La contraseña debe tener entre 8 y 128 caracteres."
	MsgRolRequired       = "Selecciona un rol para el nuevo usuario."
	MsgCodeRequired      = "Ingresa el código que recibiste por correo."
	MsgNewPasswordLength = "La nueva contraseña debe tener mínimo 8 caracteres."
)

// Form field names, matching the JSON keys the API expects
const (
	FieldNombreApellido = "nombre_apellido"
	FieldUsuario        = "usuario"
	FieldEmail          = "email"
	FieldTelefono       = "telefono"
	FieldPassword       = "password"
	FieldRol            = "rol"
	FieldCode           = "code"
)
