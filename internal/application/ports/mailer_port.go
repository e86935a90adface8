package ports

import "context"

// Invitation datos del correo de invitación enviado al provisionar una empresa o un empleado.
type Invitation struct {
	To        string
	Name      string
	InvitedBy string // nombre de quien invita (plataforma o empresa)
	Password  string // contraseña temporal
	LoginURL  string
}

// Mailer define el puerto de salida para el envío de correos transaccionales.
// Cualquier adaptador (SMTP, log, fake de tests) debe implementar esta interfaz.
// Los envíos no se reintentan; el llamador decide si el fallo se reporta o solo se registra.
type Mailer interface {
	SendInvitation(ctx context.Context, in Invitation) error
	SendWelcome(ctx context.Context, to, name string) error
	SendVerification(ctx context.Context, to, name, link string) error
	SendPasswordReset(ctx context.Context, to, name, link string) error
}
