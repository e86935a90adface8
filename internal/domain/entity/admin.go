package entity

// Admin administrador de la plataforma; provisiona empresas.
type Admin struct {
	Account
	Address string
}
