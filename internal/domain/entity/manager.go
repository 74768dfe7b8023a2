package entity

// Manager es el perfil 1:1 de un User con rol "manager".
// Posee cero o más Products y cero o más Staff; al eliminarlo esas
// referencias se ponen en NULL, nunca se eliminan las filas dependientes.
type Manager struct {
	ID         string
	UserID     string
	Email      string // único entre managers
	Department string
}
