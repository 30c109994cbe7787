package entity

import "time"

// Client representa un cliente; puede aparecer en varios contratos.
type Client struct {
	ID        int64
	Name      string // único
	Contact   string // opcional
	Email     string // opcional
	CreatedAt time.Time
}
