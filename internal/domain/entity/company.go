package entity

import "time"

// Company representa una empresa; a lo sumo una debería estar marcada como matriz (IsParent).
type Company struct {
	ID        int64
	Name      string // único
	IsParent  bool
	CreatedAt time.Time
}
