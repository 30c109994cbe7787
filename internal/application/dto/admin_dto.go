package dto

import "time"

// RawTableResponse volcado de una tabla para el panel de administración.
type RawTableResponse struct {
	Table   string     `json:"table"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// WipeTokenResponse token de confirmación emitido por POST /api/admin/wipe/enable.
type WipeTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// WipeConfirmRequest entrada de POST /api/admin/wipe/confirm.
type WipeConfirmRequest struct {
	Token string `json:"token"`
}

// WipeResultResponse resultado del borrado total.
type WipeResultResponse struct {
	Wiped bool `json:"wiped"`
}
