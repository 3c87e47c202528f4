package auth

import "context"

// Claims es la identidad que llega a los handlers. Solo UserID es obligatorio;
// se usa para decidir si una mascota pertenece a quien consulta el análisis.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// AuthVerifier valida un bearer token contra el proveedor de identidad.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
