// Package auth implementa el login contra la tabla fija de credenciales demo
// y la sesión persistida.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/pkg/jwt"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// Credential entrada de la tabla fija de autenticación. La tabla es
// independiente del CRUD de usuarios de la aplicación: editar o borrar un
// usuario no altera con qué credenciales se puede entrar.
type Credential struct {
	Email        string
	PasswordHash []byte
	Name         string
	Role         string
}

// JWTOptions parámetros de emisión de tokens.
type JWTOptions struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase casos de uso de autenticación y sesión.
type UseCase struct {
	creds    []Credential
	sessions repository.SessionRepository
	jwtOpts  JWTOptions
	log      *logger.Logger
}

// NewUseCase construye el caso de uso sobre una tabla de credenciales ya
// hasheada.
func NewUseCase(creds []Credential, sessions repository.SessionRepository, jwtOpts JWTOptions, log *logger.Logger) *UseCase {
	return &UseCase{creds: creds, sessions: sessions, jwtOpts: jwtOpts, log: log}
}

// DefaultCredentials tabla demo del sistema original, hasheada con bcrypt al
// arrancar.
func DefaultCredentials() ([]Credential, error) {
	demo := []struct {
		email, password, name, role string
	}{
		{"admin@almacen.com", "admin123", "Juan Administrador", entity.RoleAdmin},
		{"manager@almacen.com", "manager123", "María Gerente", entity.RoleManager},
		{"operator@almacen.com", "operator123", "Carlos Operador", entity.RoleOperator},
		{"auditor@almacen.com", "auditor123", "Ana Auditora", entity.RoleAuditor},
	}

	creds := make([]Credential, 0, len(demo))
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		creds = append(creds, Credential{Email: d.email, PasswordHash: hash, Name: d.name, Role: d.role})
	}
	return creds, nil
}

// Login valida email y contraseña (comparación exacta del email, sensible a
// mayúsculas) y, si coinciden, persiste la sesión y emite un token. Cualquier
// fallo devuelve el mismo error, sin distinguir email inexistente de
// contraseña incorrecta.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var found *Credential
	for i := range uc.creds {
		if uc.creds[i].Email == in.Email {
			found = &uc.creds[i]
			break
		}
	}
	if found == nil {
		return nil, domain.ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrAuthenticationFailed
	}

	id := entity.Identity{Email: found.Email, Name: found.Name, Role: found.Role}
	if err := uc.sessions.Save(id); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtOpts.Secret, id.Email, id.Name, id.Role, uc.jwtOpts.Issuer, uc.jwtOpts.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("email", id.Email).Str("role", id.Role).Msg("login exitoso")
	return &dto.LoginResponse{
		Token: token,
		User:  dto.IdentityResponse{Email: id.Email, Name: id.Name, Role: id.Role},
	}, nil
}

// Logout limpia la sesión persistida. Idempotente.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}

// CurrentSession devuelve la identidad persistida o ErrAuthenticationFailed
// si no hay sesión.
func (uc *UseCase) CurrentSession() (*dto.IdentityResponse, error) {
	id, err := uc.sessions.Get()
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, domain.ErrAuthenticationFailed
	}
	return &dto.IdentityResponse{Email: id.Email, Name: id.Name, Role: id.Role}, nil
}
