package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/almacen-api/internal/application/dto"
	"github.com/jcastro/almacen-api/internal/domain"
	"github.com/jcastro/almacen-api/internal/domain/entity"
	"github.com/jcastro/almacen-api/internal/domain/policy"
	"github.com/jcastro/almacen-api/internal/domain/repository"
	"github.com/jcastro/almacen-api/pkg/logger"
)

// UserUseCase CRUD de usuarios de la aplicación. Es un directorio: no alimenta
// la autenticación, que usa su propia tabla fija de credenciales.
type UserUseCase struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, log: log}
}

// Create da de alta un usuario. El email debe ser único y el rol pertenecer al
// catálogo; sin estado explícito nace activo.
func (uc *UserUseCase) Create(actor entity.Identity, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !policy.Can(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrPermissionDenied
	}
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.UserActive
	}
	if status != entity.UserActive && status != entity.UserInactive {
		return nil, domain.ErrInvalidInput
	}

	if existing, err := uc.users.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	u := &entity.AppUser{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", u.ID).Str("email", u.Email).Str("created_by", actor.Email).Msg("usuario creado")
	resp := toUserResponse(u)
	return &resp, nil
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(actor entity.Identity, id string) (*dto.UserResponse, error) {
	if !policy.Can(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrPermissionDenied
	}
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// List devuelve los usuarios ordenados por fecha de alta.
func (uc *UserUseCase) List(actor entity.Identity) (*dto.UserListResponse, error) {
	if !policy.Can(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrPermissionDenied
	}
	all, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(all))
	for _, u := range all {
		items = append(items, toUserResponse(u))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// Update edita un usuario. CreatedAt se preserva siempre.
func (uc *UserUseCase) Update(actor entity.Identity, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.Can(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrPermissionDenied
	}

	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		u.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		if other, err := uc.users.GetByEmail(*in.Email); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
		u.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		u.Role = *in.Role
	}
	if in.Status != nil {
		if *in.Status != entity.UserActive && *in.Status != entity.UserInactive {
			return nil, domain.ErrInvalidInput
		}
		u.Status = *in.Status
	}

	if err := uc.users.Update(u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Delete borra un usuario del directorio.
func (uc *UserUseCase) Delete(actor entity.Identity, id string) error {
	if !policy.Can(actor.Role, policy.ActionManageUsers) {
		return domain.ErrPermissionDenied
	}
	if err := uc.users.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Str("deleted_by", actor.Email).Msg("usuario borrado")
	return nil
}

func toUserResponse(u *entity.AppUser) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
