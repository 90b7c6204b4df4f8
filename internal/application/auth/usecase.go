package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
	"github.com/jhoicas/Liquidacion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase adaptador de identidad: registro y login. El motor de
// liquidación nunca autentica; consume la Autoridad ya resuelta que el
// middleware extrae del token que se emite aquí.
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	sedeRepo repository.SedeRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, sedeRepo repository.SedeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sedeRepo: sedeRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// La sede debe existir; el rol por defecto es SOLICITANTE.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByUsername(ctx, in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	sede, err := uc.sedeRepo.GetByID(ctx, in.SedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolSolicitante
	}
	switch rol {
	case entity.RolSolicitante, entity.RolAlmacen, entity.RolAdmin, entity.RolJefa:
	default:
		return nil, domain.NewValidacion("rol", "rol desconocido")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          rol,
		SedeID:       in.SedeID,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales y emite un JWT con el perfil de autoridad:
// rol, sede principal y el flag de autoridad central (ALMACEN cuya sede es la
// CENTRAL).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrAccesoDenegado
	}

	central := false
	if user.Rol == entity.RolAlmacen && user.SedeID != "" {
		sede, err := uc.sedeRepo.GetByID(ctx, user.SedeID)
		if err != nil {
			return nil, err
		}
		central = sede != nil && sede.EsCentral()
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identidad{
		UserID:           user.ID,
		Rol:              user.Rol,
		SedeID:           user.SedeID,
		AutoridadCentral: central,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		SedeID:    u.SedeID,
		CreatedAt: u.CreatedAt,
	}
}
