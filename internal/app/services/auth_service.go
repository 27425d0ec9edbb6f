package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/repositories"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
	"github.com/aydink/acadmin/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	studentRepo *repositories.StudentRepository
	teacherRepo *repositories.TeacherRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	teacherRepo *repositories.TeacherRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login checks credentials for the requested role and issues a token.
// Students authenticate against the students table; every staff role
// authenticates against the teachers table with a roll_type filter, so a
// valid teacher password cannot log in as admin.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	role := models.Role(req.Role)
	if !models.ValidLoginRole(role) {
		return nil, apperrors.NewValidationError("invalid role type")
	}

	var info interface{}
	var userID string

	switch role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByCredentials(ctx, req.Username, req.Password)
		if err != nil {
			return nil, err
		}
		info = student
		userID = student.ID
	default:
		teacher, err := s.teacherRepo.GetByCredentials(ctx, req.Username, req.Password, role)
		if err != nil {
			return nil, err
		}
		info = teacher
		userID = teacher.ID
	}

	token, err := s.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("userId", userID).Str("role", req.Role).Msg("Login successful")

	return &dto.LoginResponse{
		Token: token,
		Role:  req.Role,
		Info:  info,
	}, nil
}
