package service

import (
	"errors"
	"newsnotes/cmd/internal/contract"
	"newsnotes/cmd/internal/domain/entity"
	"newsnotes/cmd/internal/utils"
	"newsnotes/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindActiveByID(id int64) (*entity.User, error)
	FindActiveByUsername(username string) (*entity.User, error)
	ExistsByUsername(username string) (bool, error)
	Save(user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Sessions *SessionService
	Validate *validator.Validate

	// HashCost is the bcrypt cost for new passwords.
	HashCost int
}

func NewUserService(userRepo UserRepository, sessions *SessionService, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Sessions: sessions,
		Validate: validate,
		HashCost: bcrypt.DefaultCost,
	}
}

// CreateUser registers a new account. It does not log the user in.
func (u *UserService) CreateUser(req *contract.SignupRequest) (*entity.User, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.NewFieldError("username", apierror.UsernameTakenMessage)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), u.HashCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.UserRepo.Save(user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apierror.NewFieldError("username", apierror.UsernameTakenMessage)
	}

	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

// Login checks the credentials and opens a session, returning its cookie token.
func (u *UserService) Login(req *contract.LoginRequest) (string, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return "", apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return "", apierror.InternalServerError
	}

	if user == nil || !checkPassword(user, req.Password) {
		return "", apierror.NewFieldError(apierror.NonFieldErrors, apierror.InvalidLoginMessage)
	}
	return u.Sessions.Start(user)
}

func (u *UserService) Logout(sessionID string) apierror.ErrorResponse {
	return u.Sessions.End(sessionID)
}

func checkPassword(user *entity.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// ToUserResponse exposes the user fields safe to show in pages.
func ToUserResponse(user *entity.User) *contract.UserResponse {
	if user == nil {
		return nil
	}
	return &contract.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
