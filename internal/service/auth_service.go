package service

import (
	"strings"

	"sharednotes/internal/contract"
	"sharednotes/internal/domain/entity"
	"sharednotes/internal/utils"
	"sharednotes/internal/utils/apierror"
	"sharednotes/internal/utils/tokens"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor applied to every stored password hash.
const BcryptCost = 10

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindAllInIDs(ids []int) ([]*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type AuthService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Secret   string
}

func NewAuthService(userRepo UserRepository, validate *validator.Validate, secret string) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Validate: validate,
		Secret:   secret,
	}
}

// Signup registers a new account and returns its public profile. The
// response never includes the password hash.
func (a *AuthService) Signup(req *contract.SignupRequest) (*contract.SignupResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	email := strings.ToLower(req.Email)
	found, err := a.UserRepo.ExistsByEmail(email)
	if err != nil {
		log.Errorf("failed to check if email is taken: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.EmailInUseError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.UserRepo.Save(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.SignupResponse{
		Message: "User registered successfully.",
		User:    toUserResponse(user),
	}, nil
}

// Signin verifies credentials and issues a bearer token. Unknown email and
// wrong password fail identically so accounts cannot be enumerated.
func (a *AuthService) Signin(req *contract.SigninRequest) (*contract.SigninResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := a.UserRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.InvalidCredentialsError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apierror.InvalidCredentialsError
	}

	token, err := tokens.Create(user.ID, a.Secret)
	if err != nil {
		log.Errorf("failed to sign token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.SigninResponse{
		Message: "Sign in successful.",
		Token:   token,
	}, nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
	}
}
