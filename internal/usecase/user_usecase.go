package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"prison-visitor-backend/config"
	"prison-visitor-backend/internal/apperror"
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

// JWTSecret is shared with the auth middleware.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "change-me-in-production"))
}

type UserUsecase struct {
	repo   repository.UserRepository
	mailer Mailer
}

func NewUserUsecase(repo repository.UserRepository, mailer Mailer) *UserUsecase {
	return &UserUsecase{repo: repo, mailer: mailer}
}

func (u *UserUsecase) Register(fullName, username, email, password, role, division string) error {
	if role != model.RoleAdmin && role != model.RoleStaff {
		return apperror.Validation(fmt.Sprintf("unknown role %q", role))
	}

	// 1. Hash the password
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 2. Save to database
	user := model.User{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Division: division,
		IsActive: true,
	}
	return u.repo.Create(&user)
}

func (u *UserUsecase) Login(username, password string) (string, *model.User, error) {
	user, err := u.repo.FindByUsername(username)
	if err != nil {
		return "", nil, apperror.NotFound("invalid username or password")
	}
	if !user.IsActive {
		return "", nil, apperror.Conflict("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.NotFound("invalid username or password")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *UserUsecase) issueToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"division": user.Division,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}

// RequestOTP generates a 6-digit code, stores it with a short expiry, and
// emails it to the account address.
func (u *UserUsecase) RequestOTP(email string, now time.Time) error {
	user, err := u.repo.FindByEmail(email)
	if err != nil {
		return apperror.NotFound("no account with that email")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	expires := now.Add(otpTTL)
	user.OTPCode = code
	user.OTPExpiresAt = &expires
	if err := u.repo.Update(user); err != nil {
		return err
	}
	return u.mailer.SendOTP(user.Email, code)
}

// VerifyOTP checks the code and, when valid, clears it and issues a session
// token. Codes are single-use.
func (u *UserUsecase) VerifyOTP(email, code string, now time.Time) (string, *model.User, error) {
	user, err := u.repo.FindByEmail(email)
	if err != nil {
		return "", nil, apperror.NotFound("no account with that email")
	}
	if user.OTPCode == "" || user.OTPCode != code {
		return "", nil, apperror.Validation("invalid verification code")
	}
	if user.OTPExpiresAt == nil || now.After(*user.OTPExpiresAt) {
		return "", nil, apperror.Validation("verification code has expired")
	}

	user.OTPCode = ""
	user.OTPExpiresAt = nil
	if err := u.repo.Update(user); err != nil {
		return "", nil, err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *UserUsecase) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := u.repo.FindByID(userID)
	if err != nil {
		return apperror.NotFound("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperror.Validation("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return apperror.Validation("new password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return u.repo.Update(user)
}
