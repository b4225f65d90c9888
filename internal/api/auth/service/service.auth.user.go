// Package authsvc - service tài khoản: đăng ký, đăng nhập và phát hành JWT.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/dto"
	models "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/models"
	basesvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/utility"
)

// maxPasswordBytes là giới hạn độ dài đầu vào của bcrypt
const maxPasswordBytes = 72

// MsgPasswordTooLong là message khi mật khẩu vượt giới hạn của bcrypt
const MsgPasswordTooLong = "Password must be at most 72 bytes long."

// AccountStore là tầng lưu trữ tài khoản
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error) // common.ErrUserNotFound nếu không có
	CreateUser(ctx context.Context, user *models.User) error             // common.ErrEmailTaken nếu email trùng
}

// AccountStoreMongo triển khai AccountStore trên collection users (unique index email)
type AccountStoreMongo struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewAccountStoreMongo tạo mới AccountStoreMongo từ registry collection
func NewAccountStoreMongo() (*AccountStoreMongo, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &AccountStoreMongo{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

func (s *AccountStoreMongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AccountStoreMongo) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := s.InsertOne(ctx, *user); err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return common.ErrEmailTaken
		}
		return err
	}
	return nil
}

// AuthResult là kết quả đăng ký/đăng nhập
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService là cấu trúc chứa các phương thức liên quan đến tài khoản
type UserService struct {
	store      AccountStore
	secret     string
	ttl        time.Duration
	bcryptCost int
	now        func() time.Time
}

// NewUserService tạo mới UserService với store và cấu hình token
func NewUserService(store AccountStore, secret string, ttl time.Duration) *UserService {
	return &UserService{
		store:      store,
		secret:     secret,
		ttl:        ttl,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// SetBcryptCost đổi cost của bcrypt (test dùng bcrypt.MinCost)
func (s *UserService) SetBcryptCost(cost int) {
	s.bcryptCost = cost
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup tạo tài khoản mới với các bộ sưu tập rỗng và trả về token
func (s *UserService) Signup(ctx context.Context, input *authdto.SignupInput) (*AuthResult, error) {
	// max=72 của validator đếm rune, bcrypt giới hạn theo byte
	if len(input.Password) > maxPasswordBytes {
		return nil, common.NewBadRequest(MsgPasswordTooLong)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, err)
	}

	now := s.now().UTC()
	user := models.NewUser(
		utility.NewID(),
		strings.TrimSpace(input.FirstName),
		strings.TrimSpace(input.LastName),
		normalizeEmail(input.Email),
		string(hash),
		now,
	)
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := IssueToken(s.secret, user.ID, s.ttl, now)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Failed to issue token", common.StatusInternalServerError, err)
	}
	logger.WithModule("auth").WithFields(logrus.Fields{"user_id": user.ID}).Info("User signed up")
	return &AuthResult{Token: token, User: user}, nil
}

// Login kiểm tra email + mật khẩu và trả về token mới
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*AuthResult, error) {
	user, err := s.store.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := IssueToken(s.secret, user.ID, s.ttl, s.now().UTC())
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Failed to issue token", common.StatusInternalServerError, err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
