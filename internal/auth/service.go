package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

const (
	defaultAccessTTL = time.Hour
	groupsClaim      = "groups"
	usernameClaim    = "username"
)

// Querier is the subset of generated queries used for accounts.
type Querier interface {
	CreateUser(ctx context.Context, arg dbgen.CreateUserParams) (dbgen.User, error)
	GetUser(ctx context.Context, id pgtype.UUID) (dbgen.User, error)
	GetUserByUsername(ctx context.Context, username string) (dbgen.User, error)
	GetGroupByName(ctx context.Context, name string) (dbgen.Group, error)
}

// Service registers users, checks credentials and issues access tokens.
type Service struct {
	queries   Querier
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
	validator TokenValidator
}

// Config configures the auth service.
type Config struct {
	Queries        Querier
	Secret         string
	AccessTokenTTL time.Duration
	Issuer         string
	Audience       string
	ClockSkew      time.Duration
}

// User is the public view of an account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Groups    []string  `json:"groups"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterInput is the sign-up payload. Role names the group the account joins.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,notblank,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"omitempty,letters,max=150"`
	LastName  string `json:"last_name" validate:"omitempty,letters,max=150"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required"`
}

// LoginInput carries credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	User        User      `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewService constructs a Service.
func NewService(cfg Config) (*Service, error) {
	if cfg.Queries == nil {
		return nil, errors.New("auth: queries is required")
	}
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New("auth: secret is required")
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = "backend-resto"
	}
	audience := strings.TrimSpace(cfg.Audience)
	if audience == "" {
		audience = "resto-frontend"
	}
	return &Service{
		queries:   cfg.Queries,
		secret:    []byte(secret),
		accessTTL: ttl,
		now:       time.Now,
		validator: TokenValidator{
			Issuer:    issuer,
			Audience:  audience,
			ClockSkew: max(cfg.ClockSkew, 0),
			Algorithm: jwa.HS256,
		},
	}, nil
}

// WithNow overrides the clock.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// HashPassword derives the argon2id hash stored for password.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams)
}

// Register creates an account in the group named by in.Role. Roles other than
// Cliente require an authenticated Admin caller.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if err := common.Validate(in); err != nil {
		return User{}, err
	}
	group, err := s.queries.GetGroupByName(ctx, strings.TrimSpace(in.Role))
	if err != nil {
		if common.IsNoRows(err) {
			return User{}, common.Invalid("role", "role does not match an existing group", err)
		}
		return User{}, fmt.Errorf("lookup group: %w", err)
	}
	if err := common.CanGrant(ctx, group.Name); err != nil {
		return User{}, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	row, err := s.queries.CreateUser(ctx, dbgen.CreateUserParams{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Groups:       []string{group.Name},
	})
	if err != nil {
		if common.IsUniqueViolation(err) {
			return User{}, common.Conflict("username already taken", err)
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return ToUser(row), nil
}

// Login verifies credentials and signs an access token carrying the user's groups.
func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	invalid := common.NewAppError("INVALID_CREDENTIALS", "invalid username or password", http.StatusUnauthorized, nil)
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return LoginResult{}, invalid
	}
	row, err := s.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if common.IsNoRows(err) {
			return LoginResult{}, invalid
		}
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}
	ok, err := argon2id.ComparePasswordAndHash(in.Password, row.PasswordHash)
	if err != nil || !ok {
		return LoginResult{}, invalid
	}
	user := ToUser(row)
	token, expiresAt, err := s.sign(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign access token: %w", err)
	}
	return LoginResult{User: user, AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// Me returns the account of userID.
func (s *Service) Me(ctx context.Context, userID string) (User, error) {
	pgID, err := common.ParseID("id", userID)
	if err != nil {
		return User{}, err
	}
	row, err := s.queries.GetUser(ctx, pgID)
	if err := common.GetRow("user", err); err != nil {
		return User{}, err
	}
	return ToUser(row), nil
}

// ParseAccessToken validates token and returns the principal it names.
func (s *Service) ParseAccessToken(token string) (common.Principal, error) {
	tok, err := s.validator.Parse(token, s.secret, s.now())
	if err != nil {
		return common.Principal{}, common.NewAppError("UNAUTHORIZED", "invalid token", http.StatusUnauthorized, err)
	}
	p := common.Principal{UserID: tok.Subject()}
	if v, ok := tok.Get(usernameClaim); ok {
		p.Username, _ = v.(string)
	}
	if v, ok := tok.Get(groupsClaim); ok {
		p.Groups = stringSlice(v)
	}
	if p.UserID == "" {
		return common.Principal{}, common.NewAppError("UNAUTHORIZED", "invalid token", http.StatusUnauthorized, nil)
	}
	return p, nil
}

func (s *Service) sign(user User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.accessTTL)
	tok, err := jwt.NewBuilder().
		Subject(user.ID).
		Issuer(s.validator.Issuer).
		Audience([]string{s.validator.Audience}).
		IssuedAt(now).
		NotBefore(now).
		Expiration(expiresAt).
		Claim(usernameClaim, user.Username).
		Claim(groupsClaim, user.Groups).
		Build()
	if err != nil {
		return "", time.Time{}, err
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(s.validator.Algorithm, s.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return string(signed), expiresAt, nil
}

func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ToUser converts a users row, dropping the password hash.
func ToUser(row dbgen.User) User {
	groups := row.Groups
	if groups == nil {
		groups = []string{}
	}
	return User{
		ID:        common.UUIDString(row.ID),
		Username:  row.Username,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Groups:    groups,
		CreatedAt: common.TimeFromPG(row.CreatedAt),
		UpdatedAt: common.TimeFromPG(row.UpdatedAt),
	}
}
