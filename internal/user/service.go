package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/common"
	dbgen "github.com/noah-isme/backend-resto/internal/db/gen"
)

// Querier is the subset of generated queries used for user administration.
type Querier interface {
	ListUsers(ctx context.Context, arg dbgen.ListUsersParams) ([]dbgen.User, error)
	CountUsers(ctx context.Context) (int64, error)
	GetUser(ctx context.Context, id pgtype.UUID) (dbgen.User, error)
	CreateUser(ctx context.Context, arg dbgen.CreateUserParams) (dbgen.User, error)
	UpdateUser(ctx context.Context, arg dbgen.UpdateUserParams) (dbgen.User, error)
	DeleteUser(ctx context.Context, id pgtype.UUID) (int64, error)
}

// Input is the admin payload for an account. Password is only read on create.
type Input struct {
	Username  string   `json:"username" validate:"required,notblank,min=3,max=150"`
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name" validate:"omitempty,letters,max=150"`
	LastName  string   `json:"last_name" validate:"omitempty,letters,max=150"`
	Password  string   `json:"password" validate:"omitempty,min=6"`
	Groups    []string `json:"groups" validate:"required,min=1,dive,oneof=Admin Cliente"`
}

// Service administers user accounts.
type Service struct {
	Q Querier
}

func (s *Service) List(ctx context.Context, page common.PageRequest) ([]auth.User, int64, error) {
	rows, err := s.Q.ListUsers(ctx, dbgen.ListUsersParams{Limit: page.Limit(), Offset: page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	total, err := s.Q.CountUsers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	out := make([]auth.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, auth.ToUser(row))
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (auth.User, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return auth.User{}, err
	}
	row, err := s.Q.GetUser(ctx, pgID)
	if err := common.GetRow("user", err); err != nil {
		return auth.User{}, err
	}
	return auth.ToUser(row), nil
}

// Create adds an account with an explicit group list. Only admins may grant Admin.
func (s *Service) Create(ctx context.Context, in Input) (auth.User, error) {
	in = normalize(in)
	if err := common.Validate(in); err != nil {
		return auth.User{}, err
	}
	if in.Password == "" {
		return auth.User{}, common.Invalid("password", "password is required", nil)
	}
	if err := common.CanGrant(ctx, in.Groups...); err != nil {
		return auth.User{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return auth.User{}, fmt.Errorf("hash password: %w", err)
	}
	row, err := s.Q.CreateUser(ctx, dbgen.CreateUserParams{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Groups:       in.Groups,
	})
	if err != nil {
		return auth.User{}, common.MapWriteError("user", err)
	}
	return auth.ToUser(row), nil
}

// Update changes profile fields and group membership. Usernames and passwords are not editable here.
func (s *Service) Update(ctx context.Context, id string, in Input) (auth.User, error) {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return auth.User{}, err
	}
	in = normalize(in)
	if err := common.Validate(in); err != nil {
		return auth.User{}, err
	}
	if err := common.CanGrant(ctx, in.Groups...); err != nil {
		return auth.User{}, err
	}
	row, err := s.Q.UpdateUser(ctx, dbgen.UpdateUserParams{
		ID:        pgID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Groups:    in.Groups,
	})
	if err != nil {
		return auth.User{}, common.MapWriteError("user", err)
	}
	return auth.ToUser(row), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	pgID, err := common.ParseID("id", id)
	if err != nil {
		return err
	}
	n, err := s.Q.DeleteUser(ctx, pgID)
	return common.DeleteRows("user", n, err)
}

func normalize(in Input) Input {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	groups := make([]string, 0, len(in.Groups))
	seen := map[string]bool{}
	for _, g := range in.Groups {
		g = strings.TrimSpace(g)
		if g != "" && !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	in.Groups = groups
	return in
}
