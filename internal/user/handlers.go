package user

import (
	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/common"
)

// NewHandler exposes user administration endpoints.
func NewHandler(svc *Service, defaultPageSize, maxPageSize int) *common.CRUDHandler[auth.User, Input] {
	h := &common.CRUDHandler[auth.User, Input]{Name: "user", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}
