package promotion

import "github.com/noah-isme/backend-resto/internal/common"

// NewHandler exposes promotions under the standard collection routes.
func NewHandler(svc *Service, defaultPageSize, maxPageSize int) *common.CRUDHandler[Promotion, Input] {
	h := &common.CRUDHandler[Promotion, Input]{Name: "promotion", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}
