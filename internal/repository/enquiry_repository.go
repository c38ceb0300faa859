package repository

import (
	"context"

	"github.com/onamkulam/interiors/internal/model"
)

// EnquiryRepository は問い合わせ永続化のインターフェース
// Save は ID と CreatedAt を埋める。レコードの更新・削除は行わない
type EnquiryRepository interface {
	Save(ctx context.Context, e *model.Enquiry) error
	FindByID(ctx context.Context, id string) (*model.Enquiry, error)
	List(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error)
}
