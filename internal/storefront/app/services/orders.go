package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
)

// Константы для логирования.
const (
	ErrorFailedGetHistory   = "failed to get purchase history"
	ErrorFailedGetDetail    = "failed to get purchase detail"
	ErrorFailedSubmitReview = "failed to submit review"
)

// ErrAlreadyReviewed возвращается при повторном отзыве на заказ.
var ErrAlreadyReviewed = errors.New("purchase already reviewed")

// Orders отдает историю покупок пользователя и принимает отзывы.
type Orders struct {
	client     *api.Client
	identities Identities
	validator  Validator
}

// NewOrders создает сервис заказов.
func NewOrders(client *api.Client, identities Identities, validator Validator) *Orders {
	return &Orders{
		client:     client,
		identities: identities,
		validator:  validator,
	}
}

// History возвращает историю покупок.
func (o *Orders) History(ctx context.Context) ([]entities.PurchaseHistoryItem, error) {
	if _, err := o.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	items, err := api.GetList[entities.PurchaseHistoryItem](ctx, o.client, "/pembelian/history/", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetHistory, err)
	}
	return items, nil
}

// Detail возвращает заказ по коду транзакции.
func (o *Orders) Detail(ctx context.Context, code string) (*entities.PurchaseDetail, error) {
	if _, err := o.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	var detail entities.PurchaseDetail
	if err := o.client.Get(ctx, "/pembelian/detail/"+url.PathEscape(code)+"/", nil, &detail); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetDetail, err)
	}
	return &detail, nil
}

// ReviewOrder оставляет отзыв со страницы заказа.
func (o *Orders) ReviewOrder(ctx context.Context, code string, req *entities.ReviewRequest) (*entities.Review, error) {
	detail, err := o.Detail(ctx, code)
	if err != nil {
		return nil, err
	}
	if detail.Reviewed() {
		return nil, ErrAlreadyReviewed
	}
	return o.review(ctx, "/pembelian/review/"+url.PathEscape(detail.ID.String())+"/", req)
}

// ReviewPurchase оставляет отзыв по идентификатору покупки.
func (o *Orders) ReviewPurchase(ctx context.Context, purchaseID string, req *entities.ReviewRequest) (*entities.Review, error) {
	if _, err := o.identities.RequireIdentity(); err != nil {
		return nil, err
	}
	return o.review(ctx, "/purchase/"+url.PathEscape(purchaseID)+"/review/", req)
}

func (o *Orders) review(ctx context.Context, path string, req *entities.ReviewRequest) (*entities.Review, error) {
	if err := o.validator.Validate(req); err != nil {
		return nil, err
	}

	var review entities.Review
	if err := o.client.Post(ctx, path, req, &review); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedSubmitReview, err)
	}
	if review.Rating == 0 {
		review.Rating = req.Rating
		review.Ulasan = req.Ulasan
	}
	return &review, nil
}
