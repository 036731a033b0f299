package domain

import "time"

// Review описывает отзыв пользователя о товаре, один отзыв на пару (товар, пользователь)
type Review struct {
	ID        int64
	ProductID int64
	UserID    *int64
	Rating    int32
	Title     string
	Comment   string
	CreatedAt time.Time
}

func NewReview(productID, userID int64, rating int32, title, comment string) *Review {
	return &Review{
		ProductID: productID,
		UserID:    &userID,
		Rating:    rating,
		Title:     title,
		Comment:   comment,
	}
}
