package dto

import (
	"carehub/internal/domains/nanny/model"
	"carehub/shared"
	gDto "carehub/shared/dto"
	gModel "carehub/shared/model"
	"carehub/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}

func (r *CreateReviewRequest) ToModel(nannyID, userID string, verified bool) model.Review {
	return model.Review{
		ID:       uuid.NewString(),
		NannyID:  nannyID,
		UserID:   userID,
		Rating:   r.Rating,
		Comment:  strings.TrimSpace(r.Comment),
		Verified: verified,
		Metadata: gModel.NewMetadata(timezone.Now(), userID),
	}
}

type ReviewResponse struct {
	ID       string `json:"id"`
	NannyID  string `json:"nannyId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Verified bool   `json:"verified"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.NannyID = m.NannyID
	r.UserID = m.UserID
	r.UserName = m.UserName
	r.Rating = m.Rating
	r.Comment = m.Comment
	r.Verified = m.Verified
	r.Metadata.FromModel(m.Metadata)
}

type AddReviewResponse struct {
	Review        ReviewResponse `json:"review"`
	AverageRating float64        `json:"averageRating"`
	ReviewCount   int            `json:"reviewCount"`
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"totalPage"`
	TotalData int              `json:"totalData"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
