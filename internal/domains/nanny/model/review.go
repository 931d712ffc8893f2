package model

import (
	"carehub/shared/model"
	"fmt"
)

const (
	ReviewTableName  = "nanny_reviews"
	ReviewEntityName = "nanny_review"

	ReviewFieldID       = "id"
	ReviewFieldNannyID  = "nanny_id"
	ReviewFieldUserID   = "user_id"
	ReviewFieldRating   = "rating"
	ReviewFieldVerified = "verified"

	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID       string `db:"id"`
	NannyID  string `db:"nanny_id"`
	UserID   string `db:"user_id"`
	Rating   int    `db:"rating"`
	Comment  string `db:"comment"`
	Verified bool   `db:"verified"`
	UserName string `db:"user_name" table:"users" column:"name"`
	model.Metadata
}

func (Review) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.id = %s.%s", userTable, userTable, ReviewTableName, ReviewFieldUserID)
}

// RatingSummary is the aggregate kept on the nanny profile.
type RatingSummary struct {
	AverageRating float64 `db:"average_rating"`
	ReviewCount   int     `db:"review_count"`
}

func ReviewColumn(field string) string {
	return ReviewTableName + "." + field
}
