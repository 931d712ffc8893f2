package model

import (
	"carehub/shared/model"
	"fmt"

	"github.com/lib/pq"
)

const (
	TableName  = "nannies"
	EntityName = "nanny"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldBio           = "bio"
	FieldExperience    = "experience"
	FieldHourlyRate    = "hourly_rate"
	FieldEducation     = "education"
	FieldPhoneNumber   = "phone_number"
	FieldLocation      = "location"
	FieldSkills        = "skills"
	FieldLanguages     = "languages"
	FieldSpecialNeeds  = "special_needs"
	FieldAgeGroups     = "age_groups"
	FieldServices      = "services"
	FieldGallery       = "gallery"
	FieldAverageRating = "average_rating"
	FieldReviewCount   = "review_count"
	FieldCreatedAt     = "created_at"

	userTable = "users"
)

// Defaults applied to the profile created alongside a nanny account.
const (
	DefaultExperience = 1
	DefaultHourlyRate = 15
	DefaultEducation  = "Not specified"
)

var (
	AgeGroups = []string{"Infant", "Toddler", "Preschool", "School-age", "Teenager"}
	Services  = []string{
		"Babysitting", "Full-time care", "Part-time care", "Overnight care",
		"Homework help", "Cooking", "Light housekeeping", "Transportation",
	}
)

type Nanny struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Bio           string         `db:"bio"`
	Experience    int            `db:"experience"`
	HourlyRate    float64        `db:"hourly_rate"`
	Skills        pq.StringArray `db:"skills"`
	Languages     pq.StringArray `db:"languages"`
	Education     string         `db:"education"`
	SpecialNeeds  bool           `db:"special_needs"`
	AgeGroups     pq.StringArray `db:"age_groups"`
	Services      pq.StringArray `db:"services"`
	PhoneNumber   *string        `db:"phone_number"`
	Location      *string        `db:"location"`
	Gallery       pq.StringArray `db:"gallery"`
	AverageRating float64        `db:"average_rating"`
	ReviewCount   int            `db:"review_count"`
	Name          string         `db:"name"  table:"users"`
	Email         string         `db:"email" table:"users"`
	model.Metadata
}

func (Nanny) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.id = %s.%s", userTable, userTable, TableName, FieldUserID)
}

// Column qualifies a nanny column with its table, the profile query joins users.
func Column(field string) string {
	return TableName + "." + field
}
