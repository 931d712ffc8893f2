package dto

import (
	"carehub/internal/domains/nanny/model"
	"carehub/shared"
	gDto "carehub/shared/dto"
	gModel "carehub/shared/model"
	"carehub/shared/timezone"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QueryMinRate       = "min_rate"
	QueryMaxRate       = "max_rate"
	QueryMinExperience = "min_experience"
	QuerySkills        = "skills"
	QueryLanguages     = "languages"
	QuerySpecialNeeds  = "special_needs"
	QueryAgeGroups     = "age_groups"
	QueryServices      = "services"
	QueryMinRating     = "min_rating"
)

type CreateNannyRequest struct {
	Bio          string   `json:"bio"          validate:"required,max=2000"`
	Experience   int      `json:"experience"   validate:"gte=0,lte=80"`
	HourlyRate   float64  `json:"hourlyRate"   validate:"gte=0"`
	Skills       []string `json:"skills"       validate:"omitempty,dive,required,max=50"`
	Languages    []string `json:"languages"    validate:"omitempty,dive,required,max=50"`
	Education    string   `json:"education"    validate:"omitempty,max=200"`
	SpecialNeeds bool     `json:"specialNeeds"`
	AgeGroups    []string `json:"ageGroups"    validate:"omitempty,unique,dive,oneof=Infant Toddler Preschool School-age Teenager"`
	Services     []string `json:"services"     validate:"omitempty,unique,dive,oneof='Babysitting' 'Full-time care' 'Part-time care' 'Overnight care' 'Homework help' 'Cooking' 'Light housekeeping' 'Transportation'"`
	PhoneNumber  *string  `json:"phoneNumber"  validate:"omitempty,max=30"`
	Location     *string  `json:"location"     validate:"omitempty,max=200"`
}

func (r *CreateNannyRequest) ToModel(userID string) model.Nanny {
	return model.Nanny{
		ID:           uuid.NewString(),
		UserID:       userID,
		Bio:          strings.TrimSpace(r.Bio),
		Experience:   r.Experience,
		HourlyRate:   r.HourlyRate,
		Skills:       nonNil(r.Skills),
		Languages:    nonNil(r.Languages),
		Education:    r.Education,
		SpecialNeeds: r.SpecialNeeds,
		AgeGroups:    nonNil(r.AgeGroups),
		Services:     nonNil(r.Services),
		PhoneNumber:  r.PhoneNumber,
		Location:     r.Location,
		Gallery:      pq.StringArray{},
		Metadata:     gModel.NewMetadata(timezone.Now(), userID),
	}
}

// DefaultProfile is the starter profile created when a nanny account registers.
func DefaultProfile(userID, name string) CreateNannyRequest {
	return CreateNannyRequest{
		Bio:        fmt.Sprintf("Hi, I'm %s! I'm a nanny looking to provide childcare services.", name),
		Experience: model.DefaultExperience,
		HourlyRate: model.DefaultHourlyRate,
		Skills:     []string{"Babysitting"},
		Languages:  []string{"English"},
		Education:  model.DefaultEducation,
		AgeGroups:  []string{"Infant", "Toddler", "Preschool"},
		Services:   []string{"Babysitting", "Part-time care"},
	}
}

func nonNil(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(values)
}

// UpdateNannyRequest is a partial update. Array fields replace the stored value when present.
type UpdateNannyRequest struct {
	Bio          *string  `json:"bio"          validate:"omitempty,min=1,max=2000"`
	Experience   *int     `json:"experience"   validate:"omitempty,gte=0,lte=80"`
	HourlyRate   *float64 `json:"hourlyRate"   validate:"omitempty,gte=0"`
	Skills       []string `json:"skills"       validate:"omitempty,dive,required,max=50"`
	Languages    []string `json:"languages"    validate:"omitempty,dive,required,max=50"`
	Education    *string  `json:"education"    validate:"omitempty,max=200"`
	SpecialNeeds *bool    `json:"specialNeeds"`
	AgeGroups    []string `json:"ageGroups"    validate:"omitempty,unique,dive,oneof=Infant Toddler Preschool School-age Teenager"`
	Services     []string `json:"services"     validate:"omitempty,unique,dive,oneof='Babysitting' 'Full-time care' 'Part-time care' 'Overnight care' 'Homework help' 'Cooking' 'Light housekeeping' 'Transportation'"`
	PhoneNumber  *string  `json:"phoneNumber"  validate:"omitempty,max=30"`
	Location     *string  `json:"location"     validate:"omitempty,max=200"`
}

func (r *UpdateNannyRequest) IsEmpty() bool {
	return r.Bio == nil && r.Experience == nil && r.HourlyRate == nil && r.Skills == nil &&
		r.Languages == nil && r.Education == nil && r.SpecialNeeds == nil && r.AgeGroups == nil &&
		r.Services == nil && r.PhoneNumber == nil && r.Location == nil
}

// ToFields builds the column update map, stamping the modification metadata.
func (r *UpdateNannyRequest) ToFields(user string) map[string]any {
	fields := gModel.Touch(nil, user)

	setPtr(fields, model.FieldBio, r.Bio)
	setPtr(fields, model.FieldExperience, r.Experience)
	setPtr(fields, model.FieldHourlyRate, r.HourlyRate)
	setPtr(fields, model.FieldEducation, r.Education)
	setPtr(fields, model.FieldSpecialNeeds, r.SpecialNeeds)
	setPtr(fields, model.FieldPhoneNumber, r.PhoneNumber)
	setPtr(fields, model.FieldLocation, r.Location)

	for column, values := range map[string][]string{
		model.FieldSkills:    r.Skills,
		model.FieldLanguages: r.Languages,
		model.FieldAgeGroups: r.AgeGroups,
		model.FieldServices:  r.Services,
	} {
		if values != nil {
			fields[column] = pq.StringArray(values)
		}
	}

	return fields
}

func setPtr[T any](fields map[string]any, column string, value *T) {
	if value != nil {
		fields[column] = *value
	}
}

type NannyResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Bio           string   `json:"bio"`
	Experience    int      `json:"experience"`
	HourlyRate    float64  `json:"hourlyRate"`
	Skills        []string `json:"skills"`
	Languages     []string `json:"languages"`
	Education     string   `json:"education"`
	SpecialNeeds  bool     `json:"specialNeeds"`
	AgeGroups     []string `json:"ageGroups"`
	Services      []string `json:"services"`
	PhoneNumber   *string  `json:"phoneNumber,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Gallery       []string `json:"gallery"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
	gDto.Metadata
}

func (r *NannyResponse) FromModel(m model.Nanny) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.Name = m.Name
	r.Email = m.Email
	r.Bio = m.Bio
	r.Experience = m.Experience
	r.HourlyRate = m.HourlyRate
	r.Skills = []string(nonNil(m.Skills))
	r.Languages = []string(nonNil(m.Languages))
	r.Education = m.Education
	r.SpecialNeeds = m.SpecialNeeds
	r.AgeGroups = []string(nonNil(m.AgeGroups))
	r.Services = []string(nonNil(m.Services))
	r.PhoneNumber = m.PhoneNumber
	r.Location = m.Location
	r.Gallery = []string(nonNil(m.Gallery))
	r.AverageRating = m.AverageRating
	r.ReviewCount = m.ReviewCount
	r.Metadata.FromModel(m.Metadata)
}

type GetNanniesResponse struct {
	Nannies   []NannyResponse `json:"nannies"`
	TotalPage int             `json:"totalPage"`
	TotalData int             `json:"totalData"`
}

func (r *GetNanniesResponse) FromModels(models []model.Nanny, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Nannies = make([]NannyResponse, len(models))
	for i, mod := range models {
		r.Nannies[i].FromModel(mod)
	}
}

// SearchNanniesRequest holds the optional search filters of the public nanny listing.
type SearchNanniesRequest struct {
	MinRate       *float64
	MaxRate       *float64
	MinExperience *float64
	MinRating     *float64
	SpecialNeeds  *bool
	Skills        []string
	Languages     []string
	AgeGroups     []string
	Services      []string
}

func (r *SearchNanniesRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.MinRate = shared.ConvertStringToFloat(query.Get(QueryMinRate))
	r.MaxRate = shared.ConvertStringToFloat(query.Get(QueryMaxRate))
	r.MinExperience = shared.ConvertStringToFloat(query.Get(QueryMinExperience))
	r.MinRating = shared.ConvertStringToFloat(query.Get(QueryMinRating))
	r.SpecialNeeds = shared.ConvertStringToBool(query.Get(QuerySpecialNeeds))
	r.Skills = shared.SplitCSV(query.Get(QuerySkills))
	r.Languages = shared.SplitCSV(query.Get(QueryLanguages))
	r.AgeGroups = shared.SplitCSV(query.Get(QueryAgeGroups))
	r.Services = shared.SplitCSV(query.Get(QueryServices))
}

func (r *SearchNanniesRequest) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	addRange := func(argName, field, operator string, value *float64) {
		if value != nil {
			filters = append(filters, gDto.Filter{
				ArgName:  argName,
				Field:    field,
				Operator: operator,
				Value:    *value,
				Table:    model.TableName,
			})
		}
	}

	addRange(QueryMinRate, model.FieldHourlyRate, gDto.FilterOperatorGreaterEq, r.MinRate)
	addRange(QueryMaxRate, model.FieldHourlyRate, gDto.FilterOperatorLessEq, r.MaxRate)
	addRange(QueryMinExperience, model.FieldExperience, gDto.FilterOperatorGreaterEq, r.MinExperience)
	addRange(QueryMinRating, model.FieldAverageRating, gDto.FilterOperatorGreaterEq, r.MinRating)

	if r.SpecialNeeds != nil && *r.SpecialNeeds {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldSpecialNeeds,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	addOverlap := func(field string, values []string) {
		if len(values) > 0 {
			filters = append(filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorOverlap,
				Value:    values,
				Table:    model.TableName,
			})
		}
	}

	addOverlap(model.FieldSkills, r.Skills)
	addOverlap(model.FieldLanguages, r.Languages)
	addOverlap(model.FieldAgeGroups, r.AgeGroups)
	addOverlap(model.FieldServices, r.Services)

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// HourlyRateResponse is the answer of the rate lookup used when pricing bookings.
type HourlyRateResponse struct {
	NannyID    string  `json:"nannyId"`
	UserID     string  `json:"userId"`
	HourlyRate float64 `json:"hourlyRate"`
}

func (r *HourlyRateResponse) FromModel(m model.Nanny) {
	r.NannyID = m.ID
	r.UserID = m.UserID
	r.HourlyRate = m.HourlyRate
}

type RemoveGalleryImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type UploadGalleryImageRequest struct {
	Image *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}
