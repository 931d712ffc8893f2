package dto

import (
	"carehub/internal/domains/booking/model"
	"carehub/shared"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	gModel "carehub/shared/model"
	"carehub/shared/timezone"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QueryStatus = "status"

	defaultNumberOfDays = 1
)

type Location struct {
	Address string `json:"address" validate:"required,max=255"`
	City    string `json:"city"    validate:"required,max=100"`
	State   string `json:"state"   validate:"required,max=100"`
	ZipCode string `json:"zipCode" validate:"required,max=20"`
}

type CreateBookingRequest struct {
	NannyID          string    `json:"nannyId"          validate:"required,uuid"`
	StartTime        time.Time `json:"startTime"        validate:"required"`
	EndTime          time.Time `json:"endTime"          validate:"required"`
	NumberOfDays     int       `json:"numberOfDays"     validate:"omitempty,gte=1"`
	NumberOfChildren int       `json:"numberOfChildren" validate:"required,gte=1"`
	ChildrenAges     []int64   `json:"childrenAges"     validate:"required,dive,gte=0"`
	Location         Location  `json:"location"         validate:"required"`
	ServiceType      string    `json:"serviceType"      validate:"required"`
	SpecialRequests  *string   `json:"specialRequests"  validate:"omitempty,max=2000"`
}

// Days is the requested number of days, 1 when omitted.
func (r *CreateBookingRequest) Days() int {
	if r.NumberOfDays <= 0 {
		return defaultNumberOfDays
	}

	return r.NumberOfDays
}

// ToModel builds a pending booking. The caller supplies the computed price and the nanny's owning user.
func (r *CreateBookingRequest) ToModel(parentID, nannyUserID string, totalPrice float64) model.Booking {
	ages := pq.Int64Array(r.ChildrenAges)
	if ages == nil {
		ages = pq.Int64Array{}
	}

	return model.Booking{
		ID:               uuid.NewString(),
		ParentID:         parentID,
		NannyID:          r.NannyID,
		NannyUserID:      nannyUserID,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		NumberOfDays:     r.Days(),
		ServiceType:      model.ServiceType(r.ServiceType),
		NumberOfChildren: r.NumberOfChildren,
		ChildrenAges:     ages,
		LocationAddress:  strings.TrimSpace(r.Location.Address),
		LocationCity:     strings.TrimSpace(r.Location.City),
		LocationState:    strings.TrimSpace(r.Location.State),
		LocationZipCode:  strings.TrimSpace(r.Location.ZipCode),
		SpecialRequests:  r.SpecialRequests,
		Status:           model.StatusPending,
		TotalPrice:       totalPrice,
		PaymentStatus:    model.PaymentStatusPending,
		Metadata:         gModel.NewMetadata(timezone.Now(), parentID),
	}
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason" validate:"omitempty,max=1000"`
}

type ConfirmBookingRequest struct {
	Message string `json:"message" validate:"omitempty,max=1000"`
}

type DeclineBookingRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type CompleteBookingRequest struct {
	CompletionNotes string `json:"completionNotes" validate:"omitempty,max=2000"`
}

// ListBookingsRequest narrows the parent and nanny booking lists.
type ListBookingsRequest struct {
	Status string `validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (r *ListBookingsRequest) FromRequest(req *http.Request) {
	r.Status = strings.ToLower(strings.TrimSpace(req.URL.Query().Get(QueryStatus)))
}

// ToFilterGroup restricts the listing to one party of the booking.
func (r *ListBookingsRequest) ToFilterGroup(partyField, partyID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    partyField,
			Operator: gDto.FilterOperatorEq,
			Value:    partyID,
			Table:    model.TableName,
		},
	}

	if r.Status != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    r.Status,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

type PartyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID                 string        `json:"id"`
	Parent             PartyResponse `json:"parent"`
	NannyID            string        `json:"nannyId"`
	Nanny              PartyResponse `json:"nanny"`
	StartTime          time.Time     `json:"startTime"`
	EndTime            time.Time     `json:"endTime"`
	NumberOfDays       int           `json:"numberOfDays"`
	ServiceType        string        `json:"serviceType"`
	NumberOfChildren   int           `json:"numberOfChildren"`
	ChildrenAges       []int64       `json:"childrenAges"`
	Location           Location      `json:"location"`
	SpecialRequests    *string       `json:"specialRequests,omitempty"`
	Status             string        `json:"status"`
	TotalPrice         float64       `json:"totalPrice"`
	PaymentStatus      string        `json:"paymentStatus"`
	NannyMessage       *string       `json:"nannyMessage,omitempty"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
	CancelledBy        *string       `json:"cancelledBy,omitempty"`
	CompletionNotes    *string       `json:"completionNotes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Parent = PartyResponse{ID: m.ParentID, Name: m.ParentName, Email: m.ParentEmail}
	r.NannyID = m.NannyID
	r.Nanny = PartyResponse{ID: m.NannyUserID, Name: m.NannyName, Email: m.NannyEmail}
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.NumberOfDays = m.NumberOfDays
	r.ServiceType = string(m.ServiceType)
	r.NumberOfChildren = m.NumberOfChildren
	r.ChildrenAges = []int64(m.ChildrenAges)

	if r.ChildrenAges == nil {
		r.ChildrenAges = []int64{}
	}

	r.Location = Location{
		Address: m.LocationAddress,
		City:    m.LocationCity,
		State:   m.LocationState,
		ZipCode: m.LocationZipCode,
	}
	r.SpecialRequests = m.SpecialRequests
	r.Status = string(m.Status)
	r.TotalPrice = m.TotalPrice
	r.PaymentStatus = string(m.PaymentStatus)
	r.NannyMessage = m.NannyMessage
	r.CancellationReason = m.CancellationReason
	r.CompletionNotes = m.CompletionNotes

	if m.CancelledBy != nil {
		by := string(*m.CancelledBy)
		r.CancelledBy = &by
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
