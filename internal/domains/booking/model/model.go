package model

import (
	"carehub/shared/model"
	"fmt"
	"slices"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldParentID           = "parent_id"
	FieldNannyID            = "nanny_id"
	FieldNannyUserID        = "nanny_user_id"
	FieldStartTime          = "start_time"
	FieldEndTime            = "end_time"
	FieldStatus             = "status"
	FieldTotalPrice         = "total_price"
	FieldNannyMessage       = "nanny_message"
	FieldCancellationReason = "cancellation_reason"
	FieldCancelledBy        = "cancelled_by"
	FieldCompletionNotes    = "completion_notes"
	FieldCreatedAt          = "created_at"

	// ArgExpectedStatus names the status guard of a conditional update, apart from the status being written.
	ArgExpectedStatus = "expected_status"

	parentAlias    = "parents"
	nannyUserAlias = "nanny_users"
	userTable      = "users"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// IsTerminal reports whether no operation may move the booking out of s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type ServiceType string

const (
	ServiceTypePartTime ServiceType = "part-time"
	ServiceTypeFullTime ServiceType = "full-time"
)

func (t ServiceType) Valid() bool {
	return t == ServiceTypePartTime || t == ServiceTypeFullTime
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// CancelledBy tells a parent cancellation from a nanny decline, both end in StatusCancelled.
type CancelledBy string

const (
	CancelledByParent CancelledBy = "parent"
	CancelledByNanny  CancelledBy = "nanny"
)

type Booking struct {
	ID                 string         `db:"id"`
	ParentID           string         `db:"parent_id"`
	NannyID            string         `db:"nanny_id"`
	NannyUserID        string         `db:"nanny_user_id"`
	StartTime          time.Time      `db:"start_time"`
	EndTime            time.Time      `db:"end_time"`
	NumberOfDays       int            `db:"number_of_days"`
	ServiceType        ServiceType    `db:"service_type"`
	NumberOfChildren   int            `db:"number_of_children"`
	ChildrenAges       pq.Int64Array  `db:"children_ages"`
	LocationAddress    string         `db:"location_address"`
	LocationCity       string         `db:"location_city"`
	LocationState      string         `db:"location_state"`
	LocationZipCode    string         `db:"location_zip_code"`
	SpecialRequests    *string        `db:"special_requests"`
	Status             Status         `db:"status"`
	TotalPrice         float64        `db:"total_price"`
	PaymentStatus      PaymentStatus  `db:"payment_status"`
	NannyMessage       *string        `db:"nanny_message"`
	CancellationReason *string        `db:"cancellation_reason"`
	CancelledBy        *CancelledBy   `db:"cancelled_by"`
	CompletionNotes    *string        `db:"completion_notes"`
	ParentName         string         `db:"parent_name"    table:"parents"     column:"name"`
	ParentEmail        string         `db:"parent_email"   table:"parents"     column:"email"`
	NannyName          string         `db:"nanny_name"     table:"nanny_users" column:"name"`
	NannyEmail         string         `db:"nanny_email"    table:"nanny_users" column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s %s ON %s.id = %s.%s JOIN %s %s ON %s.id = %s.%s",
		userTable, parentAlias, parentAlias, TableName, FieldParentID,
		userTable, nannyUserAlias, nannyUserAlias, TableName, FieldNannyUserID,
	)
}

// Column qualifies a booking column with its table, the booking query joins users twice.
func Column(field string) string {
	return TableName + "." + field
}
