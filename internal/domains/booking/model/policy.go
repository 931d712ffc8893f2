package model

import "carehub/shared/constant"

type Operation string

const (
	OperationCreate   Operation = "create"
	OperationView     Operation = "view"
	OperationCancel   Operation = "cancel"
	OperationConfirm  Operation = "confirm"
	OperationDecline  Operation = "decline"
	OperationComplete Operation = "complete"
)

// Actor is the authenticated caller acting on a booking.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) isParentOf(b Booking) bool {
	return a.UserID == b.ParentID
}

func (a Actor) isNannyOf(b Booking) bool {
	return b.NannyUserID != "" && a.UserID == b.NannyUserID
}

// Can is the single capability check for every booking operation. It never looks at the
// booking status, status rules live in the transition table.
func Can(actor Actor, op Operation, booking Booking) bool {
	if actor.UserID == "" {
		return false
	}

	switch op {
	case OperationCreate:
		return actor.Role == constant.RoleParent
	case OperationView:
		return actor.isParentOf(booking) || actor.isNannyOf(booking)
	case OperationCancel:
		return actor.isParentOf(booking)
	case OperationConfirm, OperationDecline, OperationComplete:
		return actor.isNannyOf(booking)
	default:
		return false
	}
}
