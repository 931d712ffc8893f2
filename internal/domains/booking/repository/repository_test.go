package repository_test

import (
	"carehub/internal/domains/booking/model"
	"carehub/internal/domains/booking/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusGuard(t *testing.T) {
	filter := repository.StatusGuard("booking-1", model.StatusPending)

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(id = :id AND status = :expected_status)", where)
	assert.Equal(t, map[string]any{
		"id":                    "booking-1",
		model.ArgExpectedStatus: "pending",
	}, args)
}
