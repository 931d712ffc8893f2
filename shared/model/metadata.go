package model

import (
	"carehub/shared/constant"
	"carehub/shared/timezone"
	"time"
)

// Metadata is the audit block shared by every persisted entity.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
	ModifiedAt time.Time `db:"modified_at" json:"modifiedAt"`
	CreatedBy  string    `db:"created_by"  json:"createdBy"`
	ModifiedBy string    `db:"modified_by" json:"modifiedBy"`
}

func NewMetadata(createdAt time.Time, user string) Metadata {
	return Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// Touch stamps modified_at and modified_by on an update column map, allocating it when nil.
func Touch(fields map[string]any, user string) map[string]any {
	if fields == nil {
		fields = make(map[string]any, 2)
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	return fields
}
