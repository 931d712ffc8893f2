package dto

import (
	"carehub/internal/domains/user/model"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/timezone"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone,omitempty"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Role = m.Role
	r.Phone = m.Phone
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type UpdateProfileRequest struct {
	Name  *string `db:"name"  json:"name"  validate:"omitempty,min=2,max=100"`
	Phone *string `db:"phone" json:"phone" validate:"omitempty,e164"`
}
