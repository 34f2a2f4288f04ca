package dto

import (
	"inn/internal/domains/user/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	Level    string  `json:"level"     validate:"omitempty,oneof=guest admin"`
	FullName *string `json:"full_name,omitempty"`
}

func (r *CreateUserRequest) ToModel(actor string, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleGuest
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Level:    level,
		FullName: r.FullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Level     string  `json:"level"`
	FullName  *string `json:"full_name,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.FullName = model.FullName
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Level    *string `json:"level,omitempty"     db:"level" validate:"omitempty,oneof=guest admin"`
	FullName *string `json:"full_name,omitempty" db:"full_name"`
	Active   *bool   `json:"active,omitempty"    db:"active"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
