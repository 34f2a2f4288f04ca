package model

import "inn/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLevel     = "level"
	FieldFullName  = "full_name"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Level     string  `db:"level"`
	FullName  *string `db:"full_name"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
