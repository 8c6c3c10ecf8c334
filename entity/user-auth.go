package entity

import (
	"ShopBridge/internal/lib/validate"
	"net/http"
)

type UserAuth struct {
	Username string `json:"username" bson:"username" validate:"required"`
	Token    string `json:"token" bson:"token" validate:"required,min=1"`
}

func (u *UserAuth) Bind(_ *http.Request) error {
	return validate.Struct(u)
}
