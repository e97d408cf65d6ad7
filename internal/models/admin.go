package models

import "time"

type Admin struct {
	ID         int       `json:"id"`
	Name       string    `json:"admin_name"`
	Email      string    `json:"admin_email"`
	Password   string    `json:"-"`
	DeleteFlag bool      `json:"delete_flag"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateAdminRequest struct {
	Name     string `json:"admin_name"`
	Email    string `json:"admin_email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"admin_email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Admin       *Admin `json:"data"`
}
