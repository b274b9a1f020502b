package models

import (
	"strings"
	"time"
)

// User is an account that owns lists, tasks and one settings row.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FirstName     string    `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName      string    `json:"lastName" gorm:"type:varchar(100);not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password      string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	ProfileImage  *string   `json:"profileImage"`
	PhoneNumber   *string   `json:"phoneNumber" gorm:"type:varchar(32)"`
	CreatedAt     time.Time `json:"createdAt"`
	EmailVerified bool      `json:"emailVerified" gorm:"not null;default:false"`

	Lists    []List        `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Tasks    []Task        `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Settings *UserSettings `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// SafeUser is the client-facing projection of a User.
type SafeUser struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	ProfileImage  *string   `json:"profileImage"`
	PhoneNumber   *string   `json:"phoneNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	EmailVerified bool      `json:"emailVerified"`
}

// Safe strips the password hash.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		ProfileImage:  u.ProfileImage,
		PhoneNumber:   u.PhoneNumber,
		CreatedAt:     u.CreatedAt,
		EmailVerified: u.EmailVerified,
	}
}

// NormalizeEmail lowercases and trims an address before lookups and writes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterInput is the body of POST /api/register.
type RegisterInput struct {
	FirstName    string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName     string  `json:"lastName" validate:"required,min=1,max=100"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Password     string  `json:"password" validate:"required,min=8,max=72"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
}

// LoginInput is the body of POST /api/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserPatch carries the optional fields of PUT/PATCH /api/me.
type UserPatch struct {
	FirstName    *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Password     *string `json:"password" validate:"omitempty,min=8,max=72"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
	PhoneNumber  *string `json:"phoneNumber" validate:"omitempty,max=32"`
}

// Empty reports whether no field was supplied.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Password == nil && p.ProfileImage == nil && p.PhoneNumber == nil
}

// Apply merges the supplied profile fields into u. Email and password are
// left to UserService.Update.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.ProfileImage != nil {
		u.ProfileImage = p.ProfileImage
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = p.PhoneNumber
	}
}
