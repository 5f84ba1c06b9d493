package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated account in the system
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Password string  `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Email    string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Role     Role    `gorm:"type:varchar(50);not null" json:"role" validate:"required,role"`
	RFIDCard *string `gorm:"type:varchar(100)" json:"rfid_card,omitempty"`

	// Relations (lookup only)
	Orders []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Alerts []Alert `gorm:"foreignKey:UserID" json:"alerts,omitempty"`
}

// SetPassword hashes and sets the user's password. The plaintext is never
// stored.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     Role    `json:"role"`
	RFIDCard *string `json:"rfid_card,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		RFIDCard: u.RFIDCard,
	}
}
