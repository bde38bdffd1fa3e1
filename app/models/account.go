package models

import "time"

const (
	TableUsers  = "users"
	TableAdmins = "admins"
)

// Account is the credential record shared by renters (users) and hosts
// (admins). The two kinds live in separate tables/collections.
type Account struct {
	ID           string    `gorm:"primaryKey;size:36"            bson:"_id"        json:"id"`
	Fullname     string    `gorm:"size:255;not null"             bson:"fullname"   json:"fullname"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" bson:"email"      json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// User is the gorm schema of the users table.
type User struct {
	Account
}

func (User) TableName() string { return TableUsers }

// Admin is the gorm schema of the admins table.
type Admin struct {
	Account
}

func (Admin) TableName() string { return TableAdmins }
