package models

import "time"

// Hosting is a property listing.
type Hosting struct {
	ID              string    `gorm:"primaryKey;size:36"            bson:"_id"             json:"id"`
	Ownername       string    `gorm:"size:255;not null"             bson:"ownername"       json:"ownername"`
	Placename       string    `gorm:"size:18;not null"              bson:"placename"       json:"placename"`
	Address         string    `gorm:"size:512;not null"             bson:"address"         json:"address"`
	Contactno       string    `gorm:"size:20;not null"              bson:"contactno"       json:"contactno"`
	Location        string    `gorm:"size:255"                      bson:"location"        json:"location"`
	Image           string    `gorm:"column:image;size:1024"        bson:"Image"           json:"Image"`
	Price           float64   `gorm:"not null"                      bson:"price"           json:"price"`
	Room            int       `gorm:"not null;default:0"            bson:"room"            json:"room"`
	Email           string    `gorm:"uniqueIndex;size:255;not null" bson:"email"           json:"email"`
	PropertyDetails string    `gorm:"type:text"                     bson:"PropertyDetails" json:"PropertyDetails"`
	CreatedAt       time.Time `gorm:"index"                         bson:"created_at"      json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
