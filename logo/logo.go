package logo

import (
	"time"

	"github.com/euromove/euromove-server-go/database"
)

func (Logo) TableName() string {
	return "logos"
}

type Logo struct {
	ID         uint64    `json:"id" gorm:"primary_key"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

// Current returns the most recently uploaded logo, which is the one the site
// shows.  Queried on every page render; nil if nothing has been uploaded yet.
func Current() *Logo {
	db := database.DBConn

	var logo Logo
	db.Order("uploaded_at DESC, id DESC").Limit(1).Find(&logo)

	if logo.ID == 0 {
		return nil
	}

	return &logo
}

// List returns all logos, newest first.
func List() []Logo {
	db := database.DBConn

	logos := []Logo{}
	db.Order("uploaded_at DESC, id DESC").Find(&logos)

	return logos
}
