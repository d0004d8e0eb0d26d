package dashimage

import "time"

// Image картинка виджета на дашборде.
type Image struct {
	ID        string    `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	PublicID  string    `json:"publicId" db:"public_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
