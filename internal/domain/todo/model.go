package todo

import (
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
)

type Todo struct {
	ID            string    `json:"id" db:"id"`
	Text          string    `json:"text" db:"text"`
	Completed     bool      `json:"completed" db:"completed"`
	ImageURL      string    `json:"imageUrl" db:"image_url"`
	ImagePublicID string    `json:"imagePublicId" db:"image_public_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

func (t *Todo) Image() attachment.Ref {
	return attachment.Ref{URL: t.ImageURL, StorageID: t.ImagePublicID}
}

func (t *Todo) SetImage(ref attachment.Ref) {
	t.ImageURL = ref.URL
	t.ImagePublicID = ref.StorageID
}
