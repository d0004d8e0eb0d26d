package routine

import (
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
)

// Routine запись дневника распорядка. Date и время хранятся строками как пришли от клиента.
type Routine struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Links         []string  `json:"links"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	ImagePublicID string    `json:"imagePublicId"`
	Updated       string    `json:"updated"`
	Pinned        bool      `json:"pinned"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r *Routine) Image() attachment.Ref {
	return attachment.Ref{URL: r.ImageURL, StorageID: r.ImagePublicID}
}

func (r *Routine) SetImage(ref attachment.Ref) {
	r.ImageURL = ref.URL
	r.ImagePublicID = ref.StorageID
}
