package routine

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/payload"

// Fields полный набор полей для создания и замены записи.
type Fields struct {
	Name        string
	Date        string
	StartTime   string
	EndTime     string
	Links       []string
	Description string
	Updated     string
	// Pinned nil: при создании false, при замене без изменений.
	Pinned      *bool
	Image       []byte
	RemoveImage bool
}

func (f Fields) valid() bool {
	return f.Name != "" && f.Date != "" && f.StartTime != "" && f.EndTime != ""
}

// Patch частичное обновление, nil поля не меняются.
type Patch struct {
	Name        *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Links       []string
	Description *string
	Updated     *string
	Pinned      *bool
	Image       []byte
	RemoveImage bool
}

func (p Patch) empty() bool {
	return p.Name == nil && p.Date == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Links == nil && p.Description == nil && p.Updated == nil && p.Pinned == nil &&
		len(p.Image) == 0 && !p.RemoveImage
}

func NewFields(p *payload.Payload) Fields {
	return Fields{
		Name:        p.String("name"),
		Date:        p.String("date"),
		StartTime:   p.String("startTime"),
		EndTime:     p.String("endTime"),
		Links:       p.List("links"),
		Description: p.String("description"),
		Updated:     p.String("updated"),
		Pinned:      pinned(p),
		Image:       imageData(p),
		RemoveImage: p.Bool("removeImage", false),
	}
}

// NewPatch собирает частичное обновление. Поле pinned, которое не приводится
// к bool, считается ошибкой.
func NewPatch(p *payload.Payload) (Patch, error) {
	patch := Patch{
		Name:        p.OptString("name"),
		Date:        p.OptString("date"),
		StartTime:   p.OptString("startTime"),
		EndTime:     p.OptString("endTime"),
		Description: p.OptString("description"),
		Updated:     p.OptString("updated"),
		Pinned:      p.OptBool("pinned"),
		Image:       imageData(p),
		RemoveImage: p.Bool("removeImage", false),
	}
	if p.Has("pinned") && patch.Pinned == nil {
		return Patch{}, ErrPinnedRequired
	}
	if p.Has("links") {
		patch.Links = p.List("links")
	}
	return patch, nil
}

// pinned для multipart и JSON: присутствующее, но некорректное значение дает false.
func pinned(p *payload.Payload) *bool {
	if !p.Has("pinned") {
		return nil
	}
	b := p.Bool("pinned", false)
	return &b
}

func imageData(p *payload.Payload) []byte {
	if p.File == nil {
		return nil
	}
	return p.File.Data
}
