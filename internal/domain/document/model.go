package document

import (
	"encoding/json"
	"time"
)

type Type string

const (
	TypeText    Type = "text"
	TypeDiagram Type = "diagram"
)

func (t Type) Valid() bool {
	return t == TypeText || t == TypeDiagram
}

// Document текстовый документ или диаграмма. Content хранит состояние
// редактора или data-URL картинки, DiagramData произвольный JSON.
type Document struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        Type            `json:"type"`
	Content     string          `json:"content"`
	DiagramData json.RawMessage `json:"diagramData"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
