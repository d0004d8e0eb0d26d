package bookmark

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"

type listInput struct {
	Query string `query:"q" doc:"Поиск по названию и адресу без учета регистра"`
}

type listOutput struct {
	Body []bookmark.Bookmark
}

type idInput struct {
	ID string `path:"id" doc:"ID закладки"`
}

type createInput struct {
	Body struct {
		URL   string `json:"url,omitempty" doc:"Адрес страницы"`
		Title string `json:"title,omitempty" doc:"Название, по умолчанию берется из <title> страницы"`

		_ struct{} `json:"-" additionalProperties:"true"`
	}
}

type updateInput struct {
	ID   string `path:"id" doc:"ID закладки"`
	Body struct {
		Pinned *bool   `json:"pinned,omitempty" doc:"Закрепить"`
		Title  *string `json:"title,omitempty" doc:"Новое название"`

		_ struct{} `json:"-" additionalProperties:"true"`
	}
}

type output struct {
	Body *bookmark.Bookmark
}
