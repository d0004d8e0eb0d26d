package bookmark

type CreateInput struct {
	URL   string
	Title string
}

type UpdateInput struct {
	Pinned *bool
	Title  *string
}
