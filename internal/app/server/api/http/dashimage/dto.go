package dashimage

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/dashimage"

type listOutput struct {
	Body []dashimage.Image
}

type idInput struct {
	ID string `path:"id" doc:"ID изображения"`
}

type output struct {
	Body *dashimage.Image
}
