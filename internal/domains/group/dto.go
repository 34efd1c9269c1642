package group

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug,
			validation.When(r.Slug != "",
				validation.Length(1, 100),
				validation.Match(slugRe).Error("slug may contain lowercase letters, digits and '-' only"),
			),
		),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}
