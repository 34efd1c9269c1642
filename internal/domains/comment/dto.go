package comment

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AddCommentRequest struct {
	Text string `json:"text"`
}

func (r AddCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.By(nonBlank),
			validation.Length(1, 2000),
		),
	)
}

func nonBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return ErrEmptyText
	}
	return nil
}
