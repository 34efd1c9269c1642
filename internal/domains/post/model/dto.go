package model

import (
	"bytes"
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Text     string     `json:"text" binding:"required"`
	GroupID  *uuid.UUID `json:"group_id"`
	ImageKey *string    `json:"image_key"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.By(nonBlank),
			validation.Length(1, 20000),
		),
	)
}

// OptionalUUID distinguishes a field that was absent from the request
// body from one explicitly set to null. `"group_id": null` clears the
// group; omitting group_id leaves it unchanged.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// OptionalString is OptionalUUID for string fields (image_key).
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// UpdatePostRequest carries only the fields being changed. Author and
// ID are immutable and therefore absent. GroupID and ImageKey can be
// explicitly nulled to detach the post from its group or image.
type UpdatePostRequest struct {
	Text     *string        `json:"text"`
	GroupID  OptionalUUID   `json:"group_id"`
	ImageKey OptionalString `json:"image_key"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.When(r.Text != nil, validation.By(nonBlankPtr)),
		),
	)
}

// nonBlank rejects strings that are empty or whitespace only.
func nonBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return ErrEmptyText
	}
	return nil
}

func nonBlankPtr(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	return nonBlank(*s)
}
