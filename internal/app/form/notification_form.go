package form

import (
	"net/url"
	"strings"

	"quiz_admin_console/internal/domain/model"
)

// AnnouncementForm is the broadcast draft sent to every user.
type AnnouncementForm struct {
	Title     string
	Body      string
	Type      string
	Priority  string
	ImageURL  string
	ActionURL string
}

func NewAnnouncementForm() AnnouncementForm {
	return AnnouncementForm{Type: "system", Priority: "normal"}
}

func ParseAnnouncementForm(values url.Values) AnnouncementForm {
	f := NewAnnouncementForm()
	f.Title = strings.TrimSpace(values.Get("title"))
	f.Body = strings.TrimSpace(values.Get("body"))
	if t := values.Get("type"); t != "" {
		f.Type = t
	}
	if p := values.Get("priority"); p != "" {
		f.Priority = p
	}
	f.ImageURL = strings.TrimSpace(values.Get("imageUrl"))
	f.ActionURL = strings.TrimSpace(values.Get("actionUrl"))
	return f
}

func (f AnnouncementForm) Validate() Errors {
	errs := Errors{}
	if f.Title == "" {
		errs["title"] = "Title is required"
	}
	if f.Body == "" {
		errs["body"] = "Message body is required"
	}
	if !oneOf(f.Type, model.NotificationTypes) {
		errs["type"] = "Type is not recognized"
	}
	if !oneOf(f.Priority, model.NotificationPriorities) {
		errs["priority"] = "Priority is not recognized"
	}
	if !validOptionalURL(f.ImageURL) {
		errs["imageUrl"] = "Image URL must be an absolute http(s) URL"
	}
	if !validOptionalURL(f.ActionURL) {
		errs["actionUrl"] = "Action URL must be an absolute http(s) URL"
	}
	return errs
}

func (f AnnouncementForm) Payload() model.AnnouncementPayload {
	return model.AnnouncementPayload{
		Title:     f.Title,
		Body:      f.Body,
		Type:      f.Type,
		Priority:  f.Priority,
		ImageURL:  f.ImageURL,
		ActionURL: f.ActionURL,
	}
}

// TargetedNotificationForm adds an explicit recipient list entered as a
// comma or whitespace separated textarea value.
type TargetedNotificationForm struct {
	AnnouncementForm
	UserIDsRaw string
}

func NewTargetedNotificationForm() TargetedNotificationForm {
	return TargetedNotificationForm{AnnouncementForm: NewAnnouncementForm()}
}

func ParseTargetedNotificationForm(values url.Values) TargetedNotificationForm {
	return TargetedNotificationForm{
		AnnouncementForm: ParseAnnouncementForm(values),
		UserIDsRaw:       values.Get("userIds"),
	}
}

func (f TargetedNotificationForm) UserIDs() []string {
	return splitIDs(f.UserIDsRaw)
}

func (f TargetedNotificationForm) Validate() Errors {
	errs := f.AnnouncementForm.Validate()
	if len(f.UserIDs()) == 0 {
		errs["userIds"] = "At least one recipient ID is required"
	}
	return errs
}

func (f TargetedNotificationForm) Payload() model.TargetedNotificationPayload {
	base := f.AnnouncementForm.Payload()
	return model.TargetedNotificationPayload{
		UserIDs:   f.UserIDs(),
		Title:     base.Title,
		Body:      base.Body,
		Type:      base.Type,
		Priority:  base.Priority,
		ImageURL:  base.ImageURL,
		ActionURL: base.ActionURL,
	}
}
