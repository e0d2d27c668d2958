package domain

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Template represents the visual template of a birthday page.
// It is an opaque tag for the frontend renderer.
type Template string

const (
	TemplateModern  Template = "Modern"
	TemplateClassic Template = "Classic"
	TemplateFunky   Template = "Funky"
)

// Valid reports whether the template is one of the known tags
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateFunky:
		return true
	}
	return false
}

// Validation limits for birthday page creation.
// A photo reference carried as a data URI may not exceed 4MB of payload.
const (
	NameMinLen    = 2
	AgeMax        = 150
	MessageMinLen = 10
	MessageMaxLen = 500
	PhotoMaxBytes = 4 * 1024 * 1024
)

// Birthday represents a birthday page record.
// Immutable after creation: there are no update or delete paths.
type Birthday struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Age       int       `gorm:"column:age;default:0" json:"age"`
	Message   string    `gorm:"column:message;type:varchar(500)" json:"message"`
	PhotoURI  string    `gorm:"column:photo_uri;type:mediumtext" json:"photo_uri"`
	Date      time.Time `gorm:"column:date" json:"date"`
	Template  Template  `gorm:"column:template;type:varchar(20)" json:"template"`
	MusicURL  string    `gorm:"column:music_url;type:varchar(500)" json:"music_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Birthday model
func (Birthday) TableName() string {
	return "birthdays"
}

// CreateBirthdayRequest is the creation payload
type CreateBirthdayRequest struct {
	Name     string    `json:"name" binding:"required"`
	Age      int       `json:"age"`
	Message  string    `json:"message" binding:"required"`
	PhotoURI string    `json:"photo_uri"`
	Date     time.Time `json:"date" binding:"required"`
	Template Template  `json:"template" binding:"required"`
	MusicURL string    `json:"music_url"`
}

// Validate checks the creation payload against the form rules:
// name at least 2 chars, age unset or 1-150, message 10-500 chars,
// a known template, photo data URI under 4MB, music URL parseable.
func (r *CreateBirthdayRequest) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < NameMinLen {
		return &ValidationError{Field: "name", Reason: "name must be at least 2 characters"}
	}
	if r.Age < 0 || r.Age > AgeMax {
		return &ValidationError{Field: "age", Reason: "age must be between 1 and 150"}
	}
	msgLen := utf8.RuneCountInString(r.Message)
	if msgLen < MessageMinLen || msgLen > MessageMaxLen {
		return &ValidationError{Field: "message", Reason: "message must be 10-500 characters"}
	}
	if !r.Template.Valid() {
		return &ValidationError{Field: "template", Reason: "template must be Modern, Classic or Funky"}
	}
	if r.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "a date for the birthday is required"}
	}
	if err := validatePhotoURI(r.PhotoURI); err != nil {
		return err
	}
	if r.MusicURL != "" {
		u, err := url.Parse(r.MusicURL)
		if err != nil || (u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https") {
			return &ValidationError{Field: "music_url", Reason: "music url must be a valid http(s) url or path"}
		}
	}
	return nil
}

// validatePhotoURI bounds the decoded size of an inline photo data URI.
// Plain URL references pass through untouched.
func validatePhotoURI(uri string) error {
	if uri == "" || !strings.HasPrefix(uri, "data:") {
		return nil
	}
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return &ValidationError{Field: "photo_uri", Reason: "malformed data uri"}
	}
	// base64 expands 3 bytes into 4 characters
	decoded := (len(uri) - comma - 1) / 4 * 3
	if decoded > PhotoMaxBytes {
		return &ValidationError{Field: "photo_uri", Reason: "photo must be less than 4MB"}
	}
	return nil
}

// ValidationError describes a rejected creation or append field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// BirthdayResponse is the API response format for a birthday record
type BirthdayResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age,omitempty"`
	Message   string    `json:"message"`
	PhotoURI  string    `json:"photo_uri"`
	Date      time.Time `json:"date"`
	Template  Template  `json:"template"`
	MusicURL  string    `json:"music_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a Birthday to its API response format
func (b *Birthday) ToResponse() *BirthdayResponse {
	return &BirthdayResponse{
		ID:        b.ID,
		Name:      b.Name,
		Age:       b.Age,
		Message:   b.Message,
		PhotoURI:  b.PhotoURI,
		Date:      b.Date,
		Template:  b.Template,
		MusicURL:  b.MusicURL,
		CreatedAt: b.CreatedAt,
	}
}
