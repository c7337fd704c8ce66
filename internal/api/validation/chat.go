package validation

import "strings"

var channelTypes = map[string]bool{
	"team":         true,
	"campus_leads": true,
	"general":      true,
}

// ChannelRequest mirrors the fields needed for channel creation validation.
type ChannelRequest struct {
	Name string
	Type string
}

// ValidateChannelRequest validates the fields of a channel creation request.
func ValidateChannelRequest(req ChannelRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}

	if req.Type == "" {
		errs = append(errs, FieldError{Field: "type", Message: "type is required"})
	} else if !channelTypes[req.Type] {
		errs = append(errs, FieldError{Field: "type", Message: "type must be \"team\", \"campus_leads\" or \"general\""})
	}

	return errs
}

// MessageRequest mirrors the fields needed for message validation. A
// message must carry text content or a file reference.
type MessageRequest struct {
	Sender  string
	Content string
	FileURL string
}

// ValidateMessageRequest validates the fields of a send-message request.
func ValidateMessageRequest(req MessageRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Sender) == "" {
		errs = append(errs, FieldError{Field: "sender", Message: "sender is required"})
	}
	if strings.TrimSpace(req.Content) == "" && req.FileURL == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content or file_url is required"})
	}

	return errs
}
