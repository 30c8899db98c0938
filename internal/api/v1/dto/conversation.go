package dto

// TextReplyResponse is returned when synthesis failed but the assistant
// still produced reply text
type TextReplyResponse struct {
	Response string `json:"response"`
}
