package dto

// NoticeRequest posts a notice to the board.
type NoticeRequest struct {
	Title    string `json:"title" validate:"required,max=120"`
	Body     string `json:"body" validate:"required,max=2000"`
	Audience string `json:"audience" validate:"omitempty,oneof=all teachers students"`
	Pinned   bool   `json:"pinned"`
}
