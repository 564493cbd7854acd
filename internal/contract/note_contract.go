package contract

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type CreateNoteRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=50"`
	Content     string `json:"content" validate:"required,min=5"`
	Description string `json:"description" validate:"required,min=5,max=255"`
}

// UpdateNoteRequest patches any subset of title/content/description.
// Absent fields stay untouched.
type UpdateNoteRequest struct {
	ID          int     `json:"id" validate:"required"`
	Title       *string `json:"title" validate:"omitempty,min=3,max=50"`
	Content     *string `json:"content" validate:"omitempty,min=5"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type DeleteNoteRequest struct {
	ID int `json:"id" validate:"required"`
}

type ShareNoteRequest struct {
	SharedWith []int `json:"sharedWith" validate:"required,min=1,nodupes"`
}

type NoteResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Owner       int    `json:"owner"`
	SharedWith  []int  `json:"sharedWith"`
	// Shared is true when the note reached the caller through a share
	// grant rather than ownership.
	Shared    bool   `json:"shared"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Pagination struct {
	TotalNotes int64 `json:"totalNotes"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type NoteListResponse struct {
	Message    string          `json:"message"`
	Notes      []*NoteResponse `json:"notes"`
	Pagination *Pagination     `json:"pagination"`
}

type NoteDetailResponse struct {
	Message string        `json:"message"`
	Note    *NoteResponse `json:"note"`
}

type ShareNoteResponse struct {
	Message    string `json:"message"`
	SharedWith []int  `json:"sharedWith"`
}
