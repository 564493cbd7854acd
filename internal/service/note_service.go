package service

import (
	"slices"

	"sharednotes/internal/contract"
	"sharednotes/internal/domain/entity"
	"sharednotes/internal/utils"
	"sharednotes/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

type NoteRepository interface {
	FindByID(id int) (*entity.Note, error)
	FindByOwner(ownerID, limit, offset int) ([]*entity.Note, error)
	FindSharedWith(userID, limit, offset int) ([]*entity.Note, error)
	CountByOwner(ownerID int) (int64, error)
	CountSharedWith(userID int) (int64, error)
	ExistsByOwnerAndTitle(ownerID int, title string) (bool, error)
	SearchVisible(userID int, query string, limit, offset int) ([]*entity.Note, error)
	CountSearchVisible(userID int, query string) (int64, error)
	Save(note *entity.Note) error
	AddShares(note *entity.Note, users []*entity.User) error
	Delete(note *entity.Note) error
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, userRepo UserRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		UserRepo: userRepo,
		Validate: validate,
	}
}

func (n *DefaultNoteService) CreateNote(actor *entity.User, req *contract.CreateNoteRequest) (*contract.NoteDetailResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// Friendly pre-check; the (owner_id, title) unique index is what
	// actually guarantees the policy under concurrent requests.
	taken, err := n.NoteRepo.ExistsByOwnerAndTitle(actor.ID, req.Title)
	if err != nil {
		log.Errorf("failed to check for duplicate title: %v", err)
		return nil, apierror.InternalServerError
	}

	if taken {
		return nil, apierror.NewDuplicateTitleError(req.Title)
	}

	now := utils.NowUTC()
	note := &entity.Note{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		OwnerID:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.NoteDetailResponse{
		Message: "Note created successfully.",
		Note:    toNoteResponse(note, false),
	}, nil
}

// GetNotes returns the caller's owned and shared notes, each source
// paginated independently and concatenated owned-first.
//
// Both sources apply the same page window, so for page > 1 the combined
// slice is not a true window over the union; totalNotes is still the exact
// sum of both counts.
func (n *DefaultNoteService) GetNotes(actor *entity.User, page, limit int) (*contract.NoteListResponse, apierror.ErrorResponse) {
	offset := (page - 1) * limit

	var (
		owned, shared           []*entity.Note
		ownedCount, sharedCount int64
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		owned, err = n.NoteRepo.FindByOwner(actor.ID, limit, offset)
		return err
	})
	g.Go(func() (err error) {
		shared, err = n.NoteRepo.FindSharedWith(actor.ID, limit, offset)
		return err
	})
	g.Go(func() (err error) {
		ownedCount, err = n.NoteRepo.CountByOwner(actor.ID)
		return err
	})
	g.Go(func() (err error) {
		sharedCount, err = n.NoteRepo.CountSharedWith(actor.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Errorf("failed to fetch notes for user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}

	notes := make([]*contract.NoteResponse, 0, len(owned)+len(shared))
	for _, note := range owned {
		notes = append(notes, toNoteResponse(note, false))
	}
	for _, note := range shared {
		notes = append(notes, toNoteResponse(note, true))
	}

	return &contract.NoteListResponse{
		Message:    "Notes retrieved successfully.",
		Notes:      notes,
		Pagination: toPagination(ownedCount+sharedCount, page, limit),
	}, nil
}

// GetNoteByID returns the note if the caller owns it or was granted access.
// Absent and inaccessible notes are indistinguishable in the response.
func (n *DefaultNoteService) GetNoteByID(actor *entity.User, noteID int) (*contract.NoteDetailResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil || (note.OwnerID != actor.ID && !isSharedWith(note, actor.ID)) {
		return nil, apierror.NoteNotFoundError
	}

	return &contract.NoteDetailResponse{
		Message: "Note retrieved successfully.",
		Note:    toNoteResponse(note, isSharedWith(note, actor.ID)),
	}, nil
}

func (n *DefaultNoteService) UpdateNote(actor *entity.User, req *contract.UpdateNoteRequest) (*contract.NoteDetailResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, apierr := n.fetchOwned(actor, req.ID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Title != nil && *req.Title != note.Title {
		taken, err := n.NoteRepo.ExistsByOwnerAndTitle(actor.ID, *req.Title)
		if err != nil {
			log.Errorf("failed to check for duplicate title: %v", err)
			return nil, apierror.InternalServerError
		}

		if taken {
			return nil, apierror.NewDuplicateTitleError(*req.Title)
		}
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Description != nil {
		note.Description = *req.Description
	}

	note.UpdatedAt = utils.NowUTC()
	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note %d: %v", note.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.NoteDetailResponse{
		Message: "note updated successfully.",
		Note:    toNoteResponse(note, false),
	}, nil
}

func (n *DefaultNoteService) DeleteNote(actor *entity.User, noteID int) apierror.ErrorResponse {
	note, apierr := n.fetchOwned(actor, noteID)
	if apierr != nil {
		return apierr
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note %d: %v", note.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

// ShareNote grants read access to the given users. Unknown ids are silently
// dropped; the request fails only when none of them resolve. Re-sharing
// with an already-granted user is a no-op.
func (n *DefaultNoteService) ShareNote(actor *entity.User, noteID int, req *contract.ShareNoteRequest) (*contract.ShareNoteResponse, apierror.ErrorResponse) {
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, apierr := n.fetchOwned(actor, noteID)
	if apierr != nil {
		return nil, apierr
	}

	recipients, err := n.UserRepo.FindAllInIDs(req.SharedWith)
	if err != nil {
		log.Errorf("failed to resolve share recipients: %v", err)
		return nil, apierror.InternalServerError
	}

	if len(recipients) == 0 {
		return nil, apierror.NoValidRecipientsError
	}

	var added []*entity.User
	for _, recipient := range recipients {
		if !isSharedWith(note, recipient.ID) {
			added = append(added, recipient)
		}
	}

	if len(added) > 0 {
		// Append also refreshes note.SharedWith in memory.
		if err := n.NoteRepo.AddShares(note, added); err != nil {
			log.Errorf("failed to share note %d: %v", note.ID, err)
			return nil, apierror.InternalServerError
		}
	}

	return &contract.ShareNoteResponse{
		Message:    "Note shared successfully.",
		SharedWith: sharedIDs(note),
	}, nil
}

// fetchOwned resolves a note the actor must own. Missing notes and notes
// owned by someone else produce the same error.
func (n *DefaultNoteService) fetchOwned(actor *entity.User, noteID int) (*entity.Note, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteID)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil || note.OwnerID != actor.ID {
		return nil, apierror.NoteNotFoundError
	}
	return note, nil
}

func isSharedWith(note *entity.Note, userID int) bool {
	return slices.ContainsFunc(note.SharedWith, func(u *entity.User) bool {
		return u.ID == userID
	})
}

func sharedIDs(note *entity.Note) []int {
	ids := make([]int, len(note.SharedWith))
	for i, user := range note.SharedWith {
		ids[i] = user.ID
	}
	return ids
}

func toNoteResponse(note *entity.Note, shared bool) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		Content:     note.Content,
		Owner:       note.OwnerID,
		SharedWith:  sharedIDs(note),
		Shared:      shared,
		CreatedAt:   utils.FormatEpoch(note.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(note.UpdatedAt),
	}
}

func toPagination(total int64, page, limit int) *contract.Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &contract.Pagination{
		TotalNotes: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
