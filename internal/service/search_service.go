package service

import (
	"sharednotes/internal/contract"
	"sharednotes/internal/domain/entity"
	"sharednotes/internal/utils/apierror"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

// SearchRepository is the slice of the note repository the search service
// needs.
type SearchRepository interface {
	SearchVisible(userID int, query string, limit, offset int) ([]*entity.Note, error)
	CountSearchVisible(userID int, query string) (int64, error)
}

type DefaultSearchService struct {
	SearchRepo SearchRepository
}

func NewSearchService(searchRepo SearchRepository) *DefaultSearchService {
	return &DefaultSearchService{SearchRepo: searchRepo}
}

// SearchNotes runs a text search over the notes visible to the actor.
// An empty result set is reported as 404, not as an empty success; clients
// depend on that behavior.
func (s *DefaultSearchService) SearchNotes(actor *entity.User, query string, page, limit int) (*contract.NoteListResponse, apierror.ErrorResponse) {
	if query == "" {
		return nil, apierror.MissingQueryError
	}

	offset := (page - 1) * limit

	var (
		matches []*entity.Note
		total   int64
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		matches, err = s.SearchRepo.SearchVisible(actor.ID, query, limit, offset)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.SearchRepo.CountSearchVisible(actor.ID, query)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Errorf("failed to search notes for user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}

	if len(matches) == 0 {
		return nil, apierror.NoMatchingNotesError
	}

	notes := make([]*contract.NoteResponse, len(matches))
	for i, note := range matches {
		notes[i] = toNoteResponse(note, isSharedWith(note, actor.ID))
	}

	return &contract.NoteListResponse{
		Message:    "Search results retrieved successfully.",
		Notes:      notes,
		Pagination: toPagination(total, page, limit),
	}, nil
}
