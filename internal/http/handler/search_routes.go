package handler

import (
	"net/http"

	"sharednotes/internal/contract"
	"sharednotes/internal/domain/entity"
	"sharednotes/internal/utils"
	"sharednotes/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SearchService interface {
	SearchNotes(actor *entity.User, query string, page, limit int) (*contract.NoteListResponse, apierror.ErrorResponse)
}

type DefaultSearchRoute struct {
	SearchService SearchService
}

func NewSearchDefault(searchService SearchService) *DefaultSearchRoute {
	return &DefaultSearchRoute{SearchService: searchService}
}

func (s *DefaultSearchRoute) Search(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	page, limit := ParsePagination(c)
	resp, apierr := s.SearchService.SearchNotes(user, c.QueryParam("q"), page, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
