package repository

import (
	"errors"

	"sharednotes/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindByID(id int) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Preload("SharedWith").First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) FindByOwner(ownerID, limit, offset int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Preload("SharedWith").
		Where("owner_id = ?", ownerID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindSharedWith(userID, limit, offset int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Preload("SharedWith").
		Where("id IN (?)", d.sharedNoteIDs(userID)).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) CountByOwner(ownerID int) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Note{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (d *DefaultNoteRepository) CountSharedWith(userID int) (int64, error) {
	var count int64
	err := d.db.Model(&entity.NoteShare{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (d *DefaultNoteRepository) ExistsByOwnerAndTitle(ownerID int, title string) (bool, error) {
	var count int64
	err := d.db.Model(&entity.Note{}).
		Where("owner_id = ? AND title = ?", ownerID, title).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchVisible matches the query as a substring of title, description or
// content, restricted to notes the user owns or is shared on.
func (d *DefaultNoteRepository) SearchVisible(userID int, query string, limit, offset int) ([]*entity.Note, error) {
	var notes []*entity.Note
	pattern := "%" + query + "%"
	err := d.db.Preload("SharedWith").
		Where("title LIKE ? OR description LIKE ? OR content LIKE ?", pattern, pattern, pattern).
		Where(d.db.Where("owner_id = ?", userID).Or("id IN (?)", d.sharedNoteIDs(userID))).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) CountSearchVisible(userID int, query string) (int64, error) {
	var count int64
	pattern := "%" + query + "%"
	err := d.db.Model(&entity.Note{}).
		Where("title LIKE ? OR description LIKE ? OR content LIKE ?", pattern, pattern, pattern).
		Where(d.db.Where("owner_id = ?", userID).Or("id IN (?)", d.sharedNoteIDs(userID))).
		Count(&count).Error
	return count, err
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Omit("SharedWith").Save(note).Error
}

// AddShares grants the given users read access. The join table upsert is
// a no-op for users already granted, so re-sharing never duplicates rows.
func (d *DefaultNoteRepository) AddShares(note *entity.Note, users []*entity.User) error {
	return d.db.Model(note).Association("SharedWith").Append(users)
}

// Delete removes the note and its share grants.
func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Select(clause.Associations).Delete(note).Error
}

// sharedNoteIDs builds the subquery of note ids shared with the user.
// Going through the model keeps the table prefix applied.
func (d *DefaultNoteRepository) sharedNoteIDs(userID int) *gorm.DB {
	return d.db.Model(&entity.NoteShare{}).
		Select("note_id").
		Where("user_id = ?", userID)
}
