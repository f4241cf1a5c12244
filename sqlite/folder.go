package sqlite

import (
	"context"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.FolderService = (*FolderService)(nil)

// FolderService implements bookmarker.FolderService using SQLite.
type FolderService struct {
	db *DB
}

// NewFolderService creates a new FolderService.
func NewFolderService(db *DB) *FolderService {
	return &FolderService{db: db}
}

// CreateFolder creates a new folder. The store assigns the ID.
func (s *FolderService) CreateFolder(ctx context.Context, folder *bookmarker.Folder) error {
	if err := folder.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "INSERT INTO folders (name) VALUES (?)", folder.Name)
	if err != nil {
		return err
	}

	folder.ID, err = result.LastInsertId()
	return err
}

// FindFolders retrieves all folders, ordered by ID.
func (s *FolderService) FindFolders(ctx context.Context) ([]*bookmarker.Folder, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM folders ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []*bookmarker.Folder
	for rows.Next() {
		var f bookmarker.Folder
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		folders = append(folders, &f)
	}
	return folders, rows.Err()
}

// DeleteFolder permanently removes a folder and unfolders any bookmarks and
// notes that referenced it. Performed in a single transaction so a partial
// failure leaves no dangling references.
func (s *FolderService) DeleteFolder(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookmarker.Errorf(bookmarker.ENOTFOUND, "folder not found")
	}

	if _, err := tx.ExecContext(ctx, "UPDATE bookmarks SET folder_id = NULL WHERE folder_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE notes SET folder_id = NULL WHERE folder_id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceFolders upserts records pulled from the cloud, keeping their ids.
func (s *FolderService) ReplaceFolders(ctx context.Context, folders []*bookmarker.Folder) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, f := range folders {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO folders (id, name) VALUES (?, ?)
		`, f.ID, f.Name); err != nil {
			return err
		}
	}
	return tx.Commit()
}
