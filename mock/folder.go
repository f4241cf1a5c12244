package mock

import (
	"context"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.FolderService = (*FolderService)(nil)

// FolderService is a mock implementation of bookmarker.FolderService.
type FolderService struct {
	CreateFolderFn   func(ctx context.Context, folder *bookmarker.Folder) error
	FindFoldersFn    func(ctx context.Context) ([]*bookmarker.Folder, error)
	DeleteFolderFn   func(ctx context.Context, id int64) error
	ReplaceFoldersFn func(ctx context.Context, folders []*bookmarker.Folder) error
}

func (s *FolderService) CreateFolder(ctx context.Context, folder *bookmarker.Folder) error {
	return s.CreateFolderFn(ctx, folder)
}

func (s *FolderService) FindFolders(ctx context.Context) ([]*bookmarker.Folder, error) {
	return s.FindFoldersFn(ctx)
}

func (s *FolderService) DeleteFolder(ctx context.Context, id int64) error {
	return s.DeleteFolderFn(ctx, id)
}

func (s *FolderService) ReplaceFolders(ctx context.Context, folders []*bookmarker.Folder) error {
	return s.ReplaceFoldersFn(ctx, folders)
}
