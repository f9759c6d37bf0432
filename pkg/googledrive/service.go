package googledrive

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// FolderName is the well-known destination folder for uploaded CVs. Lookup
// is by exact, case-sensitive name; if duplicates exist the first match wins.
const FolderName = "MondeRH"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// getDriveService creates a Drive client with the user's access token. The
// token is expected to be fresh; refresh is handled upstream by the
// credential refresher.
func (s *Service) getDriveService(ctx context.Context, accessToken string) (*drive.Service, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive service: %v", err)
	}

	return srv, nil
}

// Upload stores the file under the well-known folder, creating the folder if
// absent, and returns the remote file ID and viewer link.
func (s *Service) Upload(ctx context.Context, accessToken string, content []byte, filename, contentType string) (string, string, error) {
	srv, err := s.getDriveService(ctx, accessToken)
	if err != nil {
		return "", "", err
	}

	folderID, err := s.ensureFolder(srv)
	if err != nil {
		return "", "", err
	}

	file := &drive.File{
		Name:    filename,
		Parents: []string{folderID},
	}

	created, err := srv.Files.Create(file).
		Media(bytes.NewReader(content), googleapi.ContentType(contentType)).
		Fields("id, webViewLink").
		Do()
	if err != nil {
		return "", "", fmt.Errorf("unable to upload file: %v", err)
	}

	return created.Id, created.WebViewLink, nil
}

// ensureFolder locates the destination folder by exact name, creating it when
// no match exists.
func (s *Service) ensureFolder(srv *drive.Service) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.folder' and trashed = false", FolderName)
	list, err := srv.Files.List().Q(query).Fields("files(id, name)").Do()
	if err != nil {
		return "", fmt.Errorf("unable to list folders: %v", err)
	}

	for _, f := range list.Files {
		if f.Name == FolderName {
			return f.Id, nil
		}
	}

	folder := &drive.File{
		Name:     FolderName,
		MimeType: "application/vnd.google-apps.folder",
	}
	created, err := srv.Files.Create(folder).Fields("id").Do()
	if err != nil {
		return "", fmt.Errorf("unable to create folder: %v", err)
	}

	return created.Id, nil
}
