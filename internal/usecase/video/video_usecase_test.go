package video

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gdugdh24/creatormatch-backend/internal/repository/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStorage struct {
	saved   map[string]string
	deleted []string
	saveErr error
}

func (s *stubStorage) Save(_ context.Context, name string, r io.Reader) (string, int64, error) {
	if s.saveErr != nil {
		return "", 0, s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	path := "stored-" + name
	s.saved[path] = string(data)
	return path, int64(len(data)), nil
}

func (s *stubStorage) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func newTestVideoUseCase() (*VideoUseCase, *stubStorage) {
	st := &stubStorage{saved: map[string]string{}}
	uc := NewVideoUseCase(memory.NewVideoRepository(memory.NewStore()), st, 1, []string{"video/mp4"}, zap.NewNop())
	return uc, st
}

func upload(content string) *UploadedFile {
	return &UploadedFile{Name: "clip.mp4", MimeType: "video/mp4", Size: int64(len(content)), Content: strings.NewReader(content)}
}

func TestUpload(t *testing.T) {
	uc, st := newTestVideoUseCase()
	ctx := context.Background()

	video, err := uc.Upload(ctx, 7, &UploadVideoRequest{Title: "Funny cats", Genre: "comedy", Tone: "light"}, upload("bytes"))
	require.NoError(t, err)
	require.Equal(t, 7, video.CreatorID)
	require.Equal(t, domain.VideoStatusUploaded, video.Status)
	require.Equal(t, "stored-clip.mp4", video.FilePath)
	require.Equal(t, int64(5), video.SizeBytes)
	require.Equal(t, "bytes", st.saved["stored-clip.mp4"])

	videos, err := uc.ListMyVideos(ctx, 7)
	require.NoError(t, err)
	require.Len(t, videos, 1)

	videos, err = uc.ListMyVideos(ctx, 8)
	require.NoError(t, err)
	require.Empty(t, videos)
}

func TestUpload_Rejects(t *testing.T) {
	uc, st := newTestVideoUseCase()
	req := &UploadVideoRequest{Title: "t", Genre: "g", Tone: "x"}

	f := upload("bytes")
	f.MimeType = "image/png"
	_, err := uc.Upload(context.Background(), 1, req, f)
	require.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	f = upload("bytes")
	f.Size = 2 << 20
	_, err = uc.Upload(context.Background(), 1, req, f)
	require.ErrorIs(t, err, domain.ErrFileTooLarge)

	st.saveErr = errors.New("disk full")
	_, err = uc.Upload(context.Background(), 1, req, upload("bytes"))
	require.ErrorContains(t, err, "disk full")
}

func TestGetAndDeleteVideo_Ownership(t *testing.T) {
	uc, st := newTestVideoUseCase()
	ctx := context.Background()
	video, err := uc.Upload(ctx, 1, &UploadVideoRequest{Title: "t", Genre: "g", Tone: "x"}, upload("b"))
	require.NoError(t, err)

	_, err = uc.GetVideo(ctx, video.ID, domain.Actor{ID: 2, Role: domain.RoleCreator})
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := uc.GetVideo(ctx, video.ID, domain.Actor{ID: 99, Role: domain.RoleMarketer})
	require.NoError(t, err)
	require.Equal(t, video.ID, got.ID)

	_, err = uc.GetVideo(ctx, 12345, domain.Actor{ID: 1, Role: domain.RoleCreator})
	require.ErrorIs(t, err, domain.ErrVideoNotFound)

	require.ErrorIs(t, uc.DeleteVideo(ctx, video.ID, domain.Actor{ID: 2, Role: domain.RoleCreator}), domain.ErrForbidden)
	require.NoError(t, uc.DeleteVideo(ctx, video.ID, domain.Actor{ID: 1, Role: domain.RoleCreator}))
	require.Equal(t, []string{"stored-clip.mp4"}, st.deleted)

	_, err = uc.GetVideo(ctx, video.ID, domain.Actor{ID: 1, Role: domain.RoleCreator})
	require.ErrorIs(t, err, domain.ErrVideoNotFound)
}
