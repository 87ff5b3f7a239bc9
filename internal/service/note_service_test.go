package service

import (
	"context"
	"testing"
	"time"

	"github.com/quillnote/quill-note-service/internal/domain"
	"github.com/quillnote/quill-note-service/internal/dto"
	"github.com/quillnote/quill-note-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// fakeNoteRepo 内存版 NoteRepository，行为对齐 mongo 实现：
// 时间戳由 Create/UpdateByID 写入，非法 ID 返回 ErrInvalidID
type fakeNoteRepo struct {
	notes map[string]*domain.Note
	order []string
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*domain.Note{}}
}

func (f *fakeNoteRepo) checkID(id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func (f *fakeNoteRepo) Create(_ context.Context, note *domain.Note) (*domain.Note, error) {
	n := *note
	n.ID = bson.NewObjectID().Hex()
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Tags == nil {
		n.Tags = []string{}
	}
	f.notes[n.ID] = &n
	f.order = append(f.order, n.ID)
	return &n, nil
}

func (f *fakeNoteRepo) ListByUser(_ context.Context, user string) ([]*domain.Note, error) {
	list := []*domain.Note{}
	for _, id := range f.order {
		if n, ok := f.notes[id]; ok && n.User == user {
			list = append(list, n)
		}
	}
	return list, nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, id string) (*domain.Note, error) {
	if err := f.checkID(id); err != nil {
		return nil, err
	}
	n, ok := f.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

func (f *fakeNoteRepo) UpdateByID(_ context.Context, id string, update *domain.NoteUpdate) (*domain.Note, error) {
	if err := f.checkID(id); err != nil {
		return nil, err
	}
	n, ok := f.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update != nil {
		if update.Title != nil {
			n.Title = *update.Title
		}
		if update.Content != nil {
			n.Content = *update.Content
		}
		if update.Tags != nil {
			n.Tags = *update.Tags
		}
		if update.IsArchived != nil {
			n.IsArchived = *update.IsArchived
		}
	}
	n.UpdatedAt = time.Now().UTC()
	return n, nil
}

func (f *fakeNoteRepo) DeleteByID(_ context.Context, id string) error {
	if err := f.checkID(id); err != nil {
		return err
	}
	if _, ok := f.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) DeleteByUser(_ context.Context, user string) (int64, error) {
	var count int64
	for id, n := range f.notes {
		if n.User == user {
			delete(f.notes, id)
			count++
		}
	}
	return count, nil
}

func TestNoteService_CreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo(), zap.NewNop())

	created, err := svc.Create(ctx, &dto.NoteCreateRequest{
		Title:      "A",
		Content:    "B",
		User:       "u1",
		Tags:       []string{},
		IsArchived: false,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "A", created.Title)
	// 创建时 created_at == updated_at
	assert.Equal(t, created.CreatedAt.Unix(), created.UpdatedAt.Unix())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Content, got.Content)
	assert.Equal(t, created.User, got.User)
}

func TestNoteService_ListByUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo(), zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "n", User: "u1"})
		require.NoError(t, err)
	}

	first, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	second, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)

	// 无记录时返回空列表而非错误
	empty, err := svc.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestNoteService_UpdateOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo(), zap.NewNop())

	created, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "A", Content: "B", User: "u1"})
	require.NoError(t, err)

	title := "x"
	updated, err := svc.Update(ctx, created.ID, &dto.NoteUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "x", updated.Title)
	assert.Equal(t, "B", updated.Content)
	assert.Equal(t, "u1", updated.User)
	assert.GreaterOrEqual(t, updated.UpdatedAt.UnixNano(), created.UpdatedAt.UnixNano())
}

func TestNoteService_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo(), zap.NewNop())
	missing := bson.NewObjectID().Hex()

	t.Run("get missing note", func(t *testing.T) {
		_, err := svc.Get(ctx, missing)
		assert.ErrorIs(t, err, code.ErrorNoteNotFound)
	})

	t.Run("get malformed id", func(t *testing.T) {
		_, err := svc.Get(ctx, "not-hex")
		assert.ErrorIs(t, err, code.ErrorNoteIDNotValid)
	})

	t.Run("update missing note", func(t *testing.T) {
		title := "x"
		_, err := svc.Update(ctx, missing, &dto.NoteUpdateRequest{Title: &title})
		assert.ErrorIs(t, err, code.ErrorNoteNotFound)
	})

	t.Run("delete missing note", func(t *testing.T) {
		err := svc.Delete(ctx, missing)
		assert.ErrorIs(t, err, code.ErrorNoteDeleteNotFound)
	})

	t.Run("delete malformed id", func(t *testing.T) {
		err := svc.Delete(ctx, "short")
		assert.ErrorIs(t, err, code.ErrorNoteIDNotValid)
	})

	t.Run("delete by user with no notes", func(t *testing.T) {
		_, err := svc.DeleteByUser(ctx, "nobody")
		assert.ErrorIs(t, err, code.ErrorUserNoNotes)
	})
}

func TestNoteService_DeleteByUserCount(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newFakeNoteRepo(), zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &dto.NoteCreateRequest{Title: "n", User: "u1"})
		require.NoError(t, err)
	}

	count, err := svc.DeleteByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
