package tag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestTagService_List(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TagRepository{}
	repo.On("ListWithUsage", ctx).Return(nil, nil).Once()
	repo.On("ListWithUsage", ctx).Return(nil, errors.New("boom")).Once()

	svc := tag.NewService(repo, nil)

	tags, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, tags)
	require.Empty(t, tags)

	_, err = svc.List(ctx)
	require.Error(t, err)
}

func TestColorFor_IsStable(t *testing.T) {
	require.Equal(t, tag.ColorFor("work"), tag.ColorFor("work"))
	require.Regexp(t, `^#[0-9a-f]{6}$`, tag.ColorFor("anything"))
}
