package mocks

import (
	"context"

	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/stretchr/testify/mock"
)

// EntryRepository is a mock for entry.Repository.
type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Create(ctx context.Context, e *entry.Entry, tags []entry.TagInput) error {
	args := m.Called(ctx, e, tags)
	return args.Error(0)
}

func (m *EntryRepository) Get(ctx context.Context, id string) (*entry.Entry, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*entry.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) Update(ctx context.Context, e *entry.Entry, tags []entry.TagInput) error {
	args := m.Called(ctx, e, tags)
	return args.Error(0)
}

func (m *EntryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EntryRepository) List(ctx context.Context) ([]entry.Entry, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]entry.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchRepository is a mock for entry.SearchRepository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) Search(ctx context.Context, query string, opts entry.SearchOptions) ([]entry.SearchResult, error) {
	args := m.Called(ctx, query, opts)
	if list, ok := args.Get(0).([]entry.SearchResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MoodRepository is a mock for mood.Repository.
type MoodRepository struct {
	mock.Mock
}

func (m *MoodRepository) Create(ctx context.Context, md *mood.Mood) error {
	args := m.Called(ctx, md)
	return args.Error(0)
}

func (m *MoodRepository) Get(ctx context.Context, id string) (*mood.Mood, error) {
	args := m.Called(ctx, id)
	if md, ok := args.Get(0).(*mood.Mood); ok {
		return md, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MoodRepository) List(ctx context.Context) ([]mood.Mood, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]mood.Mood); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TagRepository is a mock for tag.Repository.
type TagRepository struct {
	mock.Mock
}

func (m *TagRepository) ListWithUsage(ctx context.Context) ([]tag.Usage, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]tag.Usage); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
