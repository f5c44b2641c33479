package posts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPostRepo is a minimal in-memory Repository for testing the service layer
type mockPostRepo struct {
	posts  []*Post
	nextID int
}

func newMockPostRepo(seed ...*Post) *mockPostRepo {
	m := &mockPostRepo{}
	for _, p := range seed {
		cp := *p
		m.posts = append(m.posts, &cp)
		if cp.ID >= m.nextID {
			m.nextID = cp.ID + 1
		}
	}
	return m
}

func (m *mockPostRepo) List(ctx context.Context) ([]*Post, error) {
	out := make([]*Post, 0, len(m.posts))
	for _, p := range m.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockPostRepo) Create(ctx context.Context, title, content string) (*Post, error) {
	post := &Post{ID: m.nextID, Title: title, Content: content}
	m.nextID++
	m.posts = append(m.posts, post)
	cp := *post
	return &cp, nil
}

func (m *mockPostRepo) Update(ctx context.Context, id int, title, content *string) (*Post, error) {
	for _, p := range m.posts {
		if p.ID != id {
			continue
		}
		if title != nil {
			p.Title = *title
		}
		if content != nil {
			p.Content = *content
		}
		cp := *p
		return &cp, nil
	}
	return nil, NewNotFoundError(id)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int) error {
	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError(id)
}

func strPtr(s string) *string {
	return &s
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()
	seed := []*Post{
		{ID: 1, Title: "Banana", Content: "yellow"},
		{ID: 2, Title: "Apple", Content: "zebra"},
	}

	t.Run("no sort returns insertion order", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.ListPosts(ctx, ListPostsRequest{})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Banana", result[0].Title)
		assert.Equal(t, "Apple", result[1].Title)
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.ListPosts(ctx, ListPostsRequest{Sort: "title", Direction: "asc"})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Apple", result[0].Title)
		assert.Equal(t, "Banana", result[1].Title)
	})

	t.Run("sort by title descending", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.ListPosts(ctx, ListPostsRequest{Sort: "title", Direction: "desc"})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Banana", result[0].Title)
		assert.Equal(t, "Apple", result[1].Title)
	})

	t.Run("sort without direction defaults to ascending", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.ListPosts(ctx, ListPostsRequest{Sort: "content"})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "yellow", result[0].Content)
		assert.Equal(t, "zebra", result[1].Content)
	})

	t.Run("direction without sort has no effect", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.ListPosts(ctx, ListPostsRequest{Direction: "desc"})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Banana", result[0].Title)
	})

	t.Run("invalid sort field fails validation", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		_, err := service.ListPosts(ctx, ListPostsRequest{Sort: "unknown"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "Invalid sort field. Must be 'title' or 'content'.", err.Error())
	})

	t.Run("invalid direction fails validation", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		_, err := service.ListPosts(ctx, ListPostsRequest{Sort: "title", Direction: "sideways"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "Invalid sort direction. Must be 'asc' or 'desc'.", err.Error())
	})

	t.Run("empty collection lists without error", func(t *testing.T) {
		service := NewPostService(newMockPostRepo())

		result, err := service.ListPosts(ctx, ListPostsRequest{})
		require.NoError(t, err)
		assert.Len(t, result, 0)
	})
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("creates post with assigned id", func(t *testing.T) {
		repo := newMockPostRepo()
		service := NewPostService(repo)

		post, err := service.CreatePost(ctx, CreatePostRequest{
			Title:   strPtr("A"),
			Content: strPtr("B"),
		})
		require.NoError(t, err)
		assert.Equal(t, "A", post.Title)
		assert.Equal(t, "B", post.Content)

		all, err := service.ListPosts(ctx, ListPostsRequest{})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, post.ID, all[0].ID)
	})

	t.Run("missing title names only title", func(t *testing.T) {
		service := NewPostService(newMockPostRepo())

		_, err := service.CreatePost(ctx, CreatePostRequest{Content: strPtr("B")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "title is required!", err.Error())
	})

	t.Run("missing content names only content", func(t *testing.T) {
		service := NewPostService(newMockPostRepo())

		_, err := service.CreatePost(ctx, CreatePostRequest{Title: strPtr("A")})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "content is required!", err.Error())
	})

	t.Run("missing both names both joined", func(t *testing.T) {
		repo := newMockPostRepo()
		service := NewPostService(repo)

		_, err := service.CreatePost(ctx, CreatePostRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "title, content fields are required!", err.Error())
		assert.Len(t, repo.posts, 0)
	})

	t.Run("empty strings are present fields", func(t *testing.T) {
		service := NewPostService(newMockPostRepo())

		post, err := service.CreatePost(ctx, CreatePostRequest{
			Title:   strPtr(""),
			Content: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "", post.Title)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only provided fields", func(t *testing.T) {
		repo := newMockPostRepo(&Post{ID: 7, Title: "old", Content: "keep"})
		service := NewPostService(repo)

		post, err := service.UpdatePost(ctx, UpdatePostRequest{ID: 7, Title: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", post.Title)
		assert.Equal(t, "keep", post.Content)
	})

	t.Run("unknown id returns not found and leaves collection unchanged", func(t *testing.T) {
		repo := newMockPostRepo(&Post{ID: 1, Title: "a", Content: "b"})
		service := NewPostService(repo)

		_, err := service.UpdatePost(ctx, UpdatePostRequest{ID: 99, Title: strPtr("x")})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "Post with id 99 doesn't exist.", err.Error())
		assert.Len(t, repo.posts, 1)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing post", func(t *testing.T) {
		repo := newMockPostRepo(&Post{ID: 3, Title: "a", Content: "b"})
		service := NewPostService(repo)

		require.NoError(t, service.DeletePost(ctx, 3))
		assert.Len(t, repo.posts, 0)

		err := service.DeletePost(ctx, 3)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestPostService_SearchPosts(t *testing.T) {
	ctx := context.Background()
	seed := []*Post{
		{ID: 1, Title: "Hello World", Content: "greetings"},
		{ID: 2, Title: "Other", Content: "something else"},
	}

	t.Run("title filter matches case-insensitively", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.SearchPosts(ctx, SearchPostsRequest{Title: strPtr("hello")})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Hello World", result[0].Title)
	})

	t.Run("content filter matches case-insensitively", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.SearchPosts(ctx, SearchPostsRequest{Content: strPtr("SOMETHING")})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Other", result[0].Title)
	})

	t.Run("filters combine with OR", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.SearchPosts(ctx, SearchPostsRequest{
			Title:   strPtr("hello"),
			Content: strPtr("something"),
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("no filters matches nothing", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.SearchPosts(ctx, SearchPostsRequest{})
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		service := NewPostService(newMockPostRepo(seed...))

		result, err := service.SearchPosts(ctx, SearchPostsRequest{Title: strPtr("zzz")})
		require.NoError(t, err)
		assert.Len(t, result, 0)
	})
}
