package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"board-srv/internal/model"
	"board-srv/internal/post"
	"board-srv/internal/post/repository"
	"board-srv/internal/rank"
	"board-srv/pkg/log"
)

// --- Mocks ---

type mockRepo struct {
	posts    []model.Post
	comments []model.Comment

	created      model.Post
	createErr    error
	listErr      error
	deletedID    string
	deleteErr    error
	softDeleted  string
	commentMade  repository.CreateCommentOptions
	commentErr   error
	updateCalled bool
}

func (m *mockRepo) CreatePost(_ context.Context, opt repository.CreatePostOptions) (model.Post, error) {
	if m.createErr != nil {
		return model.Post{}, m.createErr
	}
	p := model.Post{
		ID:        "p-new",
		UserID:    opt.UserID,
		Username:  opt.Username,
		Content:   opt.Content,
		Category:  opt.Category,
		CreatedAt: time.Now(),
	}
	m.created = p
	return p, nil
}

func (m *mockRepo) GetPostByID(_ context.Context, id string) (model.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, repository.ErrNotFound
}

func (m *mockRepo) ListPosts(_ context.Context, opt repository.ListPostsOptions) ([]model.Post, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		if opt.UserID != "" && p.UserID != opt.UserID {
			continue
		}
		if opt.Category != "" && p.Category != opt.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) UpdatePost(_ context.Context, opt repository.UpdatePostOptions) (model.Post, error) {
	m.updateCalled = true
	for _, p := range m.posts {
		if p.ID == opt.PostID {
			if opt.Content != "" {
				p.Content = opt.Content
			}
			if opt.Category != "" {
				p.Category = opt.Category
			}
			return p, nil
		}
	}
	return model.Post{}, repository.ErrNotFound
}

func (m *mockRepo) DeletePost(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func (m *mockRepo) CountPosts(_ context.Context, _ repository.CountPostsOptions) (int64, error) {
	return int64(len(m.posts)), nil
}

func (m *mockRepo) CreateComment(_ context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	if m.commentErr != nil {
		return model.Comment{}, m.commentErr
	}
	m.commentMade = opt
	return model.Comment{
		ID:       "c-new",
		PostID:   opt.PostID,
		UserID:   opt.UserID,
		Username: opt.Username,
		Text:     opt.Text,
	}, nil
}

func (m *mockRepo) GetCommentByID(_ context.Context, id string) (model.Comment, error) {
	for _, c := range m.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Comment{}, repository.ErrNotFound
}

func (m *mockRepo) SoftDeleteComment(_ context.Context, id string) error {
	m.softDeleted = id
	return nil
}

func (m *mockRepo) CountComments(_ context.Context, _ repository.CountCommentsOptions) (int64, error) {
	return int64(len(m.comments)), nil
}

type mockCache struct {
	posts       []model.Post
	hit         bool
	invalidated bool
	setCalled   bool
}

func (m *mockCache) GetPosts(_ context.Context) ([]model.Post, error) {
	if !m.hit {
		return nil, repository.ErrCacheMiss
	}
	return m.posts, nil
}

func (m *mockCache) SetPosts(_ context.Context, posts []model.Post) error {
	m.setCalled = true
	m.posts = posts
	return nil
}

func (m *mockCache) Invalidate(_ context.Context) error {
	m.invalidated = true
	return nil
}

type mockProducer struct {
	keys []string
}

func (m *mockProducer) Publish(key, _ []byte) error {
	m.keys = append(m.keys, string(key))
	return nil
}
func (m *mockProducer) Close() error       { return nil }
func (m *mockProducer) HealthCheck() error { return nil }

func newTestUC(repo *mockRepo, cache *mockCache, producer *mockProducer, pinned []string) post.UseCase {
	return New(repo, cache, producer, pinned, log.NewNop())
}

func makePost(id, userID, username, content string, age time.Duration) model.Post {
	return model.Post{
		ID:        id,
		UserID:    userID,
		Username:  username,
		Content:   content,
		Category:  model.CategoryGeneral,
		CreatedAt: time.Now().Add(-age),
	}
}

func userScope() model.Scope {
	return model.Scope{UserID: "u1", Username: "alice", Role: model.RoleUser}
}

func adminScope() model.Scope {
	return model.Scope{UserID: "adm", Username: "admin", Role: model.RoleAdmin}
}

// --- List ---

func TestList_PinnedLeadsFeed(t *testing.T) {
	repo := &mockRepo{posts: []model.Post{
		makePost("p1", "u1", "alice", "golang tips", time.Hour),
		makePost("p2", "adm", "admin", "maintenance window", 48*time.Hour),
		makePost("p3", "u2", "bob", "random thoughts", time.Minute),
	}}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, []string{"admin"})

	out, err := uc.List(context.Background(), userScope(), post.ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out.Items))
	}
	if out.Items[0].Post.ID != "p2" {
		t.Errorf("expected pinned author's post first, got %s", out.Items[0].Post.ID)
	}
	if out.Items[1].Post.ID != "p3" {
		t.Errorf("expected newest regular post second, got %s", out.Items[1].Post.ID)
	}
}

func TestList_SearchFiltersAndHighlights(t *testing.T) {
	repo := &mockRepo{posts: []model.Post{
		makePost("p1", "u1", "alice", "golang tips", time.Hour),
		makePost("p2", "u2", "bob", "random thoughts", time.Minute),
	}}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, nil)

	out, err := uc.List(context.Background(), userScope(), post.ListInput{
		Search: "golang",
		Field:  rank.FieldContent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out.Items))
	}
	if out.TotalUnfiltered != 2 {
		t.Errorf("expected the pre-search total, got %d", out.TotalUnfiltered)
	}
	item := out.Items[0]
	if item.Post.ID != "p1" {
		t.Errorf("expected p1, got %s", item.Post.ID)
	}
	if len(item.Segments) == 0 {
		t.Fatal("expected highlight segments for an active search")
	}
	var rebuilt strings.Builder
	matched := false
	for _, seg := range item.Segments {
		rebuilt.WriteString(seg.Text)
		if seg.IsMatch {
			matched = true
		}
	}
	if rebuilt.String() != item.Post.Content {
		t.Errorf("segments do not round-trip: %q", rebuilt.String())
	}
	if !matched {
		t.Error("expected at least one matching segment")
	}
}

func TestList_PinnedStillFilteredBySearch(t *testing.T) {
	repo := &mockRepo{posts: []model.Post{
		makePost("p1", "adm", "admin", "maintenance window", time.Hour),
		makePost("p2", "u2", "bob", "golang talk", time.Minute),
	}}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, []string{"admin"})

	out, err := uc.List(context.Background(), userScope(), post.ListInput{
		Search: "golang",
		Field:  rank.FieldContent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Post.ID != "p2" {
		t.Fatalf("expected only the matching regular post, got %+v", out.Items)
	}
}

func TestList_CacheHitSkipsRepo(t *testing.T) {
	cache := &mockCache{hit: true, posts: []model.Post{
		makePost("p1", "u1", "alice", "cached post", time.Hour),
	}}
	repo := &mockRepo{listErr: errors.New("postgres down")}
	uc := newTestUC(repo, cache, &mockProducer{}, nil)

	out, err := uc.List(context.Background(), userScope(), post.ListInput{})
	if err != nil {
		t.Fatalf("expected cache to serve the list: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Post.ID != "p1" {
		t.Fatalf("expected the cached post, got %+v", out.Items)
	}
}

func TestList_CacheMissRefillsCache(t *testing.T) {
	cache := &mockCache{}
	repo := &mockRepo{posts: []model.Post{
		makePost("p1", "u1", "alice", "fresh post", time.Hour),
	}}
	uc := newTestUC(repo, cache, &mockProducer{}, nil)

	if _, err := uc.List(context.Background(), userScope(), post.ListInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.setCalled {
		t.Error("expected the cache to be refilled after a miss")
	}
}

func TestList_InvalidCategory(t *testing.T) {
	uc := newTestUC(&mockRepo{}, &mockCache{}, &mockProducer{}, nil)

	_, err := uc.List(context.Background(), userScope(), post.ListInput{Category: "nope"})
	if !errors.Is(err, post.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

// --- Detail ---

func TestDetail_CommentSearchExcludesDeleted(t *testing.T) {
	p := makePost("p1", "u1", "alice", "post body", time.Hour)
	p.Comments = []model.Comment{
		{ID: "c1", PostID: "p1", Username: "bob", Text: "great golang write-up"},
		{ID: "c2", PostID: "p1", Username: "eve", Text: "golang is fine", IsDeleted: true},
		{ID: "c3", PostID: "p1", Username: "kim", Text: "unrelated"},
	}
	repo := &mockRepo{posts: []model.Post{p}}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, nil)

	out, err := uc.Detail(context.Background(), userScope(), post.DetailInput{
		PostID:        "p1",
		CommentSearch: "golang",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Comments) != 1 {
		t.Fatalf("expected 1 visible match, got %d", len(out.Comments))
	}
	if out.Comments[0].Comment.ID != "c1" {
		t.Errorf("expected c1, got %s", out.Comments[0].Comment.ID)
	}
	if len(out.Comments[0].Segments) == 0 {
		t.Error("expected highlight segments on the matched comment")
	}
}

func TestDetail_NotFound(t *testing.T) {
	uc := newTestUC(&mockRepo{}, &mockCache{}, &mockProducer{}, nil)

	_, err := uc.Detail(context.Background(), userScope(), post.DetailInput{PostID: "missing"})
	if !errors.Is(err, post.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

// --- Create ---

func TestCreate_DefaultsCategoryAndPublishes(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}
	producer := &mockProducer{}
	uc := newTestUC(repo, cache, producer, nil)

	p, err := uc.Create(context.Background(), userScope(), post.CreateInput{Content: "  hello  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Content != "hello" {
		t.Errorf("expected trimmed content, got %q", p.Content)
	}
	if p.Category != model.CategoryGeneral {
		t.Errorf("expected default category, got %q", p.Category)
	}
	if !cache.invalidated {
		t.Error("expected cache invalidation after create")
	}
	if len(producer.keys) != 1 || producer.keys[0] != model.EventPostCreated {
		t.Errorf("expected a post.created event, got %v", producer.keys)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUC(&mockRepo{}, &mockCache{}, &mockProducer{}, nil)

	if _, err := uc.Create(context.Background(), userScope(), post.CreateInput{Content: "   "}); !errors.Is(err, post.ErrContentRequired) {
		t.Errorf("blank content: expected ErrContentRequired, got %v", err)
	}
	long := strings.Repeat("x", post.MaxContentLen+1)
	if _, err := uc.Create(context.Background(), userScope(), post.CreateInput{Content: long}); !errors.Is(err, post.ErrContentTooLong) {
		t.Errorf("long content: expected ErrContentTooLong, got %v", err)
	}
	if _, err := uc.Create(context.Background(), userScope(), post.CreateInput{Content: "ok", Category: "nope"}); !errors.Is(err, post.ErrInvalidCategory) {
		t.Errorf("bad category: expected ErrInvalidCategory, got %v", err)
	}
}

// --- Update / Delete ---

func TestUpdate_OnlyOwner(t *testing.T) {
	repo := &mockRepo{posts: []model.Post{
		makePost("p1", "u2", "bob", "bob's post", time.Hour),
	}}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, nil)

	_, err := uc.Update(context.Background(), userScope(), post.UpdateInput{PostID: "p1", Content: "edit"})
	if !errors.Is(err, post.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if repo.updateCalled {
		t.Error("update must not reach the repository")
	}
}

func TestDelete_OwnerAndAdmin(t *testing.T) {
	tests := []struct {
		name    string
		sc      model.Scope
		wantErr error
	}{
		{name: "owner may delete", sc: userScope()},
		{name: "admin may delete", sc: adminScope()},
		{name: "stranger may not", sc: model.Scope{UserID: "u9", Role: model.RoleUser}, wantErr: post.ErrNotOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{posts: []model.Post{
				makePost("p1", "u1", "alice", "target", time.Hour),
			}}
			cache := &mockCache{}
			uc := newTestUC(repo, cache, &mockProducer{}, nil)

			err := uc.Delete(context.Background(), tt.sc, post.DeleteInput{PostID: "p1"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && repo.deletedID != "p1" {
				t.Error("expected the post to be deleted")
			}
			if tt.wantErr == nil && !cache.invalidated {
				t.Error("expected cache invalidation after delete")
			}
		})
	}
}

// --- Comments ---

func TestAddComment_PublishesEvent(t *testing.T) {
	repo := &mockRepo{posts: []model.Post{
		makePost("p1", "u2", "bob", "post", time.Hour),
	}}
	producer := &mockProducer{}
	uc := newTestUC(repo, &mockCache{}, producer, nil)

	c, err := uc.AddComment(context.Background(), userScope(), post.AddCommentInput{
		PostID: "p1",
		Text:   "nice one",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Text != "nice one" {
		t.Errorf("unexpected comment text %q", c.Text)
	}
	if len(producer.keys) != 1 || producer.keys[0] != model.EventCommentCreated {
		t.Errorf("expected a comment.created event, got %v", producer.keys)
	}
}

func TestAddComment_PostMissing(t *testing.T) {
	uc := newTestUC(&mockRepo{}, &mockCache{}, &mockProducer{}, nil)

	_, err := uc.AddComment(context.Background(), userScope(), post.AddCommentInput{
		PostID: "missing",
		Text:   "hello",
	})
	if !errors.Is(err, post.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeleteComment_Permissions(t *testing.T) {
	base := func() *mockRepo {
		return &mockRepo{
			posts: []model.Post{makePost("p1", "owner", "olive", "post", time.Hour)},
			comments: []model.Comment{
				{ID: "c1", PostID: "p1", UserID: "author", Username: "andy", Text: "hi"},
			},
		}
	}
	tests := []struct {
		name    string
		sc      model.Scope
		wantErr error
	}{
		{name: "comment author", sc: model.Scope{UserID: "author", Role: model.RoleUser}},
		{name: "post owner", sc: model.Scope{UserID: "owner", Role: model.RoleUser}},
		{name: "admin", sc: adminScope()},
		{name: "stranger", sc: model.Scope{UserID: "u9", Role: model.RoleUser}, wantErr: post.ErrNotOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := base()
			uc := newTestUC(repo, &mockCache{}, &mockProducer{}, nil)

			err := uc.DeleteComment(context.Background(), tt.sc, post.DeleteCommentInput{
				PostID:    "p1",
				CommentID: "c1",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && repo.softDeleted != "c1" {
				t.Error("expected the comment to be soft-deleted")
			}
		})
	}
}

func TestDeleteComment_WrongPost(t *testing.T) {
	repo := &mockRepo{
		posts: []model.Post{makePost("p1", "u1", "alice", "post", time.Hour)},
		comments: []model.Comment{
			{ID: "c1", PostID: "other", UserID: "u1", Text: "hi"},
		},
	}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, nil)

	err := uc.DeleteComment(context.Background(), userScope(), post.DeleteCommentInput{
		PostID:    "p1",
		CommentID: "c1",
	})
	if !errors.Is(err, post.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

// --- AdminList ---

func TestAdminList_RequiresAdmin(t *testing.T) {
	uc := newTestUC(&mockRepo{}, &mockCache{}, &mockProducer{}, nil)

	_, err := uc.AdminList(context.Background(), userScope(), post.AdminListInput{})
	if !errors.Is(err, post.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
}

func TestAdminList_CommentMatchSurfacesPost(t *testing.T) {
	withComment := makePost("p1", "u1", "alice", "nothing to see", 2*time.Hour)
	withComment.Comments = []model.Comment{
		{ID: "c1", PostID: "p1", Username: "bob", Text: "secret handshake"},
	}
	repo := &mockRepo{posts: []model.Post{
		withComment,
		makePost("p2", "u2", "bob", "plain post", time.Hour),
	}}
	uc := newTestUC(repo, &mockCache{}, &mockProducer{}, nil)

	out, err := uc.AdminList(context.Background(), adminScope(), post.AdminListInput{Search: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Post.ID != "p1" {
		t.Fatalf("expected the comment-matched post only, got %+v", out.Items)
	}
}
