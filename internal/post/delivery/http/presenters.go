package http

import (
	"board-srv/internal/model"
	"board-srv/internal/post"
	"board-srv/internal/rank"
	"board-srv/pkg/paginator"
	"board-srv/pkg/response"
)

type listPostsReq struct {
	Search   string
	Field    string
	Category string
	Page     int
	Limit    int64
}

func (r listPostsReq) toInput() post.ListInput {
	return post.ListInput{
		Search:   r.Search,
		Field:    rank.ParseField(r.Field),
		Category: r.Category,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

func (r listPostsReq) toMineInput() post.ListMineInput {
	return post.ListMineInput{
		Search:   r.Search,
		Field:    rank.ParseField(r.Field),
		Category: r.Category,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

type adminListPostsReq struct {
	Search string
	Page   int
	Limit  int64
}

func (r adminListPostsReq) toInput() post.AdminListInput {
	return post.AdminListInput{
		Search: r.Search,
		Page:   r.Page,
		Limit:  r.Limit,
	}
}

type detailReq struct {
	PostID        string
	CommentSearch string
}

func (r detailReq) toInput() post.DetailInput {
	return post.DetailInput{
		PostID:        r.PostID,
		CommentSearch: r.CommentSearch,
	}
}

type createPostReq struct {
	Content  string `json:"content" binding:"required"`
	Category string `json:"category,omitempty"`
}

func (r createPostReq) toInput() post.CreateInput {
	return post.CreateInput{
		Content:  r.Content,
		Category: r.Category,
	}
}

type updatePostReq struct {
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
}

type addCommentReq struct {
	Text string `json:"text" binding:"required"`
}

type segmentResp struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"is_match"`
}

func newSegmentsResp(segs []rank.Segment) []segmentResp {
	if segs == nil {
		return nil
	}
	out := make([]segmentResp, 0, len(segs))
	for _, s := range segs {
		out = append(out, segmentResp{Text: s.Text, IsMatch: s.IsMatch})
	}
	return out
}

type commentResp struct {
	ID        string            `json:"id"`
	PostID    string            `json:"post_id"`
	UserID    string            `json:"user_id"`
	Username  string            `json:"username"`
	Text      string            `json:"text"`
	Segments  []segmentResp     `json:"segments,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newCommentResp(c model.Comment, segs []rank.Segment) commentResp {
	return commentResp{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Username:  c.Username,
		Text:      c.Text,
		Segments:  newSegmentsResp(segs),
		CreatedAt: response.DateTime(c.CreatedAt),
	}
}

type postResp struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Username     string            `json:"username"`
	Content      string            `json:"content"`
	Category     string            `json:"category"`
	CommentCount int               `json:"comment_count"`
	Segments     []segmentResp     `json:"segments,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
	UpdatedAt    response.DateTime `json:"updated_at"`
}

func newPostResp(p model.Post, segs []rank.Segment) postResp {
	return postResp{
		ID:           p.ID,
		UserID:       p.UserID,
		Username:     p.Username,
		Content:      p.Content,
		Category:     p.Category,
		CommentCount: len(p.ActiveComments()),
		Segments:     newSegmentsResp(segs),
		CreatedAt:    response.DateTime(p.CreatedAt),
		UpdatedAt:    response.DateTime(p.UpdatedAt),
	}
}

type listPostsResp struct {
	Posts []postResp                  `json:"posts"`
	Meta  paginator.PaginatorResponse `json:"meta"`
	// TotalUnfiltered lets the client tell "no results for this search"
	// apart from an empty board.
	TotalUnfiltered int64 `json:"total_unfiltered"`
}

func (h *handler) newListPostsResp(o post.ListOutput) listPostsResp {
	resp := listPostsResp{
		Posts:           make([]postResp, 0, len(o.Items)),
		Meta:            o.Paginator.ToResponse(),
		TotalUnfiltered: o.TotalUnfiltered,
	}
	for _, item := range o.Items {
		resp.Posts = append(resp.Posts, newPostResp(item.Post, item.Segments))
	}
	return resp
}

type detailResp struct {
	Post     postResp      `json:"post"`
	Comments []commentResp `json:"comments"`
}

func (h *handler) newDetailResp(o post.DetailOutput) detailResp {
	resp := detailResp{
		Post:     newPostResp(o.Post, nil),
		Comments: make([]commentResp, 0, len(o.Comments)),
	}
	for _, item := range o.Comments {
		resp.Comments = append(resp.Comments, newCommentResp(item.Comment, item.Segments))
	}
	return resp
}
