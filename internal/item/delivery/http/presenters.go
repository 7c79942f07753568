package http

import (
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/pkg/paging"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=1000"`
	Available   *bool  `json:"available"   binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

// ---

type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Name        *string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Available   *bool   `json:"available"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

// ---

type searchReq struct {
	Text   string
	Paging paging.Query
}

func (r searchReq) toInput() item.SearchItemsInput {
	return item.SearchItemsInput{
		Text:   r.Text,
		Paging: r.Paging,
	}
}

// ---

type commentReq struct {
	ItemID int64  `json:"-"`
	Text   string `json:"text" binding:"required,max=2000"`
}

func (r commentReq) toInput() item.AddCommentInput {
	return item.AddCommentInput{
		ItemID: r.ItemID,
		Text:   r.Text,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   it.RequestID,
	}
}

type bookingShortResp struct {
	ID       int64             `json:"id"`
	BookerID int64             `json:"bookerId"`
	ItemID   int64             `json:"itemId"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

func newBookingShortResp(b *model.Booking) *bookingShortResp {
	if b == nil {
		return nil
	}
	return &bookingShortResp{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		ItemID:   b.Item.ID,
		Start:    response.DateTime(b.Start),
		End:      response.DateTime(b.End),
	}
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	ItemID     int64             `json:"itemId"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    response.DateTime(c.Created),
	}
}

type itemDetailResp struct {
	itemResp
	LastBooking *bookingShortResp `json:"lastBooking"`
	NextBooking *bookingShortResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newItemDetailResp(v item.ItemView) itemDetailResp {
	comments := make([]commentResp, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = newCommentResp(c)
	}
	return itemDetailResp{
		itemResp:    newItemResp(v.Item),
		LastBooking: newBookingShortResp(v.LastBooking),
		NextBooking: newBookingShortResp(v.NextBooking),
		Comments:    comments,
	}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemDetailResp {
	items := make([]itemDetailResp, len(out.Items))
	for i, v := range out.Items {
		items[i] = newItemDetailResp(v)
	}
	return items
}

func (h *handler) newSearchResp(out item.SearchItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
