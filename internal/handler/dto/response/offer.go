package response

import (
	"github.com/google/uuid"

	"cuponera/internal/usecase/queries"
)

type OfferResponse struct {
	*queries.OfferView
	Remaining *int32 `json:"remaining,omitempty"`
}

func NewOfferResponse(view *queries.OfferView) OfferResponse {
	return OfferResponse{OfferView: view, Remaining: view.Remaining()}
}

type OfferListResponse struct {
	Offers     []*queries.OfferListItem `json:"offers"`
	NextCursor *string                  `json:"next_cursor,omitempty"`
}

func NewOfferListResponse(items []*queries.OfferListItem, next *queries.Cursor) OfferListResponse {
	resp := OfferListResponse{Offers: items}
	if resp.Offers == nil {
		resp.Offers = []*queries.OfferListItem{}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

type OffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}

func NewOffersResponse(views []*queries.OfferView) OffersResponse {
	resp := OffersResponse{Offers: make([]OfferResponse, 0, len(views))}
	for _, view := range views {
		resp.Offers = append(resp.Offers, NewOfferResponse(view))
	}
	return resp
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type UpdateMeta struct {
	Updated bool `json:"updated"`
}

// UpdateOfferResponse tells the caller whether the patch changed anything.
type UpdateOfferResponse struct {
	Meta UpdateMeta `json:"meta"`
}
