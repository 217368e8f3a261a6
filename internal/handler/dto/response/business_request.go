package response

import (
	"cuponera/internal/usecase/queries"
)

type BusinessRequestListResponse struct {
	Requests []*queries.BusinessRequestView `json:"requests"`
}

func NewBusinessRequestListResponse(views []*queries.BusinessRequestView) BusinessRequestListResponse {
	if views == nil {
		views = []*queries.BusinessRequestView{}
	}
	return BusinessRequestListResponse{Requests: views}
}
