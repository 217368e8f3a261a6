package response

import (
	"cuponera/internal/usecase/queries"
)

type UserListResponse struct {
	Users      []*queries.UserListItem `json:"users"`
	NextCursor *string                 `json:"next_cursor,omitempty"`
}

func NewUserListResponse(items []*queries.UserListItem, next *queries.Cursor) UserListResponse {
	resp := UserListResponse{Users: items}
	if resp.Users == nil {
		resp.Users = []*queries.UserListItem{}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

type CompanyReportResponse struct {
	Companies []*queries.CompanySalesRow `json:"companies"`
}

func NewCompanyReportResponse(rows []*queries.CompanySalesRow) CompanyReportResponse {
	if rows == nil {
		rows = []*queries.CompanySalesRow{}
	}
	return CompanyReportResponse{Companies: rows}
}
